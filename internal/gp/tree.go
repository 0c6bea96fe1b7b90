package gp

import (
	"fmt"
	"strconv"
)

// Feature identifies one of the four flower measurements an expression tree
// can read. The set is closed; anything else fails structural validation.
type Feature string

const (
	FeatureSepalLength Feature = "sepal_length"
	FeatureSepalWidth  Feature = "sepal_width"
	FeaturePetalLength Feature = "petal_length"
	FeaturePetalWidth  Feature = "petal_width"
)

// AllFeatures returns the features an evolved tree may reference.
func AllFeatures() []Feature {
	return []Feature{FeatureSepalLength, FeatureSepalWidth, FeaturePetalLength, FeaturePetalWidth}
}

// Op is a binary operator in an expression tree.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// symbol returns the infix rendering of the operator.
func (o Op) symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return string(o)
	}
}

// Node is one node of an evolved expression tree. Exactly one of three
// shapes is valid: an operator node (Op set, both children present), a
// feature leaf (Feature set, no children), or a constant leaf (Const set,
// no children). Validate checks the shape; Eval assumes it.
type Node struct {
	Op      Op       `json:"op,omitempty"`
	Feature Feature  `json:"feature,omitempty"`
	Const   *float64 `json:"const,omitempty"`
	Left    *Node    `json:"left,omitempty"`
	Right   *Node    `json:"right,omitempty"`
}

// Eval computes the tree's value for the given feature bindings. Division
// by zero is protected: it yields 1 rather than an error, so every
// structurally valid tree is total over the feature space.
func (n *Node) Eval(features map[Feature]float64) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("evaluate nil node")
	}

	switch {
	case n.Op != "":
		left, err := n.Left.Eval(features)
		if err != nil {
			return 0, err
		}
		right, err := n.Right.Eval(features)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			if right == 0 {
				return 1, nil
			}
			return left / right, nil
		default:
			return 0, fmt.Errorf("unknown operator %q", n.Op)
		}
	case n.Feature != "":
		val, ok := features[n.Feature]
		if !ok {
			return 0, fmt.Errorf("feature %q not bound", n.Feature)
		}
		return val, nil
	case n.Const != nil:
		return *n.Const, nil
	default:
		return 0, fmt.Errorf("empty node")
	}
}

// Validate checks the tree's structure: every operator node has two
// children, every leaf has none, and operators and features come from
// their closed sets.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("tree is empty")
	}

	switch {
	case n.Op != "":
		if n.Feature != "" || n.Const != nil {
			return fmt.Errorf("operator %q node also carries a leaf value", n.Op)
		}
		switch n.Op {
		case OpAdd, OpSub, OpMul, OpDiv:
		default:
			return fmt.Errorf("unknown operator %q", n.Op)
		}
		if n.Left == nil || n.Right == nil {
			return fmt.Errorf("operator %q missing an operand", n.Op)
		}
		if err := n.Left.Validate(); err != nil {
			return err
		}
		return n.Right.Validate()
	case n.Feature != "":
		if n.Const != nil {
			return fmt.Errorf("feature %q leaf also carries a constant", n.Feature)
		}
		if n.Left != nil || n.Right != nil {
			return fmt.Errorf("feature %q leaf has children", n.Feature)
		}
		switch n.Feature {
		case FeatureSepalLength, FeatureSepalWidth, FeaturePetalLength, FeaturePetalWidth:
			return nil
		default:
			return fmt.Errorf("unknown feature %q", n.Feature)
		}
	case n.Const != nil:
		if n.Left != nil || n.Right != nil {
			return fmt.Errorf("constant leaf has children")
		}
		return nil
	default:
		return fmt.Errorf("node is neither operator nor leaf")
	}
}

// Expr renders the tree as a fully parenthesized infix expression.
func (n *Node) Expr() string {
	if n == nil {
		return ""
	}
	switch {
	case n.Op != "":
		return "(" + n.Left.Expr() + " " + n.Op.symbol() + " " + n.Right.Expr() + ")"
	case n.Feature != "":
		return string(n.Feature)
	case n.Const != nil:
		return strconv.FormatFloat(*n.Const, 'g', -1, 64)
	default:
		return "?"
	}
}

// NodeCount returns the number of nodes in the tree.
func (n *Node) NodeCount() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.NodeCount() + n.Right.NodeCount()
}

// Depth returns the height of the tree. A single leaf has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	left := n.Left.Depth()
	right := n.Right.Depth()
	if right > left {
		left = right
	}
	return 1 + left
}
