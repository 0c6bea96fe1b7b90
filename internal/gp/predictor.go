package gp

import (
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/iris"
)

// TreePredictor runs a trained model against iris records. Correctness is
// judged with the thresholds the model was trained with, so the verdict is a
// property of the artifact alone and survives any display-time re-cutting.
//
// A TreePredictor reuses one feature binding between calls and is not safe
// for concurrent use.
type TreePredictor struct {
	model    *Model
	bindings map[Feature]float64
}

var _ eval.Predictor = (*TreePredictor)(nil)

// NewTreePredictor creates a predictor for the given model.
func NewTreePredictor(m *Model) *TreePredictor {
	return &TreePredictor{
		model:    m,
		bindings: make(map[Feature]float64, 4),
	}
}

// Model returns the model the predictor evaluates.
func (p *TreePredictor) Model() *Model { return p.model }

// Evaluate computes the tree's score for the record and judges it against
// the record's ground-truth species.
func (p *TreePredictor) Evaluate(rec iris.Record) (bool, float64, error) {
	p.bindings[FeatureSepalLength] = rec.SepalLength
	p.bindings[FeatureSepalWidth] = rec.SepalWidth
	p.bindings[FeaturePetalLength] = rec.PetalLength
	p.bindings[FeaturePetalWidth] = rec.PetalWidth

	score, err := p.model.Tree.Eval(p.bindings)
	if err != nil {
		return false, 0, err
	}

	predicted := p.model.Thresholds.Classify(score)
	return predicted == rec.Species, score, nil
}
