package gp

// modelSchema defines the JSON schema for serialized model artifacts.
// Tree nodes are recursive through the node definition; the shape rules
// that a schema cannot express (operator arity, leaf exclusivity) are
// enforced by Node.Validate after decoding.
var modelSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"format_version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the artifact format, e.g. v1.0.0",
		},
		"id": map[string]any{
			"type":        "string",
			"description": "Unique identifier assigned when the model was trained",
		},
		"trained_at": map[string]any{
			"type":        "string",
			"description": "RFC 3339 timestamp of the training run",
		},
		"generations": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"fitness": map[string]any{
			"type":        "number",
			"minimum":     0,
			"maximum":     1,
			"description": "Training-set accuracy of the winning individual",
		},
		"thresholds": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"low":  map[string]any{"type": "number"},
				"high": map[string]any{"type": "number"},
			},
			"required":             []any{"low", "high"},
			"additionalProperties": false,
		},
		"tree": map[string]any{"$ref": "#/$defs/node"},
	},
	"required":             []any{"format_version", "id", "trained_at", "thresholds", "tree"},
	"additionalProperties": false,
	"$defs": map[string]any{
		"node": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"op": map[string]any{
					"type": "string",
					"enum": []any{"add", "sub", "mul", "div"},
				},
				"feature": map[string]any{
					"type": "string",
					"enum": []any{"sepal_length", "sepal_width", "petal_length", "petal_width"},
				},
				"const": map[string]any{"type": "number"},
				"left":  map[string]any{"$ref": "#/$defs/node"},
				"right": map[string]any{"$ref": "#/$defs/node"},
			},
			"additionalProperties": false,
		},
	},
}
