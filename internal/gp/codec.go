package gp

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/G3mha/genetic-programming/internal/eval"
)

// FormatVersion is the artifact format this build reads. Artifacts from a
// different major version are rejected.
const FormatVersion = "v1.0.0"

// Model is a trained classifier loaded from a JSON artifact: the evolved
// expression tree plus the cut points that were fixed during training.
type Model struct {
	FormatVersion string          `json:"format_version"`
	ID            string          `json:"id"`
	TrainedAt     time.Time       `json:"trained_at"`
	Generations   int             `json:"generations,omitempty"`
	Fitness       float64         `json:"fitness,omitempty"`
	Thresholds    eval.Thresholds `json:"thresholds"`
	Tree          *Node           `json:"tree"`
}

// Expr renders the model's expression tree in infix form.
func (m *Model) Expr() string {
	return m.Tree.Expr()
}

// LoadModel reads and validates a model artifact from disk.
func LoadModel(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	m, err := DecodeModel(raw)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

// DecodeModel validates raw JSON against the artifact schema, decodes it,
// and runs the structural checks the schema cannot express.
func DecodeModel(raw []byte) (*Model, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidModel{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledModelSchema()
	if err != nil {
		return nil, &ErrInvalidModel{Err: fmt.Errorf("compile artifact schema: %w", err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidModel{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &ErrInvalidModel{Err: fmt.Errorf("decode: %w", err)}
	}

	if !semver.IsValid(m.FormatVersion) {
		return nil, &ErrFormatVersion{Found: m.FormatVersion}
	}
	if semver.Major(m.FormatVersion) != semver.Major(FormatVersion) {
		return nil, &ErrFormatVersion{Found: m.FormatVersion}
	}

	if err := m.Tree.Validate(); err != nil {
		return nil, &ErrInvalidModel{Err: fmt.Errorf("tree: %w", err)}
	}
	if m.Thresholds.Low >= m.Thresholds.High {
		return nil, &ErrInvalidModel{Err: fmt.Errorf("thresholds out of order: low %v, high %v", m.Thresholds.Low, m.Thresholds.High)}
	}

	return &m, nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledModelSchema compiles the artifact schema once and caches it.
func compiledModelSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(modelSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://gp-model.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
