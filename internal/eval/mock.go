package eval

import (
	"errors"

	"github.com/G3mha/genetic-programming/internal/iris"
)

// MockEvaluation is a canned predictor outcome for the MockPredictor.
type MockEvaluation struct {
	Correct bool
	Score   float64
	Err     error
}

// MockPredictor is a deterministic Predictor for testing. It returns canned
// evaluations in FIFO order and records every record it was asked about.
type MockPredictor struct {
	evaluations []MockEvaluation
	Calls       []iris.Record
}

// NewMockPredictor creates a MockPredictor with the given canned evaluations.
func NewMockPredictor(evaluations ...MockEvaluation) *MockPredictor {
	return &MockPredictor{evaluations: evaluations}
}

// Evaluate returns the next canned evaluation, or an error if the queue is
// exhausted.
func (m *MockPredictor) Evaluate(rec iris.Record) (bool, float64, error) {
	m.Calls = append(m.Calls, rec)

	if len(m.evaluations) == 0 {
		return false, 0, errors.New("mock predictor: no canned evaluations left")
	}

	ev := m.evaluations[0]
	m.evaluations = m.evaluations[1:]

	if ev.Err != nil {
		return false, 0, ev.Err
	}
	return ev.Correct, ev.Score, nil
}

// CallCount returns the number of Evaluate calls made.
func (m *MockPredictor) CallCount() int {
	return len(m.Calls)
}
