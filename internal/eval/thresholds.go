package eval

import "github.com/G3mha/genetic-programming/internal/iris"

// Thresholds holds the two ascending cut points that partition the model's
// continuous output into the three species. Low must be less than High.
// Thresholds are passed explicitly wherever classification happens; nothing
// in this package keeps global threshold state.
type Thresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DefaultThresholds returns the cut points for a model whose output targets
// the class indices 0, 1 and 2.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.5, High: 1.5}
}

// Classify maps a continuous score to a species. Total and deterministic over
// all float64 values. Each interval is closed on the left: a score exactly
// equal to a cut point belongs to the class above it, never below.
func (t Thresholds) Classify(score float64) iris.Species {
	switch {
	case score < t.Low:
		return iris.SpeciesSetosa
	case score < t.High:
		return iris.SpeciesVersicolor
	default:
		return iris.SpeciesVirginica
	}
}
