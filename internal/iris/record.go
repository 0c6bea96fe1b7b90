package iris

// Record is one row of the held-out test set: the four flower measurements in
// centimeters plus the ground-truth species label. Records are owned by the
// caller and never mutated once loaded.
type Record struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Species     Species
}

// Part selects which flower part a scatter plot projects onto.
type Part string

const (
	PartSepal Part = "sepal"
	PartPetal Part = "petal"
)

// AllParts returns the plottable parts in display order.
func AllParts() []Part {
	return []Part{PartSepal, PartPetal}
}

// DisplayName returns a human-readable label for the part.
func (p Part) DisplayName() string {
	switch p {
	case PartSepal:
		return "Sepal"
	case PartPetal:
		return "Petal"
	default:
		return string(p)
	}
}

// Measurements returns the (length, width) pair for the given part.
func (r Record) Measurements(p Part) (length, width float64) {
	if p == PartPetal {
		return r.PetalLength, r.PetalWidth
	}
	return r.SepalLength, r.SepalWidth
}
