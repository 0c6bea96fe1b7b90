package iris

import "fmt"

// Species identifies one of the three Iris classes. The string values are the
// canonical labels used by the dataset, so a Species compares equal to the
// label column it was parsed from.
type Species string

const (
	SpeciesSetosa     Species = "Iris-setosa"
	SpeciesVersicolor Species = "Iris-versicolor"
	SpeciesVirginica  Species = "Iris-virginica"
)

// AllSpecies returns the three species in fixed report order. Confusion
// matrices, legends and report tables all index classes in this order.
func AllSpecies() []Species {
	return []Species{SpeciesSetosa, SpeciesVersicolor, SpeciesVirginica}
}

// DisplayName returns a short human-readable label for the species.
func (s Species) DisplayName() string {
	switch s {
	case SpeciesSetosa:
		return "Setosa"
	case SpeciesVersicolor:
		return "Versicolor"
	case SpeciesVirginica:
		return "Virginica"
	default:
		return string(s)
	}
}

// ParseSpecies converts a dataset label into a Species. Labels outside the
// closed three-value set are rejected.
func ParseSpecies(label string) (Species, error) {
	switch Species(label) {
	case SpeciesSetosa, SpeciesVersicolor, SpeciesVirginica:
		return Species(label), nil
	default:
		return "", fmt.Errorf("unknown species label %q", label)
	}
}
