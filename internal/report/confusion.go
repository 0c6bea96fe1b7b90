package report

import (
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/iris"
)

// ConfusionMatrix counts results by (actual, predicted) species pair. Rows
// are the ground truth, columns the thresholded prediction, both in the
// fixed AllSpecies order. The three axes are always present even when a
// species has no records.
type ConfusionMatrix struct {
	order  []iris.Species
	counts map[iris.Species]map[iris.Species]int
	total  int
}

// BuildConfusion tabulates the (actual, predicted) pairs of a result table.
func BuildConfusion(table eval.ResultTable) *ConfusionMatrix {
	m := &ConfusionMatrix{
		order:  iris.AllSpecies(),
		counts: make(map[iris.Species]map[iris.Species]int, 3),
	}
	for _, sp := range m.order {
		m.counts[sp] = make(map[iris.Species]int, 3)
	}
	for _, res := range table {
		m.counts[res.Species][res.PredictedSpecies]++
		m.total++
	}
	return m
}

// Species returns the class axes in report order.
func (m *ConfusionMatrix) Species() []iris.Species { return m.order }

// Count returns the number of records with the given actual species that
// were predicted as the given species.
func (m *ConfusionMatrix) Count(actual, predicted iris.Species) int {
	return m.counts[actual][predicted]
}

// RowTotal returns the number of records whose actual species is the given
// one: the class support.
func (m *ConfusionMatrix) RowTotal(actual iris.Species) int {
	n := 0
	for _, c := range m.counts[actual] {
		n += c
	}
	return n
}

// ColTotal returns the number of records predicted as the given species.
func (m *ConfusionMatrix) ColTotal(predicted iris.Species) int {
	n := 0
	for _, sp := range m.order {
		n += m.counts[sp][predicted]
	}
	return n
}

// Total returns the number of records counted.
func (m *ConfusionMatrix) Total() int { return m.total }

// Diagonal returns the number of records whose prediction matches the
// ground truth.
func (m *ConfusionMatrix) Diagonal() int {
	n := 0
	for _, sp := range m.order {
		n += m.counts[sp][sp]
	}
	return n
}

// MaxCount returns the largest cell value. Heat shading scales against it.
func (m *ConfusionMatrix) MaxCount() int {
	maxC := 0
	for _, row := range m.counts {
		for _, c := range row {
			if c > maxC {
				maxC = c
			}
		}
	}
	return maxC
}
