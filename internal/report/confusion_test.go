package report

import (
	"testing"

	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/iris"
)

// tableFor builds a result table from (actual, predicted) pairs. Only the
// label columns matter to this package.
func tableFor(pairs [][2]iris.Species) eval.ResultTable {
	var table eval.ResultTable
	for _, p := range pairs {
		table = append(table, eval.Result{
			Record:           iris.Record{Species: p[0]},
			Correct:          p[0] == p[1],
			PredictedSpecies: p[1],
		})
	}
	return table
}

func samplePairs() [][2]iris.Species {
	return [][2]iris.Species{
		{iris.SpeciesSetosa, iris.SpeciesSetosa},
		{iris.SpeciesSetosa, iris.SpeciesSetosa},
		{iris.SpeciesSetosa, iris.SpeciesSetosa},
		{iris.SpeciesSetosa, iris.SpeciesSetosa},
		{iris.SpeciesVersicolor, iris.SpeciesVersicolor},
		{iris.SpeciesVersicolor, iris.SpeciesVersicolor},
		{iris.SpeciesVersicolor, iris.SpeciesVersicolor},
		{iris.SpeciesVersicolor, iris.SpeciesVirginica},
		{iris.SpeciesVirginica, iris.SpeciesVirginica},
		{iris.SpeciesVirginica, iris.SpeciesVirginica},
		{iris.SpeciesVirginica, iris.SpeciesVirginica},
		{iris.SpeciesVirginica, iris.SpeciesVirginica},
	}
}

func TestBuildConfusion(t *testing.T) {
	m := BuildConfusion(tableFor(samplePairs()))

	wantCounts := map[iris.Species]map[iris.Species]int{
		iris.SpeciesSetosa:     {iris.SpeciesSetosa: 4, iris.SpeciesVersicolor: 0, iris.SpeciesVirginica: 0},
		iris.SpeciesVersicolor: {iris.SpeciesSetosa: 0, iris.SpeciesVersicolor: 3, iris.SpeciesVirginica: 1},
		iris.SpeciesVirginica:  {iris.SpeciesSetosa: 0, iris.SpeciesVersicolor: 0, iris.SpeciesVirginica: 4},
	}
	for actual, row := range wantCounts {
		for predicted, want := range row {
			if got := m.Count(actual, predicted); got != want {
				t.Errorf("Count(%s, %s) = %d, want %d", actual, predicted, got, want)
			}
		}
	}

	if got := m.Total(); got != 12 {
		t.Errorf("Total() = %d, want 12", got)
	}
	if got := m.Diagonal(); got != 11 {
		t.Errorf("Diagonal() = %d, want 11", got)
	}
	if got := m.MaxCount(); got != 4 {
		t.Errorf("MaxCount() = %d, want 4", got)
	}

	if got := m.RowTotal(iris.SpeciesVersicolor); got != 4 {
		t.Errorf("RowTotal(versicolor) = %d, want 4", got)
	}
	if got := m.ColTotal(iris.SpeciesVirginica); got != 5 {
		t.Errorf("ColTotal(virginica) = %d, want 5", got)
	}
	if got := m.ColTotal(iris.SpeciesVersicolor); got != 3 {
		t.Errorf("ColTotal(versicolor) = %d, want 3", got)
	}
}

func TestBuildConfusion_AxesOrder(t *testing.T) {
	m := BuildConfusion(nil)

	want := iris.AllSpecies()
	got := m.Species()
	if len(got) != len(want) {
		t.Fatalf("Species() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Species()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBuildConfusion_Empty(t *testing.T) {
	m := BuildConfusion(nil)

	if got := m.Total(); got != 0 {
		t.Errorf("Total() = %d, want 0", got)
	}
	if got := m.MaxCount(); got != 0 {
		t.Errorf("MaxCount() = %d, want 0", got)
	}
	for _, actual := range m.Species() {
		for _, predicted := range m.Species() {
			if got := m.Count(actual, predicted); got != 0 {
				t.Errorf("Count(%s, %s) = %d, want 0", actual, predicted, got)
			}
		}
	}
}

// A species absent from the data still has its row and column.
func TestBuildConfusion_MissingClass(t *testing.T) {
	m := BuildConfusion(tableFor([][2]iris.Species{
		{iris.SpeciesSetosa, iris.SpeciesSetosa},
		{iris.SpeciesVersicolor, iris.SpeciesSetosa},
	}))

	if got := m.RowTotal(iris.SpeciesVirginica); got != 0 {
		t.Errorf("RowTotal(virginica) = %d, want 0", got)
	}
	if got := m.ColTotal(iris.SpeciesSetosa); got != 2 {
		t.Errorf("ColTotal(setosa) = %d, want 2", got)
	}
	if got := len(m.Species()); got != 3 {
		t.Errorf("Species() has %d entries, want 3", got)
	}
}
