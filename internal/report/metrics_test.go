package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G3mha/genetic-programming/internal/iris"
)

func TestBuildReport(t *testing.T) {
	table := tableFor(samplePairs())
	r := BuildReport(table, ModelInfo{ID: "m-1", Expr: "(petal_length + petal_width)"})

	assert.Equal(t, 12, r.Records)
	assert.InDelta(t, 11.0/12.0, r.Accuracy, 1e-9)
	assert.Equal(t, "m-1", r.Model.ID)

	setosa := r.PerClass[iris.SpeciesSetosa]
	assert.InDelta(t, 1.0, setosa.Precision, 1e-9)
	assert.InDelta(t, 1.0, setosa.Recall, 1e-9)
	assert.InDelta(t, 1.0, setosa.F1, 1e-9)
	assert.Equal(t, 4, setosa.Support)

	// One versicolor was predicted virginica: recall drops, precision holds.
	versicolor := r.PerClass[iris.SpeciesVersicolor]
	assert.InDelta(t, 1.0, versicolor.Precision, 1e-9)
	assert.InDelta(t, 0.75, versicolor.Recall, 1e-9)
	assert.InDelta(t, 2*1.0*0.75/1.75, versicolor.F1, 1e-9)
	assert.Equal(t, 4, versicolor.Support)

	// Virginica absorbed the stray prediction: precision drops, recall holds.
	virginica := r.PerClass[iris.SpeciesVirginica]
	assert.InDelta(t, 0.8, virginica.Precision, 1e-9)
	assert.InDelta(t, 1.0, virginica.Recall, 1e-9)
	assert.InDelta(t, 2*0.8*1.0/1.8, virginica.F1, 1e-9)
	assert.Equal(t, 4, virginica.Support)

	assert.InDelta(t, (1.0+1.0+0.8)/3, r.MacroAvg.Precision, 1e-9)
	assert.InDelta(t, (1.0+0.75+1.0)/3, r.MacroAvg.Recall, 1e-9)
	assert.Equal(t, 12, r.MacroAvg.Support)

	// Supports are equal here, so the weighted averages match the macro ones.
	assert.InDelta(t, r.MacroAvg.Precision, r.WeightedAvg.Precision, 1e-9)
	assert.InDelta(t, r.MacroAvg.Recall, r.WeightedAvg.Recall, 1e-9)
	assert.InDelta(t, r.MacroAvg.F1, r.WeightedAvg.F1, 1e-9)
	assert.Equal(t, 12, r.WeightedAvg.Support)
}

func TestBuildReport_Stamp(t *testing.T) {
	before := time.Now().UTC()
	r := BuildReport(tableFor(samplePairs()), ModelInfo{ID: "m-1"})
	after := time.Now().UTC()

	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err, "RunID %q is not a UUID", r.RunID)

	assert.Equal(t, time.UTC, r.GeneratedAt.Location())
	assert.False(t, r.GeneratedAt.Before(before), "GeneratedAt %v precedes the run", r.GeneratedAt)
	assert.False(t, r.GeneratedAt.After(after), "GeneratedAt %v follows the run", r.GeneratedAt)

	// Two runs over the same table are distinct runs.
	other := BuildReport(tableFor(samplePairs()), ModelInfo{ID: "m-1"})
	assert.NotEqual(t, r.RunID, other.RunID)
}

func TestBuildReport_Empty(t *testing.T) {
	r := BuildReport(nil, ModelInfo{})

	assert.Equal(t, 0, r.Records)
	assert.Equal(t, 0.0, r.Accuracy)
	for _, sp := range iris.AllSpecies() {
		m := r.PerClass[sp]
		assert.Equal(t, 0.0, m.Precision, "%s precision", sp)
		assert.Equal(t, 0.0, m.Recall, "%s recall", sp)
		assert.Equal(t, 0.0, m.F1, "%s f1", sp)
		assert.Equal(t, 0, m.Support, "%s support", sp)
	}
	assert.Equal(t, 0.0, r.MacroAvg.F1)
	assert.Equal(t, 0.0, r.WeightedAvg.F1)
}

// A perfectly separable table gives all ones.
func TestBuildReport_Perfect(t *testing.T) {
	pairs := [][2]iris.Species{
		{iris.SpeciesSetosa, iris.SpeciesSetosa},
		{iris.SpeciesVersicolor, iris.SpeciesVersicolor},
		{iris.SpeciesVirginica, iris.SpeciesVirginica},
	}
	r := BuildReport(tableFor(pairs), ModelInfo{})

	assert.InDelta(t, 1.0, r.Accuracy, 1e-9)
	for _, sp := range iris.AllSpecies() {
		assert.InDelta(t, 1.0, r.PerClass[sp].F1, 1e-9, "%s f1", sp)
	}
	assert.InDelta(t, 1.0, r.MacroAvg.F1, 1e-9)
	assert.InDelta(t, 1.0, r.WeightedAvg.F1, 1e-9)
}
