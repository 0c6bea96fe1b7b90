package eval

import "github.com/G3mha/genetic-programming/internal/iris"

// Predictor is the trained-model capability the tabulator consumes: given one
// test record it reports whether the model's own class decision matched ground
// truth, along with the raw continuous score. Implementations may keep mutable
// internal scratch state between calls and need not be safe for concurrent
// use; the tabulator never overlaps invocations.
type Predictor interface {
	Evaluate(rec iris.Record) (correct bool, score float64, err error)
}

// Result is one tabulated row: the original test record with the three
// derived fields appended. PredictedSpecies is always Classify(PredictedScore)
// under the tabulator's thresholds, a pure function of the score, never of
// Correct or of ground truth. Correct is the predictor's flag verbatim; the
// two can disagree when the predictor's internal cut points differ from the
// tabulator's, and the tabulator does not reconcile them.
type Result struct {
	iris.Record
	Correct          bool
	PredictedScore   float64
	PredictedSpecies iris.Species
}

// ResultTable is the ordered tabulation output, one Result per input record
// in input order. It is built once and read-only afterwards; concurrent
// readers need no synchronization.
type ResultTable []Result

// Labels returns the parallel (actual, predicted) label sequences the report
// renderer consumes.
func (rt ResultTable) Labels() (actual, predicted []iris.Species) {
	actual = make([]iris.Species, len(rt))
	predicted = make([]iris.Species, len(rt))
	for i, r := range rt {
		actual[i] = r.Species
		predicted[i] = r.PredictedSpecies
	}
	return actual, predicted
}

// NumCorrect counts rows the predictor reported as correct.
func (rt ResultTable) NumCorrect() int {
	n := 0
	for _, r := range rt {
		if r.Correct {
			n++
		}
	}
	return n
}

// Accuracy is the fraction of rows the predictor reported as correct.
// Zero for an empty table.
func (rt ResultTable) Accuracy() float64 {
	if len(rt) == 0 {
		return 0
	}
	return float64(rt.NumCorrect()) / float64(len(rt))
}

// Tabulator runs a predictor over a test set and builds the result table.
type Tabulator struct {
	thresholds Thresholds
}

// NewTabulator creates a tabulator that classifies scores with the given
// cut points.
func NewTabulator(t Thresholds) *Tabulator {
	return &Tabulator{thresholds: t}
}

// Thresholds returns the cut points this tabulator classifies with.
func (t *Tabulator) Thresholds() Thresholds {
	return t.thresholds
}

// Tabulate invokes the predictor exactly once per record, in input order, and
// returns one Result per record: every original field copied plus Correct,
// PredictedScore and PredictedSpecies. No reordering, no filtering, no
// deduplication. Invocations are strictly sequential: each Evaluate call
// completes before the next begins.
//
// If the predictor fails on any record, Tabulate aborts immediately with an
// *EvaluationError and returns no table at all. An empty input yields an
// empty table without invoking the predictor.
func (t *Tabulator) Tabulate(records []iris.Record, p Predictor) (ResultTable, error) {
	table := make(ResultTable, 0, len(records))
	for i, rec := range records {
		correct, score, err := p.Evaluate(rec)
		if err != nil {
			return nil, &EvaluationError{Index: i, Err: err}
		}
		table = append(table, Result{
			Record:           rec,
			Correct:          correct,
			PredictedScore:   score,
			PredictedSpecies: t.thresholds.Classify(score),
		})
	}
	return table, nil
}
