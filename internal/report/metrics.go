package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/iris"
)

// ClassMetrics holds precision, recall, F1 and support for one class, or an
// average row.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// ModelInfo names the artifact a report was produced from.
type ModelInfo struct {
	ID   string
	Expr string
}

// Report is the evaluation summary for one run: accuracy, per-class metrics
// and the confusion matrix, stamped with a run ID and generation time. All
// metrics derive from the (actual, predicted) label pairs, the same pairs
// the confusion matrix counts.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Model       ModelInfo
	Records     int
	Accuracy    float64
	PerClass    map[iris.Species]ClassMetrics
	MacroAvg    ClassMetrics
	WeightedAvg ClassMetrics
	Confusion   *ConfusionMatrix
}

// BuildReport computes the full evaluation summary for a result table.
func BuildReport(table eval.ResultTable, model ModelInfo) *Report {
	conf := BuildConfusion(table)

	r := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Model:       model,
		Records:     conf.Total(),
		PerClass:    make(map[iris.Species]ClassMetrics, 3),
		Confusion:   conf,
	}

	if r.Records > 0 {
		r.Accuracy = float64(conf.Diagonal()) / float64(r.Records)
	}

	for _, sp := range conf.Species() {
		r.PerClass[sp] = classMetrics(conf, sp)
	}
	r.MacroAvg = macroAverage(conf, r.PerClass)
	r.WeightedAvg = weightedAverage(conf, r.PerClass)

	return r
}

// classMetrics computes one class's row. Divisions with a zero denominator
// yield 0 rather than NaN.
func classMetrics(conf *ConfusionMatrix, sp iris.Species) ClassMetrics {
	tp := conf.Count(sp, sp)
	support := conf.RowTotal(sp)
	predicted := conf.ColTotal(sp)

	m := ClassMetrics{Support: support}
	if predicted > 0 {
		m.Precision = float64(tp) / float64(predicted)
	}
	if support > 0 {
		m.Recall = float64(tp) / float64(support)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// macroAverage is the unweighted mean over classes.
func macroAverage(conf *ConfusionMatrix, perClass map[iris.Species]ClassMetrics) ClassMetrics {
	avg := ClassMetrics{Support: conf.Total()}
	n := len(conf.Species())
	if n == 0 {
		return avg
	}
	for _, sp := range conf.Species() {
		m := perClass[sp]
		avg.Precision += m.Precision
		avg.Recall += m.Recall
		avg.F1 += m.F1
	}
	avg.Precision /= float64(n)
	avg.Recall /= float64(n)
	avg.F1 /= float64(n)
	return avg
}

// weightedAverage weights each class by its support.
func weightedAverage(conf *ConfusionMatrix, perClass map[iris.Species]ClassMetrics) ClassMetrics {
	avg := ClassMetrics{Support: conf.Total()}
	if conf.Total() == 0 {
		return avg
	}
	for _, sp := range conf.Species() {
		m := perClass[sp]
		w := float64(m.Support) / float64(conf.Total())
		avg.Precision += w * m.Precision
		avg.Recall += w * m.Recall
		avg.F1 += w * m.F1
	}
	return avg
}
