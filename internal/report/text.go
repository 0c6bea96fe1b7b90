package report

import (
	"fmt"
	"strings"
	"time"
)

// RenderText formats the report in the classic classification-report layout:
// one row per class with precision, recall, f1-score and support, followed
// by the accuracy, macro average and weighted average rows.
func RenderText(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Model    %s  %s\n", r.Model.ID, r.Model.Expr)
	fmt.Fprintf(&b, "Run      %s  generated %s\n", r.RunID, r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Records  %d\n", r.Records)
	b.WriteString("\n")

	fmt.Fprintf(&b, "%16s %10s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	b.WriteString("\n")

	for _, sp := range r.Confusion.Species() {
		m := r.PerClass[sp]
		fmt.Fprintf(&b, "%16s %10.2f %9.2f %9.2f %9d\n", string(sp), m.Precision, m.Recall, m.F1, m.Support)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%16s %10s %9s %9.2f %9d\n", "accuracy", "", "", r.Accuracy, r.Records)
	fmt.Fprintf(&b, "%16s %10.2f %9.2f %9.2f %9d\n", "macro avg", r.MacroAvg.Precision, r.MacroAvg.Recall, r.MacroAvg.F1, r.MacroAvg.Support)
	fmt.Fprintf(&b, "%16s %10.2f %9.2f %9.2f %9d\n", "weighted avg", r.WeightedAvg.Precision, r.WeightedAvg.Recall, r.WeightedAvg.F1, r.WeightedAvg.Support)

	return b.String()
}

// RenderConfusionText formats the confusion matrix as a labeled grid, rows
// actual and columns predicted.
func RenderConfusionText(m *ConfusionMatrix) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-18s", "actual \\ predicted")
	for _, sp := range m.Species() {
		fmt.Fprintf(&b, "%12s", sp.DisplayName())
	}
	b.WriteString("\n")

	for _, actual := range m.Species() {
		fmt.Fprintf(&b, "%-18s", actual.DisplayName())
		for _, predicted := range m.Species() {
			fmt.Fprintf(&b, "%12d", m.Count(actual, predicted))
		}
		b.WriteString("\n")
	}

	return b.String()
}
