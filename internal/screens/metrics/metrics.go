package metrics

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/report"
	"github.com/G3mha/genetic-programming/internal/ui/components"
	"github.com/G3mha/genetic-programming/internal/ui/layout"
	"github.com/G3mha/genetic-programming/internal/ui/nav"
	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

// MetricsScreen shows the classification report: accuracy, then precision,
// recall, F1 and support per class with the macro and weighted averages.
type MetricsScreen struct {
	rep *report.Report
}

var _ nav.Screen = (*MetricsScreen)(nil)
var _ nav.KeyHintProvider = (*MetricsScreen)(nil)

// New creates a metrics screen.
func New(rep *report.Report) *MetricsScreen {
	return &MetricsScreen{rep: rep}
}

func (m *MetricsScreen) Init() tea.Cmd {
	return nil
}

func (m *MetricsScreen) Title() string {
	return "Classification Report"
}

// KeyHints returns the key binding hints for the footer.
func (m *MetricsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MetricsScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return m, nav.Back()
		}
	}
	return m, nil
}

func (m *MetricsScreen) View(width, height int) string {
	r := m.rep

	var b strings.Builder

	meter := components.NewMeter("Accuracy", r.Accuracy, min(width-8, 56))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, meter.View()))
	b.WriteString("\n\n")

	var rows []string
	rows = append(rows, theme.TableHeader.Render(
		fmt.Sprintf("%-16s %10s %9s %9s %9s", "", "precision", "recall", "f1-score", "support")))
	rows = append(rows, "")

	for _, sp := range r.Confusion.Species() {
		cm := r.PerClass[sp]
		row := fmt.Sprintf("%-16s %10.2f %9.2f %9.2f %9d", string(sp), cm.Precision, cm.Recall, cm.F1, cm.Support)
		rows = append(rows, theme.TableRow.Render(row))
	}

	rows = append(rows, "")
	rows = append(rows, theme.TableRow.Render(fmt.Sprintf("%-16s %10s %9s %9.2f %9d",
		"accuracy", "", "", r.Accuracy, r.Records)))
	rows = append(rows, theme.TableRow.Render(fmt.Sprintf("%-16s %10.2f %9.2f %9.2f %9d",
		"macro avg", r.MacroAvg.Precision, r.MacroAvg.Recall, r.MacroAvg.F1, r.MacroAvg.Support)))
	rows = append(rows, theme.TableRow.Render(fmt.Sprintf("%-16s %10.2f %9.2f %9.2f %9d",
		"weighted avg", r.WeightedAvg.Precision, r.WeightedAvg.Recall, r.WeightedAvg.F1, r.WeightedAvg.Support)))

	for _, row := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	stamp := fmt.Sprintf("run %s   %s", r.RunID, r.GeneratedAt.Format(time.RFC3339))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(stamp)))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
