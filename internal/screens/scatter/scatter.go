package scatter

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/display"
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/iris"
	"github.com/G3mha/genetic-programming/internal/ui/components"
	"github.com/G3mha/genetic-programming/internal/ui/layout"
	"github.com/G3mha/genetic-programming/internal/ui/nav"
	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

// ScatterScreen plots the test records by flower dimensions. Cells are
// colored by the predicted species; wrong predictions draw large and
// opaque over the faint correct ones.
type ScatterScreen struct {
	table  eval.ResultTable
	enc    display.Encoding
	part   iris.Part
	legend components.Legend
}

var _ nav.Screen = (*ScatterScreen)(nil)
var _ nav.KeyHintProvider = (*ScatterScreen)(nil)

// New creates a scatter screen starting on the sepal projection.
func New(table eval.ResultTable, enc display.Encoding) *ScatterScreen {
	return &ScatterScreen{
		table:  table,
		enc:    enc,
		part:   iris.PartSepal,
		legend: components.NewLegend(enc),
	}
}

func (s *ScatterScreen) Init() tea.Cmd {
	return nil
}

func (s *ScatterScreen) Title() string {
	return fmt.Sprintf("Predictions by %s", s.part.DisplayName())
}

// KeyHints returns the key binding hints for the footer.
func (s *ScatterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Sepal/Petal"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ScatterScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			if s.part == iris.PartSepal {
				s.part = iris.PartPetal
			} else {
				s.part = iris.PartSepal
			}
		case "q":
			return s, nav.Back()
		}
	}
	return s, nil
}

func (s *ScatterScreen) View(width, height int) string {
	if len(s.table) == 0 {
		return theme.Hint.Render("  No records to plot.")
	}

	legendView := s.legend.View()
	legendHeight := lipgloss.Height(legendView)

	const gutter = 7 // y-axis labels plus the axis line

	plotW := width - gutter - 2
	plotH := height - legendHeight - 5 // title, axis, labels, caption, gap
	if plotW < 10 {
		plotW = 10
	}
	if plotH < 5 {
		plotH = 5
	}

	g := buildGrid(s.table, s.part, plotW, plotH)

	var b strings.Builder

	title := fmt.Sprintf("Species Predicted by GP, Plotted by %s Dimensions", s.part.DisplayName())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")

	for y := 0; y < g.h; y++ {
		switch y {
		case 0:
			b.WriteString(theme.AxisLabel.Render(fmt.Sprintf("%5.1f ", g.yHi)))
		case g.h - 1:
			b.WriteString(theme.AxisLabel.Render(fmt.Sprintf("%5.1f ", g.yLo)))
		default:
			b.WriteString(strings.Repeat(" ", gutter-1))
		}
		b.WriteString(theme.AxisLabel.Render("│"))

		for x := 0; x < g.w; x++ {
			cell := g.at(x, y)
			if !cell.occupied {
				b.WriteString(" ")
				continue
			}
			correct := !cell.incorrect
			color := s.enc.FadedColorOf(cell.predicted, correct, theme.BgDark)
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(s.enc.MarkOf(correct)))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", gutter-1))
	b.WriteString(theme.AxisLabel.Render("└" + strings.Repeat("─", g.w)))
	b.WriteString("\n")

	lowLabel := fmt.Sprintf("%.1f", g.xLo)
	highLabel := fmt.Sprintf("%.1f", g.xHi)
	axisGap := g.w - len(lowLabel) - len(highLabel)
	if axisGap < 1 {
		axisGap = 1
	}
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(theme.AxisLabel.Render(lowLabel + strings.Repeat(" ", axisGap) + highLabel))
	b.WriteString("\n")

	caption := fmt.Sprintf("x: %s Length (cm)   y: %s Width (cm)", s.part.DisplayName(), s.part.DisplayName())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(caption)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, legendView))

	return b.String()
}
