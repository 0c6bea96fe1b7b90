package confusion

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/display"
	"github.com/G3mha/genetic-programming/internal/report"
	"github.com/G3mha/genetic-programming/internal/ui/layout"
	"github.com/G3mha/genetic-programming/internal/ui/nav"
	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

const (
	cellWidth  = 12
	rowGutter  = 12
	heatColor  = "#D6336C"
	colSpacing = " "
)

// ConfusionScreen renders the confusion matrix as a heat grid: rows are the
// actual species, columns the predicted ones, and each cell is shaded by
// its share of the largest count.
type ConfusionScreen struct {
	matrix *report.ConfusionMatrix
}

var _ nav.Screen = (*ConfusionScreen)(nil)
var _ nav.KeyHintProvider = (*ConfusionScreen)(nil)

// New creates a confusion matrix screen.
func New(matrix *report.ConfusionMatrix) *ConfusionScreen {
	return &ConfusionScreen{matrix: matrix}
}

func (c *ConfusionScreen) Init() tea.Cmd {
	return nil
}

func (c *ConfusionScreen) Title() string {
	return "Confusion Matrix"
}

// KeyHints returns the key binding hints for the footer.
func (c *ConfusionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ConfusionScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return c, nav.Back()
		}
	}
	return c, nil
}

func (c *ConfusionScreen) View(width, height int) string {
	m := c.matrix
	order := m.Species()
	maxCount := m.MaxCount()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("GP Predicted Species Confusion Matrix"))
	b.WriteString("\n\n")

	gridWidth := rowGutter + len(order)*(cellWidth+len(colSpacing))

	// Column axis title and labels.
	var lines []string
	lines = append(lines,
		strings.Repeat(" ", rowGutter)+lipgloss.PlaceHorizontal(
			gridWidth-rowGutter, lipgloss.Center,
			theme.AxisLabel.Render("Predicted Species")))

	header := strings.Repeat(" ", rowGutter)
	for _, sp := range order {
		header += theme.TableHeader.
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(sp.DisplayName()) + colSpacing
	}
	lines = append(lines, header, "")

	for _, actual := range order {
		pad := strings.Repeat(" ", rowGutter)
		mid := theme.AxisLabel.
			Width(rowGutter).
			Render(actual.DisplayName())

		var padCells, midCells string
		for _, predicted := range order {
			count := m.Count(actual, predicted)

			frac := 0.0
			if maxCount > 0 {
				frac = float64(count) / float64(maxCount)
			}
			bg := display.Fade(lipgloss.Color(heatColor), frac, theme.BgCard)

			fg := theme.Text
			if frac > 0.55 {
				fg = theme.BgDark
			}

			cell := lipgloss.NewStyle().
				Width(cellWidth).
				Align(lipgloss.Center).
				Background(bg)
			padCells += cell.Render("") + colSpacing
			midCells += cell.Foreground(fg).Render(strconv.Itoa(count)) + colSpacing
		}

		lines = append(lines, pad+padCells, mid+midCells, pad+padCells)
	}

	lines = append(lines, "",
		strings.Repeat(" ", rowGutter)+lipgloss.PlaceHorizontal(
			gridWidth-rowGutter, lipgloss.Center,
			theme.Hint.Render("rows: actual species")))

	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
