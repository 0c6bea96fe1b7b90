package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/display"
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/ui/layout"
	"github.com/G3mha/genetic-programming/internal/ui/nav"
	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

// ResultsScreen lists every evaluated record: the four measurements, the
// actual species, the model's raw score, the thresholded class and the
// verdict. W narrows the list to the wrong predictions.
type ResultsScreen struct {
	table     eval.ResultTable
	enc       display.Encoding
	rows      []int // indexes into table, after filtering
	cursor    int
	scroll    int
	wrongOnly bool
}

var _ nav.Screen = (*ResultsScreen)(nil)
var _ nav.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen showing all records.
func New(table eval.ResultTable, enc display.Encoding) *ResultsScreen {
	s := &ResultsScreen{table: table, enc: enc}
	s.rebuildRows()
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	if s.wrongOnly {
		return "Results (wrong only)"
	}
	return "Results"
}

// KeyHints returns the key binding hints for the footer.
func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	filter := "Wrong only"
	if s.wrongOnly {
		filter = "All records"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "W", Description: filter},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.rows)-1 {
				s.cursor++
			}
		case "w":
			s.wrongOnly = !s.wrongOnly
			s.rebuildRows()
		case "q":
			return s, nav.Back()
		}
	}
	return s, nil
}

// rebuildRows recomputes the visible row set and resets the viewport.
func (s *ResultsScreen) rebuildRows() {
	s.rows = s.rows[:0]
	for i, res := range s.table {
		if s.wrongOnly && res.Correct {
			continue
		}
		s.rows = append(s.rows, i)
	}
	s.cursor = 0
	s.scroll = 0
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("  %3s  %6s %6s %6s %6s  %-10s %7s  %-10s",
		"#", "SepLen", "SepWid", "PetLen", "PetWid", "Actual", "Score", "Predicted")
	b.WriteString(theme.TableHeader.Render(header))
	b.WriteString("\n")

	if len(s.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  No wrong predictions in this run."))
		return b.String()
	}

	avail := height - 3 // header, spacing, count line
	if avail < 1 {
		avail = 1
	}
	s.adjustScroll(avail)

	for vis := s.scroll; vis < len(s.rows) && vis < s.scroll+avail; vis++ {
		idx := s.rows[vis]
		res := s.table[idx]

		verdict := theme.Correct.Render("✓")
		if !res.Correct {
			verdict = theme.Incorrect.Render("✗")
		}

		prefix := "  "
		if vis == s.cursor {
			prefix = theme.Selected.Render("▸ ")
		}

		row := fmt.Sprintf("%3d  %6.1f %6.1f %6.1f %6.1f  %-10s %7.2f  ",
			idx+1,
			res.SepalLength, res.SepalWidth, res.PetalLength, res.PetalWidth,
			res.Species.DisplayName(), res.PredictedScore)

		predicted := lipgloss.NewStyle().
			Foreground(s.enc.ColorOf(res.PredictedSpecies)).
			Render(fmt.Sprintf("%-10s", res.PredictedSpecies.DisplayName()))

		style := theme.TableRow
		if vis == s.cursor {
			style = style.Bold(true)
		}

		b.WriteString(prefix + style.Render(row) + predicted + " " + verdict)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	wrong := len(s.table) - s.table.NumCorrect()
	count := fmt.Sprintf("  %d records, %d wrong", len(s.table), wrong)
	if s.wrongOnly {
		count = fmt.Sprintf("  showing %d wrong of %d records", len(s.rows), len(s.table))
	}
	b.WriteString(theme.Hint.Render(count))

	return b.String()
}

// adjustScroll keeps the cursor inside the viewport.
func (s *ResultsScreen) adjustScroll(avail int) {
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	}
	if s.cursor >= s.scroll+avail {
		s.scroll = s.cursor - avail + 1
	}
}
