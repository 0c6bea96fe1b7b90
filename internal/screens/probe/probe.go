package probe

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

const bandWidth = 54

// ProbeScreen classifies a hand-typed score against the active thresholds.
// It exists to answer "where would this score land" without hunting for a
// record that produces it.
type ProbeScreen struct {
	thresholds eval.Thresholds
	enc        display.Encoding
	input      components.ScoreInput
	score      float64
	species    iris.Species
	classified bool
	errMsg     string
}

var _ nav.Screen = (*ProbeScreen)(nil)
var _ nav.KeyHintProvider = (*ProbeScreen)(nil)

// New creates a probe screen for the given thresholds.
func New(th eval.Thresholds, enc display.Encoding) *ProbeScreen {
	return &ProbeScreen{
		thresholds: th,
		enc:        enc,
		input:      components.NewScoreInput("e.g. 4.2"),
	}
}

func (p *ProbeScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *ProbeScreen) Title() string {
	return "Score Probe"
}

// KeyHints returns the key binding hints for the footer.
func (p *ProbeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Classify"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProbeScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			p.classify()
			return p, nil
		case "q":
			return p, nav.Back()
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProbeScreen) classify() {
	score, err := p.input.Score()
	if err != nil {
		p.classified = false
		p.errMsg = "type a numeric score first"
		return
	}
	p.score = score
	p.species = p.thresholds.Classify(score)
	p.classified = true
	p.errMsg = ""
}

func (p *ProbeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Probe a Score")
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("Type a raw tree score and press Enter to see its class."))
	sections = append(sections, "")

	sections = append(sections, "  score: "+p.input.View())
	sections = append(sections, "")

	if p.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg))
	}

	if p.classified {
		name := lipgloss.NewStyle().
			Foreground(p.enc.ColorOf(p.species)).
			Bold(true).
			Render(p.species.DisplayName())
		sections = append(sections, fmt.Sprintf("%.3f classifies as %s", p.score, name))
		sections = append(sections, "")
		sections = append(sections, p.renderBand()...)
	} else if p.errMsg == "" {
		sections = append(sections, p.renderBand()...)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderBand draws the score axis: one colored segment per class, ticks at
// the two cut points, and a marker under the probed score.
func (p *ProbeScreen) renderBand() []string {
	th := p.thresholds
	span := th.High - th.Low
	if span <= 0 {
		span = 1
	}
	lo := th.Low - span
	hi := th.High + span

	colLow := bandColumn(th.Low, lo, hi, bandWidth)
	colHigh := bandColumn(th.High, lo, hi, bandWidth)

	var band strings.Builder
	for col := 0; col < bandWidth; col++ {
		switch {
		case col == colLow || col == colHigh:
			band.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("│"))
		case col < colLow:
			band.WriteString(segStyle(p.enc, iris.SpeciesSetosa).Render("━"))
		case col < colHigh:
			band.WriteString(segStyle(p.enc, iris.SpeciesVersicolor).Render("━"))
		default:
			band.WriteString(segStyle(p.enc, iris.SpeciesVirginica).Render("━"))
		}
	}

	lines := []string{}
	if p.classified {
		col := bandColumn(p.score, lo, hi, bandWidth)
		marker := strings.Repeat(" ", col) +
			lipgloss.NewStyle().Foreground(p.enc.ColorOf(p.species)).Bold(true).Render("▼")
		lines = append(lines, marker)
	}
	lines = append(lines, band.String())
	lines = append(lines, cutLabels(th, colLow, colHigh))
	lines = append(lines, segmentNames(p.enc, colLow, colHigh))
	return lines
}

// bandColumn maps a score to a column on a band of width w, clamped to the
// band's edges.
func bandColumn(x, lo, hi float64, w int) int {
	if w <= 1 || hi <= lo {
		return 0
	}
	frac := (x - lo) / (hi - lo)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(frac * float64(w-1))
}

// cutLabels places the two threshold values under their tick columns.
func cutLabels(th eval.Thresholds, colLow, colHigh int) string {
	row := make([]rune, bandWidth)
	for i := range row {
		row[i] = ' '
	}
	writeAt := func(col int, s string) {
		for i, r := range s {
			if col+i >= 0 && col+i < bandWidth {
				row[col+i] = r
			}
		}
	}
	low := fmt.Sprintf("%g", th.Low)
	high := fmt.Sprintf("%g", th.High)
	writeAt(colLow-len(low)/2, low)
	writeAt(colHigh-len(high)/2, high)
	return theme.Hint.Render(string(row))
}

// segmentNames centers each class name inside its band segment.
func segmentNames(enc display.Encoding, colLow, colHigh int) string {
	row := []string{}
	seg := func(sp iris.Species, width int) string {
		if width <= 0 {
			return ""
		}
		name := sp.DisplayName()
		if len(name) > width {
			name = name[:width]
		}
		pad := width - len(name)
		left := pad / 2
		return strings.Repeat(" ", left) +
			segStyle(enc, sp).Render(name) +
			strings.Repeat(" ", pad-left)
	}
	row = append(row, seg(iris.SpeciesSetosa, colLow))
	row = append(row, " ")
	row = append(row, seg(iris.SpeciesVersicolor, colHigh-colLow-1))
	row = append(row, " ")
	row = append(row, seg(iris.SpeciesVirginica, bandWidth-colHigh-1))
	return strings.Join(row, "")
}

func segStyle(enc display.Encoding, sp iris.Species) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(enc.ColorOf(sp))
}
