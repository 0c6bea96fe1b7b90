package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/display"
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/gp"
	"github.com/G3mha/genetic-programming/internal/report"
	"github.com/G3mha/genetic-programming/internal/screens/confusion"
	"github.com/G3mha/genetic-programming/internal/screens/metrics"
	"github.com/G3mha/genetic-programming/internal/screens/probe"
	"github.com/G3mha/genetic-programming/internal/screens/results"
	"github.com/G3mha/genetic-programming/internal/screens/scatter"
	"github.com/G3mha/genetic-programming/internal/ui/components"
	"github.com/G3mha/genetic-programming/internal/ui/nav"
	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

// Options carries the evaluated run the home screen fans out from.
type Options struct {
	Table       eval.ResultTable
	Report      *report.Report
	Encoding    display.Encoding
	Thresholds  eval.Thresholds
	Model       *gp.Model
	DatasetPath string
}

// HomeScreen is the landing screen: a summary card for the loaded model and
// a menu into the individual views.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ nav.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SCATTER PLOTS", Action: func() tea.Cmd {
			return nav.To(scatter.New(opts.Table, opts.Encoding))
		}},
		{Label: "CONFUSION MATRIX", Action: func() tea.Cmd {
			return nav.To(confusion.New(opts.Report.Confusion))
		}},
		{Label: "CLASSIFICATION REPORT", Action: func() tea.Cmd {
			return nav.To(metrics.New(opts.Report))
		}},
		{Label: "RESULTS TABLE", Action: func() tea.Cmd {
			return nav.To(results.New(opts.Table, opts.Encoding))
		}},
		{Label: "SCORE PROBE", Action: func() tea.Cmd {
			return nav.To(probe.New(opts.Thresholds, opts.Encoding))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		opts: opts,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("Iris GP Evaluation")
	subtitle := theme.Subtitle.Render("genetic-programming classifier, three species, two cuts")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderModelCard())

	meter := components.NewMeter("Accuracy", h.opts.Report.Accuracy, min(width-8, 48))
	sections = append(sections, meter.View())

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderModelCard summarizes the loaded artifact and dataset.
func (h *HomeScreen) renderModelCard() string {
	m := h.opts.Model
	th := h.opts.Thresholds

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	formula := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	lines := []string{
		label.Render("model    ") + value.Render(fmt.Sprintf("%.8s  trained %s", m.ID, m.TrainedAt.Format("2006-01-02"))),
		label.Render("formula  ") + formula.Render(m.Expr()),
		label.Render("tree     ") + value.Render(fmt.Sprintf("%d nodes, depth %d", m.Tree.NodeCount(), m.Tree.Depth())),
		label.Render("fitness  ") + value.Render(fmt.Sprintf("%.3f over %d generations", m.Fitness, m.Generations)),
		label.Render("cuts     ") + value.Render(fmt.Sprintf("setosa < %g ≤ versicolor < %g ≤ virginica", th.Low, th.High)),
		label.Render("data     ") + value.Render(fmt.Sprintf("%s, %d records", h.opts.DatasetPath, len(h.opts.Table))),
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
