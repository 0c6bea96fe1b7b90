package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/display"
	"github.com/G3mha/genetic-programming/internal/iris"
	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

// Legend explains the marker encoding: one swatch per species in its color
// on the first line, the correctness treatment on the second. Colors name
// the predicted class, not the actual one.
type Legend struct {
	Encoding display.Encoding
}

// NewLegend creates a legend for the given encoding.
func NewLegend(e display.Encoding) Legend {
	return Legend{Encoding: e}
}

// View renders the two legend lines.
func (l Legend) View() string {
	var species []string
	for _, sp := range iris.AllSpecies() {
		swatch := lipgloss.NewStyle().
			Foreground(l.Encoding.ColorOf(sp)).
			Render("■")
		species = append(species, swatch+" "+theme.Body.Render("Predicted: "+sp.DisplayName()))
	}

	correct := lipgloss.NewStyle().
		Foreground(display.Fade(theme.Text, l.Encoding.OpacityOf(true), theme.BgDark)).
		Render(l.Encoding.MarkOf(true) + " correct prediction")
	incorrect := theme.Body.
		Render(l.Encoding.MarkOf(false) + " wrong prediction")

	return strings.Join(species, "   ") + "\n" + correct + "   " + incorrect
}
