package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/ui/theme"
)

// Meter shows a labeled horizontal bar for a fraction in [0, 1]. The bar
// color grades the value: green from 0.9, amber from 0.7, red below.
type Meter struct {
	Label    string
	Fraction float64
	Width    int
}

// NewMeter creates a meter.
func NewMeter(label string, fraction float64, width int) Meter {
	return Meter{Label: label, Fraction: fraction, Width: width}
}

// View renders the meter.
func (m Meter) View() string {
	frac := m.Fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	var result string
	if m.Label != "" {
		result = theme.Body.Render(m.Label) + "  "
	}

	percent := fmt.Sprintf("  %.1f%%", frac*100)

	barWidth := m.Width - lipgloss.Width(result) - len(percent)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}

	fill := theme.Success
	switch {
	case frac < 0.7:
		fill = theme.Error
	case frac < 0.9:
		fill = theme.Accent
	}

	result += lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
	result += theme.Hint.Render(percent)

	return result
}
