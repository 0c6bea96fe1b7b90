package display

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/G3mha/genetic-programming/internal/iris"
)

// Encoding fixes how results are drawn: every species gets its own color,
// and correctness picks the marker's size and opacity. Correct markers are
// small and faint, incorrect ones large and opaque, so the eye lands on the
// mistakes first.
type Encoding struct {
	SpeciesColors map[iris.Species]color.Color

	CorrectSize   int
	IncorrectSize int

	CorrectOpacity   float64
	IncorrectOpacity float64
}

// DefaultEncoding returns the standard palette: the classic categorical
// blue/orange/green for the three species, with correct markers at a third
// of full opacity and half the incorrect size.
func DefaultEncoding() Encoding {
	return Encoding{
		SpeciesColors: map[iris.Species]color.Color{
			iris.SpeciesSetosa:     lipgloss.Color("#1F77B4"),
			iris.SpeciesVersicolor: lipgloss.Color("#FF7F0E"),
			iris.SpeciesVirginica:  lipgloss.Color("#2CA02C"),
		},
		CorrectSize:      30,
		IncorrectSize:    60,
		CorrectOpacity:   0.3,
		IncorrectOpacity: 1.0,
	}
}

// Validate checks the encoding's contract: every species has a color, no
// two species share one, and correct markers are strictly less prominent
// than incorrect ones in both size and opacity.
func (e Encoding) Validate() error {
	seen := make(map[[4]uint32]iris.Species, len(e.SpeciesColors))
	for _, sp := range iris.AllSpecies() {
		c, ok := e.SpeciesColors[sp]
		if !ok || c == nil {
			return fmt.Errorf("no color for %s", sp)
		}
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("%s and %s share a color", other, sp)
		}
		seen[key] = sp
	}
	if e.CorrectSize >= e.IncorrectSize {
		return fmt.Errorf("correct size %d must be below incorrect size %d", e.CorrectSize, e.IncorrectSize)
	}
	if e.CorrectOpacity >= e.IncorrectOpacity {
		return fmt.Errorf("correct opacity %g must be below incorrect opacity %g", e.CorrectOpacity, e.IncorrectOpacity)
	}
	return nil
}

// ColorOf returns the species' color.
func (e Encoding) ColorOf(sp iris.Species) color.Color {
	if c, ok := e.SpeciesColors[sp]; ok {
		return c
	}
	return lipgloss.Color("#FFFFFF")
}

// SizeOf returns the marker size for the given correctness.
func (e Encoding) SizeOf(correct bool) int {
	if correct {
		return e.CorrectSize
	}
	return e.IncorrectSize
}

// OpacityOf returns the marker opacity for the given correctness.
func (e Encoding) OpacityOf(correct bool) float64 {
	if correct {
		return e.CorrectOpacity
	}
	return e.IncorrectOpacity
}

// MarkOf returns the glyph a cell-grid plot draws for the given
// correctness: a small dot for correct, a heavy dot for incorrect.
func (e Encoding) MarkOf(correct bool) string {
	if correct {
		return "·"
	}
	return "●"
}

// FadedColorOf returns the species color with the correctness opacity
// already composited against the background.
func (e Encoding) FadedColorOf(sp iris.Species, correct bool, bg color.Color) color.Color {
	return Fade(e.ColorOf(sp), e.OpacityOf(correct), bg)
}

// Fade simulates opacity on terminals that have none: the color is blended
// toward the background by 1-opacity.
func Fade(c color.Color, opacity float64, bg color.Color) color.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	fg, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	back, ok := colorful.MakeColor(bg)
	if !ok {
		return c
	}
	return back.BlendRgb(fg, opacity)
}
