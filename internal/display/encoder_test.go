package display

import (
	"image/color"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/G3mha/genetic-programming/internal/iris"
)

func TestDefaultEncoding_Valid(t *testing.T) {
	if err := DefaultEncoding().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestEncoding_ColorsDistinct(t *testing.T) {
	e := DefaultEncoding()

	seen := make(map[[4]uint32]iris.Species)
	for _, sp := range iris.AllSpecies() {
		r, g, b, a := e.ColorOf(sp).RGBA()
		key := [4]uint32{r, g, b, a}
		if other, ok := seen[key]; ok {
			t.Errorf("%s and %s share a color", other, sp)
		}
		seen[key] = sp
	}
}

func TestEncoding_CorrectLessProminent(t *testing.T) {
	e := DefaultEncoding()

	if e.SizeOf(true) >= e.SizeOf(false) {
		t.Errorf("correct size %d not below incorrect size %d", e.SizeOf(true), e.SizeOf(false))
	}
	if e.OpacityOf(true) >= e.OpacityOf(false) {
		t.Errorf("correct opacity %g not below incorrect opacity %g", e.OpacityOf(true), e.OpacityOf(false))
	}
	if e.MarkOf(true) == e.MarkOf(false) {
		t.Error("correct and incorrect share a marker glyph")
	}
}

func TestEncoding_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Encoding)
	}{
		{"missing color", func(e *Encoding) { delete(e.SpeciesColors, iris.SpeciesVirginica) }},
		{"duplicate color", func(e *Encoding) {
			e.SpeciesColors[iris.SpeciesVirginica] = e.SpeciesColors[iris.SpeciesSetosa]
		}},
		{"sizes inverted", func(e *Encoding) { e.CorrectSize, e.IncorrectSize = e.IncorrectSize, e.CorrectSize }},
		{"sizes equal", func(e *Encoding) { e.CorrectSize = e.IncorrectSize }},
		{"opacities inverted", func(e *Encoding) {
			e.CorrectOpacity, e.IncorrectOpacity = e.IncorrectOpacity, e.CorrectOpacity
		}},
		{"opacities equal", func(e *Encoding) { e.CorrectOpacity = e.IncorrectOpacity }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := DefaultEncoding()
			tt.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestFade(t *testing.T) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black := color.RGBA{A: 0xFF}

	full := Fade(white, 1.0, black)
	r, g, b, _ := full.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("full opacity changed the color: %v", full)
	}

	gone := Fade(white, 0, black)
	r, g, b, _ = gone.RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("zero opacity did not collapse to background: got %04x %04x %04x", r, g, b)
	}

	half := Fade(white, 0.5, black)
	r, _, _, _ = half.RGBA()
	if r == 0 || r == 0xFFFF {
		t.Errorf("half opacity should land strictly between: got %04x", r)
	}
}

func TestFade_FaintCorrectMarkers(t *testing.T) {
	e := DefaultEncoding()
	bg := lipgloss.Color("#0F1117")

	faded := e.FadedColorOf(iris.SpeciesSetosa, true, bg)
	opaque := e.FadedColorOf(iris.SpeciesSetosa, false, bg)

	fr, fg, fb, _ := faded.RGBA()
	r, g, b, _ := opaque.RGBA()

	// The incorrect marker keeps the species color untouched.
	wr, wg, wb, _ := e.ColorOf(iris.SpeciesSetosa).RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("incorrect marker color changed: got %04x %04x %04x", r, g, b)
	}

	// The correct marker drifts toward the dark background.
	if fr+fg+fb >= r+g+b {
		t.Errorf("correct marker is not fainter: faded %04x %04x %04x vs %04x %04x %04x", fr, fg, fb, r, g, b)
	}
}
