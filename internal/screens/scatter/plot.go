package scatter

import (
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/iris"
)

// plotCell is one grid cell after binning. It remembers which predicted
// species to draw and whether any misclassified record landed in it: a
// wrong prediction always claims the cell, the way a large opaque marker
// covers a small faint one.
type plotCell struct {
	occupied  bool
	predicted iris.Species
	incorrect bool
}

// plotGrid is a binned scatter plot. Row 0 is the top of the plot, which
// holds the largest width values.
type plotGrid struct {
	cells []plotCell
	w, h  int
	xLo   float64
	xHi   float64
	yLo   float64
	yHi   float64
}

func (g *plotGrid) at(x, y int) plotCell {
	return g.cells[y*g.w+x]
}

// axisRange pads the data extent by 5% on each side so edge markers do not
// sit on the border. A degenerate extent gets a half-unit pad.
func axisRange(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	return lo - pad, hi + pad
}

// binIndex maps a value in [lo, hi] to a bin in [0, n). Values at or past
// the edges clamp to the end bins.
func binIndex(v, lo, hi float64, n int) int {
	if n <= 1 || hi <= lo {
		return 0
	}
	idx := int((v - lo) / (hi - lo) * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// buildGrid bins the table onto a w x h grid over the given flower part's
// length (x) and width (y).
func buildGrid(table eval.ResultTable, part iris.Part, w, h int) *plotGrid {
	g := &plotGrid{
		cells: make([]plotCell, w*h),
		w:     w,
		h:     h,
	}

	xs := make([]float64, 0, len(table))
	ys := make([]float64, 0, len(table))
	for _, res := range table {
		length, width := res.Measurements(part)
		xs = append(xs, length)
		ys = append(ys, width)
	}
	g.xLo, g.xHi = axisRange(xs)
	g.yLo, g.yHi = axisRange(ys)

	for _, res := range table {
		length, width := res.Measurements(part)
		x := binIndex(length, g.xLo, g.xHi, w)
		// Row 0 is the top, so large widths map to small row indices.
		y := h - 1 - binIndex(width, g.yLo, g.yHi, h)

		cell := &g.cells[y*w+x]
		if res.Correct && cell.occupied && cell.incorrect {
			continue
		}
		cell.occupied = true
		cell.predicted = res.PredictedSpecies
		if !res.Correct {
			cell.incorrect = true
		}
	}

	return g
}
