// Package grid turns a decoded raster into the codel grid a program
// executes on, and answers the passability questions traversal asks of it.
package grid

import (
	"fmt"
	"image"

	"github.com/sl236/piet/internal/core"
	"github.com/sl236/piet/internal/palette"
)

// Grid is the codel grid of one program. It is built once from an image and
// read-only thereafter.
type Grid struct {
	cols   int
	rows   int
	cells  []palette.Color
	policy palette.Policy
}

// Build samples every k-th pixel of img in both axes and classifies it,
// producing a ⌊w/k⌋ × ⌊h/k⌋ grid. Remainder pixels beyond the last full
// codel are discarded. Each k×k block is sampled at its top-left pixel and
// is not checked for uniformity; a mismatched codel size manifests as
// program-logic bugs, not as an error here. Alpha is ignored.
func Build(img image.Image, codelSize int, policy palette.Policy) (*Grid, error) {
	if codelSize < 1 {
		return nil, fmt.Errorf("grid: codel size must be at least 1, got %d", codelSize)
	}
	bounds := img.Bounds()
	cols := bounds.Dx() / codelSize
	rows := bounds.Dy() / codelSize
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("grid: image %dx%d too small for codel size %d",
			bounds.Dx(), bounds.Dy(), codelSize)
	}

	g := &Grid{
		cols:   cols,
		rows:   rows,
		cells:  make([]palette.Color, cols*rows),
		policy: policy,
	}
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			r, gr, b, _ := img.At(bounds.Min.X+i*codelSize, bounds.Min.Y+j*codelSize).RGBA()
			// RGBA yields 16-bit channels; the palette is 8-bit.
			g.cells[j*cols+i] = palette.Classify(uint8(r>>8), uint8(gr>>8), uint8(b>>8))
		}
	}
	return g, nil
}

// FromColors builds a grid directly from classified cells, row by row.
// All rows must have the same length. Used by tests and the debugger.
func FromColors(rows [][]palette.Color, policy palette.Policy) *Grid {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Grid{policy: policy}
	}
	g := &Grid{
		cols:   len(rows[0]),
		rows:   len(rows),
		cells:  make([]palette.Color, 0, len(rows)*len(rows[0])),
		policy: policy,
	}
	for _, row := range rows {
		if len(row) != g.cols {
			panic("grid: ragged rows")
		}
		g.cells = append(g.cells, row...)
	}
	return g
}

// Cols returns the grid width in codels.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height in codels.
func (g *Grid) Rows() int {
	return g.rows
}

// Policy returns the non-standard color policy the grid was built with.
func (g *Grid) Policy() palette.Policy {
	return g.policy
}

// In reports whether p is inside the grid.
func (g *Grid) In(p core.Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// ColorAt returns the classified color at p. p must be in bounds.
func (g *Grid) ColorAt(p core.Position) palette.Color {
	return g.cells[p.Y*g.cols+p.X]
}

// IsBlack reports whether p acts as a wall: out of bounds, black, or
// non-standard under the black policy.
func (g *Grid) IsBlack(p core.Position) bool {
	if !g.In(p) {
		return true
	}
	switch g.ColorAt(p) {
	case palette.Black:
		return true
	case palette.NonStandard:
		return g.policy == palette.NonStandardAsBlack
	}
	return false
}

// IsWhite reports whether p slides: white, or non-standard under the white
// policy. Out-of-bounds positions are not white.
func (g *Grid) IsWhite(p core.Position) bool {
	if !g.In(p) {
		return false
	}
	switch g.ColorAt(p) {
	case palette.White:
		return true
	case palette.NonStandard:
		return g.policy == palette.NonStandardAsWhite
	}
	return false
}

// IsValid reports whether the cursor may occupy p.
func (g *Grid) IsValid(p core.Position) bool {
	return g.In(p) && !g.IsBlack(p)
}

// Histogram counts the codels of each color. Indexed by palette.Color.
func (g *Grid) Histogram() [palette.NonStandard + 1]int {
	var h [palette.NonStandard + 1]int
	for _, c := range g.cells {
		h[c]++
	}
	return h
}
