// Package tui provides the Bubble Tea integration for the interpreter:
// the interactive step debugger and the codel grid renderer it shares with
// the view command.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sl236/piet/internal/core"
	"github.com/sl236/piet/internal/grid"
	"github.com/sl236/piet/internal/palette"
)

// cellWidth is the number of terminal columns one codel occupies; two makes
// codels roughly square in most fonts.
const cellWidth = 2

// nonStandardStyle marks unrecognized colors so they stand out from the palette.
var nonStandardStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("240")).
	Foreground(lipgloss.Color("255"))

var cursorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Bold(true)

// colorStyles maps each palette color to a lipgloss background style.
var colorStyles = func() map[palette.Color]lipgloss.Style {
	styles := make(map[palette.Color]lipgloss.Style, int(palette.NonStandard)+1)
	for c := palette.LightRed; c <= palette.Black; c++ {
		hex := fmt.Sprintf("#%06X", c.RGB())
		styles[c] = lipgloss.NewStyle().Background(lipgloss.Color(hex))
	}
	styles[palette.NonStandard] = nonStandardStyle
	return styles
}()

// RenderGrid draws the codel grid as colored terminal cells. When cursor is
// non-nil, that codel is marked. Adjacent same-color codels share one
// styled run to keep the escape-sequence overhead down.
func RenderGrid(g *grid.Grid, cursor *core.Position) string {
	var sb strings.Builder
	sb.Grow(g.Cols() * g.Rows() * cellWidth * 2)

	for y := 0; y < g.Rows(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < g.Cols() {
			start := g.ColorAt(core.Position{X: x, Y: y})
			style := colorStyles[start]

			var run strings.Builder
			for x < g.Cols() {
				p := core.Position{X: x, Y: y}
				if g.ColorAt(p) != start {
					break
				}
				if cursor != nil && p == *cursor {
					// Flush the run so the cursor cell gets its own style.
					if run.Len() > 0 {
						sb.WriteString(style.Render(run.String()))
						run.Reset()
					}
					sb.WriteString(cursorStyle.Inherit(style).Render("<>"))
					x++
					continue
				}
				if start == palette.NonStandard {
					run.WriteString("??")
				} else {
					run.WriteString(strings.Repeat(" ", cellWidth))
				}
				x++
			}
			if run.Len() > 0 {
				sb.WriteString(style.Render(run.String()))
			}
		}
	}
	return sb.String()
}
