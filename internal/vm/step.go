package vm

import (
	"github.com/sl236/piet/internal/core"
	"github.com/sl236/piet/internal/palette"
)

// Step advances the machine by one step: one block-to-block move, one white
// slide, or the halt that ends the program. Returns false once halted.
func (m *Machine) Step() bool {
	if m.halted {
		return false
	}
	m.steps++

	// A white cursor only occurs when the program starts on white; regular
	// slides land on a colored codel before the step ends.
	if m.grid.IsWhite(m.cursor) {
		m.slide(m.cursor)
		return !m.halted
	}

	b := m.blocks.At(m.cursor)
	v := int64(b.Size())

	toggled := false
	for attempts := 0; attempts < 8; {
		e := b.Edge(m.dp, m.cc)
		n := e.Move(m.dp)

		if m.grid.IsBlack(n) {
			// Blocked: toggle CC first, rotate DP second, alternating.
			if !toggled {
				m.cc = m.cc.Toggle()
				toggled = true
			} else {
				m.dp = m.dp.Rotate(1)
				toggled = false
			}
			attempts++
			continue
		}

		if m.grid.IsWhite(n) {
			m.slide(n)
			return !m.halted
		}

		// Colored destination. The instruction comes from the transition
		// between the exited block and the entered codel, except that a
		// transition out of a block entered by sliding emits nothing.
		exitColor := m.grid.ColorAt(e)
		action := "noop (slide exit)"
		if m.lastColor != palette.White {
			op := Decode(exitColor, m.grid.ColorAt(n))
			m.exec(op, v)
			action = op.String()
		}
		m.lastColor = exitColor
		m.cursor = n
		m.trace(Event{Action: action, Value: v})
		return true
	}

	m.halt(TermBounce)
	return false
}

// slide moves the cursor through white codels in the DP direction, starting
// at the white codel start. Hitting black or the edge toggles the CC and
// rotates the DP clockwise together. Revisiting a (position, DP) pair means
// the slide can never exit, which terminates the program.
func (m *Machine) slide(start core.Position) {
	type visit struct {
		pos core.Position
		dp  core.Direction
	}
	seen := make(map[visit]bool)

	pos := start
	for {
		v := visit{pos: pos, dp: m.dp}
		if seen[v] {
			m.halt(TermSlideTrap)
			return
		}
		seen[v] = true

		n := pos.Move(m.dp)
		switch {
		case m.grid.IsWhite(n):
			pos = n
		case m.grid.IsBlack(n):
			m.cc = m.cc.Toggle()
			m.dp = m.dp.Rotate(1)
		default:
			// Colored: the slide exits onto it without an instruction.
			m.lastColor = palette.White
			m.cursor = n
			m.trace(Event{Action: "slide"})
			return
		}
	}
}

func (m *Machine) halt(reason Termination) {
	m.halted = true
	m.term = reason
	m.trace(Event{Action: "halt", Reason: reason})
}

func (m *Machine) trace(ev Event) {
	if m.tracer == nil {
		return
	}
	ev.Step = m.steps
	ev.Cursor = m.cursor
	ev.DP = m.dp
	ev.CC = m.cc
	ev.Depth = len(m.stack)
	m.tracer.Trace(ev)
}
