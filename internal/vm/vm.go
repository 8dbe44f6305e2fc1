// Package vm executes a program grid: it advances the cursor from color
// block to color block, decodes instructions from the color transitions,
// and runs them against the operand stack.
package vm

import (
	"fmt"
	"io"

	"github.com/sl236/piet/internal/blocks"
	"github.com/sl236/piet/internal/core"
	"github.com/sl236/piet/internal/grid"
	"github.com/sl236/piet/internal/palette"
)

// Input supplies program input one rune at a time. bufio.Reader satisfies
// it; interactive runs use the raw-mode terminal reader.
type Input interface {
	ReadRune() (r rune, size int, err error)
	UnreadRune() error
}

// Tracer receives one event per completed step. Implementations must not
// write to the program's output stream.
type Tracer interface {
	Trace(ev Event)
}

// Event describes one completed interpreter step.
type Event struct {
	Step   int64
	Action string // instruction name, "noop (slide exit)", "slide", or "halt"
	Cursor core.Position
	DP     core.Direction
	CC     core.Chooser
	Depth  int   // stack depth after the step
	Value  int64 // block value of the block exited, if any
	Reason Termination
}

// Termination is why a program halted.
type Termination int

// Halt reasons. All of them are normal program termination.
const (
	// TermBounce: eight consecutive failed moves.
	TermBounce Termination = iota
	// TermSlideTrap: a white slide revisited a (position, DP) pair.
	TermSlideTrap
	// TermBlockedStart: the origin codel is black, so no step is possible.
	TermBlockedStart
)

// String returns a human-readable halt reason.
func (t Termination) String() string {
	switch t {
	case TermBounce:
		return "blocked on all sides"
	case TermSlideTrap:
		return "trapped in white"
	case TermBlockedStart:
		return "black origin"
	default:
		return "unknown"
	}
}

// Config carries the collaborators and limits of a Machine.
type Config struct {
	// Input is the program input stream. Nil means every read skips.
	Input Input
	// Output is the program output stream. Nil discards.
	Output io.Writer
	// MaxSteps aborts Run after this many steps. Zero means unlimited.
	MaxSteps int64
	// Tracer receives step diagnostics. Nil disables tracing.
	Tracer Tracer
}

// Machine is the interpreter state for one program.
type Machine struct {
	grid     *grid.Grid
	blocks   *blocks.Resolver
	cursor   core.Position
	dp       core.Direction
	cc       core.Chooser
	stack    []int64
	// lastColor is the color of the block exited most recently, or white
	// while the cursor arrived via a slide. A white lastColor suppresses
	// the next instruction.
	lastColor palette.Color
	input     Input
	output    io.Writer
	tracer    Tracer
	maxSteps  int64
	steps     int64
	halted    bool
	term      Termination
}

// New creates a machine for g and resets it to the initial state.
func New(g *grid.Grid, cfg Config) *Machine {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	m := &Machine{
		grid:     g,
		input:    cfg.Input,
		output:   out,
		tracer:   cfg.Tracer,
		maxSteps: cfg.MaxSteps,
	}
	m.Reset()
	return m
}

// Reset returns the machine to the program start: cursor at the origin,
// DP right, CC left, empty stack. A black origin halts immediately.
func (m *Machine) Reset() {
	m.blocks = blocks.NewResolver(m.grid)
	m.cursor = core.Position{}
	m.dp = core.DirRight
	m.cc = core.ChooseLeft
	m.stack = m.stack[:0]
	m.steps = 0
	m.halted = false
	m.term = TermBounce

	origin := core.Position{}
	switch {
	case !m.grid.IsValid(origin):
		m.halted = true
		m.term = TermBlockedStart
	case m.grid.IsWhite(origin):
		// A white origin begins mid-slide.
		m.lastColor = palette.White
	default:
		m.lastColor = m.grid.ColorAt(origin)
	}
}

// Grid returns the program grid.
func (m *Machine) Grid() *grid.Grid {
	return m.grid
}

// Halted reports whether the program has terminated.
func (m *Machine) Halted() bool {
	return m.halted
}

// Steps returns the number of steps taken so far.
func (m *Machine) Steps() int64 {
	return m.steps
}

// Snapshot is a copy of the observable machine state, taken for the
// debugger and for tests.
type Snapshot struct {
	Cursor    core.Position
	DP        core.Direction
	CC        core.Chooser
	Stack     []int64 // bottom first
	LastColor palette.Color
	Steps     int64
	Halted    bool
	Reason    Termination
}

// Snapshot copies the observable machine state.
func (m *Machine) Snapshot() Snapshot {
	stack := make([]int64, len(m.stack))
	copy(stack, m.stack)
	return Snapshot{
		Cursor:    m.cursor,
		DP:        m.dp,
		CC:        m.cc,
		Stack:     stack,
		LastColor: m.lastColor,
		Steps:     m.steps,
		Halted:    m.halted,
		Reason:    m.term,
	}
}

// Run steps the machine until the program terminates and returns the halt
// reason. The error is non-nil only when the step limit was exceeded; the
// program has then not halted and the returned Termination is not a halt
// reason.
func (m *Machine) Run() (Termination, error) {
	for !m.halted {
		if m.maxSteps > 0 && m.steps >= m.maxSteps {
			return m.term, fmt.Errorf("vm: program exceeded %d steps", m.maxSteps)
		}
		m.Step()
	}
	return m.term, nil
}
