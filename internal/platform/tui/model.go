package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sl236/piet/internal/grid"
	"github.com/sl236/piet/internal/vm"
)

// runChunk is how many steps one "run" burst executes before yielding to
// the event loop, so an endlessly looping program cannot freeze the UI.
const runChunk = 10000

// eventTap keeps the most recent step event for display.
type eventTap struct {
	last vm.Event
	seen bool
}

func (e *eventTap) Trace(ev vm.Event) {
	e.last = ev
	e.seen = true
}

// runMsg asks the update loop for another burst of steps.
type runMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	haltStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Model is the Bubble Tea model for the step debugger.
type Model struct {
	machine  *vm.Machine
	tap      *eventTap
	output   *strings.Builder
	viewport viewport.Model
	ready    bool
	running  bool
	stepErr  string
}

// NewModel creates a debugger over g. Program input is read from input;
// program output is captured and shown inside the UI.
func NewModel(g *grid.Grid, input vm.Input) Model {
	tap := &eventTap{}
	out := &strings.Builder{}
	machine := vm.New(g, vm.Config{
		Input:  input,
		Output: out,
		Tracer: tap,
	})
	return Model{
		machine: machine,
		tap:     tap,
		output:  out,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case runMsg:
		if !m.running {
			return m, nil
		}
		for i := 0; i < runChunk && !m.machine.Halted(); i++ {
			m.machine.Step()
		}
		if m.machine.Halted() {
			m.running = false
			m.refresh()
			return m, nil
		}
		m.refresh()
		return m, func() tea.Msg { return runMsg{} }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch mapKey(msg) {
	case actionQuit:
		return m, tea.Quit

	case actionStep:
		if !m.running {
			m.machine.Step()
			m.refresh()
		}
		return m, nil

	case actionRun:
		if !m.running && !m.machine.Halted() {
			m.running = true
			return m, func() tea.Msg { return runMsg{} }
		}
		return m, nil

	case actionReset:
		m.running = false
		m.output.Reset()
		m.tap.seen = false
		m.machine.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Leave room for the header and the status block below the grid.
	h := msg.Height - 7
	if h < 3 {
		h = 3
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, h)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = h
	}
	m.refresh()
	return m, nil
}

// refresh redraws the grid into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	snap := m.machine.Snapshot()
	cursor := snap.Cursor
	m.viewport.SetContent(RenderGrid(m.machine.Grid(), &cursor))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	snap := m.machine.Snapshot()

	var header string
	switch {
	case snap.Halted:
		header = titleStyle.Render("piet debugger") + "  " +
			haltStyle.Render(fmt.Sprintf("halted after %d steps (%s)", snap.Steps, snap.Reason))
	case m.running:
		header = titleStyle.Render("piet debugger") + fmt.Sprintf("  running... step %d", snap.Steps)
	default:
		header = titleStyle.Render("piet debugger") + fmt.Sprintf("  step %d", snap.Steps)
	}

	last := "-"
	if m.tap.seen {
		last = m.tap.last.Action
	}

	status := fmt.Sprintf("dp %s  cc %s  last %s", snap.DP, snap.CC, last)
	stack := "stack: " + formatStack(snap.Stack)
	out := "output: " + m.output.String()
	help := statusStyle.Render("n/space step · r run · x reset · q quit")

	return strings.Join([]string{
		header,
		m.viewport.View(),
		status,
		stack,
		out,
		help,
	}, "\n")
}

// formatStack prints the stack bottom-first with the top marked, trimming
// long stacks to their top entries.
func formatStack(stack []int64) string {
	if len(stack) == 0 {
		return "(empty)"
	}
	const maxShown = 16
	start := 0
	prefix := ""
	if len(stack) > maxShown {
		start = len(stack) - maxShown
		prefix = "... "
	}
	parts := make([]string, 0, len(stack)-start)
	for _, v := range stack[start:] {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return fmt.Sprintf("%s%s <- top (%d)", prefix, strings.Join(parts, " "), len(stack))
}

// Run starts the debugger UI over g and blocks until the user quits.
func Run(g *grid.Grid, input vm.Input) error {
	p := tea.NewProgram(NewModel(g, input), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
