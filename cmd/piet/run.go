package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sl236/piet/internal/platform/terminal"
	"github.com/sl236/piet/internal/trace"
	"github.com/sl236/piet/internal/vm"
)

var runCmd = &cobra.Command{
	Use:   "run <image>",
	Short: "Execute a program image",
	Long: `Run the Piet program in the given image.

The program's output goes to stdout, untouched. Input instructions read
from stdin; on a terminal, characters are read raw, one keystroke at a
time. The interpreter exits 0 when the program terminates normally.

Examples:
  piet run program.png
  piet run program.png --codel-size 4 --trace
  piet run program.gif --nonstandard black`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	cfg := settings()
	logger := diagnostics(cfg)
	g := loadGrid(args[0], cfg, logger)

	var input vm.Input
	if term.IsTerminal(int(os.Stdin.Fd())) {
		input = terminal.NewReader(os.Stdin)
	} else {
		input = bufio.NewReader(os.Stdin)
	}

	vmCfg := vm.Config{
		Input:    input,
		Output:   os.Stdout,
		MaxSteps: cfg.MaxSteps,
	}
	if cfg.Trace {
		vmCfg.Tracer = trace.New(os.Stderr)
	}

	m := vm.New(g, vmCfg)
	reason, err := m.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("terminated", "reason", reason.String(), "steps", m.Steps())
}
