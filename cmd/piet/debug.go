package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sl236/piet/internal/platform/tui"
	"github.com/sl236/piet/internal/vm"
)

var flagInput string

var debugCmd = &cobra.Command{
	Use:   "debug <image>",
	Short: "Step through a program interactively",
	Long: `Open the interactive debugger: step the program one move at a time,
watch the cursor walk the grid, and inspect the stack and output.

The debugger owns the keyboard, so program input cannot come from the
terminal; give input-reading programs a file with --input. Without it,
input instructions are skipped.

Keys:
  n/space  - Step
  r        - Run to completion
  x        - Reset
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	Run:  runDebug,
}

func init() {
	debugCmd.Flags().StringVar(&flagInput, "input", "", "File to feed to the program's input instructions")
}

func runDebug(cmd *cobra.Command, args []string) {
	cfg := settings()
	logger := diagnostics(cfg)
	g := loadGrid(args[0], cfg, logger)

	var input vm.Input
	if flagInput != "" {
		f, err := os.Open(flagInput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = bufio.NewReader(f)
	}

	if err := tui.Run(g, input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
