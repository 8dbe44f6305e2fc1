// piet is an interpreter for the Piet esoteric programming language, whose
// programs are images.
//
// Usage:
//
//	piet <image>             - Run a program
//	piet run <image>         - Same, spelled out
//	piet info <image>        - Show grid facts about a program image
//	piet view <image>        - Render the codel grid in the terminal
//	piet debug <image>       - Step through a program interactively
//
// Global flags:
//
//	--codel-size <n>   - Codel edge length in pixels (0 = guess, default: 1)
//	--nonstandard <p>  - Treat unrecognized colors as "white" or "black"
//	--config <path>    - Load defaults from a YAML file
//	--trace            - Per-step trace on stderr
//	--debug            - Verbose diagnostics on stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sl236/piet/internal/config"
	"github.com/sl236/piet/internal/grid"
	"github.com/sl236/piet/internal/palette"
)

var (
	// Global flags
	flagCodelSize   int
	flagNonStandard string
	flagConfig      string
	flagTrace       bool
	flagDebug       bool
	flagMaxSteps    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "piet [image]",
	Short: "Piet - run programs that are pictures",
	Long: `piet interprets Piet programs: images whose color transitions encode
a stack machine's instructions.

Available commands:
  run      - Execute a program image (also the default)
  info     - Show dimensions, codel size guess, and palette usage
  view     - Render the codel grid with terminal colors
  debug    - Interactive stepper with stack and cursor display

Examples:
  piet program.png
  piet run program.gif --codel-size 4
  piet info program.png
  piet debug program.png --input data.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		runRun(cmd, args)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagCodelSize, "codel-size", -1,
		"Codel edge length in pixels (0 = guess from the image)")
	rootCmd.PersistentFlags().StringVar(&flagNonStandard, "nonstandard", "",
		"Treat unrecognized colors as \"white\" or \"black\"")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false,
		"Write a per-step trace to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Write verbose diagnostics to stderr")
	rootCmd.PersistentFlags().Int64Var(&flagMaxSteps, "max-steps", -1,
		"Abort after this many steps (0 = unlimited)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(debugCmd)
}

// settings merges the config file with the flags; flags win.
func settings() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagCodelSize >= 0 {
		cfg.CodelSize = flagCodelSize
	}
	if flagNonStandard != "" {
		cfg.NonStandard = flagNonStandard
	}
	if flagTrace {
		cfg.Trace = true
	}
	if flagDebug {
		cfg.Debug = true
	}
	if flagMaxSteps >= 0 {
		cfg.MaxSteps = flagMaxSteps
	}
	return cfg
}

// diagnostics builds the stderr logger; at its default level only warnings
// show, --debug opens it up.
func diagnostics(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "piet",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// loadGrid decodes the image at path and lifts it to a codel grid using the
// merged settings. Exits the process on unusable input.
func loadGrid(path string, cfg config.Config, logger *log.Logger) *grid.Grid {
	policy, err := palette.ParsePolicy(cfg.NonStandard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := grid.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	codelSize := cfg.CodelSize
	if codelSize == 0 {
		codelSize = grid.GuessCodelSize(img)
		logger.Debug("guessed codel size", "size", codelSize)
	}

	g, err := grid.Build(img, codelSize, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("built grid",
		"cols", g.Cols(), "rows", g.Rows(),
		"codel_size", codelSize, "nonstandard", policy.String())
	return g
}
