package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sl236/piet/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "Render the codel grid with terminal colors",
	Long: `Print the program's codel grid to the terminal, one colored cell per
codel. Non-standard colors show as gray "??" cells.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func runView(cmd *cobra.Command, args []string) {
	cfg := settings()
	logger := diagnostics(cfg)
	g := loadGrid(args[0], cfg, logger)

	fmt.Println(tui.RenderGrid(g, nil))
}
