package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sl236/piet/internal/grid"
	"github.com/sl236/piet/internal/palette"
)

var infoCmd = &cobra.Command{
	Use:   "info <image>",
	Short: "Show grid facts about a program image",
	Long: `Show the program's dimensions, the guessed codel size, and how often
each palette color occurs. Useful for checking that an image was exported
with the codel size and palette you meant.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	cfg := settings()

	policy, err := palette.ParsePolicy(cfg.NonStandard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := grid.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	guess := grid.GuessCodelSize(img)

	codelSize := cfg.CodelSize
	if codelSize == 0 {
		codelSize = guess
	}
	g, err := grid.Build(img, codelSize, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("image:       %dx%d px\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("grid:        %dx%d codels (codel size %d)\n", g.Cols(), g.Rows(), codelSize)
	fmt.Printf("size guess:  %d\n", guess)
	fmt.Printf("nonstandard: treated as %s\n", g.Policy())
	fmt.Println()

	hist := g.Histogram()
	total := g.Cols() * g.Rows()
	fmt.Println("palette usage:")
	for c := palette.LightRed; c <= palette.NonStandard; c++ {
		n := hist[c]
		if n == 0 {
			continue
		}
		fmt.Printf("  %-14s %6d  (%.1f%%)\n", c, n, 100*float64(n)/float64(total))
	}
}
