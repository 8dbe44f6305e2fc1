package grid

import (
	"fmt"
	"image"
	"os"

	// Register the decoders a program image may arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Load opens and decodes a program image. The format is sniffed from the
// file contents; PNG, GIF and JPEG are recognized.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: cannot open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("grid: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// GuessCodelSize estimates the codel size of img as the greatest common
// divisor of every horizontal and vertical run of identically-colored
// pixels, together with the image dimensions. An image with no repetition
// guesses 1.
func GuessCodelSize(img image.Image) int {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return 1
	}

	rgbAt := func(x, y int) uint32 {
		r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return (r>>8)<<16 | (g>>8)<<8 | b>>8
	}

	g := gcd(w, h)
	for y := 0; y < h && g > 1; y++ {
		run := 1
		prev := rgbAt(0, y)
		for x := 1; x < w; x++ {
			cur := rgbAt(x, y)
			if cur == prev {
				run++
				continue
			}
			g = gcd(g, run)
			run = 1
			prev = cur
		}
		g = gcd(g, run)
	}
	for x := 0; x < w && g > 1; x++ {
		run := 1
		prev := rgbAt(x, 0)
		for y := 1; y < h; y++ {
			cur := rgbAt(x, y)
			if cur == prev {
				run++
				continue
			}
			g = gcd(g, run)
			run = 1
			prev = cur
		}
		g = gcd(g, run)
	}
	if g < 1 {
		return 1
	}
	return g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
