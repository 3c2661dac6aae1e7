package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"
)

// EncodeEnergyPNG renders an energy map (as produced by carve.Carver) to w as
// an 8-bit grayscale PNG, linearly normalized so the smallest energy maps to
// black and the largest to white. A flat map renders all black.
//
// Returns ErrBadShape if the map does not cover width×height, ErrEmptyImage
// for non-positive dimensions.
// Complexity: O(W×H).
func EncodeEnergyPNG(w io.Writer, energy []int32, width, height int) error {
	if width < 1 || height < 1 {
		return ErrEmptyImage
	}
	n := width * height
	if len(energy) < n {
		return fmt.Errorf("%w: %d values for %d×%d", ErrBadShape, len(energy), width, height)
	}

	vals := make([]float64, n)
	for i, e := range energy[:n] {
		vals[i] = float64(e)
	}

	lo, hi := floats.Min(vals), floats.Max(vals)
	if hi > lo {
		floats.AddConst(-lo, vals)
		floats.Scale(255/(hi-lo), vals)
	} else {
		floats.Scale(0, vals)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := 0; x < width; x++ {
			row[x] = uint8(vals[y*width+x])
		}
	}

	if err := png.Encode(w, gray); err != nil {
		return fmt.Errorf("imageio: encode energy png: %w", err)
	}

	return nil
}

// EncodeEnergyFile writes the grayscale energy visualization to path.
func EncodeEnergyFile(path string, energy []int32, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	if err = EncodeEnergyPNG(f, energy, width, height); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}

	return nil
}
