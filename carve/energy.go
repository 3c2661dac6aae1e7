package carve

import (
	"fmt"
)

// ComputeEnergy recomputes the full energy map for the logical width×height
// region of pixels, overwriting the engine's energy array in place.
//
// Per-pixel rule:
//
//   - Border pixels (first/last row, first/last column) get MaxPixelEnergy.
//   - Interior pixels get Δx² + Δy², the dual-gradient function: the sum of
//     squared per-channel differences between the left and right neighbors,
//     plus the same for the upper and lower neighbors. The pixel's own color
//     never contributes.
//
// Preconditions (panic on violation):
//
//   - width ≥ 3 and height ≥ 1 (ErrBadDimensions); interior values only exist
//     for height ≥ 3, below that every pixel is a border pixel.
//   - width×height ≤ Capacity() (ErrCapacity).
//   - len(pixels) ≥ width×height (ErrShortBuffer).
//
// Deterministic, no side effects beyond the energy array.
// Complexity: O(W×H) time, zero allocations.
func (c *Carver) ComputeEnergy(pixels []Pixel, width, height int) {
	if width < 3 || height < 1 {
		panic(fmt.Errorf("%w: energy needs width ≥ 3 and height ≥ 1, got %d×%d", ErrBadDimensions, width, height))
	}
	n := c.checkCapacity(width, height)
	if len(pixels) < n {
		panic(fmt.Errorf("%w: %d pixels for a %d×%d image", ErrShortBuffer, len(pixels), width, height))
	}

	c.energy = c.energy[:n]
	// Reslice once so the hot loops below index slices whose bounds the
	// compiler can relate to the loop variables; boundary columns are handled
	// outside the inner loop, keeping it branch-free.
	e := c.energy
	px := pixels[:n]

	// First row: all border.
	for x := 0; x < width; x++ {
		e[x] = MaxPixelEnergy
	}

	// Middle rows: border, interior gradient, border.
	var rowStart, i int
	for y := 1; y < height-1; y++ {
		rowStart = y * width
		e[rowStart] = MaxPixelEnergy

		for x := 1; x < width-1; x++ {
			i = rowStart + x
			e[i] = sqGradient(px[i-1], px[i+1]) + sqGradient(px[i-width], px[i+width])
		}

		e[rowStart+width-1] = MaxPixelEnergy
	}

	// Last row: all border. For height == 1 this overlaps the first row,
	// which is harmlessly idempotent.
	for x := n - width; x < n; x++ {
		e[x] = MaxPixelEnergy
	}

	c.width, c.height = width, height
}

// sqGradient returns the squared per-channel color difference between two
// pixels, the building block of the dual-gradient energy function.
func sqGradient(a, b Pixel) int32 {
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)

	return dr*dr + dg*dg + db*db
}
