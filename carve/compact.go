package carve

import (
	"fmt"
)

// RemoveIndexes removes the elements at the given positions from buf by
// shifting every survivor left in a single linear pass, in place, with no
// allocation. After it returns, the first len(buf)-len(remove) elements hold
// the survivors in their original relative order; the tail holds junk and
// must not be read until overwritten.
//
// remove must be strictly increasing (panic with ErrUnsortedSeam otherwise)
// and non-negative. Indices at or past len(buf) remove nothing but still
// count toward the shift, matching the caller truncating by len(remove).
//
// The routine knows nothing about rows or columns: a seam qualifies because
// it picks exactly one index per row and rows are contiguous, monotonically
// increasing blocks of a row-major buffer.
// Complexity: O(len(buf)) time, zero allocations.
func RemoveIndexes[T any](buf []T, remove []int) {
	last := -1
	for _, r := range remove {
		if r <= last {
			panic(fmt.Errorf("%w: index %d after %d", ErrUnsortedSeam, r, last))
		}
		last = r
	}

	var end int
	for k, r := range remove {
		// Shift everything between this removal and the next one (or the
		// buffer end) left by the number of removals seen so far.
		end = len(buf)
		if k < len(remove)-1 && remove[k+1] < end {
			end = remove[k+1]
		}
		for i := r + 1; i < end; i++ {
			buf[i-k-1] = buf[i]
		}
	}
}

// RemoveSeam removes the given seam from the logical region of pixels using
// the dimensions of the last ComputeEnergy/LoadEnergy call, after which the
// caller owns decrementing its logical width by one.
//
// Panics with ErrShortBuffer if pixels does not cover the logical region, or
// with ErrBadDimensions if the seam does not have one index per row.
func (c *Carver) RemoveSeam(pixels []Pixel, seam []int) {
	n := c.width * c.height
	if len(pixels) < n {
		panic(fmt.Errorf("%w: %d pixels for a %d×%d image", ErrShortBuffer, len(pixels), c.width, c.height))
	}
	if len(seam) != c.height {
		panic(fmt.Errorf("%w: seam of %d indices for height %d", ErrBadDimensions, len(seam), c.height))
	}

	RemoveIndexes(pixels[:n], seam)
}

// ShrinkWidth removes `seams` vertical seams from the logical width×height
// region of pixels, running the full compute → find → remove loop and
// returning the final width. The backing buffer is compacted in place and
// never reallocated; after each removal the trailing `height` pixels of the
// previous logical region become junk.
//
// Panics with ErrBadDimensions if seams is negative or would shrink the
// image below the minimum carvable width of 3.
// Complexity: O(seams × W×H) time, one O(height) seam slice per iteration.
func (c *Carver) ShrinkWidth(pixels []Pixel, width, height, seams int) int {
	if seams < 0 || width-seams < 3 {
		panic(fmt.Errorf("%w: cannot remove %d seams from width %d", ErrBadDimensions, seams, width))
	}

	var seam []int
	for s := 0; s < seams; s++ {
		c.ComputeEnergy(pixels, width, height)
		seam = c.FindSeam(width, height)
		c.RemoveSeam(pixels, seam)
		width--
	}

	return width
}
