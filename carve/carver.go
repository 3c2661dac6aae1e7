package carve

import (
	"fmt"
)

// Carver is the reusable seam-carving engine. One Carver is created with
// capacity for the largest image it will ever see and reused indefinitely;
// every call overwrites the same three parallel arrays instead of allocating.
//
// The implicit graph it searches has one vertex per pixel plus two virtual
// vertices: a fake source with an edge to every pixel in the first row, and a
// fake destination receiving a zero-weight edge from every pixel in the last
// row. Each pixel not in the last row has edges to the up-to-three
// horizontally adjacent pixels in the row below. All edges point downward,
// so row order is a topological order and one relaxation pass suffices.
//
// Not safe for concurrent use: all three arrays are exclusively owned
// scratch space.
type Carver struct {
	energy     []int32 // energy of each pixel, logical length = width×height
	distTo     []int32 // min accumulated energy from the fake source, +2 virtual slots
	prevVertex []int   // predecessor vertex on a shortest path, +2 virtual slots
	capacity   int     // pixel capacity fixed at construction
	width      int     // logical width of the last computed shape
	height     int     // logical height of the last computed shape
}

// NewCarver allocates an engine able to process any image of up to maxPixels
// pixels. Distances are kept in int32, which is safe as long as a seam is
// shorter than ~20,000 pixels. Panics with ErrBadCapacity if maxPixels ≤ 0.
// Complexity: O(maxPixels) time and memory, once.
func NewCarver(maxPixels int) *Carver {
	if maxPixels <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadCapacity, maxPixels))
	}

	return &Carver{
		energy:     make([]int32, 0, maxPixels),
		distTo:     make([]int32, maxPixels+2),
		prevVertex: make([]int, maxPixels+2),
		capacity:   maxPixels,
	}
}

// Capacity reports the pixel capacity fixed at construction.
func (c *Carver) Capacity() int {
	return c.capacity
}

// Energy exposes the energy map of the last ComputeEnergy or LoadEnergy call,
// indexed identically to the pixel buffer. The slice aliases the engine's
// scratch space: it is overwritten by the next call and must not be mutated.
func (c *Carver) Energy() []int32 {
	return c.energy
}

// LoadEnergy replaces the engine's energy map with a caller-supplied one,
// so FindSeam can run over arbitrary energy grids (synthetic grids in tests,
// externally computed importance maps). The values are copied.
// Panics with ErrBadDimensions, ErrCapacity or ErrShortBuffer on violated
// preconditions. Complexity: O(W×H).
func (c *Carver) LoadEnergy(energy []int32, width, height int) {
	if width < 1 || height < 1 {
		panic(fmt.Errorf("%w: %d×%d", ErrBadDimensions, width, height))
	}
	n := c.checkCapacity(width, height)
	if len(energy) < n {
		panic(fmt.Errorf("%w: %d energy values for a %d×%d image", ErrShortBuffer, len(energy), width, height))
	}

	c.energy = c.energy[:n]
	copy(c.energy, energy[:n])
	c.width, c.height = width, height
}

// checkCapacity validates that a width×height image fits the reserved storage
// and returns the pixel count. Panics with ErrCapacity otherwise.
func (c *Carver) checkCapacity(width, height int) int {
	n := width * height
	if n > c.capacity {
		panic(fmt.Errorf("%w: %d×%d = %d pixels, capacity %d", ErrCapacity, width, height, n, c.capacity))
	}

	return n
}
