package carve

import (
	"fmt"
	"math"
)

// FindSeam computes the minimum-total-energy top-to-bottom seam through the
// current energy map: exactly one pixel index per row, consecutive rows'
// columns differing by at most 1. It must be called after ComputeEnergy or
// LoadEnergy for the same width and height.
//
// Algorithm: single-pass shortest-path relaxation in row order over the
// implicit DAG (see Carver doc). distance-to and predecessor arrays are reset
// and refilled in place; the returned seam is the only allocation.
//
// Tie-breaking is deterministic: relaxation only improves on a strictly
// smaller distance, so among equal-cost seams the one reached first in
// row-major, left-to-right order wins.
//
// Preconditions (panic on violation): width ≥ 1 and height ≥ 1
// (ErrBadDimensions), width×height ≤ Capacity() (ErrCapacity).
// Complexity: O(W×H) time — at most three edge relaxations per pixel.
func (c *Carver) FindSeam(width, height int) []int {
	if width < 1 || height < 1 {
		panic(fmt.Errorf("%w: seam search needs width ≥ 1 and height ≥ 1, got %d×%d", ErrBadDimensions, width, height))
	}
	n := c.checkCapacity(width, height)

	// Virtual vertices live just past the pixel vertices.
	fakeSrc, fakeDest := n, n+1
	dist := c.distTo[:n+2]
	prev := c.prevVertex[:n+2]
	e := c.energy[:n]

	// 1) Reset: every vertex starts unreachable with a default predecessor.
	for i := range dist {
		dist[i] = math.MaxInt32
		prev[i] = 0
	}

	// 2) The fake source has an edge to each pixel of the first row, weighted
	//    by that pixel's energy.
	for p := 0; p < width; p++ {
		dist[p] = e[p]
		prev[p] = fakeSrc
	}

	// relax improves the path to `to` when routing through `from` is strictly
	// cheaper. Every pixel of rows 1..height-1 has an in-edge from the row
	// above, so dist[from] is always finite here and cannot overflow.
	relax := func(from, to int) {
		if d := dist[from] + e[to]; dist[to] > d {
			dist[to] = d
			prev[to] = from
		}
	}

	// 3) Relax each row into the row below. First and last columns miss one
	//    diagonal each and are hoisted out of the branch-free interior loop.
	var rowStart, p, lastCol int
	for y := 0; y < height-1; y++ {
		rowStart = y * width

		if width == 1 {
			relax(rowStart, rowStart+width)
			continue
		}

		relax(rowStart, rowStart+width)
		relax(rowStart, rowStart+width+1)

		for x := 1; x < width-1; x++ {
			p = rowStart + x
			relax(p, p+width-1)
			relax(p, p+width)
			relax(p, p+width+1)
		}

		lastCol = rowStart + width - 1
		relax(lastCol, lastCol+width-1)
		relax(lastCol, lastCol+width)
	}

	// 4) Zero-weight edges from the last row into the fake destination; the
	//    strict comparison keeps the leftmost minimum.
	for p = n - width; p < n; p++ {
		if dist[fakeDest] > dist[p] {
			dist[fakeDest] = dist[p]
			prev[fakeDest] = p
		}
	}

	// 5) Walk predecessors back from the fake destination, drop the two
	//    virtual endpoints, and reverse into top-to-bottom order. The graph
	//    guarantees exactly one vertex per row.
	seam := make([]int, 0, height)
	for v := prev[fakeDest]; v != fakeSrc; v = prev[v] {
		seam = append(seam, v)
	}
	for i, j := 0, len(seam)-1; i < j; i, j = i+1, j-1 {
		seam[i], seam[j] = seam[j], seam[i]
	}

	return seam
}

// SeamCost sums the energy along a seam of pixel indices against the current
// energy map. Useful for optimality checks and instrumentation.
func (c *Carver) SeamCost(seam []int) int32 {
	var total int32
	for _, p := range seam {
		total += c.energy[p]
	}

	return total
}
