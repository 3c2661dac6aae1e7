package carve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcarve/carve"
)

// assertPanicsIs runs fn and requires that it panics with a value wrapping
// the sentinel error want.
func assertPanicsIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, want)
	}()
	fn()
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewCarver_BadCapacity verifies that non-positive capacities are fatal.
func TestNewCarver_BadCapacity(t *testing.T) {
	assertPanicsIs(t, carve.ErrBadCapacity, func() { carve.NewCarver(0) })
	assertPanicsIs(t, carve.ErrBadCapacity, func() { carve.NewCarver(-4) })
}

//----------------------------------------------------------------------------//
// ComputeEnergy
//----------------------------------------------------------------------------//

// TestComputeEnergy_Example pins the interior dual-gradient arithmetic on a
// fixed 3×4 buffer: two interior pixels, everything else pinned to the border
// maximum.
func TestComputeEnergy_Example(t *testing.T) {
	c := carve.NewCarver(3 * 4)
	c.ComputeEnergy([]carve.Pixel{
		carve.RGB(255, 101, 51), carve.RGB(255, 101, 153), carve.RGB(255, 101, 255),
		carve.RGB(255, 153, 51), carve.RGB(255, 153, 153), carve.RGB(255, 153, 255),
		carve.RGB(255, 203, 51), carve.RGB(255, 204, 153), carve.RGB(255, 205, 255),
		carve.RGB(255, 255, 51), carve.RGB(255, 255, 153), carve.RGB(255, 255, 255),
	}, 3, 4)

	max := carve.MaxPixelEnergy
	assert.Equal(t, []int32{
		max, max, max,
		max, 52225, max,
		max, 52024, max,
		max, max, max,
	}, c.Energy())
}

// TestComputeEnergy_BorderInvariant verifies that for arbitrary pixel data,
// every pixel of the first/last row and first/last column carries
// MaxPixelEnergy.
func TestComputeEnergy_BorderInvariant(t *testing.T) {
	const w, h = 7, 5
	rng := rand.New(rand.NewSource(7))
	pixels := make([]carve.Pixel, w*h)
	for i := range pixels {
		// Channels capped at 179 keep every interior gradient sum
		// (≤ 6×179² = 192246) strictly below MaxPixelEnergy.
		pixels[i] = carve.RGB(uint8(rng.Intn(180)), uint8(rng.Intn(180)), uint8(rng.Intn(180)))
	}

	c := carve.NewCarver(w * h)
	c.ComputeEnergy(pixels, w, h)
	e := c.Energy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				assert.Equal(t, carve.MaxPixelEnergy, e[y*w+x], "border pixel (%d,%d)", x, y)
			} else {
				assert.Less(t, e[y*w+x], carve.MaxPixelEnergy, "interior pixel (%d,%d)", x, y)
			}
		}
	}
}

// TestComputeEnergy_Preconditions verifies the fatal precondition taxonomy:
// malformed dimensions, capacity overrun, and short pixel buffers.
func TestComputeEnergy_Preconditions(t *testing.T) {
	pixels := make([]carve.Pixel, 64)
	cases := []struct {
		name   string
		cap    int
		pixels []carve.Pixel
		w, h   int
		err    error
	}{
		{"WidthBelowMinimum", 64, pixels, 2, 4, carve.ErrBadDimensions},
		{"ZeroHeight", 64, pixels, 4, 0, carve.ErrBadDimensions},
		{"CapacityViolation", 6, pixels, 4, 4, carve.ErrCapacity},
		{"BufferTooSmall", 64, pixels[:7], 4, 2, carve.ErrShortBuffer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := carve.NewCarver(tc.cap)
			assertPanicsIs(t, tc.err, func() { c.ComputeEnergy(tc.pixels, tc.w, tc.h) })
		})
	}
}

//----------------------------------------------------------------------------//
// FindSeam
//----------------------------------------------------------------------------//

// TestFindSeam_Example pins the seam through a fixed 6×5 energy grid:
//
//	--  --  2   --  --  --
//	--  --  --  9   --  --
//	--  --  --  15  --  --
//	--  --  --  21  --  --
//	--  --  26  --  --  --
func TestFindSeam_Example(t *testing.T) {
	const w, h = 6, 5
	max := carve.MaxPixelEnergy
	c := carve.NewCarver(w * h)
	c.LoadEnergy([]int32{
		max, max, max, max, max, max,
		max, 23346, 51304, 31519, 55112, max,
		max, 47908, 61346, 35919, 38887, max,
		max, 31400, 37927, 14437, 63076, max,
		max, max, max, max, max, max,
	}, w, h)

	assert.Equal(t, []int{2, 9, 15, 21, 26}, c.FindSeam(w, h))
}

// TestFindSeam_Validity checks the structural seam invariants on random
// energy grids: one index per row, rows in increasing order, and column drift
// of at most one between consecutive rows.
func TestFindSeam_Validity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := carve.NewCarver(40 * 40)

	for trial := 0; trial < 50; trial++ {
		w := 1 + rng.Intn(40)
		h := 1 + rng.Intn(40)
		energy := make([]int32, w*h)
		for i := range energy {
			energy[i] = rng.Int31n(carve.MaxPixelEnergy + 1)
		}
		c.LoadEnergy(energy, w, h)

		seam := c.FindSeam(w, h)
		require.Len(t, seam, h, "trial %d: %d×%d", trial, w, h)
		prevCol := -1
		for row, p := range seam {
			require.Equal(t, row, p/w, "trial %d: index %d not in row %d", trial, p, row)
			col := p % w
			if row > 0 {
				require.LessOrEqual(t, abs(col-prevCol), 1, "trial %d: column jump at row %d", trial, row)
			}
			prevCol = col
		}
	}
}

// TestFindSeam_Optimality cross-checks the relaxation result against a
// brute-force dynamic program on random small grids: the returned seam's
// total energy must equal the minimum achievable path cost.
func TestFindSeam_Optimality(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	c := carve.NewCarver(12 * 12)

	for trial := 0; trial < 100; trial++ {
		w := 1 + rng.Intn(12)
		h := 1 + rng.Intn(12)
		energy := make([]int32, w*h)
		for i := range energy {
			energy[i] = rng.Int31n(1000)
		}
		c.LoadEnergy(energy, w, h)

		seam := c.FindSeam(w, h)
		assert.Equal(t, bruteForceMinCost(energy, w, h), c.SeamCost(seam),
			"trial %d: %d×%d grid", trial, w, h)
	}
}

// bruteForceMinCost computes the minimum top-to-bottom path cost with a plain
// top-down DP table, independent of the relaxation code under test.
func bruteForceMinCost(energy []int32, w, h int) int32 {
	dp := make([]int32, w*h)
	copy(dp, energy[:w*h])
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			best := dp[(y-1)*w+x]
			if x > 0 && dp[(y-1)*w+x-1] < best {
				best = dp[(y-1)*w+x-1]
			}
			if x < w-1 && dp[(y-1)*w+x+1] < best {
				best = dp[(y-1)*w+x+1]
			}
			dp[y*w+x] = energy[y*w+x] + best
		}
	}
	min := dp[(h-1)*w]
	for x := 1; x < w; x++ {
		if dp[(h-1)*w+x] < min {
			min = dp[(h-1)*w+x]
		}
	}

	return min
}

// TestFindSeam_TieBreak pins the deterministic tie-break: with every pixel at
// equal energy, the leftmost column wins because relaxation only replaces a
// path on strict improvement and pixels are visited left to right.
func TestFindSeam_TieBreak(t *testing.T) {
	const w, h = 4, 4
	energy := make([]int32, w*h)
	for i := range energy {
		energy[i] = 100
	}
	c := carve.NewCarver(w * h)
	c.LoadEnergy(energy, w, h)

	assert.Equal(t, []int{0, 4, 8, 12}, c.FindSeam(w, h))
}

// TestFindSeam_TieBreak_EqualCostBranches builds two equal-cost seams that
// diverge left and right; the lower-indexed destination must win.
func TestFindSeam_TieBreak_EqualCostBranches(t *testing.T) {
	const w, h = 3, 2
	c := carve.NewCarver(w * h)
	c.LoadEnergy([]int32{
		5, 1, 5,
		3, 7, 3,
	}, w, h)

	// Both {1,3} and {1,5} cost 4; the scan into the virtual destination
	// keeps the first (leftmost) minimum.
	assert.Equal(t, []int{1, 3}, c.FindSeam(w, h))
}

// TestFindSeam_Preconditions verifies the fatal dimension and capacity checks.
func TestFindSeam_Preconditions(t *testing.T) {
	c := carve.NewCarver(16)
	assertPanicsIs(t, carve.ErrBadDimensions, func() { c.FindSeam(0, 4) })
	assertPanicsIs(t, carve.ErrBadDimensions, func() { c.FindSeam(4, 0) })
	assertPanicsIs(t, carve.ErrCapacity, func() { c.FindSeam(5, 5) })
}

//----------------------------------------------------------------------------//
// LoadEnergy
//----------------------------------------------------------------------------//

// TestLoadEnergy verifies the copy semantics and precondition checks.
func TestLoadEnergy(t *testing.T) {
	c := carve.NewCarver(6)
	src := []int32{1, 2, 3, 4, 5, 6}
	c.LoadEnergy(src, 3, 2)

	src[0] = 99
	assert.Equal(t, int32(1), c.Energy()[0], "LoadEnergy must copy, not alias")

	assertPanicsIs(t, carve.ErrBadDimensions, func() { c.LoadEnergy(src, 0, 2) })
	assertPanicsIs(t, carve.ErrCapacity, func() { c.LoadEnergy(src, 7, 1) })
	assertPanicsIs(t, carve.ErrShortBuffer, func() { c.LoadEnergy(src[:3], 3, 2) })
}

//----------------------------------------------------------------------------//
// Engine reuse
//----------------------------------------------------------------------------//

// TestCarver_ReuseAcrossShrinkingWidths runs the full carve loop on shrinking
// logical widths against one preallocated engine and checks that the energy
// scratch space is never reallocated and every seam stays structurally valid.
func TestCarver_ReuseAcrossShrinkingWidths(t *testing.T) {
	const w0, h = 12, 9
	rng := rand.New(rand.NewSource(99))
	pixels := make([]carve.Pixel, w0*h)
	for i := range pixels {
		pixels[i] = carve.RGB(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
	}

	c := carve.NewCarver(w0 * h)
	c.ComputeEnergy(pixels, w0, h)
	backing := &c.Energy()[0]

	for w := w0; w > 3; w-- {
		c.ComputeEnergy(pixels, w, h)
		require.Same(t, backing, &c.Energy()[0], "energy array was reallocated at width %d", w)
		require.Len(t, c.Energy(), w*h)

		seam := c.FindSeam(w, h)
		require.Len(t, seam, h)
		c.RemoveSeam(pixels, seam)
	}
}

// TestShrinkWidth verifies the packaged driver loop: the final width, and
// that every surviving row is an order-preserving subsequence of the original
// row (seam removal deletes exactly one pixel per row and never reorders).
func TestShrinkWidth(t *testing.T) {
	const w0, h, seams = 10, 6, 4
	rng := rand.New(rand.NewSource(5))
	pixels := make([]carve.Pixel, w0*h)
	for i := range pixels {
		pixels[i] = carve.RGB(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
	}
	original := make([]carve.Pixel, len(pixels))
	copy(original, pixels)

	c := carve.NewCarver(w0 * h)
	w := c.ShrinkWidth(pixels, w0, h, seams)
	require.Equal(t, w0-seams, w)

	for y := 0; y < h; y++ {
		got := pixels[y*w : (y+1)*w]
		want := original[y*w0 : (y+1)*w0]
		assert.True(t, isSubsequence(got, want), "row %d is not a subsequence of the original row", y)
	}

	assertPanicsIs(t, carve.ErrBadDimensions, func() { c.ShrinkWidth(pixels, w, h, w) })
	assertPanicsIs(t, carve.ErrBadDimensions, func() { c.ShrinkWidth(pixels, w, h, -1) })
}

func isSubsequence(sub, full []carve.Pixel) bool {
	i := 0
	for _, p := range full {
		if i < len(sub) && sub[i] == p {
			i++
		}
	}

	return i == len(sub)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
