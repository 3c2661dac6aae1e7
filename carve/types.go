// Package carve defines core types, constants, and sentinel errors
// for the carve subpackage of github.com/katalvlaran/lvlcarve.
package carve

import (
	"errors"
)

// MaxPixelEnergy is the energy of a complete standout pixel: the largest
// value the dual-gradient function can produce (255²×3). It is also assigned
// to every border pixel, pinning image edges as maximally salient so a seam
// never hugs the frame.
const MaxPixelEnergy int32 = 255 * 255 * 3

// Sentinel errors for carve operations. Precondition violations panic with
// values wrapping these sentinels (see package doc for the rationale).
var (
	// ErrBadCapacity indicates NewCarver was given a non-positive capacity.
	ErrBadCapacity = errors.New("carve: capacity must be positive")
	// ErrCapacity indicates width×height exceeds the Carver's reserved storage.
	ErrCapacity = errors.New("carve: image exceeds carver capacity")
	// ErrShortBuffer indicates the pixel slice is shorter than width×height.
	ErrShortBuffer = errors.New("carve: pixel buffer shorter than width×height")
	// ErrBadDimensions indicates width or height below the minimum workable size.
	ErrBadDimensions = errors.New("carve: malformed image dimensions")
	// ErrUnsortedSeam indicates a compaction index sequence that is not
	// strictly increasing, which would corrupt the left-shift bookkeeping.
	ErrUnsortedSeam = errors.New("carve: removal indices must be strictly increasing")
)

// Pixel is one RGB8 sample. Pixel buffers are flat row-major []Pixel slices;
// the logical region [0, width×height) is always valid and anything beyond it
// within a larger backing allocation is junk that must never be read.
type Pixel struct {
	R, G, B uint8
}

// RGB is a convenience constructor for literal pixel grids in tests and
// examples.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}
