// Package carve implements the seam-carving core: per-pixel energy scoring,
// minimum-energy vertical seam search, and in-place seam removal.
//
// What:
//
//   - Carver holds three preallocated parallel arrays (energy, distance-to,
//     predecessor) sized once for the largest image it will ever process and
//     reused across every call, so a long carving loop never reallocates.
//   - ComputeEnergy fills the energy map with the dual-gradient function:
//     border pixels are pinned to MaxPixelEnergy; interior pixels get the sum
//     of squared horizontal and vertical neighbor channel differences.
//   - FindSeam runs a single-pass shortest-path relaxation over the implicit
//     row-ordered DAG (virtual source above row 0, virtual destination below
//     the last row) and reconstructs one minimum-energy pixel index per row.
//   - RemoveIndexes compacts a flat buffer in place by shifting survivors
//     left, leaving a junk tail instead of allocating a new buffer.
//
// Why:
//
//   - Image retargeting: shrink width while keeping salient content intact.
//   - The grid structure makes index arithmetic both the fastest and the
//     simplest graph representation; the DAG is never materialized.
//
// Complexity (W = width, H = height, per removed seam):
//
//   - ComputeEnergy: O(W×H) time, O(1) extra memory.
//   - FindSeam:      O(W×H) time (each pixel relaxes ≤ 3 edges), O(1) extra.
//   - RemoveIndexes: O(W×H) time, O(1) extra memory, zero allocations.
//
// Errors:
//
// Precondition violations here are programmer errors that would otherwise
// corrupt memory, so they panic rather than return; the panic values wrap
// sentinel errors matchable with errors.Is:
//
//   - ErrBadCapacity  — Carver constructed with a non-positive pixel capacity.
//   - ErrCapacity     — width×height exceeds the Carver's reserved capacity.
//   - ErrShortBuffer  — pixel slice shorter than width×height.
//   - ErrBadDimensions — width or height below the algorithm's minimum.
//   - ErrUnsortedSeam — compaction indices not strictly increasing.
//
// See: imageio for the decoder/encoder collaborators and cmd/lvlcarve for
// the driver loop.
package carve
