// Package lvlcarve is a content-aware image width reduction library:
// it repeatedly finds and removes the least visually important vertical
// path of pixels (a "seam"), shrinking an image column by column while
// preserving salient content far better than cropping or scaling.
//
// 🚀 What is lvlcarve?
//
//	A small, allocation-disciplined seam-carving engine plus collaborators:
//		• Core engine: dual-gradient energy + DAG shortest-path seam search
//		• In-place seam compaction: shrink a pixel buffer without reallocating
//		• Image I/O: decode png/jpeg/gif/webp/bmp/tiff into flat RGB buffers
//		• Energy visualization: grayscale dumps of the per-pixel energy map
//		• CLI: the lvlcarve command carves files from the shell
//
// ✨ Why choose lvlcarve?
//
//   - Predictable memory – one engine, preallocated once, reused forever
//   - Deterministic – strict-improvement relaxation pins tie-breaking
//   - Pure Go core – the hot loops are plain index arithmetic, no cgo
//   - Small API – two methods and one helper carve an image end to end
//
// Everything is organized under three packages:
//
//	carve/   — the Carver engine: energy, seam search, compaction
//	imageio/ — decoder/encoder collaborators around flat RGB bitmaps
//	cmd/     — the lvlcarve command-line tool
//
// Quick ASCII example of a seam through a 6×5 image (columns 2,3,3,3,2):
//
//	. . x . . .
//	. . . x . .
//	. . . x . .
//	. . . x . .
//	. . x . . .
//
// Dive into carve/doc.go for the algorithm, complexity and error contract.
//
//	go get github.com/katalvlaran/lvlcarve
package lvlcarve
