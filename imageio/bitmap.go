// Package imageio defines the Bitmap pixel-buffer type and sentinel errors
// for the imageio subpackage of github.com/katalvlaran/lvlcarve.
package imageio

import (
	"errors"
	"image"
	"image/color"

	"github.com/katalvlaran/lvlcarve/carve"
)

// Sentinel errors for imageio operations.
var (
	// ErrEmptyImage indicates a decoded or supplied image has no pixels.
	ErrEmptyImage = errors.New("imageio: image must have at least one pixel")
	// ErrUnsupportedFormat indicates an output extension with no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported output format")
	// ErrBadShape indicates an energy map shorter than width×height.
	ErrBadShape = errors.New("imageio: energy map shorter than width×height")
)

// Bitmap is a flat row-major RGB pixel buffer plus its logical dimensions.
// Width may shrink across carving operations while Pix keeps its original
// backing allocation; only the first Width×Height entries are meaningful.
//
// Bitmap implements image.Image over the logical region, so the stdlib
// encoders consume it directly.
type Bitmap struct {
	Pix           []carve.Pixel
	Width, Height int
}

// NewBitmap allocates a zeroed (black) bitmap of the given dimensions.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyImage
	}

	return &Bitmap{
		Pix:    make([]carve.Pixel, width*height),
		Width:  width,
		Height: height,
	}, nil
}

// FromImage flattens any image.Image into a Bitmap, dropping alpha. A fast
// path copies *image.NRGBA and *image.RGBA row slabs directly; everything
// else goes through the color model. Returns ErrEmptyImage for empty bounds.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, ErrEmptyImage
	}

	bm := &Bitmap{
		Pix:    make([]carve.Pixel, w*h),
		Width:  w,
		Height: h,
	}

	switch src := img.(type) {
	case *image.NRGBA:
		fromRGBARows(bm, src.Pix, src.Stride)
	case *image.RGBA:
		fromRGBARows(bm, src.Pix, src.Stride)
	default:
		var i int
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				bm.Pix[i] = carve.Pixel{R: c.R, G: c.G, B: c.B}
				i++
			}
		}
	}

	return bm, nil
}

// fromRGBARows copies 4-byte-per-pixel row slabs into the packed buffer.
// NRGBA and RGBA share the layout; alpha is discarded either way, and carved
// inputs are expected to be opaque so premultiplication is not undone.
func fromRGBARows(bm *Bitmap, pix []uint8, stride int) {
	i := 0
	for y := 0; y < bm.Height; y++ {
		row := pix[y*stride : y*stride+bm.Width*4]
		for x := 0; x < bm.Width*4; x += 4 {
			bm.Pix[i] = carve.Pixel{R: row[x], G: row[x+1], B: row[x+2]}
			i++
		}
	}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image over the logical region only.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image; pixels are always opaque.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return color.NRGBA{}
	}
	p := b.Pix[y*b.Width+x]

	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}
}
