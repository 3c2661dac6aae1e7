package imageio

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultJPEGQuality is used by EncodeFile for .jpg/.jpeg outputs.
const DefaultJPEGQuality = 92

// EncodePNG writes the bitmap's logical region as PNG.
func EncodePNG(w io.Writer, bm *Bitmap) error {
	if bm.Width < 1 || bm.Height < 1 {
		return ErrEmptyImage
	}
	if err := png.Encode(w, bm); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}

	return nil
}

// EncodeJPEG writes the bitmap's logical region as JPEG with the given
// quality (1–100).
func EncodeJPEG(w io.Writer, bm *Bitmap, quality int) error {
	if bm.Width < 1 || bm.Height < 1 {
		return ErrEmptyImage
	}
	if err := jpeg.Encode(w, bm, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode jpeg: %w", err)
	}

	return nil
}

// EncodeFile writes the bitmap to path, choosing the encoder from the file
// extension (.png, .jpg, .jpeg). Returns ErrUnsupportedFormat for anything
// else; x/image formats are decode-only here.
func EncodeFile(path string, bm *Bitmap) error {
	var encode func(io.Writer, *Bitmap) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = EncodePNG
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, b *Bitmap) error { return EncodeJPEG(w, b, DefaultJPEGQuality) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	if err = encode(f, bm); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}

	return nil
}
