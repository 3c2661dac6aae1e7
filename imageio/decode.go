package imageio

import (
	"fmt"
	"image"
	"io"
	"os"

	// Register the decoders the carving tool accepts as input.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered image format from r and flattens it into a
// Bitmap. The format name is resolved by the stdlib image registry.
func Decode(r io.Reader) (*Bitmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	bm, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", format, err)
	}

	return bm, nil
}

// DecodeFile opens and decodes one image file.
func DecodeFile(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	bm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", path, err)
	}

	return bm, nil
}
