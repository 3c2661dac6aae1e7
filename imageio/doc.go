// Package imageio provides the decoder and encoder collaborators around the
// carve engine: flat row-major RGB bitmaps, file decoding into them, and
// encoding of their logical region back to image files.
//
// What:
//
//   - Bitmap wraps a flat []carve.Pixel buffer with its logical width and
//     height. The backing buffer never shrinks: after carving, the logical
//     width drops and the trailing pixels become junk that is simply never
//     encoded.
//   - Decode/DecodeFile read png, jpeg and gif (stdlib) plus webp, bmp and
//     tiff (golang.org/x/image) into a Bitmap.
//   - EncodePNG/EncodeJPEG/EncodeFile write the logical region back out;
//     Bitmap implements image.Image directly over the packed buffer, so
//     encoding needs no intermediate copy.
//   - EncodeEnergyPNG renders a carve energy map as a normalized grayscale
//     PNG for inspection and debugging.
//
// Why:
//
//   - The carve core operates on raw buffers and never touches files; this
//     package is the boundary where environmental failures (missing files,
//     broken encodings) surface as ordinary returned errors, distinct from
//     the core's fatal precondition panics.
//
// Errors:
//
//   - ErrEmptyImage        — decoded or supplied image has no pixels.
//   - ErrUnsupportedFormat — EncodeFile got an extension it cannot write.
//   - ErrBadShape          — energy map shorter than its stated dimensions.
//
// See: carve for the engine and cmd/lvlcarve for the CLI driver.
package imageio
