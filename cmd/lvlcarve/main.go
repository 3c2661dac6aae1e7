// Command lvlcarve shrinks an image's width by content-aware seam carving.
//
// Usage:
//
//	lvlcarve -in photo.png -out narrow.png -w 120
//	lvlcarve -in photo.jpg -w 1                      # carve but don't save
//	lvlcarve -in photo.png -energy energy.png -w 40  # also dump the energy map
//
// The tool decodes png, jpeg, gif, webp, bmp and tiff inputs and writes png
// or jpeg outputs. The carving engine is sized once from the decoded image
// and reused for every removed seam.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcarve/carve"
	"github.com/katalvlaran/lvlcarve/imageio"
)

var (
	inPath     = flag.String("in", "", "input image file (png, jpeg, gif, webp, bmp, tiff) (required)")
	outPath    = flag.String("out", "", "output image file (.png, .jpg); if empty the result is not saved")
	seams      = flag.Int("w", 1, "number of columns to remove")
	energyPath = flag.String("energy", "", "optional grayscale PNG dump of the initial energy map")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -in flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	bm, err := imageio.DecodeFile(*inPath)
	if err != nil {
		logger.Fatal("decode failed", zap.Error(err))
	}
	logger.Info("decoded image",
		zap.String("path", *inPath),
		zap.Int("width", bm.Width),
		zap.Int("height", bm.Height),
	)

	if *seams < 0 || bm.Width-*seams < 3 {
		logger.Fatal("cannot remove that many columns",
			zap.Int("seams", *seams),
			zap.Int("width", bm.Width),
		)
	}

	// Size the engine once for the full image; every later call reuses it.
	carver := carve.NewCarver(bm.Width * bm.Height)

	if *energyPath != "" {
		carver.ComputeEnergy(bm.Pix, bm.Width, bm.Height)
		if err = imageio.EncodeEnergyFile(*energyPath, carver.Energy(), bm.Width, bm.Height); err != nil {
			logger.Fatal("energy dump failed", zap.Error(err))
		}
		logger.Info("wrote energy map", zap.String("path", *energyPath))
	}

	logger.Debug("carving", zap.Int("seams", *seams))
	start := time.Now()
	bm.Width = carver.ShrinkWidth(bm.Pix, bm.Width, bm.Height, *seams)
	logger.Info("carving finished",
		zap.Int("seams", *seams),
		zap.Int("width", bm.Width),
		zap.Duration("took", time.Since(start)),
	)

	if *outPath == "" {
		color.New(color.FgYellow).Fprintln(os.Stderr,
			"Not saving output image; pass -out to save the result")

		return
	}
	if err = imageio.EncodeFile(*outPath, bm); err != nil {
		logger.Fatal("encode failed", zap.Error(err))
	}
	color.New(color.FgGreen).Fprintf(os.Stderr,
		"Saved %dx%d image to %s\n", bm.Width, bm.Height, *outPath)
}

// newLogger builds a console logger; -v lowers the level to debug.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	return logger
}
