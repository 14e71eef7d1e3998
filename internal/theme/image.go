package theme

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	// Preview images are PNG or JPG; register both decoders for
	// image.DecodeConfig.
	_ "image/jpeg"
	_ "image/png"
)

const (
	// Preview images must have a 3:2 aspect ratio within this tolerance.
	aspectRatio          = 1.5
	aspectRatioTolerance = 0.01

	screenshotMinWidth  = 1500
	screenshotMinHeight = 1000
	thumbnailMinWidth   = 900
	thumbnailMinHeight  = 600
)

// checkImage validates a preview image's file format, minimum dimensions,
// and aspect ratio. Only the image header is read, never the pixel data.
func checkImage(path, label string, minWidth, minHeight int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return invalidf("%s must be a PNG or JPG file, got %s", label, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return invalidf("cannot open %s image %s: %v", label, path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return invalidf("cannot read %s image %s: %v", label, path, err)
	}

	if cfg.Width < minWidth || cfg.Height < minHeight {
		return invalidf("%s must be at least %dx%d pixels, got %dx%d",
			label, minWidth, minHeight, cfg.Width, cfg.Height)
	}

	ratio := float64(cfg.Width) / float64(cfg.Height)
	if math.Abs(ratio-aspectRatio) > aspectRatioTolerance {
		return invalidf("%s must have a 3:2 aspect ratio (width/height == 1.5), got %.2f", label, ratio)
	}
	return nil
}
