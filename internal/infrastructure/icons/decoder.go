// Package icons adapts filesystem icon files and theme directories to the
// application's icon ports.
package icons

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fyne-io/image/ico"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"sling.app/cli/internal/core/icon"
)

// FileDecoder decodes icon files into RGBA8 bitmaps. PNG, JPEG and GIF go
// through the stdlib codecs, ICO through fyne-io/image, SVG is rasterized at
// the nominal size. Rasters larger than the nominal size are thumbnailed
// down; smaller ones are kept as-is.
type FileDecoder struct {
	size int
}

// NewFileDecoder creates a decoder normalizing to the given nominal pixel
// size.
func NewFileDecoder(size int) *FileDecoder {
	return &FileDecoder{size: size}
}

// Decode implements ports.IconDecoder.
func (d *FileDecoder) Decode(path string) (*icon.Bitmap, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return d.decodeSVG(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon %s: %w", path, err)
	}
	defer file.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		img, err = ico.Decode(file)
	} else {
		img, _, err = image.Decode(file)
	}
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}

	if b := img.Bounds(); b.Dx() > d.size || b.Dy() > d.size {
		img = resize.Thumbnail(uint(d.size), uint(d.size), img, resize.Lanczos3)
	}
	return icon.FromImage(img), nil
}

func (d *FileDecoder) decodeSVG(path string) (*icon.Bitmap, error) {
	svg, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}

	svg.SetTarget(0, 0, float64(d.size), float64(d.size))
	rgba := image.NewRGBA(image.Rect(0, 0, d.size, d.size))
	scanner := rasterx.NewScannerGV(d.size, d.size, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(d.size, d.size, scanner), 1.0)

	return icon.FromImage(rgba), nil
}
