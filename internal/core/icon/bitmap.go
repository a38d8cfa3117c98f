package icon

import (
	"image"
	"image/color"
	"image/draw"
)

// Bitmap is a decoded icon: RGBA8 pixels in row-major order, four bytes per
// pixel. It is the presentation-agnostic result of icon resolution; rendering
// (texture upload, terminal cells, ...) is the consumer's concern.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// FromImage converts any decoded image to a Bitmap.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return &Bitmap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    rgba.Pix,
	}
}

// At returns the pixel at (x, y). Out-of-range coordinates yield transparent
// black.
func (b *Bitmap) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.RGBA{}
	}
	i := (y*b.Width + x) * 4
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}
