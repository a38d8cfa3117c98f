package cli

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sling.app/cli/internal/core/icon"
)

// placeholderGlyph stands in when an icon cannot be resolved.
const placeholderGlyph = "📦"

// renderBitmap draws the bitmap as terminal half-blocks, cells columns wide.
// Each character cell covers two vertical pixels: the upper one as the
// foreground of "▀", the lower one as its background. A nil bitmap yields
// the placeholder glyph.
func renderBitmap(b *icon.Bitmap, cells int) string {
	if b == nil || b.Width == 0 || b.Height == 0 || cells <= 0 {
		return placeholderGlyph
	}

	rows := cells / 2
	var out strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cells; col++ {
			upper := samplePixel(b, col, row*2, cells, rows*2)
			lower := samplePixel(b, col, row*2+1, cells, rows*2)
			out.WriteString(renderCell(upper, lower))
		}
		if row < rows-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// samplePixel nearest-neighbor samples the bitmap into a gridW x gridH grid.
func samplePixel(b *icon.Bitmap, gx, gy, gridW, gridH int) color.RGBA {
	x := gx * b.Width / gridW
	y := gy * b.Height / gridH
	return b.At(x, y)
}

func renderCell(upper, lower color.RGBA) string {
	const visible = 0x40 // alpha threshold

	switch {
	case upper.A < visible && lower.A < visible:
		return " "
	case lower.A < visible:
		return lipgloss.NewStyle().Foreground(hexColor(upper)).Render("▀")
	case upper.A < visible:
		return lipgloss.NewStyle().Foreground(hexColor(lower)).Render("▄")
	default:
		return lipgloss.NewStyle().Foreground(hexColor(upper)).Background(hexColor(lower)).Render("▀")
	}
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
