package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sling.app/cli/internal/core/icon"
)

func solidBitmap(w, h int, r, g, b byte) *icon.Bitmap {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 0xff
	}
	return &icon.Bitmap{Width: w, Height: h, Pix: pix}
}

func TestRenderBitmap_NilBitmap_YieldsPlaceholder(t *testing.T) {
	assert.Equal(t, placeholderGlyph, renderBitmap(nil, 16))
}

func TestRenderBitmap_EmptyBitmap_YieldsPlaceholder(t *testing.T) {
	assert.Equal(t, placeholderGlyph, renderBitmap(&icon.Bitmap{}, 16))
}

func TestRenderBitmap_ProducesHalfBlockRows(t *testing.T) {
	out := renderBitmap(solidBitmap(4, 4, 0xff, 0, 0), 4)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2, "4 cells wide covers 4 pixels in 2 half-block rows")
	assert.Contains(t, out, "▀")
}

func TestRenderBitmap_TransparentPixels_RenderAsSpaces(t *testing.T) {
	bmp := &icon.Bitmap{Width: 2, Height: 2, Pix: make([]byte, 2*2*4)}

	out := renderBitmap(bmp, 2)

	assert.Equal(t, "  ", out)
}
