package fontatlas

import (
	"fmt"

	"github.com/gogpu/fontatlas/fontface"
	"github.com/gogpu/fontatlas/internal/binpack"
)

// Composite rasterizes every sized glyph in the table and blits it
// into the atlas at its packed position. Rectangles must already be
// pad-stripped, so each rectangle's dimensions equal the glyph's
// bitmap dimensions; a mismatch between the rasterized bitmap and the
// metrics used for packing is reported as an error rather than
// clipped.
func Composite(table *GlyphTable, rects []binpack.Rect, atlas *Atlas, src Source, mode fontface.RenderMode) error {
	for _, rec := range table.Records() {
		if rec.Rect == NoRect {
			continue
		}
		r := rects[rec.Rect]

		bm, err := src.Rasterize(rec.ID, mode)
		if err != nil {
			return fmt.Errorf("rasterize glyph %d: %w", rec.ID, err)
		}
		if bm.Width != r.W || bm.Height != r.H {
			return fmt.Errorf("rasterize glyph %d: bitmap %dx%d does not match packed %dx%d",
				rec.ID, bm.Width, bm.Height, r.W, r.H)
		}

		switch bm.Mode {
		case fontface.PixelModeGray:
			blitGray(atlas, r, bm)
		case fontface.PixelModeMono:
			blitMono(atlas, r, bm)
		default:
			return &UnsupportedPixelModeError{Glyph: rec.ID, Mode: bm.Mode}
		}
	}
	return nil
}

func blitGray(atlas *Atlas, r binpack.Rect, bm *fontface.Bitmap) {
	for y := 0; y < bm.Height; y++ {
		src := bm.Pixels[y*bm.Stride : y*bm.Stride+bm.Width]
		dst := atlas.Pixels[(r.Y+y)*atlas.Width+r.X:]
		copy(dst[:bm.Width], src)
	}
}

// blitMono expands 1-bit rows, most significant bit first, to full
// coverage bytes.
func blitMono(atlas *Atlas, r binpack.Rect, bm *fontface.Bitmap) {
	for y := 0; y < bm.Height; y++ {
		row := bm.Pixels[y*bm.Stride:]
		dst := atlas.Pixels[(r.Y+y)*atlas.Width+r.X:]
		for x := 0; x < bm.Width; x++ {
			if row[x/8]&(0x80>>(x%8)) != 0 {
				dst[x] = 0xFF
			}
		}
	}
}
