package fontatlas

import (
	"iter"
	"sort"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas/fontface"
)

// fakeGlyph describes one glyph of a fakeSource. When bitmap is nil,
// Rasterize synthesizes a solid bitmap matching the metrics.
type fakeGlyph struct {
	metrics fontface.GlyphMetrics
	bitmap  *fontface.Bitmap
}

// fakeSource is an in-memory Source so pipeline tests need no font
// files.
type fakeSource struct {
	cmap    map[rune]fontface.GlyphID
	glyphs  map[fontface.GlyphID]fakeGlyph
	metrics fontface.Metrics

	rasterized []fontface.GlyphID
}

func (s *fakeSource) Charmap() iter.Seq2[rune, fontface.GlyphID] {
	runes := make([]rune, 0, len(s.cmap))
	for r := range s.cmap {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return func(yield func(rune, fontface.GlyphID) bool) {
		for _, r := range runes {
			if !yield(r, s.cmap[r]) {
				return
			}
		}
	}
}

func (s *fakeSource) GlyphIndex(r rune) fontface.GlyphID {
	return s.cmap[r]
}

func (s *fakeSource) GlyphMetrics(g fontface.GlyphID) (fontface.GlyphMetrics, error) {
	fg, ok := s.glyphs[g]
	if !ok {
		return fontface.GlyphMetrics{}, fontface.ErrMissingGlyph
	}
	return fg.metrics, nil
}

func (s *fakeSource) Rasterize(g fontface.GlyphID, mode fontface.RenderMode) (*fontface.Bitmap, error) {
	fg, ok := s.glyphs[g]
	if !ok {
		return nil, fontface.ErrMissingGlyph
	}
	s.rasterized = append(s.rasterized, g)
	if fg.bitmap != nil {
		return fg.bitmap, nil
	}
	w, h := fg.metrics.Width, fg.metrics.Height
	if mode == fontface.RenderModeMono {
		stride := (w + 7) / 8
		pix := make([]byte, stride*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
		return &fontface.Bitmap{
			Mode: fontface.PixelModeMono, Width: w, Height: h,
			Stride: stride, Pixels: pix,
		}, nil
	}
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = 0xFF
	}
	return &fontface.Bitmap{
		Mode: fontface.PixelModeGray, Width: w, Height: h,
		Stride: w, Pixels: pix,
	}, nil
}

func (s *fakeSource) Metrics() fontface.Metrics {
	return s.metrics
}

// boxGlyph builds metrics for a w x h glyph with simple bearings and a
// whole-pixel advance.
func boxGlyph(w, h, advance int) fakeGlyph {
	return fakeGlyph{metrics: fontface.GlyphMetrics{
		Width:       w,
		Height:      h,
		LeftBearing: 1,
		TopBearing:  h,
		Advance:     fixed.I(advance),
	}}
}
