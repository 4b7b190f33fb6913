package fontatlas

import (
	"iter"

	"github.com/gogpu/fontatlas/fontface"
)

// Source is the glyph supply the pipeline consumes. *fontface.Face
// implements it; tests substitute in-memory fakes.
//
// Implementations are used from a single goroutine for the duration of
// one build.
type Source interface {
	// Charmap iterates the font's codepoint→glyph pairs in increasing
	// codepoint order.
	Charmap() iter.Seq2[rune, fontface.GlyphID]

	// GlyphIndex maps a codepoint to its glyph, 0 when unmapped.
	GlyphIndex(r rune) fontface.GlyphID

	// GlyphMetrics loads a glyph's bitmap geometry without rasterizing.
	GlyphMetrics(g fontface.GlyphID) (fontface.GlyphMetrics, error)

	// Rasterize renders a glyph's bitmap. It is called at most once per
	// unique glyph, during compositing; bitmaps are never held for the
	// whole glyph set at once.
	Rasterize(g fontface.GlyphID, mode fontface.RenderMode) (*fontface.Bitmap, error)

	// Metrics returns the face-wide vertical metrics.
	Metrics() fontface.Metrics
}

var _ Source = (*fontface.Face)(nil)
