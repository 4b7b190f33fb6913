package fontface

import (
	"bytes"
	"fmt"
	"iter"
	"math"
	"os"
	"sort"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultPixelSize is the pixel size used when none is configured.
const DefaultPixelSize = 16

// GlyphID identifies a glyph inside a font. Glyph 0 is the font's
// missing-glyph slot ("tofu") and doubles as the unmapped sentinel.
type GlyphID uint32

// GlyphMetrics describes one glyph's bitmap geometry at the face's pixel
// size, before any pixel data is produced.
type GlyphMetrics struct {
	// Width and Height are the bitmap dimensions in pixels.
	// Both are 0 for blank glyphs such as spaces.
	Width  int
	Height int

	// LeftBearing is the horizontal offset from the glyph origin to the
	// bitmap's left edge.
	LeftBearing int

	// TopBearing is the vertical distance from the baseline to the
	// bitmap's top edge, positive above the baseline.
	TopBearing int

	// Advance is the horizontal advance in 26.6 subpixels.
	Advance fixed.Int26_6
}

// Metrics are face-wide vertical metrics in 26.6 subpixels.
type Metrics struct {
	// Ascender is the distance from the baseline to the top of the face,
	// positive.
	Ascender fixed.Int26_6

	// Descender is the distance from the baseline to the bottom of the
	// face, negative below the baseline.
	Descender fixed.Int26_6

	// Height is the recommended baseline-to-baseline distance.
	Height fixed.Int26_6
}

// Option configures a Face during Open or Parse.
type Option func(*faceConfig)

type faceConfig struct {
	pixelSize  int
	variations []Variation
}

// WithPixelSize sets the nominal glyph height in pixels.
// Non-positive values fall back to DefaultPixelSize.
func WithPixelSize(px int) Option {
	return func(c *faceConfig) { c.pixelSize = px }
}

// WithVariations applies variable-font axis values. Axes not listed keep
// the default value the font declares for them.
func WithVariations(vars []Variation) Option {
	return func(c *faceConfig) { c.variations = append(c.variations, vars...) }
}

// Face is a font loaded at a fixed pixel size with variation axes applied.
// Face is not safe for concurrent use.
type Face struct {
	font  *font.Font
	face  *font.Face
	axes  []Axis // declared variation axes, empty for static fonts
	ppem  int
	scale float32 // ppem / unitsPerEm
}

// Open reads and parses a font file.
func Open(path string, opts ...Option) (*Face, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontface: read font: %w", err)
	}
	f, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses font data (TTF or OTF) and applies the configured pixel
// size and axis values.
func Parse(data []byte, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := faceConfig{pixelSize: DefaultPixelSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontface: parse font: %w", err)
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("fontface: parse font: %w", err)
	}

	f := &Face{
		font: ft,
		face: font.NewFace(ft),
		axes: parseAxes(ld),
	}
	f.SetPixelSize(cfg.pixelSize)
	if err := f.SetVariations(cfg.variations); err != nil {
		return nil, err
	}
	return f, nil
}

// SetPixelSize sets the nominal glyph height in pixels.
// Non-positive sizes fall back to DefaultPixelSize.
func (f *Face) SetPixelSize(px int) {
	if px <= 0 {
		px = DefaultPixelSize
	}
	f.ppem = px
	f.face.SetPpem(uint16(px), uint16(px)) //nolint:gosec // pixel sizes are small
	f.scale = float32(px) / float32(f.font.Upem())
}

// PixelSize returns the configured pixel size.
func (f *Face) PixelSize() int { return f.ppem }

// Close releases the parsed font. The Face must not be used afterwards.
func (f *Face) Close() error {
	f.font = nil
	f.face = nil
	return nil
}

// GlyphIndex returns the glyph mapped to the codepoint, or 0 when the
// font does not cover it.
func (f *Face) GlyphIndex(r rune) GlyphID {
	gid, ok := f.font.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// Charmap iterates the font's codepoint→glyph pairs in increasing
// codepoint order. Codepoints the font maps to glyph 0 are omitted.
func (f *Face) Charmap() iter.Seq2[rune, GlyphID] {
	return func(yield func(rune, GlyphID) bool) {
		type entry struct {
			r   rune
			gid GlyphID
		}
		var entries []entry
		it := f.font.Cmap.Iter()
		for it.Next() {
			r, gid := it.Char()
			if gid == 0 {
				continue
			}
			entries = append(entries, entry{r, GlyphID(gid)})
		}
		// Cmap subtable iteration order is format-dependent; the pipeline
		// needs strictly increasing codepoints.
		sort.Slice(entries, func(i, j int) bool { return entries[i].r < entries[j].r })
		for _, e := range entries {
			if !yield(e.r, e.gid) {
				return
			}
		}
	}
}

// GlyphMetrics loads a glyph's bitmap geometry without rasterizing it.
// The dimensions agree exactly with what Rasterize later produces.
func (f *Face) GlyphMetrics(g GlyphID) (GlyphMetrics, error) {
	m := GlyphMetrics{Advance: f.advance(g)}
	switch d := f.face.GlyphData(font.GID(g)).(type) {
	case font.GlyphOutline:
		pl := outlinePlacement(d.Segments, f.scale)
		m.Width = pl.x1 - pl.x0
		m.Height = pl.y1 - pl.y0
		m.LeftBearing = pl.x0
		m.TopBearing = pl.y1
	case font.GlyphBitmap:
		m.Width = d.Width
		m.Height = d.Height
		m.TopBearing = d.Height
	case font.GlyphSVG:
		if ext, ok := f.face.GlyphExtents(font.GID(g)); ok {
			m.Width = int(math.Ceil(float64(ext.Width * f.scale)))
			m.Height = int(math.Ceil(float64(-ext.Height * f.scale)))
			m.LeftBearing = int(math.Floor(float64(ext.XBearing * f.scale)))
			m.TopBearing = int(math.Ceil(float64(ext.YBearing * f.scale)))
		}
	default:
		return GlyphMetrics{}, fmt.Errorf("glyph %d: %w", g, ErrMissingGlyph)
	}
	return m, nil
}

// Metrics returns the face-wide vertical metrics at the current pixel
// size.
func (f *Face) Metrics() Metrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		// No usable hhea/OS2 data; synthesize from the em size.
		asc := f.toFixed(float32(f.font.Upem()))
		return Metrics{Ascender: asc, Height: asc}
	}
	return Metrics{
		Ascender:  f.toFixed(ext.Ascender),
		Descender: f.toFixed(ext.Descender),
		Height:    f.toFixed(ext.Ascender - ext.Descender + ext.LineGap),
	}
}

// advance returns the horizontal advance in 26.6 subpixels, respecting
// the active variation coordinates.
func (f *Face) advance(g GlyphID) fixed.Int26_6 {
	return f.toFixed(f.face.HorizontalAdvance(font.GID(g)))
}

// toFixed scales a font-unit value to pixels and converts to 26.6.
func (f *Face) toFixed(fontUnits float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(fontUnits*f.scale) * 64))
}
