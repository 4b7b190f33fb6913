package fontatlas

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/fontatlas/atlasmap"
	"github.com/gogpu/fontatlas/fontface"
	"github.com/gogpu/fontatlas/internal/binpack"
)

// Config selects what to build.
type Config struct {
	// FontPath locates the font file to open. Used by Build;
	// BuildFromSource ignores it.
	FontPath string

	// PixelSize is the nominal glyph height. Zero means
	// fontface.DefaultPixelSize.
	PixelSize int

	// Ranges lists the codepoint spans to collect. Empty means every
	// codepoint the font maps.
	Ranges []CodepointRange

	// Variations pins variable-font axes before rasterizing.
	Variations []fontface.Variation

	// Mono selects threshold rendering instead of antialiased
	// coverage.
	Mono bool
}

// Result is a finished atlas build.
type Result struct {
	Atlas   *Atlas
	Glyphs  *GlyphTable
	Rects   []binpack.Rect
	Ranges  []CodepointRange
	Metrics fontface.Metrics

	// Sidecar is the encodable description of the atlas.
	Sidecar *atlasmap.File
}

// Build opens the font named by cfg.FontPath and runs the full
// pipeline. Any failure aborts the build; no partial output is
// produced.
func Build(cfg Config) (*Result, error) {
	opts := []fontface.Option{}
	if cfg.PixelSize > 0 {
		opts = append(opts, fontface.WithPixelSize(cfg.PixelSize))
	}
	if len(cfg.Variations) > 0 {
		opts = append(opts, fontface.WithVariations(cfg.Variations))
	}
	face, err := fontface.Open(cfg.FontPath, opts...)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	return BuildFromSource(cfg, face)
}

// BuildFromSource runs the pipeline against an already-open glyph
// source: resolve ranges, collect and deduplicate glyphs, pack,
// composite, and encode the sidecar description.
func BuildFromSource(cfg Config, src Source) (*Result, error) {
	ranges, err := ResolveRanges(cfg.Ranges, src)
	if err != nil {
		return nil, err
	}

	table, rects, err := Collect(ranges, src)
	if err != nil {
		return nil, err
	}

	width, height := Pack(rects)
	atlas := NewAtlas(width, height)

	mode := fontface.RenderModeGray
	if cfg.Mono {
		mode = fontface.RenderModeMono
	}
	if err := Composite(table, rects, atlas, src, mode); err != nil {
		return nil, err
	}

	metrics := src.Metrics()
	res := &Result{
		Atlas:   atlas,
		Glyphs:  table,
		Rects:   rects,
		Ranges:  ranges,
		Metrics: metrics,
		Sidecar: sidecar(table, rects, metrics),
	}

	Logger().Info("atlas built",
		"glyphs", table.Len(),
		"codepoints", len(table.Codepoints()),
		"width", width,
		"height", height)
	return res, nil
}

// sidecar flattens the glyph table into the wire description. Glyphs
// appear in table order, so the sidecar's implicit glyph numbering is
// the record index; advances and face metrics drop their subpixel
// fraction.
func sidecar(table *GlyphTable, rects []binpack.Rect, metrics fontface.Metrics) *atlasmap.File {
	f := &atlasmap.File{
		Glyphs:     make([]atlasmap.Glyph, 0, table.Len()),
		Codepoints: make([]atlasmap.Codepoint, 0, len(table.Codepoints())),
		Metrics: atlasmap.Metrics{
			Ascender:  int(metrics.Ascender >> 6),
			Descender: int(metrics.Descender >> 6),
			Height:    int(metrics.Height >> 6),
		},
	}
	for _, rec := range table.Records() {
		g := atlasmap.Glyph{
			Width:       rec.Metrics.Width,
			Height:      rec.Metrics.Height,
			LeftBearing: rec.Metrics.LeftBearing,
			TopBearing:  rec.Metrics.TopBearing,
			Advance:     int(rec.Metrics.Advance >> 6),
		}
		if rec.Rect != NoRect {
			g.X = rects[rec.Rect].X
			g.Y = rects[rec.Rect].Y
		}
		f.Glyphs = append(f.Glyphs, g)
	}
	for _, ref := range table.Codepoints() {
		f.Codepoints = append(f.Codepoints, atlasmap.Codepoint{
			Codepoint: ref.Codepoint,
			Glyph:     ref.Record,
		})
	}
	return f
}

// WriteFiles writes atlas.png and map.json into dir, creating it if
// needed. The atlas is written first; a sidecar failure leaves the
// image behind but reports the error.
func (r *Result) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	pngPath := filepath.Join(dir, "atlas.png")
	if err := r.Atlas.SavePNG(pngPath); err != nil {
		return err
	}

	data, err := atlasmap.Encode(r.Sidecar)
	if err != nil {
		return fmt.Errorf("encode sidecar: %w", err)
	}
	mapPath := filepath.Join(dir, "map.json")
	if err := os.WriteFile(mapPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", mapPath, err)
	}

	Logger().Debug("wrote output", "atlas", pngPath, "map", mapPath)
	return nil
}
