// Package fontface loads a font at a fixed pixel size and rasterizes its
// glyphs into single-channel bitmaps.
//
// It is the glyph supply for the atlas pipeline:
//
//   - Face: a parsed font with a pixel size and variable-font axis values
//     applied
//   - GlyphMetrics: bitmap geometry without rasterizing (metrics pass)
//   - Rasterize: coverage or 1-bit bitmaps on demand (render pass)
//   - Charmap: the font's codepoint→glyph mapping in codepoint order
//
// Font parsing and variable axes come from github.com/go-text/typesetting;
// outline rasterization uses golang.org/x/image/vector. Vertical metrics
// and advances are reported in 26.6 fixed point (64 subpixels per pixel).
//
// # Example usage
//
//	face, err := fontface.Open("Roboto-Regular.ttf",
//	    fontface.WithPixelSize(32),
//	    fontface.WithVariations([]fontface.Variation{{Tag: "wght", Value: 700}}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	gid := face.GlyphIndex('A')
//	bitmap, err := face.Rasterize(gid, fontface.RenderModeGray)
package fontface
