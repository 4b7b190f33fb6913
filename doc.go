// Package fontatlas builds a packed glyph atlas and its metadata sidecar
// from a font.
//
// # Overview
//
// fontatlas rasterizes a requested set of codepoints from a single font
// into one tightly packed single-channel bitmap, for renderers that draw
// text as textured quads (an HTML canvas, a GPU quad batch). Alongside
// the image it produces a compact JSON sidecar (see the atlasmap package)
// describing glyph geometry, the packing layout, and the
// codepoint→glyph mapping.
//
// # Quick Start
//
//	import "github.com/gogpu/fontatlas"
//
//	res, err := fontatlas.Build(fontatlas.Config{
//	    FontPath:  "Roboto-Regular.ttf",
//	    PixelSize: 32,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := res.WriteFiles("out"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Build runs five stages in order, each consuming the previous stage's
// output: range resolution (explicit ranges or charmap auto-discovery),
// glyph collection (deduplication by glyph index), rectangle packing
// with adaptive canvas growth, compositing into the atlas bitmap, and
// sidecar encoding. A failure at any stage aborts the run; the output
// files are only written together, after every stage has succeeded.
//
// The module is organized into:
//   - fontatlas: the pipeline stages and orchestration
//   - fontface: font loading and glyph rasterization
//   - atlasmap: the sidecar wire format codec
//   - internal/binpack: the rectangle packing primitive
package fontatlas
