package fontatlas

import (
	"fmt"

	"github.com/gogpu/fontatlas/internal/binpack"
)

// rectPad is the transparent border reserved around every glyph in the
// atlas, in pixels on each side. It keeps bilinear samples from
// bleeding into neighbouring glyphs.
const rectPad = 1

// Collect walks the resolved codepoint ranges, loads metrics for every
// distinct glyph, and returns the deduplicated glyph table together
// with the padded rectangles to pack. Rectangles are produced in glyph
// table order; each sized glyph's Rect field indexes into the returned
// slice, zero-area glyphs keep NoRect and produce no rectangle.
//
// A codepoint the font does not map contributes nothing. The glyph at
// index zero is collected like any other so the atlas still carries
// the font's missing-glyph shape, but no codepoint pair points at it.
func Collect(ranges []CodepointRange, src Source) (*GlyphTable, []binpack.Rect, error) {
	table := &GlyphTable{}
	for _, rng := range ranges {
		for cp := rng.First; ; cp++ {
			id := src.GlyphIndex(rune(cp))
			rec, ok := table.Lookup(id)
			if !ok {
				m, err := src.GlyphMetrics(id)
				if err != nil {
					return nil, nil, fmt.Errorf("load glyph %d for U+%04X: %w", id, cp, err)
				}
				rec = table.Add(id, m)
			}
			if id != 0 {
				table.AddCodepoint(cp, rec)
			}
			if cp == rng.Last {
				break
			}
		}
	}

	// Rectangles follow glyph table order so packing input, and with
	// it the packed layout, is identical between runs.
	rects := make([]binpack.Rect, 0, table.Len())
	records := table.Records()
	for i := range records {
		m := records[i].Metrics
		if m.Width <= 0 || m.Height <= 0 {
			continue
		}
		records[i].Rect = len(rects)
		rects = append(rects, binpack.Rect{
			W: m.Width + 2*rectPad,
			H: m.Height + 2*rectPad,
		})
	}

	Logger().Debug("collected glyphs", "glyphs", table.Len(), "rects", len(rects), "codepoints", len(table.Codepoints()))
	return table, rects, nil
}
