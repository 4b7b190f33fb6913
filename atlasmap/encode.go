package atlasmap

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a File into the delta-encoded wire format.
//
// Glyphs must already be in glyph-table order and Codepoints in request
// order: both delta chains depend on it, and the glyph ids embedded in
// Codepoints refer to positions in Glyphs.
func Encode(f *File) ([]byte, error) {
	w := wireFile{
		Version:    Version,
		Glyphs:     make([]int64, 0, len(f.Glyphs)*glyphFields),
		Codepoints: make([]int64, 0, len(f.Codepoints)*2),
		Metrics:    f.Metrics,
	}

	var prev Glyph
	for _, g := range f.Glyphs {
		w.Glyphs = append(w.Glyphs,
			int64(g.Width)-int64(prev.Width),
			int64(g.Height)-int64(prev.Height),
			int64(g.LeftBearing)-int64(prev.LeftBearing),
			int64(g.TopBearing)-int64(prev.TopBearing),
			int64(g.Advance)-int64(prev.Advance),
			int64(g.X)-int64(prev.X),
			int64(g.Y)-int64(prev.Y),
		)
		prev = g
	}

	var prevCp uint32
	var prevID int
	for _, c := range f.Codepoints {
		w.Codepoints = append(w.Codepoints,
			int64(c.Codepoint)-int64(prevCp),
			int64(c.Glyph)-int64(prevID),
		)
		prevCp = c.Codepoint
		prevID = c.Glyph
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("atlasmap: encode: %w", err)
	}
	return data, nil
}
