package atlasmap

import (
	"encoding/json"
	"fmt"
)

// Decode parses wire bytes and reconstructs absolute values by summing
// each field's delta chain.
func Decode(data []byte) (*File, error) {
	var w wireFile
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("atlasmap: decode: %w", err)
	}
	if w.Version != Version {
		return nil, &VersionError{Version: w.Version}
	}
	if len(w.Glyphs)%glyphFields != 0 {
		return nil, ErrGlyphCount
	}
	if len(w.Codepoints)%2 != 0 {
		return nil, ErrCodepointCount
	}

	f := &File{
		Glyphs:     make([]Glyph, 0, len(w.Glyphs)/glyphFields),
		Codepoints: make([]Codepoint, 0, len(w.Codepoints)/2),
		Metrics:    w.Metrics,
	}

	var g Glyph
	for i := 0; i < len(w.Glyphs); i += glyphFields {
		g.Width += int(w.Glyphs[i])
		g.Height += int(w.Glyphs[i+1])
		g.LeftBearing += int(w.Glyphs[i+2])
		g.TopBearing += int(w.Glyphs[i+3])
		g.Advance += int(w.Glyphs[i+4])
		g.X += int(w.Glyphs[i+5])
		g.Y += int(w.Glyphs[i+6])
		f.Glyphs = append(f.Glyphs, g)
	}

	var c Codepoint
	for i := 0; i < len(w.Codepoints); i += 2 {
		c.Codepoint = uint32(int64(c.Codepoint) + w.Codepoints[i]) //nolint:gosec // deltas round-trip values the encoder produced
		c.Glyph += int(w.Codepoints[i+1])
		f.Codepoints = append(f.Codepoints, c)
	}

	return f, nil
}
