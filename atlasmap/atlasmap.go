// Package atlasmap encodes and decodes the atlas sidecar metadata file.
//
// The wire format is a compact JSON document:
//
//	{"version":1,"glyphs":[...],"codepoints":[...],"metrics":{...}}
//
// "glyphs" flattens one 7-tuple per glyph (width, height, left bearing,
// top bearing, advance, atlas x, atlas y) and "codepoints" flattens one
// codepoint/glyph-id pair per mapped codepoint. Both arrays are
// delta-encoded per field: each emitted value is the difference from the
// same field's previous value, with an implicit zero baseline before the
// first entry. A glyph's id in "codepoints" is its 0-based position in
// "glyphs". Consumers reconstruct absolute values by cumulative
// summation, which Decode implements.
//
// All distances are whole pixels; advances and the font metrics are
// truncated from 26.6 fixed point by the producer before encoding.
package atlasmap

import (
	"errors"
	"fmt"
)

// Version is the wire format version this package reads and writes.
const Version = 1

// Sentinel errors for malformed sidecar data.
var (
	// ErrGlyphCount is returned when the glyphs array is not a whole
	// number of 7-tuples.
	ErrGlyphCount = errors.New("atlasmap: glyphs length is not a multiple of 7")

	// ErrCodepointCount is returned when the codepoints array is not a
	// whole number of pairs.
	ErrCodepointCount = errors.New("atlasmap: codepoints length is not a multiple of 2")
)

// VersionError is returned when the sidecar declares a version this
// package does not understand.
type VersionError struct {
	Version int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("atlasmap: unsupported version %d", e.Version)
}

// Glyph is one decoded glyph entry, in glyph-table order.
type Glyph struct {
	// Width and Height are the glyph's bitmap dimensions in pixels.
	Width, Height int

	// LeftBearing and TopBearing position the bitmap relative to the
	// glyph origin on the baseline.
	LeftBearing, TopBearing int

	// Advance is the horizontal advance in whole pixels.
	Advance int

	// X and Y are the bitmap's position in the atlas. Glyphs with an
	// empty bitmap carry 0,0 and occupy no atlas area.
	X, Y int
}

// Codepoint links one codepoint to its glyph's sequential id.
type Codepoint struct {
	// Codepoint is the Unicode scalar value.
	Codepoint uint32

	// Glyph is the 0-based index of the glyph entry it renders with.
	Glyph int
}

// Metrics are the font-wide vertical metrics in whole pixels.
type Metrics struct {
	Ascender  int `json:"ascender"`
	Descender int `json:"descender"`
	Height    int `json:"height"`
}

// File is the decoded sidecar content.
type File struct {
	Glyphs     []Glyph
	Codepoints []Codepoint
	Metrics    Metrics
}

// wireFile mirrors the JSON layout. Field order fixes the key order in
// the encoded output.
type wireFile struct {
	Version    int     `json:"version"`
	Glyphs     []int64 `json:"glyphs"`
	Codepoints []int64 `json:"codepoints"`
	Metrics    Metrics `json:"metrics"`
}

// glyphFields is the number of values in one flattened glyph entry.
const glyphFields = 7
