package fontatlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/fontatlas/fontface"
)

// Sentinel errors for the fontatlas package.
var (
	// ErrNoCharmap is returned when range auto-discovery finds no
	// codepoint mapping in the font.
	ErrNoCharmap = errors.New("fontatlas: font has no charmap")
)

// InvalidRangeError reports an explicit codepoint range whose bounds are
// equal or inverted.
type InvalidRangeError struct {
	First, Last uint32
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("fontatlas: invalid range %d..%d: last must be greater than first", e.First, e.Last)
}

// UnsupportedPixelModeError reports a rasterized pixel layout the
// compositor cannot normalize into the single-channel atlas. Decoding a
// layout we do not understand would corrupt the atlas silently, so this
// is a hard stop.
type UnsupportedPixelModeError struct {
	Glyph fontface.GlyphID
	Mode  fontface.PixelMode
}

func (e *UnsupportedPixelModeError) Error() string {
	return fmt.Sprintf("fontatlas: glyph %d: unsupported pixel mode %s", e.Glyph, e.Mode)
}
