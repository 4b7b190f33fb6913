package fontface

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fontface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontface: empty font data")

	// ErrNoVariableAxes is returned when axis values are requested for a
	// font that declares no variation axes.
	ErrNoVariableAxes = errors.New("fontface: font has no variation axes")

	// ErrMissingGlyph is returned when a glyph index has no data in the font.
	ErrMissingGlyph = errors.New("fontface: glyph has no data")
)

// UnknownAxisError is returned when a requested variation axis tag does
// not exist in the font.
type UnknownAxisError struct {
	Tag   string
	Valid []string // tags declared by the font
}

func (e *UnknownAxisError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("fontface: axis %q does not exist in this font", e.Tag)
	}
	return fmt.Sprintf("fontface: axis %q does not exist in this font (valid axes: %s)",
		e.Tag, strings.Join(e.Valid, ", "))
}

// AxisRangeError is returned when a variation axis value falls outside
// the bounds the font declares for that axis.
type AxisRangeError struct {
	Tag      string
	Value    float64
	Min, Max float64
}

func (e *AxisRangeError) Error() string {
	return fmt.Sprintf("fontface: axis %s must be %g <= x <= %g, got %g",
		e.Tag, e.Min, e.Max, e.Value)
}
