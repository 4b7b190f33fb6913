package fontface

import "strconv"

// PixelMode identifies the memory layout of rasterized glyph pixels.
// The taxonomy mirrors FreeType's pixel modes so callers can report
// unsupported layouts precisely.
type PixelMode int

const (
	// PixelModeNone means no pixel data.
	PixelModeNone PixelMode = iota

	// PixelModeMono is 1 bit per pixel, most significant bit first,
	// with a row stride of ceil(width/8) bytes.
	PixelModeMono

	// PixelModeGray is 8-bit coverage, one byte per pixel, with a row
	// stride of at least width bytes.
	PixelModeGray

	// PixelModeGray2 is packed 2-bit gray. Never produced here; present
	// so foreign bitmaps can be identified.
	PixelModeGray2

	// PixelModeGray4 is packed 4-bit gray.
	PixelModeGray4

	// PixelModeLCD is horizontal sub-pixel RGB coverage.
	PixelModeLCD

	// PixelModeLCDV is vertical sub-pixel RGB coverage.
	PixelModeLCDV

	// PixelModeBGRA is pre-blended color data, as found in emoji fonts
	// with embedded bitmap or SVG glyphs.
	PixelModeBGRA
)

// pixelModeNames maps PixelMode to string names.
var pixelModeNames = [...]string{
	PixelModeNone:  "None",
	PixelModeMono:  "Mono",
	PixelModeGray:  "Gray",
	PixelModeGray2: "Gray2",
	PixelModeGray4: "Gray4",
	PixelModeLCD:   "LCD",
	PixelModeLCDV:  "LCDV",
	PixelModeBGRA:  "BGRA",
}

// String returns the name of the pixel mode.
func (m PixelMode) String() string {
	if m >= 0 && int(m) < len(pixelModeNames) {
		return pixelModeNames[m]
	}
	return "Unknown(" + strconv.Itoa(int(m)) + ")"
}

// RenderMode selects the rasterization style.
type RenderMode int

const (
	// RenderModeGray produces antialiased 8-bit coverage.
	RenderModeGray RenderMode = iota

	// RenderModeMono produces 1-bit bitmaps by thresholding coverage.
	RenderModeMono
)

// Bitmap is one rasterized glyph image.
type Bitmap struct {
	// Mode describes the layout of Pixels.
	Mode PixelMode

	// Width and Height are the bitmap dimensions in pixels.
	Width  int
	Height int

	// Stride is the number of bytes per row.
	Stride int

	// Pixels holds Stride*Height bytes of pixel data.
	Pixels []byte
}
