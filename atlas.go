package fontatlas

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Atlas is the composited single-channel glyph sheet. Pixels holds
// Width*Height coverage bytes in row-major order, 0 for background.
type Atlas struct {
	Width  int
	Height int
	Pixels []byte
}

// NewAtlas returns a zeroed atlas of the given dimensions.
func NewAtlas(width, height int) *Atlas {
	return &Atlas{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height),
	}
}

// Image wraps the atlas pixels in an image.Gray without copying. An
// empty atlas yields a 1x1 black image, since PNG has no zero-sized
// encoding.
func (a *Atlas) Image() *image.Gray {
	if a.Width <= 0 || a.Height <= 0 {
		return image.NewGray(image.Rect(0, 0, 1, 1))
	}
	return &image.Gray{
		Pix:    a.Pixels,
		Stride: a.Width,
		Rect:   image.Rect(0, 0, a.Width, a.Height),
	}
}

// SavePNG writes the atlas to path as a grayscale PNG.
func (a *Atlas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, a.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
