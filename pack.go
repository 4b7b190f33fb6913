package fontatlas

import (
	"math"

	"github.com/gogpu/fontatlas/internal/binpack"
)

// Pack lays out the padded glyph rectangles and returns the atlas
// dimensions. Rectangle positions are written in place.
//
// The initial canvas guess is the square root of the summed widths by
// the square root of the summed heights; when the rectangles do not
// fit, both sides grow by a fifth and packing retries. After a
// successful pack the canvas is shrunk to the tight bounding box of
// the placed rectangles, and the pad reserved by Collect is stripped
// so every rectangle addresses its glyph's pixels directly.
func Pack(rects []binpack.Rect) (width, height int) {
	if len(rects) == 0 {
		return 0, 0
	}

	var sumW, sumH int
	for _, r := range rects {
		sumW += r.W
		sumH += r.H
	}
	width = int(math.Sqrt(float64(sumW)))
	height = int(math.Sqrt(float64(sumH)))

	for !binpack.Pack(rects, width, height) {
		nw := int(float64(width) * 1.2)
		nh := int(float64(height) * 1.2)
		// Integer truncation can stall small canvases.
		if nw <= width {
			nw = width + 1
		}
		if nh <= height {
			nh = height + 1
		}
		width, height = nw, nh
		Logger().Debug("atlas canvas grown", "width", width, "height", height)
	}

	width, height = 0, 0
	for _, r := range rects {
		if x := r.X + r.W; x > width {
			width = x
		}
		if y := r.Y + r.H; y > height {
			height = y
		}
	}

	for i := range rects {
		rects[i].X += rectPad
		rects[i].Y += rectPad
		rects[i].W -= 2 * rectPad
		rects[i].H -= 2 * rectPad
	}

	Logger().Debug("packed atlas", "rects", len(rects), "width", width, "height", height)
	return width, height
}
