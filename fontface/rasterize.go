package fontface

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// placement is a glyph's pixel-space bounding box after scaling.
// x0/y0/x1/y1 follow the font convention: y grows upward, so y1 is the
// top bearing and y1-y0 the bitmap height.
type placement struct {
	x0, y0, x1, y1 int
}

// outlinePlacement computes the pixel bounds of a scaled outline. The
// box covers all on-curve and control points, so it can only over-cover
// the filled shape; both the metrics pass and the render pass use it,
// which keeps their dimensions bit-identical.
func outlinePlacement(segs []font.Segment, scale float32) placement {
	if len(segs) == 0 {
		return placement{}
	}
	minX := float32(math.Inf(1))
	minY := float32(math.Inf(1))
	maxX := float32(math.Inf(-1))
	maxY := float32(math.Inf(-1))
	for _, seg := range segs {
		for i := 0; i < segmentArgs(seg.Op); i++ {
			x := seg.Args[i].X * scale
			y := seg.Args[i].Y * scale
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	pl := placement{
		x0: int(math.Floor(float64(minX))),
		y0: int(math.Floor(float64(minY))),
		x1: int(math.Ceil(float64(maxX))),
		y1: int(math.Ceil(float64(maxY))),
	}
	return pl
}

// segmentArgs returns how many points in Args a segment op uses.
func segmentArgs(op opentype.SegmentOp) int {
	switch op {
	case opentype.SegmentOpQuadTo:
		return 2
	case opentype.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// Rasterize renders a glyph at the face's pixel size.
//
// Outline glyphs become PixelModeGray coverage, or PixelModeMono when
// mode is RenderModeMono. Embedded color glyphs (bitmap strikes, SVG)
// are returned as PixelModeBGRA for the caller to accept or reject.
func (f *Face) Rasterize(g GlyphID, mode RenderMode) (*Bitmap, error) {
	switch d := f.face.GlyphData(font.GID(g)).(type) {
	case font.GlyphOutline:
		return f.rasterizeOutline(d.Segments, mode), nil
	case font.GlyphBitmap:
		return &Bitmap{
			Mode:   PixelModeBGRA,
			Width:  d.Width,
			Height: d.Height,
			Pixels: d.Data,
		}, nil
	case font.GlyphSVG:
		return &Bitmap{Mode: PixelModeBGRA}, nil
	default:
		return nil, fmt.Errorf("glyph %d: %w", g, ErrMissingGlyph)
	}
}

// rasterizeOutline scales, flips and fills an outline into a coverage
// bitmap. The glyph origin maps to pixel (-x0, y1) so that the returned
// bitmap matches the bearings reported by GlyphMetrics.
func (f *Face) rasterizeOutline(segs []font.Segment, mode RenderMode) *Bitmap {
	pl := outlinePlacement(segs, f.scale)
	w, h := pl.x1-pl.x0, pl.y1-pl.y0
	if w <= 0 || h <= 0 {
		return &Bitmap{Mode: PixelModeGray}
	}

	// x/image/vector wants coordinates in the positive quadrant with y
	// growing downward.
	tx := func(p font.SegmentPoint) (float32, float32) {
		return p.X*f.scale - float32(pl.x0), float32(pl.y1) - p.Y*f.scale
	}

	var rast vector.Rasterizer
	rast.Reset(w, h)
	rast.DrawOp = draw.Src
	started := false
	for _, seg := range segs {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if started {
				rast.ClosePath()
			}
			x, y := tx(seg.Args[0])
			rast.MoveTo(x, y)
			started = true
		case opentype.SegmentOpLineTo:
			x, y := tx(seg.Args[0])
			rast.LineTo(x, y)
		case opentype.SegmentOpQuadTo:
			cx, cy := tx(seg.Args[0])
			x, y := tx(seg.Args[1])
			rast.QuadTo(cx, cy, x, y)
		case opentype.SegmentOpCubeTo:
			c1x, c1y := tx(seg.Args[0])
			c2x, c2y := tx(seg.Args[1])
			x, y := tx(seg.Args[2])
			rast.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if started {
		rast.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if mode == RenderModeMono {
		return monoBitmap(mask.Pix, mask.Stride, w, h)
	}
	return &Bitmap{
		Mode:   PixelModeGray,
		Width:  w,
		Height: h,
		Stride: mask.Stride,
		Pixels: mask.Pix,
	}
}

// monoBitmap thresholds 8-bit coverage at 0x80 into a 1-bit bitmap,
// most significant bit first, row stride ceil(width/8).
func monoBitmap(coverage []byte, stride, w, h int) *Bitmap {
	monoStride := (w + 7) / 8
	pix := make([]byte, monoStride*h)
	for y := 0; y < h; y++ {
		srcRow := coverage[y*stride:]
		dstRow := pix[y*monoStride:]
		for x := 0; x < w; x++ {
			if srcRow[x] >= 0x80 {
				dstRow[x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return &Bitmap{
		Mode:   PixelModeMono,
		Width:  w,
		Height: h,
		Stride: monoStride,
		Pixels: pix,
	}
}
