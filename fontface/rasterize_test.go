package fontface

import (
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

func TestOutlinePlacement_Empty(t *testing.T) {
	pl := outlinePlacement(nil, 1)
	if pl != (placement{}) {
		t.Errorf("empty outline placement = %+v, want zero", pl)
	}
}

func TestOutlinePlacement_Box(t *testing.T) {
	// A 100x150 font-unit box with its bottom-left at (50, -25),
	// scaled by 0.1: x in [5, 15], y in [-2.5, 12.5].
	segs := []font.Segment{
		{Op: opentype.SegmentOpMoveTo, Args: [3]font.SegmentPoint{{X: 50, Y: -25}}},
		{Op: opentype.SegmentOpLineTo, Args: [3]font.SegmentPoint{{X: 150, Y: -25}}},
		{Op: opentype.SegmentOpLineTo, Args: [3]font.SegmentPoint{{X: 150, Y: 125}}},
		{Op: opentype.SegmentOpLineTo, Args: [3]font.SegmentPoint{{X: 50, Y: 125}}},
	}
	pl := outlinePlacement(segs, 0.1)
	want := placement{x0: 5, y0: -3, x1: 15, y1: 13}
	if pl != want {
		t.Errorf("placement = %+v, want %+v", pl, want)
	}
	if w, h := pl.x1-pl.x0, pl.y1-pl.y0; w != 10 || h != 16 {
		t.Errorf("dimensions = %dx%d, want 10x16", w, h)
	}
}

func TestOutlinePlacement_IncludesControlPoints(t *testing.T) {
	segs := []font.Segment{
		{Op: opentype.SegmentOpMoveTo, Args: [3]font.SegmentPoint{{X: 0, Y: 0}}},
		{Op: opentype.SegmentOpQuadTo, Args: [3]font.SegmentPoint{{X: 40, Y: 80}, {X: 80, Y: 0}}},
	}
	pl := outlinePlacement(segs, 1)
	if pl.y1 != 80 {
		t.Errorf("control point not covered: y1 = %d, want 80", pl.y1)
	}
}

func TestSegmentArgs(t *testing.T) {
	tests := []struct {
		op   opentype.SegmentOp
		want int
	}{
		{opentype.SegmentOpMoveTo, 1},
		{opentype.SegmentOpLineTo, 1},
		{opentype.SegmentOpQuadTo, 2},
		{opentype.SegmentOpCubeTo, 3},
	}
	for _, tt := range tests {
		if got := segmentArgs(tt.op); got != tt.want {
			t.Errorf("segmentArgs(%v) = %d, want %d", tt.op, got, tt.want)
		}
	}
}

func TestMonoBitmap(t *testing.T) {
	// 9x2 coverage with stride 10: first row all opaque, second row a
	// single pixel at x=8 just above and one at x=0 just below threshold.
	coverage := make([]byte, 20)
	for x := 0; x < 9; x++ {
		coverage[x] = 0xFF
	}
	coverage[10] = 0x7F // below threshold
	coverage[18] = 0x80 // at threshold
	bm := monoBitmap(coverage, 10, 9, 2)

	if bm.Mode != PixelModeMono {
		t.Fatalf("mode = %v, want Mono", bm.Mode)
	}
	if bm.Stride != 2 {
		t.Fatalf("stride = %d, want 2 (ceil(9/8))", bm.Stride)
	}
	if bm.Pixels[0] != 0xFF || bm.Pixels[1] != 0x80 {
		t.Errorf("row 0 = %08b %08b, want 11111111 10000000", bm.Pixels[0], bm.Pixels[1])
	}
	if bm.Pixels[2] != 0x00 || bm.Pixels[3] != 0x80 {
		t.Errorf("row 1 = %08b %08b, want 00000000 10000000", bm.Pixels[2], bm.Pixels[3])
	}
}

func TestPixelModeString(t *testing.T) {
	if got := PixelModeGray.String(); got != "Gray" {
		t.Errorf("PixelModeGray.String() = %q", got)
	}
	if got := PixelModeBGRA.String(); got != "BGRA" {
		t.Errorf("PixelModeBGRA.String() = %q", got)
	}
	if got := PixelMode(99).String(); got != "Unknown(99)" {
		t.Errorf("PixelMode(99).String() = %q", got)
	}
}
