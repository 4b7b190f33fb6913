// Package binpack places rectangles into a bounded area without overlap.
//
// It provides the packing primitive used by the atlas builder: an
// all-or-nothing Pack call that either positions every rectangle inside
// the given canvas or reports failure and leaves the caller to retry
// with a larger canvas.
//
// The algorithm organizes rectangles in horizontal "shelves". Rectangles
// are placed tallest-first so each shelf stays densely filled; positions
// are written back in the caller's original order.
package binpack

import "sort"

// Rect is one rectangle to place. W and H are set by the caller before
// packing; X and Y are filled in by Pack on success.
type Rect struct {
	W, H int
	X, Y int
}

// shelf is a horizontal strip of the canvas.
type shelf struct {
	y      int // top of the strip
	height int // tallest rectangle placed so far
	x      int // next free slot
}

// Pack positions every rectangle inside a width×height canvas, writing
// X and Y in place. It returns false when the rectangles do not all fit,
// or when any rectangle has a non-positive dimension; positions are
// undefined after a failed call.
//
// Pack is deterministic: the same input always produces the same layout.
func Pack(rects []Rect, width, height int) bool {
	if len(rects) == 0 {
		return true
	}
	if width <= 0 || height <= 0 {
		return false
	}

	// Place tallest (then widest) first. Sorting an index slice keeps the
	// caller's rectangle order intact.
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := rects[order[a]], rects[order[b]]
		if ra.H != rb.H {
			return ra.H > rb.H
		}
		return ra.W > rb.W
	})

	shelves := make([]shelf, 0, 16)
	for _, idx := range order {
		r := &rects[idx]
		if r.W <= 0 || r.H <= 0 {
			return false
		}
		x, y, ok := allocate(&shelves, r.W, r.H, width, height)
		if !ok {
			return false
		}
		r.X, r.Y = x, y
	}
	return true
}

// allocate finds a slot for a w×h rectangle, opening a new shelf when no
// existing shelf can take it.
func allocate(shelves *[]shelf, w, h, width, height int) (int, int, bool) {
	if w > width || h > height {
		return 0, 0, false
	}

	for i := range *shelves {
		s := &(*shelves)[i]
		if s.x+w > width || h > s.height {
			continue
		}
		x, y := s.x, s.y
		s.x += w
		return x, y, true
	}

	// Open a new shelf below the last one.
	newY := 0
	if n := len(*shelves); n > 0 {
		last := (*shelves)[n-1]
		newY = last.y + last.height
	}
	if newY+h > height {
		return 0, 0, false
	}
	*shelves = append(*shelves, shelf{y: newY, height: h, x: w})
	return 0, newY, true
}
