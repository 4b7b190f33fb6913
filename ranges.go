package fontatlas

import (
	"unicode"
)

// CodepointRange is an inclusive span of codepoints.
type CodepointRange struct {
	First uint32
	Last  uint32
}

// ResolveRanges turns the requested codepoint selection into the range
// list the collector walks.
//
// Explicit ranges are validated (Last must be strictly greater than
// First) and returned in input order, unmodified: overlapping or
// adjacent explicit ranges are the caller's responsibility. When no
// explicit ranges are given, the font's charmap is enumerated instead
// and split into maximal contiguous runs; a font without any codepoint
// mapping yields ErrNoCharmap.
func ResolveRanges(explicit []CodepointRange, src Source) ([]CodepointRange, error) {
	if len(explicit) > 0 {
		for _, r := range explicit {
			if r.First >= r.Last {
				return nil, &InvalidRangeError{First: r.First, Last: r.Last}
			}
		}
		return explicit, nil
	}
	return discoverRanges(src)
}

// discoverRanges walks the charmap in codepoint order, closing a range
// whenever the next mapped codepoint is not exactly previous+1.
func discoverRanges(src Source) ([]CodepointRange, error) {
	var ranges []CodepointRange
	var first, last uint32
	started := false
	for r := range src.Charmap() {
		cp := uint32(r)
		switch {
		case !started:
			first, last = cp, cp
			started = true
		case cp == last+1:
			last = cp
		default:
			ranges = append(ranges, CodepointRange{First: first, Last: last})
			first, last = cp, cp
		}
	}
	if !started {
		return nil, ErrNoCharmap
	}
	ranges = append(ranges, CodepointRange{First: first, Last: last})

	Logger().Debug("discovered codepoint ranges", "ranges", len(ranges), "first", ranges[0].First, "last", ranges[len(ranges)-1].Last)
	return ranges, nil
}

// RangesFromTable converts a unicode.RangeTable into codepoint ranges,
// preserving the table's order. Entries with a stride greater than one
// expand into single-codepoint spans.
//
// Useful together with x/text's rangetable package to request standard
// Unicode scripts:
//
//	ranges := fontatlas.RangesFromTable(rangetable.Merge(unicode.Latin, unicode.Greek))
//
// Note that single-codepoint spans are valid collector input but are
// rejected by ResolveRanges' explicit-range validation, which mirrors
// the command line's stricter contract. Pass RangesFromTable output to
// Collect directly, or widen it, when the table contains isolated
// codepoints.
func RangesFromTable(tab *unicode.RangeTable) []CodepointRange {
	var out []CodepointRange
	for _, r := range tab.R16 {
		out = appendStride(out, uint32(r.Lo), uint32(r.Hi), uint32(r.Stride))
	}
	for _, r := range tab.R32 {
		out = appendStride(out, r.Lo, r.Hi, r.Stride)
	}
	return out
}

func appendStride(out []CodepointRange, lo, hi, stride uint32) []CodepointRange {
	if stride <= 1 {
		return append(out, CodepointRange{First: lo, Last: hi})
	}
	for cp := lo; cp <= hi; cp += stride {
		out = append(out, CodepointRange{First: cp, Last: cp})
	}
	return out
}
