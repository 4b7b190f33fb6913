package fontatlas

import (
	"sort"

	"github.com/gogpu/fontatlas/fontface"
)

// NoRect marks a glyph record that owns no atlas rectangle, either
// because its bitmap is empty (a space) or because packing has not run
// yet.
const NoRect = -1

// GlyphRecord is one distinct glyph selected for the atlas.
type GlyphRecord struct {
	ID      fontface.GlyphID
	Metrics fontface.GlyphMetrics

	// Rect indexes the packed rectangle slice, or NoRect for
	// zero-area glyphs.
	Rect int
}

// GlyphTable holds the deduplicated glyph set ordered by increasing
// glyph index, together with the codepoint pairs that reference it.
// The order is what makes atlas output deterministic: two runs over
// the same ranges always enumerate glyphs identically.
type GlyphTable struct {
	records []GlyphRecord

	// codepoints pairs each mapped codepoint with the record index
	// of its glyph, in collection order.
	codepoints []CodepointRef
}

// CodepointRef ties a mapped codepoint to its glyph's record index.
type CodepointRef struct {
	Codepoint uint32
	Record    int
}

// Add inserts a record for id if the table does not hold one yet and
// returns the record's index either way.
func (t *GlyphTable) Add(id fontface.GlyphID, m fontface.GlyphMetrics) int {
	i, ok := t.find(id)
	if ok {
		return i
	}
	t.records = append(t.records, GlyphRecord{})
	copy(t.records[i+1:], t.records[i:])
	t.records[i] = GlyphRecord{ID: id, Metrics: m, Rect: NoRect}
	// Existing codepoint refs at or past the insertion point shift by
	// one record.
	for j := range t.codepoints {
		if t.codepoints[j].Record >= i {
			t.codepoints[j].Record++
		}
	}
	return i
}

// AddCodepoint records that cp maps to the glyph at record index rec.
func (t *GlyphTable) AddCodepoint(cp uint32, rec int) {
	t.codepoints = append(t.codepoints, CodepointRef{Codepoint: cp, Record: rec})
}

// Has reports whether the table holds a record for id.
func (t *GlyphTable) Has(id fontface.GlyphID) bool {
	_, ok := t.find(id)
	return ok
}

// Lookup returns the record index for id.
func (t *GlyphTable) Lookup(id fontface.GlyphID) (int, bool) {
	return t.find(id)
}

// find locates id, or the index where it would be inserted.
func (t *GlyphTable) find(id fontface.GlyphID) (int, bool) {
	i := sort.Search(len(t.records), func(i int) bool {
		return t.records[i].ID >= id
	})
	return i, i < len(t.records) && t.records[i].ID == id
}

// Len returns the number of distinct glyphs.
func (t *GlyphTable) Len() int { return len(t.records) }

// Records exposes the record slice ordered by glyph index. The caller
// may mutate Rect fields in place.
func (t *GlyphTable) Records() []GlyphRecord { return t.records }

// Codepoints returns the collected codepoint pairs in collection
// order.
func (t *GlyphTable) Codepoints() []CodepointRef { return t.codepoints }
