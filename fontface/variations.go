package fontface

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Variation sets one variable-font axis by OpenType tag.
type Variation struct {
	// Tag is the four-character axis tag, e.g. "wght".
	Tag string

	// Value is the design-space value, e.g. 700.
	Value float64
}

// Axis describes one variation axis declared by a font's fvar table.
type Axis struct {
	Tag     string
	Minimum float64
	Default float64
	Maximum float64
}

// Axes returns the variation axes the font declares, in fvar order.
// The result is empty for static fonts.
func (f *Face) Axes() []Axis {
	out := make([]Axis, len(f.axes))
	copy(out, f.axes)
	return out
}

// SetVariations validates the given axis values against the font's
// declared axes and applies them. Axes not listed keep their default
// value. Passing values for a static font returns ErrNoVariableAxes;
// an unknown tag returns *UnknownAxisError; a value outside the axis
// bounds returns *AxisRangeError.
func (f *Face) SetVariations(vars []Variation) error {
	if len(vars) == 0 {
		return nil
	}
	sel, err := resolveVariations(f.axes, vars)
	if err != nil {
		return err
	}
	f.face.SetVariations(sel)
	return nil
}

// resolveVariations checks requested axis values against the declared
// axes and converts them to the representation the font layer applies.
func resolveVariations(axes []Axis, vars []Variation) ([]font.Variation, error) {
	if len(axes) == 0 {
		return nil, ErrNoVariableAxes
	}
	sel := make([]font.Variation, 0, len(vars))
	for _, v := range vars {
		ax, ok := findAxis(axes, v.Tag)
		if !ok {
			return nil, &UnknownAxisError{Tag: v.Tag, Valid: axisTags(axes)}
		}
		if v.Value < ax.Minimum || v.Value > ax.Maximum {
			return nil, &AxisRangeError{Tag: ax.Tag, Value: v.Value, Min: ax.Minimum, Max: ax.Maximum}
		}
		sel = append(sel, font.Variation{
			Tag:   opentype.MustNewTag(ax.Tag),
			Value: float32(v.Value),
		})
	}
	return sel, nil
}

func findAxis(axes []Axis, tag string) (Axis, bool) {
	for _, ax := range axes {
		if ax.Tag == tag {
			return ax, true
		}
	}
	return Axis{}, false
}

func axisTags(axes []Axis) []string {
	tags := make([]string, len(axes))
	for i, ax := range axes {
		tags[i] = ax.Tag
	}
	return tags
}

// parseAxes reads the fvar table, returning nil for static fonts or
// unreadable tables. Axis bounds are kept in design units for
// validation; normalization happens inside the font layer.
func parseAxes(ld *opentype.Loader) []Axis {
	raw, err := ld.RawTable(opentype.MustNewTag("fvar"))
	if err != nil {
		return nil
	}
	fv, _, err := tables.ParseFvar(raw)
	if err != nil {
		return nil
	}
	axes := make([]Axis, len(fv.Axis))
	for i, a := range fv.Axis {
		axes[i] = Axis{
			Tag:     a.Tag.String(),
			Minimum: float64(a.Minimum),
			Default: float64(a.Default),
			Maximum: float64(a.Maximum),
		}
	}
	return axes
}
