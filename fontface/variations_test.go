package fontface

import (
	"errors"
	"strings"
	"testing"
)

var testAxes = []Axis{
	{Tag: "wght", Minimum: 100, Default: 400, Maximum: 900},
	{Tag: "wdth", Minimum: 75, Default: 100, Maximum: 125},
}

func TestResolveVariations_Valid(t *testing.T) {
	sel, err := resolveVariations(testAxes, []Variation{{Tag: "wght", Value: 700}})
	if err != nil {
		t.Fatalf("resolveVariations: %v", err)
	}
	if len(sel) != 1 {
		t.Fatalf("got %d variations, want 1", len(sel))
	}
	if sel[0].Value != 700 {
		t.Errorf("value = %v, want 700", sel[0].Value)
	}
}

func TestResolveVariations_StaticFont(t *testing.T) {
	_, err := resolveVariations(nil, []Variation{{Tag: "wght", Value: 700}})
	if !errors.Is(err, ErrNoVariableAxes) {
		t.Errorf("err = %v, want ErrNoVariableAxes", err)
	}
}

func TestResolveVariations_UnknownAxis(t *testing.T) {
	_, err := resolveVariations(testAxes, []Variation{{Tag: "slnt", Value: -10}})
	var unknownErr *UnknownAxisError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("err = %v, want *UnknownAxisError", err)
	}
	if unknownErr.Tag != "slnt" {
		t.Errorf("Tag = %q, want slnt", unknownErr.Tag)
	}
	// The message lists the axes the font actually declares.
	if msg := err.Error(); !strings.Contains(msg, "wght") || !strings.Contains(msg, "wdth") {
		t.Errorf("message %q should list the valid axes", msg)
	}
}

func TestResolveVariations_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"below minimum", 50},
		{"above maximum", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveVariations(testAxes, []Variation{{Tag: "wght", Value: tt.value}})
			var rangeErr *AxisRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("err = %v, want *AxisRangeError", err)
			}
			if rangeErr.Min != 100 || rangeErr.Max != 900 {
				t.Errorf("bounds = [%g, %g], want [100, 900]", rangeErr.Min, rangeErr.Max)
			}
		})
	}
}

func TestResolveVariations_BoundsInclusive(t *testing.T) {
	for _, value := range []float64{100, 900} {
		if _, err := resolveVariations(testAxes, []Variation{{Tag: "wght", Value: value}}); err != nil {
			t.Errorf("value %g at axis bound should be accepted, got %v", value, err)
		}
	}
}
