package main

import (
	"testing"

	"github.com/gogpu/fontatlas"
)

func TestRangeFlagSet(t *testing.T) {
	tests := []struct {
		in      string
		want    fontatlas.CodepointRange
		wantErr bool
	}{
		{in: "65:90", want: fontatlas.CodepointRange{First: 65, Last: 90}},
		{in: "0x20:0x7E", want: fontatlas.CodepointRange{First: 0x20, Last: 0x7E}},
		{in: "U+4E00:U+9FFF", want: fontatlas.CodepointRange{First: 0x4E00, Last: 0x9FFF}},
		{in: "65:64", wantErr: true},
		{in: "65:65", wantErr: true},
		{in: "65", wantErr: true},
		{in: "a:b", wantErr: true},
		{in: "-1:10", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f rangeFlags
			err := f.Set(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q): %v", tt.in, err)
			}
			if len(f) != 1 || f[0] != tt.want {
				t.Errorf("Set(%q) = %v, want [%v]", tt.in, f, tt.want)
			}
		})
	}
}

func TestAxisFlagSet(t *testing.T) {
	var f axisFlags
	if err := f.Set("wght=700"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set("wdth=87.5"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if len(f) != 2 || f[0].Tag != "wght" || f[0].Value != 700 || f[1].Tag != "wdth" || f[1].Value != 87.5 {
		t.Errorf("axes = %v", f)
	}

	for _, bad := range []string{"wght", "=700", "toolong=1", "wght=heavy"} {
		if err := f.Set(bad); err == nil {
			t.Errorf("Set(%q) succeeded, want error", bad)
		}
	}
}
