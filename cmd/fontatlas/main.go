// Command fontatlas rasterizes a font's glyphs into a packed
// grayscale atlas plus a JSON sidecar describing glyph geometry and
// the codepoint mapping.
//
// Usage:
//
//	fontatlas -font Roboto.ttf -out ./atlas -size 32 -range 32:126
//
// The -range and -axis flags repeat. Without -range every codepoint
// the font maps is included.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/fontface"
)

// rangeFlags collects repeated -range first:last values. Bounds are
// validated at parse time so a bad range fails before the font is
// even opened.
type rangeFlags []fontatlas.CodepointRange

func (f *rangeFlags) String() string {
	parts := make([]string, len(*f))
	for i, r := range *f {
		parts[i] = fmt.Sprintf("%d:%d", r.First, r.Last)
	}
	return strings.Join(parts, ",")
}

func (f *rangeFlags) Set(s string) error {
	first, last, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("expected first:last, got %q", s)
	}
	lo, err := parseCodepoint(first)
	if err != nil {
		return err
	}
	hi, err := parseCodepoint(last)
	if err != nil {
		return err
	}
	if lo >= hi {
		return fmt.Errorf("invalid range %d:%d: last must be greater than first", lo, hi)
	}
	*f = append(*f, fontatlas.CodepointRange{First: lo, Last: hi})
	return nil
}

// parseCodepoint accepts decimal, 0x-prefixed hex, and U+ notation.
func parseCodepoint(s string) (uint32, error) {
	t := s
	if rest, ok := strings.CutPrefix(s, "U+"); ok {
		t = "0x" + rest
	}
	v, err := strconv.ParseUint(t, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad codepoint %q", s)
	}
	return uint32(v), nil
}

// axisFlags collects repeated -axis tag=value pairs.
type axisFlags []fontface.Variation

func (f *axisFlags) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = fmt.Sprintf("%s=%g", v.Tag, v.Value)
	}
	return strings.Join(parts, ",")
}

func (f *axisFlags) Set(s string) error {
	tag, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected tag=value, got %q", s)
	}
	if len(tag) == 0 || len(tag) > 4 {
		return fmt.Errorf("bad axis tag %q", tag)
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("bad axis value %q", val)
	}
	*f = append(*f, fontface.Variation{Tag: tag, Value: v})
	return nil
}

func main() {
	var (
		fontPath = flag.String("font", "", "font file to read (required)")
		outDir   = flag.String("out", "", "output directory for atlas.png and map.json (required)")
		size     = flag.Int("size", fontface.DefaultPixelSize, "nominal glyph height in pixels")
		mono     = flag.Bool("mono", false, "render 1-bit glyphs instead of antialiased")
		verbose  = flag.Bool("v", false, "log pipeline details")
		ranges   rangeFlags
		axes     axisFlags
	)
	flag.Var(&ranges, "range", "codepoint range first:last, repeatable (default: all mapped codepoints)")
	flag.Var(&axes, "axis", "variable font axis tag=value, repeatable")
	flag.Parse()

	if *fontPath == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "fontatlas: -font and -out are required")
		flag.Usage()
		os.Exit(2)
	}
	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "fontatlas: -size must be positive, got %d\n", *size)
		os.Exit(2)
	}

	if *verbose {
		fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	start := time.Now()
	res, err := fontatlas.Build(fontatlas.Config{
		FontPath:   *fontPath,
		PixelSize:  *size,
		Ranges:     ranges,
		Variations: axes,
		Mono:       *mono,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fontatlas: %v\n", err)
		os.Exit(1)
	}
	if err := res.WriteFiles(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "fontatlas: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d glyphs, %d codepoints, %dx%d atlas in %.3f ms\n",
		res.Glyphs.Len(), len(res.Glyphs.Codepoints()),
		res.Atlas.Width, res.Atlas.Height,
		float64(time.Since(start).Microseconds())/1000)
}
