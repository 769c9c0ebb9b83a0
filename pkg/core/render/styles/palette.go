package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/monthgraph/pkg/core/classify"
	"github.com/matzehuels/monthgraph/pkg/errors"
)

// Color is a non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ParseColor accepts #rrggbb or #aarrggbb.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, errors.New(errors.ErrCodeInvalidInput, "invalid color %q (want #rrggbb or #aarrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	c := Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the opaque #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ARGB returns the #aarrggbb form.
func (c Color) ARGB() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// Opacity returns alpha in [0, 1].
func (c Color) Opacity() float64 {
	return float64(c.A) / 0xff
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool { return c.A == 0xff }

// Palette is the set of colors a month graph is drawn with.
type Palette struct {
	Past   Color
	Today  Color
	Future Color
	Label  Color
}

// DefaultPalette is the graph's standard coloring.
var DefaultPalette = Palette{
	Past:   MustParseColor("#339eb2"),
	Today:  MustParseColor("#ffffff"),
	Future: MustParseColor("#545a8c"),
	Label:  MustParseColor("#66ffffff"),
}

// For returns the bar color for a day class.
func (p Palette) For(c classify.Class) Color {
	switch c {
	case classify.Past:
		return p.Past
	case classify.Today:
		return p.Today
	default:
		return p.Future
	}
}

// PaletteSpec is the textual form of a Palette, as found in config files.
// Empty fields keep the default color.
type PaletteSpec struct {
	Past   string `toml:"past" json:"past,omitempty"`
	Today  string `toml:"today" json:"today,omitempty"`
	Future string `toml:"future" json:"future,omitempty"`
	Label  string `toml:"label" json:"label,omitempty"`
}

// Resolve parses spec on top of DefaultPalette.
func (spec PaletteSpec) Resolve() (Palette, error) {
	p := DefaultPalette
	fields := []struct {
		raw string
		dst *Color
	}{
		{spec.Past, &p.Past},
		{spec.Today, &p.Today},
		{spec.Future, &p.Future},
		{spec.Label, &p.Label},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := ParseColor(f.raw)
		if err != nil {
			return Palette{}, err
		}
		*f.dst = c
	}
	return p, nil
}
