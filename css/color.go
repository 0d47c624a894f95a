package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strings"
)

const (
	colorDefault uint8 = iota
	colorNamed
	colorRGB
)

// Color is a terminal color: either one of the 16 named ANSI colors, the
// terminal's default color, or a 24-bit RGB value with optional alpha.
// The zero value is the terminal default.
type Color struct {
	kind    uint8
	name    string
	r, g, b uint8
	a       uint8
}

// DefaultColor returns the terminal's default fore- or background color.
func DefaultColor() Color {
	return Color{}
}

// ansiNames is the closed set of recognized color names.
var ansiNames = map[string]struct{}{
	"black": {}, "red": {}, "green": {}, "yellow": {},
	"blue": {}, "magenta": {}, "cyan": {}, "white": {},
	"bright-black": {}, "bright-red": {}, "bright-green": {}, "bright-yellow": {},
	"bright-blue": {}, "bright-magenta": {}, "bright-cyan": {}, "bright-white": {},
	"gray": {}, "grey": {},
}

// NamedColor creates a color from an ANSI color name. The second return
// value is false if the name is not in the recognized palette.
func NamedColor(name string) (Color, bool) {
	name = strings.ToLower(name)
	if name == "default" {
		return DefaultColor(), true
	}
	if _, ok := ansiNames[name]; !ok {
		return Color{}, false
	}
	return Color{kind: colorNamed, name: name}, true
}

// RGB creates an opaque 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b, a: 0xff}
}

// RGBA creates a 24-bit color with an alpha component.
func RGBA(r, g, b, a uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b, a: a}
}

// ParseHexColor parses a hex color of 3, 6 or 8 digits, without the
// leading '#'. 3-digit colors expand each digit ("f0a" => "ff00aa").
func ParseHexColor(hex string) (Color, error) {
	digits := make([]uint8, 0, 8)
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("illegal hex digit %q in color #%s", hex[i], hex)
		}
		digits = append(digits, d)
	}
	switch len(digits) {
	case 3:
		return RGB(digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 6:
		return RGB(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8:
		return RGBA(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5],
			digits[6]<<4|digits[7]), nil
	}
	return Color{}, fmt.Errorf("hex color #%s must have 3, 6 or 8 digits", hex)
}

// ParseColor parses a textual color value: either a '#'-prefixed hex
// color or a name from the recognized palette.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s[1:])
	}
	c, ok := NamedColor(s)
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return c, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsDefault denotes if a color is the terminal default.
func (c Color) IsDefault() bool {
	return c.kind == colorDefault
}

// Name returns the color name for named colors, "" otherwise.
func (c Color) Name() string {
	return c.name
}

// RGBA returns the color channels for RGB colors. Named and default
// colors report ok=false; translating names to channels is left to the
// terminal driver.
func (c Color) RGBA() (r, g, b, a uint8, ok bool) {
	if c.kind != colorRGB {
		return 0, 0, 0, 0, false
	}
	return c.r, c.g, c.b, c.a, true
}

// Equal compares two colors.
func (c Color) Equal(other Color) bool {
	return c == other
}

func (c Color) String() string {
	switch c.kind {
	case colorDefault:
		return "default"
	case colorNamed:
		return c.name
	}
	if c.a != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}
