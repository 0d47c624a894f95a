package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/khalidelborai/gilt-tui/css"
	"github.com/khalidelborai/gilt-tui/css/scanner"
	"github.com/khalidelborai/gilt-tui/style"
)

// applyDeclaration validates one declaration against the property table
// and stores the typed value in the target set. A non-nil return is the
// diagnostic for a rejected declaration; the set is then left untouched.
func applyDeclaration(target *style.Set, name string, offset int, values []scanner.Token) *Diagnostic {
	switch name {
	case "display":
		kw, d := singleKeyword(name, offset, values)
		if d != nil {
			return d
		}
		switch kw {
		case "block":
			target.Display = ptr(style.DisplayBlock)
		case "none":
			target.Display = ptr(style.DisplayNone)
		default:
			return invalid(name, offset, "expected block|none, got %q", kw)
		}
	case "visibility":
		kw, d := singleKeyword(name, offset, values)
		if d != nil {
			return d
		}
		switch kw {
		case "visible":
			target.Visibility = ptr(style.Visible)
		case "hidden":
			target.Visibility = ptr(style.Hidden)
		default:
			return invalid(name, offset, "expected visible|hidden, got %q", kw)
		}
	case "layout":
		kw, d := singleKeyword(name, offset, values)
		if d != nil {
			return d
		}
		switch kw {
		case "vertical":
			target.Layout = ptr(style.Vertical)
		case "horizontal":
			target.Layout = ptr(style.Horizontal)
		case "grid":
			target.Layout = ptr(style.Grid)
		default:
			return invalid(name, offset, "expected vertical|horizontal|grid, got %q", kw)
		}
	case "dock":
		kw, d := singleKeyword(name, offset, values)
		if d != nil {
			return d
		}
		switch kw {
		case "top":
			target.Dock = ptr(style.DockTop)
		case "right":
			target.Dock = ptr(style.DockRight)
		case "bottom":
			target.Dock = ptr(style.DockBottom)
		case "left":
			target.Dock = ptr(style.DockLeft)
		case "none":
			target.Dock = ptr(style.NoDock)
		default:
			return invalid(name, offset, "expected top|right|bottom|left|none, got %q", kw)
		}
	case "overflow":
		o, d := parseOverflow(name, offset, values)
		if d != nil {
			return d
		}
		target.OverflowX = ptr(o)
		target.OverflowY = ptr(o)
	case "overflow-x":
		o, d := parseOverflow(name, offset, values)
		if d != nil {
			return d
		}
		target.OverflowX = ptr(o)
	case "overflow-y":
		o, d := parseOverflow(name, offset, values)
		if d != nil {
			return d
		}
		target.OverflowY = ptr(o)
	case "width", "height", "min-width", "min-height", "max-width", "max-height":
		s, d := singleScalar(name, offset, values)
		if d != nil {
			return d
		}
		switch name {
		case "width":
			target.Width = ptr(s)
		case "height":
			target.Height = ptr(s)
		case "min-width":
			target.MinWidth = ptr(s)
		case "min-height":
			target.MinHeight = ptr(s)
		case "max-width":
			target.MaxWidth = ptr(s)
		case "max-height":
			target.MaxHeight = ptr(s)
		}
	case "margin", "padding":
		box, d := parseScalarBox(name, offset, values)
		if d != nil {
			return d
		}
		if name == "margin" {
			target.Margin = ptr(box)
		} else {
			target.Padding = ptr(box)
		}
	case "color", "background":
		if len(values) != 1 {
			return invalid(name, offset, "expected 1 color value, got %d", len(values))
		}
		c, d := parseColor(name, values[0])
		if d != nil {
			return d
		}
		if name == "color" {
			target.Color = ptr(c)
		} else {
			target.Background = ptr(c)
		}
	case "text-align":
		kw, d := singleKeyword(name, offset, values)
		if d != nil {
			return d
		}
		switch kw {
		case "left":
			target.TextAlign = ptr(style.AlignLeft)
		case "center":
			target.TextAlign = ptr(style.AlignCenter)
		case "right":
			target.TextAlign = ptr(style.AlignRight)
		default:
			return invalid(name, offset, "expected left|center|right, got %q", kw)
		}
	case "text-style":
		ts, d := parseTextStyle(offset, values)
		if d != nil {
			return d
		}
		target.TextStyle = ptr(ts)
	case "border":
		b, d := parseBorder(offset, values)
		if d != nil {
			return d
		}
		target.Border = ptr(b)
	default:
		return &Diagnostic{Offset: offset, Msg: fmt.Sprintf("unknown property %q", name)}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func invalid(property string, offset int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Offset: offset,
		Msg:    fmt.Sprintf("invalid value for %q: %s", property, fmt.Sprintf(format, args...)),
	}
}

// singleKeyword extracts the sole identifier value of a declaration.
func singleKeyword(property string, offset int, values []scanner.Token) (string, *Diagnostic) {
	if len(values) != 1 {
		return "", invalid(property, offset, "expected 1 value, got %d", len(values))
	}
	if values[0].Kind != scanner.Ident {
		return "", invalid(property, offset, "expected keyword, got %s %q",
			values[0].Kind, values[0].Lexeme)
	}
	return values[0].Lexeme, nil
}

func parseOverflow(property string, offset int, values []scanner.Token) (style.Overflow, *Diagnostic) {
	kw, d := singleKeyword(property, offset, values)
	if d != nil {
		return 0, d
	}
	switch kw {
	case "hidden":
		return style.OverflowHidden, nil
	case "scroll":
		return style.OverflowScroll, nil
	case "auto":
		return style.OverflowAuto, nil
	}
	return 0, invalid(property, offset, "expected hidden|scroll|auto, got %q", kw)
}

func singleScalar(property string, offset int, values []scanner.Token) (css.Scalar, *Diagnostic) {
	if len(values) != 1 {
		return css.Scalar{}, invalid(property, offset, "expected 1 value, got %d", len(values))
	}
	return parseScalar(property, values[0])
}

// parseScalar converts a Number, Dimension or 'auto' token into a Scalar.
// Cell counts and percent/viewport dimensions must be whole numbers; only
// fr values may carry a fraction.
func parseScalar(property string, tok scanner.Token) (css.Scalar, *Diagnostic) {
	switch tok.Kind {
	case scanner.Number:
		n, d := wholeNumber(property, tok, tok.Lexeme)
		if d != nil {
			return css.Scalar{}, d
		}
		return css.Cells(n), nil
	case scanner.Dimension:
		if strings.HasSuffix(tok.Lexeme, "%") {
			n, d := wholeNumber(property, tok, tok.Lexeme[:len(tok.Lexeme)-1])
			if d != nil {
				return css.Scalar{}, d
			}
			return css.Percentage(n), nil
		}
		num, unit := tok.Lexeme[:len(tok.Lexeme)-2], tok.Lexeme[len(tok.Lexeme)-2:]
		switch unit {
		case "fr":
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return css.Scalar{}, invalid(property, tok.Start, "bad fraction %q", tok.Lexeme)
			}
			return css.Fraction(f), nil
		case "vw", "vh":
			n, d := wholeNumber(property, tok, num)
			if d != nil {
				return css.Scalar{}, d
			}
			if unit == "vw" {
				return css.ViewWidth(n), nil
			}
			return css.ViewHeight(n), nil
		}
		return css.Scalar{}, invalid(property, tok.Start, "unknown unit in %q", tok.Lexeme)
	case scanner.Ident:
		if strings.EqualFold(tok.Lexeme, "auto") {
			return css.AutoScalar(), nil
		}
	}
	return css.Scalar{}, invalid(property, tok.Start, "expected dimension or auto, got %s %q",
		tok.Kind, tok.Lexeme)
}

// wholeNumber parses a numeric literal that must not have a fractional
// part.
func wholeNumber(property string, tok scanner.Token, lit string) (int64, *Diagnostic) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, invalid(property, tok.Start, "bad number %q", lit)
	}
	if f != math.Trunc(f) {
		return 0, invalid(property, tok.Start, "expected a whole number, got %q", lit)
	}
	return int64(f), nil
}

// parseScalarBox expands the 1-4 value box shorthand:
//
//	1 value:  all sides
//	2 values: vertical, horizontal
//	3 values: top, horizontal, bottom
//	4 values: top, right, bottom, left
func parseScalarBox(property string, offset int, values []scanner.Token) (css.ScalarBox, *Diagnostic) {
	scalars := make([]css.Scalar, 0, 4)
	for _, v := range values {
		s, d := parseScalar(property, v)
		if d != nil {
			return css.ScalarBox{}, d
		}
		scalars = append(scalars, s)
	}
	switch len(scalars) {
	case 1:
		return css.BoxAll(scalars[0]), nil
	case 2:
		return css.BoxSymmetric(scalars[0], scalars[1]), nil
	case 3:
		return css.BoxTRBL(scalars[0], scalars[1], scalars[2], scalars[1]), nil
	case 4:
		return css.BoxTRBL(scalars[0], scalars[1], scalars[2], scalars[3]), nil
	}
	return css.ScalarBox{}, invalid(property, offset, "expected 1-4 values, got %d", len(scalars))
}

// parseColor accepts a named color or a hex color token.
func parseColor(property string, tok scanner.Token) (css.Color, *Diagnostic) {
	switch tok.Kind {
	case scanner.Ident:
		c, ok := css.NamedColor(tok.Lexeme)
		if !ok {
			return css.Color{}, invalid(property, tok.Start, "unknown color name %q", tok.Lexeme)
		}
		return c, nil
	case scanner.HexColor:
		c, err := css.ParseHexColor(tok.Lexeme[1:])
		if err != nil {
			return css.Color{}, invalid(property, tok.Start, "%v", err)
		}
		return c, nil
	}
	return css.Color{}, invalid(property, tok.Start, "expected color name or hex color, got %s %q",
		tok.Kind, tok.Lexeme)
}

// parseTextStyle accepts one or more attribute keywords; 'none' turns
// every attribute explicitly off.
func parseTextStyle(offset int, values []scanner.Token) (style.TextStyle, *Diagnostic) {
	if len(values) == 0 {
		return style.TextStyle{}, invalid("text-style", offset, "expected at least 1 value")
	}
	var ts style.TextStyle
	for _, v := range values {
		if v.Kind != scanner.Ident {
			return style.TextStyle{}, invalid("text-style", v.Start,
				"expected attribute keyword, got %s %q", v.Kind, v.Lexeme)
		}
		switch v.Lexeme {
		case "bold":
			ts = ts.With(style.Bold)
		case "dim":
			ts = ts.With(style.Dim)
		case "italic":
			ts = ts.With(style.Italic)
		case "underline":
			ts = ts.With(style.Underline)
		case "strikethrough":
			ts = ts.With(style.Strikethrough)
		case "reverse":
			ts = ts.With(style.Reverse)
		case "none":
			ts = style.PlainText()
		default:
			return style.TextStyle{}, invalid("text-style", v.Start,
				"unknown attribute %q", v.Lexeme)
		}
	}
	return ts, nil
}

// parseBorder accepts a border kind keyword with an optional color.
func parseBorder(offset int, values []scanner.Token) (style.Border, *Diagnostic) {
	if len(values) == 0 || len(values) > 2 {
		return style.Border{}, invalid("border", offset, "expected kind with optional color, got %d values",
			len(values))
	}
	if values[0].Kind != scanner.Ident {
		return style.Border{}, invalid("border", values[0].Start,
			"expected border kind, got %s %q", values[0].Kind, values[0].Lexeme)
	}
	var b style.Border
	switch values[0].Lexeme {
	case "none":
		b.Kind = style.BorderNone
	case "thin":
		b.Kind = style.BorderThin
	case "heavy":
		b.Kind = style.BorderHeavy
	case "double":
		b.Kind = style.BorderDouble
	case "round":
		b.Kind = style.BorderRound
	case "ascii":
		b.Kind = style.BorderAscii
	default:
		return style.Border{}, invalid("border", values[0].Start,
			"expected none|thin|heavy|double|round|ascii, got %q", values[0].Lexeme)
	}
	if len(values) == 2 {
		c, d := parseColor("border", values[1])
		if d != nil {
			return style.Border{}, d
		}
		b.Color = c
	}
	return b, nil
}
