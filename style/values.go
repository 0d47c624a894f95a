package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"strings"

	"github.com/khalidelborai/gilt-tui/css"
)

// Display controls whether a node participates in layout at all.
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayNone
)

func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "block"
}

// Visibility hides a node while keeping its layout slot.
type Visibility uint8

const (
	Visible Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// Overflow selects clipping behavior for content exceeding a node's box.
type Overflow uint8

const (
	OverflowHidden Overflow = iota
	OverflowScroll
	OverflowAuto
)

func (o Overflow) String() string {
	switch o {
	case OverflowScroll:
		return "scroll"
	case OverflowAuto:
		return "auto"
	}
	return "hidden"
}

// LayoutDirection selects how a container arranges its children.
type LayoutDirection uint8

const (
	Vertical LayoutDirection = iota
	Horizontal
	Grid
)

func (l LayoutDirection) String() string {
	switch l {
	case Horizontal:
		return "horizontal"
	case Grid:
		return "grid"
	}
	return "vertical"
}

// Dock pins a node to an edge of its container. The zero value means no
// docking.
type Dock uint8

const (
	NoDock Dock = iota
	DockTop
	DockRight
	DockBottom
	DockLeft
)

func (d Dock) String() string {
	switch d {
	case DockTop:
		return "top"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	}
	return "none"
}

// TextAlign positions text within a node's content box.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// BorderKind selects the glyph set used to draw a node's border.
type BorderKind uint8

const (
	BorderNone BorderKind = iota
	BorderThin
	BorderHeavy
	BorderDouble
	BorderRound
	BorderAscii
)

func (b BorderKind) String() string {
	switch b {
	case BorderThin:
		return "thin"
	case BorderHeavy:
		return "heavy"
	case BorderDouble:
		return "double"
	case BorderRound:
		return "round"
	case BorderAscii:
		return "ascii"
	}
	return "none"
}

// Border combines a border kind with an optional color. A default color
// means the border is drawn in the node's foreground color.
type Border struct {
	Kind  BorderKind
	Color css.Color
}

// Equal compares two borders.
func (b Border) Equal(other Border) bool {
	return b.Kind == other.Kind && b.Color.Equal(other.Color)
}

func (b Border) String() string {
	if b.Color.IsDefault() {
		return b.Kind.String()
	}
	return b.Kind.String() + " " + b.Color.String()
}

// TextFlag is a single text attribute.
type TextFlag uint8

const (
	Bold TextFlag = 1 << iota
	Dim
	Italic
	Underline
	Strikethrough
	Reverse

	allTextFlags = Bold | Dim | Italic | Underline | Strikethrough | Reverse
)

var textFlagNames = []struct {
	flag TextFlag
	name string
}{
	{Bold, "bold"}, {Dim, "dim"}, {Italic, "italic"},
	{Underline, "underline"}, {Strikethrough, "strikethrough"}, {Reverse, "reverse"},
}

// TextStyle is a set of tri-state text attributes: each flag is either
// explicitly on, explicitly off, or unspecified. Unspecified flags fall
// through to the inherited text style during resolution; 'text-style:
// none' sets every flag explicitly off, cancelling inherited attributes.
// The zero value specifies nothing.
type TextStyle struct {
	mask uint8 // which flags are specified
	on   uint8 // on/off for specified flags
}

// PlainText is the text style with every attribute explicitly off.
func PlainText() TextStyle {
	return TextStyle{mask: uint8(allTextFlags)}
}

// With returns a copy with the given flags explicitly on.
func (ts TextStyle) With(f TextFlag) TextStyle {
	ts.mask |= uint8(f)
	ts.on |= uint8(f)
	return ts
}

// Without returns a copy with the given flags explicitly off.
func (ts TextStyle) Without(f TextFlag) TextStyle {
	ts.mask |= uint8(f)
	ts.on &^= uint8(f)
	return ts
}

// Has denotes whether all given flags are on.
func (ts TextStyle) Has(f TextFlag) bool {
	return ts.on&uint8(f) == uint8(f)
}

// Specifies denotes whether the style says anything about the given flags.
func (ts TextStyle) Specifies(f TextFlag) bool {
	return ts.mask&uint8(f) == uint8(f)
}

// Over lays the receiver's specified flags over a base style, keeping the
// base's state for unspecified ones.
func (ts TextStyle) Over(base TextStyle) TextStyle {
	return TextStyle{
		mask: base.mask | ts.mask,
		on:   base.on&^ts.mask | ts.on,
	}
}

func (ts TextStyle) String() string {
	if ts.mask != 0 && ts.on == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range textFlagNames {
		if ts.Specifies(fn.flag) && ts.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "unset"
	}
	return strings.Join(parts, " ")
}
