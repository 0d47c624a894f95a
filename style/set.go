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

// Set is a partial style: nil fields are unset. Rules carry Sets, and the
// cascade merges them. Field values are treated as immutable once stored;
// Merge shares pointers with its inputs.
type Set struct {
	Display    *Display
	Visibility *Visibility
	Layout     *LayoutDirection
	Dock       *Dock
	OverflowX  *Overflow
	OverflowY  *Overflow

	Width     *css.Scalar
	Height    *css.Scalar
	MinWidth  *css.Scalar
	MinHeight *css.Scalar
	MaxWidth  *css.Scalar
	MaxHeight *css.Scalar

	Margin  *css.ScalarBox
	Padding *css.ScalarBox

	Color      *css.Color
	Background *css.Color

	TextAlign *TextAlign
	TextStyle *TextStyle

	Border *Border
}

// IsEmpty denotes whether no property is set.
func (s Set) IsEmpty() bool {
	for p := 0; p < NumProperties; p++ {
		if s.Has(Property(p)) {
			return false
		}
	}
	return true
}

// Has denotes whether a property is set.
func (s Set) Has(p Property) bool {
	switch p {
	case PropDisplay:
		return s.Display != nil
	case PropVisibility:
		return s.Visibility != nil
	case PropLayout:
		return s.Layout != nil
	case PropDock:
		return s.Dock != nil
	case PropOverflowX:
		return s.OverflowX != nil
	case PropOverflowY:
		return s.OverflowY != nil
	case PropWidth:
		return s.Width != nil
	case PropHeight:
		return s.Height != nil
	case PropMinWidth:
		return s.MinWidth != nil
	case PropMinHeight:
		return s.MinHeight != nil
	case PropMaxWidth:
		return s.MaxWidth != nil
	case PropMaxHeight:
		return s.MaxHeight != nil
	case PropMargin:
		return s.Margin != nil
	case PropPadding:
		return s.Padding != nil
	case PropColor:
		return s.Color != nil
	case PropBackground:
		return s.Background != nil
	case PropTextAlign:
		return s.TextAlign != nil
	case PropTextStyle:
		return s.TextStyle != nil
	case PropBorder:
		return s.Border != nil
	}
	return false
}

// Merge returns the receiver overridden by all set fields of over.
func (s Set) Merge(over Set) Set {
	merged := s
	if over.Display != nil {
		merged.Display = over.Display
	}
	if over.Visibility != nil {
		merged.Visibility = over.Visibility
	}
	if over.Layout != nil {
		merged.Layout = over.Layout
	}
	if over.Dock != nil {
		merged.Dock = over.Dock
	}
	if over.OverflowX != nil {
		merged.OverflowX = over.OverflowX
	}
	if over.OverflowY != nil {
		merged.OverflowY = over.OverflowY
	}
	if over.Width != nil {
		merged.Width = over.Width
	}
	if over.Height != nil {
		merged.Height = over.Height
	}
	if over.MinWidth != nil {
		merged.MinWidth = over.MinWidth
	}
	if over.MinHeight != nil {
		merged.MinHeight = over.MinHeight
	}
	if over.MaxWidth != nil {
		merged.MaxWidth = over.MaxWidth
	}
	if over.MaxHeight != nil {
		merged.MaxHeight = over.MaxHeight
	}
	if over.Margin != nil {
		merged.Margin = over.Margin
	}
	if over.Padding != nil {
		merged.Padding = over.Padding
	}
	if over.Color != nil {
		merged.Color = over.Color
	}
	if over.Background != nil {
		merged.Background = over.Background
	}
	if over.TextAlign != nil {
		merged.TextAlign = over.TextAlign
	}
	if over.TextStyle != nil {
		merged.TextStyle = over.TextStyle
	}
	if over.Border != nil {
		merged.Border = over.Border
	}
	return merged
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	appendProp := func(name, value string) {
		if b.Len() > 1 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
	}
	if s.Display != nil {
		appendProp("display", s.Display.String())
	}
	if s.Visibility != nil {
		appendProp("visibility", s.Visibility.String())
	}
	if s.Layout != nil {
		appendProp("layout", s.Layout.String())
	}
	if s.Dock != nil {
		appendProp("dock", s.Dock.String())
	}
	if s.OverflowX != nil {
		appendProp("overflow-x", s.OverflowX.String())
	}
	if s.OverflowY != nil {
		appendProp("overflow-y", s.OverflowY.String())
	}
	if s.Width != nil {
		appendProp("width", s.Width.String())
	}
	if s.Height != nil {
		appendProp("height", s.Height.String())
	}
	if s.MinWidth != nil {
		appendProp("min-width", s.MinWidth.String())
	}
	if s.MinHeight != nil {
		appendProp("min-height", s.MinHeight.String())
	}
	if s.MaxWidth != nil {
		appendProp("max-width", s.MaxWidth.String())
	}
	if s.MaxHeight != nil {
		appendProp("max-height", s.MaxHeight.String())
	}
	if s.Margin != nil {
		appendProp("margin", s.Margin.String())
	}
	if s.Padding != nil {
		appendProp("padding", s.Padding.String())
	}
	if s.Color != nil {
		appendProp("color", s.Color.String())
	}
	if s.Background != nil {
		appendProp("background", s.Background.String())
	}
	if s.TextAlign != nil {
		appendProp("text-align", s.TextAlign.String())
	}
	if s.TextStyle != nil {
		appendProp("text-style", s.TextStyle.String())
	}
	if s.Border != nil {
		appendProp("border", s.Border.String())
	}
	b.WriteString("}")
	return b.String()
}
