package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/khalidelborai/gilt-tui/css"
)

// Computed is a total style: every property carries a value. Computed
// styles are built by the cascade resolver, starting from InitialStyle
// and layering inherited and declared values on top.
type Computed struct {
	Display    Display
	Visibility Visibility
	Layout     LayoutDirection
	Dock       Dock
	OverflowX  Overflow
	OverflowY  Overflow

	Width     css.Scalar
	Height    css.Scalar
	MinWidth  css.Scalar
	MinHeight css.Scalar
	MaxWidth  css.Scalar
	MaxHeight css.Scalar

	Margin  css.ScalarBox
	Padding css.ScalarBox

	Color      css.Color
	Background css.Color

	TextAlign TextAlign
	TextStyle TextStyle

	Border Border
}

// InitialStyle returns the fixed initial default for every property.
func InitialStyle() Computed {
	return Computed{
		Display:    DisplayBlock,
		Visibility: Visible,
		Layout:     Vertical,
		Dock:       NoDock,
		OverflowX:  OverflowHidden,
		OverflowY:  OverflowHidden,
		Width:      css.AutoScalar(),
		Height:     css.AutoScalar(),
		MinWidth:   css.Cells(0),
		MinHeight:  css.Cells(0),
		MaxWidth:   css.AutoScalar(),
		MaxHeight:  css.AutoScalar(),
		Margin:     css.BoxAll(css.Cells(0)),
		Padding:    css.BoxAll(css.Cells(0)),
		Color:      css.DefaultColor(),
		Background: css.DefaultColor(),
		TextAlign:  AlignLeft,
		TextStyle:  TextStyle{},
		Border:     Border{Kind: BorderNone},
	}
}

// Apply copies a property value from a partial set into the computed
// style, reporting whether the set had the property. Text styles are laid
// over the current value so that unspecified flags keep their inherited
// state.
func (c *Computed) Apply(p Property, s Set) bool {
	if !s.Has(p) {
		return false
	}
	switch p {
	case PropDisplay:
		c.Display = *s.Display
	case PropVisibility:
		c.Visibility = *s.Visibility
	case PropLayout:
		c.Layout = *s.Layout
	case PropDock:
		c.Dock = *s.Dock
	case PropOverflowX:
		c.OverflowX = *s.OverflowX
	case PropOverflowY:
		c.OverflowY = *s.OverflowY
	case PropWidth:
		c.Width = *s.Width
	case PropHeight:
		c.Height = *s.Height
	case PropMinWidth:
		c.MinWidth = *s.MinWidth
	case PropMinHeight:
		c.MinHeight = *s.MinHeight
	case PropMaxWidth:
		c.MaxWidth = *s.MaxWidth
	case PropMaxHeight:
		c.MaxHeight = *s.MaxHeight
	case PropMargin:
		c.Margin = *s.Margin
	case PropPadding:
		c.Padding = *s.Padding
	case PropColor:
		c.Color = *s.Color
	case PropBackground:
		c.Background = *s.Background
	case PropTextAlign:
		c.TextAlign = *s.TextAlign
	case PropTextStyle:
		c.TextStyle = s.TextStyle.Over(c.TextStyle)
	case PropBorder:
		c.Border = *s.Border
	}
	return true
}

// Inherit copies an inheritable property's value from the parent's
// computed style. Non-inheritable properties are left alone.
func (c *Computed) Inherit(p Property, parent Computed) {
	if !p.Inherited() {
		return
	}
	switch p {
	case PropVisibility:
		c.Visibility = parent.Visibility
	case PropColor:
		c.Color = parent.Color
	case PropTextAlign:
		c.TextAlign = parent.TextAlign
	case PropTextStyle:
		c.TextStyle = parent.TextStyle
	}
}

// Equal compares two computed styles value by value.
func (c Computed) Equal(other Computed) bool {
	return c.Display == other.Display &&
		c.Visibility == other.Visibility &&
		c.Layout == other.Layout &&
		c.Dock == other.Dock &&
		c.OverflowX == other.OverflowX &&
		c.OverflowY == other.OverflowY &&
		c.Width.Equal(other.Width) &&
		c.Height.Equal(other.Height) &&
		c.MinWidth.Equal(other.MinWidth) &&
		c.MinHeight.Equal(other.MinHeight) &&
		c.MaxWidth.Equal(other.MaxWidth) &&
		c.MaxHeight.Equal(other.MaxHeight) &&
		c.Margin.Equal(other.Margin) &&
		c.Padding.Equal(other.Padding) &&
		c.Color.Equal(other.Color) &&
		c.Background.Equal(other.Background) &&
		c.TextAlign == other.TextAlign &&
		c.TextStyle == other.TextStyle &&
		c.Border.Equal(other.Border)
}

func (c Computed) String() string {
	return fmt.Sprintf("{display: %s; visibility: %s; layout: %s; dock: %s; "+
		"overflow: %s %s; width: %s; height: %s; min: %s %s; max: %s %s; "+
		"margin: %s; padding: %s; color: %s; background: %s; text-align: %s; "+
		"text-style: %s; border: %s}",
		c.Display, c.Visibility, c.Layout, c.Dock,
		c.OverflowX, c.OverflowY, c.Width, c.Height,
		c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight,
		c.Margin, c.Padding, c.Color, c.Background, c.TextAlign,
		c.TextStyle, c.Border)
}
