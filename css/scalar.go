package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tyse/core/percent"
)

// Unit is the unit tag of a Scalar.
type Unit uint8

// Units understood by the layout subset. Cell is the base unit of the
// terminal grid, Fr distributes remaining space, Percent is relative to
// the parent, Vw/Vh are relative to the viewport.
const (
	Cell Unit = iota
	Fr
	Percent
	Vw
	Vh
	Auto
)

func (u Unit) String() string {
	switch u {
	case Cell:
		return "cell"
	case Fr:
		return "fr"
	case Percent:
		return "%"
	case Vw:
		return "vw"
	case Vh:
		return "vh"
	case Auto:
		return "auto"
	}
	return "<invalid unit>"
}

const (
	scalarNone uint32 = 0

	scalarCell uint32 = 0x0001
	scalarAuto uint32 = 0x0002
	kindMask   uint32 = 0x000f

	scalarFr      uint32 = 0x0100
	scalarVW      uint32 = 0x0200
	scalarVH      uint32 = 0x0300
	scalarPercent uint32 = 0x0400
	relativeMask  uint32 = 0xff00
)

// Scalar is an option type for dimension values in stylesheets.
//
//	type Scalar
//	    = Auto
//	    | Cells n
//	    | Fraction f
//	    | Percentage p
//	    | ViewRel vw|vh n
//
// The zero value is not a valid scalar; use one of the constructors.
type Scalar struct {
	n        int64
	fraction float64
	percent  percent.Percent
	flags    uint32
}

// Cells creates a scalar with an absolute cell count.
func Cells(n int64) Scalar {
	return Scalar{n: n, flags: scalarCell}
}

// Fraction creates a scalar in fraction units (`fr`).
func Fraction(f float64) Scalar {
	return Scalar{fraction: f, flags: scalarFr}
}

// Percentage creates a scalar relative to the parent dimension.
func Percentage(n int64) Scalar {
	return Scalar{n: n, percent: percent.FromInt(int(n)), flags: scalarPercent}
}

// ViewWidth creates a scalar relative to the viewport width.
func ViewWidth(n int64) Scalar {
	return Scalar{n: n, flags: scalarVW}
}

// ViewHeight creates a scalar relative to the viewport height.
func ViewHeight(n int64) Scalar {
	return Scalar{n: n, flags: scalarVH}
}

// AutoScalar creates a scalar of value `auto`.
func AutoScalar() Scalar {
	return Scalar{flags: scalarAuto}
}

// Unit returns the unit tag of a scalar.
func (s Scalar) Unit() Unit {
	switch {
	case s.flags&kindMask == scalarCell:
		return Cell
	case s.flags&kindMask == scalarAuto:
		return Auto
	case s.flags&relativeMask == scalarFr:
		return Fr
	case s.flags&relativeMask == scalarVW:
		return Vw
	case s.flags&relativeMask == scalarVH:
		return Vh
	case s.flags&relativeMask == scalarPercent:
		return Percent
	}
	return Auto
}

// IsAuto denotes if a scalar is of value `auto`.
func (s Scalar) IsAuto() bool {
	return s.flags&kindMask == scalarAuto
}

// Count returns the numeric value for Cell, Percent, Vw and Vh scalars,
// and 0 for every other kind.
func (s Scalar) Count() int64 {
	return s.n
}

// Frac returns the fraction for Fr scalars, 0 otherwise.
func (s Scalar) Frac() float64 {
	return s.fraction
}

// Pcnt returns the percentage for Percent scalars.
func (s Scalar) Pcnt() percent.Percent {
	return s.percent
}

// Equal compares two scalars for kind and value.
func (s Scalar) Equal(other Scalar) bool {
	return s.flags == other.flags && s.n == other.n && s.fraction == other.fraction
}

func (s Scalar) String() string {
	switch s.Unit() {
	case Auto:
		return "auto"
	case Cell:
		return strconv.FormatInt(s.n, 10)
	case Fr:
		return strconv.FormatFloat(s.fraction, 'f', -1, 64) + "fr"
	case Percent:
		return fmt.Sprintf("%d%%", s.n)
	case Vw:
		return strconv.FormatInt(s.n, 10) + "vw"
	case Vh:
		return strconv.FormatInt(s.n, 10) + "vh"
	}
	return "<invalid scalar>"
}

// --- Pattern matching ------------------------------------------------------

// Match returns a matcher for pattern-matching a scalar's kind, e.g.
//
//	var n int64
//	switch m := s.Match(); m {
//	case m.Just(&n):
//	    …
//	case m.IsKind(css.AutoScalar()):
//	    …
//	}
func (s Scalar) Match() *ScalarMatcher {
	return &ScalarMatcher{scalar: s}
}

// ScalarMatcher is a helper type for pattern-matching scalars.
type ScalarMatcher struct {
	scalar Scalar
}

// IsKind matches if the scalar under scrutiny has the same kind as d.
func (m *ScalarMatcher) IsKind(d Scalar) *ScalarMatcher {
	if m.scalar.Unit() == d.Unit() {
		return m
	}
	return nil
}

// Just matches absolute cell counts, optionally extracting the count.
func (m *ScalarMatcher) Just(n *int64) *ScalarMatcher {
	if m.scalar.flags&kindMask == scalarCell {
		if n != nil {
			*n = m.scalar.n
		}
		return m
	}
	return nil
}

// Percentage matches percent scalars, optionally extracting the percentage.
func (m *ScalarMatcher) Percentage(p *percent.Percent) *ScalarMatcher {
	if m.scalar.flags&relativeMask == scalarPercent {
		if p != nil {
			*p = m.scalar.percent
		}
		return m
	}
	return nil
}

// Fraction matches fr scalars, optionally extracting the fraction.
func (m *ScalarMatcher) Fraction(f *float64) *ScalarMatcher {
	if m.scalar.flags&relativeMask == scalarFr {
		if f != nil {
			*f = m.scalar.fraction
		}
		return m
	}
	return nil
}

// --- Scalar boxes ----------------------------------------------------------

// ScalarBox holds four-sided scalar values in the manner of CSS
// margin/padding shorthands.
type ScalarBox struct {
	Top    Scalar
	Right  Scalar
	Bottom Scalar
	Left   Scalar
}

// BoxAll creates a box with the same scalar on all four sides.
func BoxAll(s Scalar) ScalarBox {
	return ScalarBox{Top: s, Right: s, Bottom: s, Left: s}
}

// BoxSymmetric creates a box from vertical and horizontal values.
func BoxSymmetric(vertical, horizontal Scalar) ScalarBox {
	return ScalarBox{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// BoxTRBL creates a box with explicit values for all four sides.
func BoxTRBL(top, right, bottom, left Scalar) ScalarBox {
	return ScalarBox{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Equal compares two boxes side by side.
func (b ScalarBox) Equal(other ScalarBox) bool {
	return b.Top.Equal(other.Top) && b.Right.Equal(other.Right) &&
		b.Bottom.Equal(other.Bottom) && b.Left.Equal(other.Left)
}

func (b ScalarBox) String() string {
	return fmt.Sprintf("%s %s %s %s", b.Top, b.Right, b.Bottom, b.Left)
}
