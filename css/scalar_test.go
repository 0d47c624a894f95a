package css_test

import (
	"testing"

	"github.com/khalidelborai/gilt-tui/css"
	"github.com/npillmayer/tyse/core/percent"
)

func TestScalarBasic(t *testing.T) {
	ten := css.Cells(10)
	var n int64
	switch m := ten.Match(); m {
	case m.Just(&n):
		t.Logf("n = %d", n)
	default:
		t.Errorf("expected Cells(10) to be an absolute value, isn't: %v", ten)
	}
	if n != 10 {
		t.Errorf("expected extracted count to be 10, is %d", n)
	}

	auto := css.AutoScalar()
	switch m := auto.Match(); m {
	case m.IsKind(css.AutoScalar()):
		t.Logf("scalar is auto")
	default:
		t.Errorf("expected scalar auto to match auto, isn't: %v", auto)
	}

	pcnt := css.Percentage(80)
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %v", pcnt)
	}

	fr := css.Fraction(1.5)
	var f float64
	switch m := fr.Match(); m {
	case m.Fraction(&f):
		t.Logf("fraction = %v", f)
	default:
		t.Errorf("expected Fraction(1.5) to be an fr value, isn't: %v", fr)
	}
	if f != 1.5 {
		t.Errorf("expected extracted fraction to be 1.5, is %v", f)
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		scalar css.Scalar
		want   string
	}{
		{css.Cells(10), "10"},
		{css.Cells(-3), "-3"},
		{css.Fraction(1), "1fr"},
		{css.Fraction(1.5), "1.5fr"},
		{css.Percentage(50), "50%"},
		{css.ViewWidth(100), "100vw"},
		{css.ViewHeight(80), "80vh"},
		{css.AutoScalar(), "auto"},
	}
	for _, tc := range tests {
		if s := tc.scalar.String(); s != tc.want {
			t.Errorf("expected scalar to print as %q, is %q", tc.want, s)
		}
	}
}

func TestScalarEqual(t *testing.T) {
	if !css.Cells(5).Equal(css.Cells(5)) {
		t.Error("expected Cells(5) to equal Cells(5), doesn't")
	}
	if css.Cells(5).Equal(css.Percentage(5)) {
		t.Error("expected Cells(5) not to equal Percentage(5), does")
	}
	if css.AutoScalar().Equal(css.Cells(0)) {
		t.Error("expected auto not to equal Cells(0), does")
	}
}

func TestScalarBox(t *testing.T) {
	all := css.BoxAll(css.Cells(2))
	if !all.Top.Equal(css.Cells(2)) || !all.Left.Equal(css.Cells(2)) {
		t.Errorf("expected all sides to be 2, box is %v", all)
	}
	sym := css.BoxSymmetric(css.Cells(1), css.Cells(2))
	if !sym.Top.Equal(css.Cells(1)) || !sym.Bottom.Equal(css.Cells(1)) {
		t.Errorf("expected vertical sides to be 1, box is %v", sym)
	}
	if !sym.Left.Equal(css.Cells(2)) || !sym.Right.Equal(css.Cells(2)) {
		t.Errorf("expected horizontal sides to be 2, box is %v", sym)
	}
	trbl := css.BoxTRBL(css.Cells(1), css.Cells(2), css.Cells(3), css.Cells(4))
	if !trbl.Equal(trbl) {
		t.Error("expected box to equal itself, doesn't")
	}
	if trbl.Equal(all) {
		t.Error("expected distinct boxes not to be equal, are")
	}
}

func TestScalarUnits(t *testing.T) {
	if u := css.Cells(1).Unit(); u != css.Cell {
		t.Errorf("expected unit of Cells(1) to be cell, is %s", u)
	}
	if u := css.Fraction(1).Unit(); u != css.Fr {
		t.Errorf("expected unit of Fraction(1) to be fr, is %s", u)
	}
	if u := css.Percentage(1).Unit(); u != css.Percent {
		t.Errorf("expected unit of Percentage(1) to be %%, is %s", u)
	}
	if !css.AutoScalar().IsAuto() {
		t.Error("expected AutoScalar to be auto, isn't")
	}
}
