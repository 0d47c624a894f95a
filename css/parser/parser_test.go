package parser_test

import (
	"testing"

	"github.com/khalidelborai/gilt-tui/css"
	"github.com/khalidelborai/gilt-tui/css/parser"
	"github.com/khalidelborai/gilt-tui/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// parse is a helper expecting a clean parse.
func parse(t *testing.T, src string) *parser.Sheet {
	t.Helper()
	sheet, diags, err := parser.Parse(src, parser.LayerUser)
	if err != nil {
		t.Fatalf("expected %q to parse, got error: %v", src, err)
	}
	if len(diags) > 0 {
		t.Fatalf("expected no diagnostics for %q, got %v", src, diags)
	}
	return sheet
}

func TestParseRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "Button { color: red; width: 50%; }")
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if len(rule.Selectors) != 1 || rule.Selectors[0].String() != "Button" {
		t.Errorf("expected selector 'Button', is %v", rule.Selectors)
	}
	red, _ := css.NamedColor("red")
	if rule.Declared.Color == nil || !rule.Declared.Color.Equal(red) {
		t.Errorf("expected declared color red, is %v", rule.Declared.Color)
	}
	if rule.Declared.Width == nil || !rule.Declared.Width.Equal(css.Percentage(50)) {
		t.Errorf("expected declared width 50%%, is %v", rule.Declared.Width)
	}
}

func TestParseCompoundVersusDescendant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	// no whitespace: one compound constraining type and class
	sheet := parse(t, "Panel.item { color: red }")
	sel := sheet.Rules[0].Selectors[0]
	if len(sel.Compounds) != 1 {
		t.Fatalf("expected 'Panel.item' to be one compound, got %d", len(sel.Compounds))
	}
	if sel.Compounds[0].Type != "Panel" || len(sel.Compounds[0].Classes) != 1 {
		t.Errorf("expected type Panel with one class, is %v", sel.Compounds[0])
	}

	// whitespace: two compounds joined by a descendant combinator
	sheet = parse(t, "Panel .item { color: red }")
	sel = sheet.Rules[0].Selectors[0]
	if len(sel.Compounds) != 2 {
		t.Fatalf("expected 'Panel .item' to be two compounds, got %d", len(sel.Compounds))
	}
	if sel.Combinators[0] != parser.Descendant {
		t.Errorf("expected a descendant combinator, is %v", sel.Combinators[0])
	}
}

func TestParseChildCombinator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "Container > Button.primary:hover { color: red }")
	sel := sheet.Rules[0].Selectors[0]
	if len(sel.Compounds) != 2 || sel.Combinators[0] != parser.Child {
		t.Fatalf("expected two compounds joined by '>', is %v", sel)
	}
	leaf := sel.Compounds[1]
	if leaf.Type != "Button" || len(leaf.Classes) != 1 || len(leaf.Pseudos) != 1 {
		t.Errorf("expected Button.primary:hover constraints, is %v", leaf)
	}
	if leaf.Pseudos[0] != "hover" {
		t.Errorf("expected pseudo-state 'hover' without colon, is %q", leaf.Pseudos[0])
	}
}

func TestParseSelectorList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "Button, #sidebar, .primary, * { color: red }")
	sels := sheet.Rules[0].Selectors
	if len(sels) != 4 {
		t.Fatalf("expected 4 alternative selectors, got %d", len(sels))
	}
	if sels[1].Compounds[0].ID != "sidebar" {
		t.Errorf("expected second selector to constrain id, is %v", sels[1])
	}
	if !sels[3].Compounds[0].IsUniversal() {
		t.Errorf("expected fourth selector to be universal, is %v", sels[3])
	}
}

func TestParseImportantSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "Button { color: red !important; width: 10; }")
	rule := sheet.Rules[0]
	if rule.Important.Color == nil {
		t.Error("expected color to land in the important set, didn't")
	}
	if rule.Declared.Color != nil {
		t.Error("expected color not to land in the normal set, did")
	}
	if rule.Declared.Width == nil {
		t.Error("expected width to land in the normal set, didn't")
	}
}

func TestParseDeclarationWithoutTrailingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "Button { color: red }")
	if sheet.Rules[0].Declared.Color == nil {
		t.Error("expected declaration before '}' to be kept, isn't")
	}
}

func TestParseUnknownPropertyDiagnostic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet, diags, err := parser.Parse("Button { z-index: 4; color: red; }", parser.LayerUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if sheet.Rules[0].Declared.Color == nil {
		t.Error("expected valid declaration to survive, doesn't")
	}
}

func TestParseInvalidValueDiagnostic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	for _, src := range []string{
		"B { display: maybe }",
		"B { width: red }",
		"B { width: 1.5 }", // cells must be whole
		"B { color: chartreuse }",
		"B { margin: 1 2 3 4 5 }",
		"B { text-style: blinking }",
		"B { border: dotted }",
	} {
		sheet, diags, err := parser.Parse(src, parser.LayerUser)
		if err != nil {
			t.Fatalf("expected %q to survive parsing, got error: %v", src, err)
		}
		if len(diags) != 1 {
			t.Errorf("expected 1 diagnostic for %q, got %v", src, diags)
		}
		if len(sheet.Rules) != 1 || !sheet.Rules[0].Declared.IsEmpty() {
			t.Errorf("expected %q to yield an empty rule, is %v", src, sheet.Rules)
		}
	}
}

func TestParseMalformedSelectorSkipsRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	src := "> { color: red } Button { color: blue }"
	sheet, diags, err := parser.Parse(src, parser.LayerUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) == 0 {
		t.Error("expected a diagnostic for the malformed selector, got none")
	}
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selectors[0].String() != "Button" {
		t.Errorf("expected only the valid rule to survive, got %v", sheet.Rules)
	}
}

func TestParseRecoversAtSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet, diags, err := parser.Parse("B { width: ; color: red; }", parser.LayerUser)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if sheet.Rules[0].Declared.Color == nil {
		t.Error("expected declaration after recovery point to survive, doesn't")
	}
}

func TestParseLexicalErrorIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet, _, err := parser.Parse("Button { color: @red }", parser.LayerUser)
	if err == nil {
		t.Fatal("expected a lexical error to abort the parse, didn't")
	}
	if sheet != nil {
		t.Error("expected no sheet on lexical failure, got one")
	}
}

func TestParseOverflowShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "B { overflow: scroll }")
	rule := sheet.Rules[0]
	if rule.Declared.OverflowX == nil || *rule.Declared.OverflowX != style.OverflowScroll {
		t.Error("expected overflow shorthand to set overflow-x, doesn't")
	}
	if rule.Declared.OverflowY == nil || *rule.Declared.OverflowY != style.OverflowScroll {
		t.Error("expected overflow shorthand to set overflow-y, doesn't")
	}
}

func TestParseBoxShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "B { margin: 1 2; padding: 1 2 3; }")
	rule := sheet.Rules[0]
	m := rule.Declared.Margin
	if !m.Top.Equal(css.Cells(1)) || !m.Bottom.Equal(css.Cells(1)) ||
		!m.Left.Equal(css.Cells(2)) || !m.Right.Equal(css.Cells(2)) {
		t.Errorf("expected margin 1 2 to expand symmetrically, is %v", m)
	}
	p := rule.Declared.Padding
	if !p.Top.Equal(css.Cells(1)) || !p.Right.Equal(css.Cells(2)) ||
		!p.Bottom.Equal(css.Cells(3)) || !p.Left.Equal(css.Cells(2)) {
		t.Errorf("expected padding 1 2 3 to reuse the horizontal value, is %v", p)
	}
}

func TestParseBorderAndTextStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "B { border: round #ff00aa; text-style: bold italic; height: auto; }")
	rule := sheet.Rules[0]
	if rule.Declared.Border.Kind != style.BorderRound {
		t.Errorf("expected a round border, is %s", rule.Declared.Border.Kind)
	}
	if r, _, b, _, ok := rule.Declared.Border.Color.RGBA(); !ok || r != 0xff || b != 0xaa {
		t.Errorf("expected border color #ff00aa, is %s", rule.Declared.Border.Color)
	}
	ts := *rule.Declared.TextStyle
	if !ts.Has(style.Bold) || !ts.Has(style.Italic) || ts.Specifies(style.Dim) {
		t.Errorf("expected bold italic text style, is %s", ts)
	}
	if !rule.Declared.Height.IsAuto() {
		t.Errorf("expected height auto, is %s", rule.Declared.Height)
	}
}

func TestParseLastDeclarationWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "B { color: red; color: blue; }")
	blue, _ := css.NamedColor("blue")
	if !sheet.Rules[0].Declared.Color.Equal(blue) {
		t.Errorf("expected the later declaration to win, color is %v", sheet.Rules[0].Declared.Color)
	}
}

func TestParseFractionScalar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.css")
	defer teardown()
	sheet := parse(t, "B { width: 1.5fr }")
	if !sheet.Rules[0].Declared.Width.Equal(css.Fraction(1.5)) {
		t.Errorf("expected width 1.5fr, is %s", sheet.Rules[0].Declared.Width)
	}
}
