package cascade_test

import (
	"testing"

	"github.com/khalidelborai/gilt-tui/css/parser"
	"github.com/khalidelborai/gilt-tui/style/cascade"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// selector parses a bare selector through a dummy rule.
func selector(t *testing.T, sel string) parser.Selector {
	t.Helper()
	sheet, diags, err := parser.Parse(sel+" { color: red }", parser.LayerUser)
	if err != nil || len(diags) > 0 {
		t.Fatalf("expected selector %q to parse, got %v / %v", sel, diags, err)
	}
	return sheet.Rules[0].Selectors[0]
}

func TestSpecificityFromSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.style")
	defer teardown()
	tests := []struct {
		sel     string
		ids     uint16
		classes uint16
		types   uint16
	}{
		{"Button", 0, 0, 1},
		{"*", 0, 0, 0},
		{".primary", 0, 1, 0},
		{"#nav", 1, 0, 0},
		{"Button.primary:hover", 0, 2, 1},
		{"App > Panel .item#x:focus", 1, 2, 2},
	}
	for _, tc := range tests {
		s := cascade.FromSelector(selector(t, tc.sel), false, false, 0)
		if s.IDs != tc.ids || s.Classes != tc.classes || s.Types != tc.types {
			t.Errorf("expected %q to count (%d,%d,%d), is (%d,%d,%d)",
				tc.sel, tc.ids, tc.classes, tc.types, s.IDs, s.Classes, s.Types)
		}
	}
}

func TestSpecificityRanking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.style")
	defer teardown()
	typeOnly := cascade.Specificity{Types: 1}
	class := cascade.Specificity{Classes: 1}
	id := cascade.Specificity{IDs: 1}
	manyClasses := cascade.Specificity{Classes: 100}
	important := cascade.Specificity{Important: 1}
	user := cascade.Specificity{User: 1}

	if !typeOnly.Less(class) || !class.Less(id) {
		t.Error("expected type < class < id, isn't")
	}
	if id.Less(manyClasses) {
		t.Error("expected one id to beat any number of classes, doesn't")
	}
	if important.Less(id) {
		t.Error("expected important to beat ids, doesn't")
	}
	if user.Less(important) {
		t.Error("expected a user rule to beat a default important one, doesn't")
	}
	early := cascade.Specificity{Classes: 1, Order: 1}
	late := cascade.Specificity{Classes: 1, Order: 2}
	if !early.Less(late) {
		t.Error("expected later source order to win an exact tie, doesn't")
	}
}

// genSpecificity draws tuples from a small domain so that collisions and
// near-ties actually occur.
func genSpecificity() gopter.Gen {
	return gopter.CombineGens(
		gen.UInt8Range(0, 1),
		gen.UInt8Range(0, 1),
		gen.UInt16Range(0, 2),
		gen.UInt16Range(0, 2),
		gen.UInt16Range(0, 2),
		gen.UInt32Range(0, 3),
	).Map(func(vs []interface{}) cascade.Specificity {
		return cascade.Specificity{
			User:      vs[0].(uint8),
			Important: vs[1].(uint8),
			IDs:       vs[2].(uint16),
			Classes:   vs[3].(uint16),
			Types:     vs[4].(uint16),
			Order:     vs[5].(uint32),
		}
	})
}

func TestSpecificityIsStrictTotalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.style")
	defer teardown()
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	properties := gopter.NewProperties(params)

	properties.Property("irreflexive", prop.ForAll(
		func(a cascade.Specificity) bool {
			return !a.Less(a)
		},
		genSpecificity(),
	))
	properties.Property("trichotomy", prop.ForAll(
		func(a, b cascade.Specificity) bool {
			less, greater, equal := a.Less(b), b.Less(a), a == b
			return (less && !greater && !equal) ||
				(greater && !less && !equal) ||
				(equal && !less && !greater)
		},
		genSpecificity(), genSpecificity(),
	))
	properties.Property("transitive", prop.ForAll(
		func(a, b, c cascade.Specificity) bool {
			if a.Less(b) && b.Less(c) {
				return a.Less(c)
			}
			return true
		},
		genSpecificity(), genSpecificity(), genSpecificity(),
	))

	properties.TestingRun(t)
}
