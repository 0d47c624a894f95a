package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"sort"

	"github.com/khalidelborai/gilt-tui/css/parser"
	"github.com/khalidelborai/gilt-tui/style"
)

// Cascade assembles the rule sets of all layers and resolves computed
// styles. Sheets for the default and user layers are swappable as a
// whole; inline styles are per-node and supplied by the caller at
// resolution time.
type Cascade struct {
	defaults *parser.Sheet
	user     *parser.Sheet
}

// New creates a cascade with no sheets: resolution then yields initial
// defaults plus inheritance only.
func New() *Cascade {
	return &Cascade{}
}

// SetSheet installs a sheet for its layer, replacing any previous one.
// Only whole-sheet layers are accepted; inline styles go through Resolve.
func (c *Cascade) SetSheet(sheet *parser.Sheet) error {
	switch sheet.Layer {
	case parser.LayerDefault:
		c.defaults = sheet
	case parser.LayerUser:
		c.user = sheet
	default:
		return fmt.Errorf("cannot install a sheet for layer %s", sheet.Layer)
	}
	tracer().Debugf("installed %s sheet with %d rules", sheet.Layer, len(sheet.Rules))
	return nil
}

// candidate is one matched declaration set with its rank.
type candidate struct {
	spec Specificity
	set  style.Set
}

// Resolve computes the total style of a node. parent is the parent's
// computed style, nil for the root. The inline set ranks as a user-layer
// declaration assembled after all sheet rules, so it wins ties against
// user rules of equal specificity.
//
// Resolution is pure and total: no error, always a complete Computed.
func (c *Cascade) Resolve(node Node, inline style.Set, parent *style.Computed) style.Computed {
	var cands []candidate
	order := uint32(0)
	for _, sheet := range []*parser.Sheet{c.defaults, c.user} {
		if sheet == nil {
			continue
		}
		user := sheet.Layer != parser.LayerDefault
		for i := range sheet.Rules {
			rule := &sheet.Rules[i]
			spec, matched := ruleSpecificity(rule, node, user, order)
			if matched {
				if !rule.Declared.IsEmpty() {
					cands = append(cands, candidate{spec: spec, set: rule.Declared})
				}
				if !rule.Important.IsEmpty() {
					imp := spec
					imp.Important = 1
					cands = append(cands, candidate{spec: imp, set: rule.Important})
				}
			}
			order++
		}
	}
	if !inline.IsEmpty() {
		cands = append(cands, candidate{
			spec: Specificity{User: 1, Order: order},
			set:  inline,
		})
	}

	// merging in ascending rank leaves the winner of every property on
	// top; ranks are unique, so the sort is a strict order
	sort.Slice(cands, func(i, j int) bool {
		return cands[i].spec.Less(cands[j].spec)
	})
	var winning style.Set
	for _, cand := range cands {
		winning = winning.Merge(cand.set)
	}

	computed := style.InitialStyle()
	for _, p := range style.Properties() {
		if parent != nil {
			computed.Inherit(p, *parent)
		}
		computed.Apply(p, winning)
	}
	return computed
}

// ruleSpecificity finds the highest specificity among the rule's
// selectors that match the node.
func ruleSpecificity(rule *parser.Rule, node Node, user bool, order uint32) (Specificity, bool) {
	var best Specificity
	matched := false
	for _, sel := range rule.Selectors {
		if !Matches(sel, node) {
			continue
		}
		spec := FromSelector(sel, user, false, order)
		if !matched || best.Less(spec) {
			best = spec
		}
		matched = true
	}
	return best, matched
}
