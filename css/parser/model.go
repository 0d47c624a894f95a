package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strings"

	"github.com/khalidelborai/gilt-tui/style"
)

// Layer identifies the cascade layer a sheet belongs to. Higher layers
// win over lower ones for declarations of equal specificity.
type Layer uint8

const (
	LayerDefault Layer = iota // built-in widget defaults
	LayerUser                 // application stylesheets
	LayerInline               // per-node inline styles
)

func (l Layer) String() string {
	switch l {
	case LayerUser:
		return "user"
	case LayerInline:
		return "inline"
	}
	return "default"
}

// Combinator joins two compound selector steps.
type Combinator uint8

const (
	Descendant Combinator = iota // whitespace: any ancestor matches
	Child                        // '>': the immediate parent matches
)

func (c Combinator) String() string {
	if c == Child {
		return " > "
	}
	return " "
}

// Compound is one step of a selector: all its constraints must hold for a
// single node. An empty type name and id mean unconstrained; class and
// pseudo-state constraints are conjunctive.
type Compound struct {
	Type      string
	ID        string
	Classes   []string
	Pseudos   []string
	Universal bool
}

// IsUniversal denotes whether the compound is the bare '*' selector.
func (c Compound) IsUniversal() bool {
	return c.Universal && c.Type == "" && c.ID == "" &&
		len(c.Classes) == 0 && len(c.Pseudos) == 0
}

func (c Compound) String() string {
	var b strings.Builder
	if c.Universal {
		b.WriteString("*")
	}
	b.WriteString(c.Type)
	if c.ID != "" {
		b.WriteString("#")
		b.WriteString(c.ID)
	}
	for _, cls := range c.Classes {
		b.WriteString(".")
		b.WriteString(cls)
	}
	for _, p := range c.Pseudos {
		b.WriteString(":")
		b.WriteString(p)
	}
	return b.String()
}

// Selector is a chain of compounds joined by combinators, e.g.
// 'Container > Button.primary:hover'. Combinators[i] joins Compounds[i]
// and Compounds[i+1]; len(Combinators) is always len(Compounds)-1.
type Selector struct {
	Compounds   []Compound
	Combinators []Combinator
}

func (sel Selector) String() string {
	var b strings.Builder
	for i, c := range sel.Compounds {
		if i > 0 {
			b.WriteString(sel.Combinators[i-1].String())
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Rule is one parsed stylesheet rule. Declarations are split by their
// '!important' flag into two typed sets; within each set, a later
// declaration of the same property has already overridden an earlier one.
type Rule struct {
	Selectors []Selector
	Declared  style.Set
	Important style.Set
	Offset    int // byte offset of the rule's first selector
}

// Sheet is a parsed stylesheet: an ordered list of rules tagged with the
// cascade layer the sheet was parsed for.
type Sheet struct {
	Layer Layer
	Rules []Rule
}

// Diagnostic is a non-fatal parse problem: the offending construct was
// skipped and parsing continued.
type Diagnostic struct {
	Offset int
	Msg    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("at byte %d: %s", d.Offset, d.Msg)
}
