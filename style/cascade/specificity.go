package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/khalidelborai/gilt-tui/css/parser"
)

// Specificity ranks a matched declaration. Fields are ordered from the
// highest-priority component down, so that lexicographic comparison
// yields the cascade order directly:
//
//	user rules beat default rules,
//	!important beats normal,
//	more id constraints beat fewer,
//	more class + pseudo-state constraints beat fewer,
//	more type constraints beat fewer,
//	later source order breaks remaining ties.
type Specificity struct {
	User      uint8
	Important uint8
	IDs       uint16
	Classes   uint16
	Types     uint16
	Order     uint32
}

// FromSelector counts a selector's constraints across all its compounds.
// Pseudo-states count as classes; the universal selector counts nothing.
func FromSelector(sel parser.Selector, user, important bool, order uint32) Specificity {
	s := Specificity{Order: order}
	if user {
		s.User = 1
	}
	if important {
		s.Important = 1
	}
	for _, comp := range sel.Compounds {
		if comp.ID != "" {
			s.IDs++
		}
		s.Classes += uint16(len(comp.Classes) + len(comp.Pseudos))
		if comp.Type != "" {
			s.Types++
		}
	}
	return s
}

// Less denotes strict lexicographic order; the greater specificity wins
// the cascade.
func (s Specificity) Less(other Specificity) bool {
	if s.User != other.User {
		return s.User < other.User
	}
	if s.Important != other.Important {
		return s.Important < other.Important
	}
	if s.IDs != other.IDs {
		return s.IDs < other.IDs
	}
	if s.Classes != other.Classes {
		return s.Classes < other.Classes
	}
	if s.Types != other.Types {
		return s.Types < other.Types
	}
	return s.Order < other.Order
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%d,%d)",
		s.User, s.Important, s.IDs, s.Classes, s.Types, s.Order)
}
