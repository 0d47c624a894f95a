/*
Package cascade resolves computed styles from layered stylesheets.

A Cascade holds one sheet per layer (built-in defaults, the application's
user sheet) plus per-node inline styles supplied by the caller. Resolving
a node is a pure function of the node's selector identity, its ancestry,
the assembled sheets and the parent's computed style:

 1. collect every rule whose selector matches the node,
 2. per property, pick the winning declaration by 6-tuple specificity
    (user, important, ids, classes, types, source order) compared
    lexicographically, where the later source order breaks exact ties,
 3. for properties no rule sets, take the parent's computed value if the
    property inherits, else its fixed initial default.

Resolution is total: every call yields a complete style.Computed, never
an error. Malformed input cannot reach the cascade; it is rejected with
diagnostics at parse time.

Selector matching runs right to left: the rightmost compound must match
the node itself, a child combinator steps to the immediate parent, and a
descendant combinator searches the remaining chain against every
ancestor.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.style'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.style")
}
