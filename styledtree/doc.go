/*
Package styledtree bridges tree mutation and style resolution.

A Styler wraps a dom.Tree and a cascade.Cascade. It listens to every tree
mutation, collects the affected nodes in a deduplicated dirty set, and on
Flush re-resolves them ancestors before descendants, so that each
resolution sees its parent's fresh computed style. When a node's resolved
style changed, its children are re-resolved too: inherited values flow
downward until value equality stops them, not the dirty set.

Mutation does not restyle: marking a node dirty twice between flushes
costs nothing extra, and a render tick pays for one flush however many
mutations preceded it. Flush notifies attached StyleListeners only for
nodes whose resolved style actually changed, so layout is not invalidated
by mutations that turn out to be style-neutral.

The styler is the only translation layer between imperative tree mutation
and style invalidation. Reactive effects that mutate the tree are
observed here, through the tree's mutation hook, not through the reactive
graph itself.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package styledtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.styledtree")
}
