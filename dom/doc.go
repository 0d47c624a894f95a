/*
Package dom keeps the widget tree of an application.

Nodes live in a single arena; clients hold NodeID handles instead of
pointers. Handles are generation-checked: removing a node invalidates its
handle and all handles into its subtree, even after the arena slot is
reused. The zero NodeID is null.

A node carries the identity the styling engine matches selectors against:
a widget type name, an optional id, a class set and a set of transient
pseudo-states like 'hover'. All mutations go through the tree so that
attached MutationListeners observe every change; the styling engine's
invalidation bridge is such a listener.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.dom'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.dom")
}
