/*
Package reactive is a fine-grained reactive graph: signals hold values,
effects re-run when the signals they read change, and memos are derived
values that propagate only when their result actually changes.

All state belongs to a Graph instance. There is no package-level runtime:
two graphs never interfere, and tests can create as many as they like.
The tracking context, i.e. which effect is currently running and should
be subscribed by signal reads, is an explicit stack inside the graph.

Dependency edges are rebuilt on every run: before an effect's body
executes, all of its previous subscriptions are removed, and each
Signal.Get during the run re-subscribes it. Conditional reads therefore
track exactly the signals the last run touched.

Writes outside a batch propagate synchronously. Batch defers and
coalesces: however many writes happen inside, each affected effect runs
at most once when the outermost batch ends. Pending effects execute in
registration order, a committed, tested contract.

A body that writes a signal it is currently subscribed to would schedule
itself forever. The graph detects this re-entrancy, aborts that single
run with a CycleError and marks the effect failed; it will not run
again, and the rest of the graph is unaffected.

Graphs are single-threaded by design, matching the cooperative
render-tick model of the toolkit; none of the operations block.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package reactive

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'gilt.reactive'.
func tracer() tracing.Trace {
	return tracing.Select("gilt.reactive")
}
