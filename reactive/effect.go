package reactive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// Effect is a reactive computation run for its side effects. It executes
// once on creation and again whenever a signal it read during its last
// run changes. Subscriptions are rebuilt on every run, so conditional
// reads track exactly what the last run touched.
type Effect struct {
	g *Graph
	h effHandle
}

// NewEffect registers body and runs it immediately. Effects created
// earlier run before effects created later when a batch flushes.
func NewEffect(g *Graph, body func()) *Effect {
	h := g.allocEffect(body)
	tracer().Debugf("created %s", h)
	g.runEffect(h)
	return &Effect{g: g, h: h}
}

// Err reports why the effect stopped: a CycleError if a run wrote a
// signal the run was subscribed to, nil while the effect is healthy.
// A failed effect never runs again.
func (e *Effect) Err() error {
	slot := e.g.effSlot(e.h)
	if slot == nil {
		return nil
	}
	return slot.err
}

// Dispose unsubscribes the effect from every signal immediately and
// frees it. A disposed effect does not run again, even if a batch
// already scheduled it.
func (e *Effect) Dispose() {
	e.g.disposeEffect(e.h)
}
