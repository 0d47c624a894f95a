package reactive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"sort"
)

// CycleError marks a failed effect run: its body wrote a signal the body
// itself is subscribed to, which would re-schedule it forever.
type CycleError struct {
	Effect string
	Signal string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("reactive cycle: %s wrote %s, which it subscribes to", e.Effect, e.Signal)
}

// sigHandle and effHandle address arena slots. The generation is bumped
// on reuse, so handles to disposed slots go stale instead of aliasing.
type sigHandle struct {
	index uint32
	gen   uint32
}

func (h sigHandle) String() string {
	return fmt.Sprintf("signal(%d.%d)", h.index, h.gen)
}

type effHandle struct {
	index uint32
	gen   uint32
}

func (h effHandle) String() string {
	return fmt.Sprintf("effect(%d.%d)", h.index, h.gen)
}

type signalSlot struct {
	gen      uint32
	occupied bool
	value    any
	// equals gates propagation; nil means every write counts as a change
	equals func(old, new any) bool
	subs   map[effHandle]struct{}
}

type effectSlot struct {
	gen      uint32
	occupied bool
	body     func()
	deps     map[sigHandle]struct{}
	serial   uint64 // registration order, decides batch execution order
	active   bool
	err      error
}

// Graph owns a set of signals, effects and memos and the subscription
// edges between them. All reactive state is instance state; independent
// graphs never interact. A graph is not safe for concurrent use.
type Graph struct {
	signals  []signalSlot
	effects  []effectSlot
	freeSigs []uint32
	freeEffs []uint32

	serial     uint64
	tracking   []effHandle // stack of currently running effects
	batchDepth int
	notifying  bool
	pending    []effHandle
	pendingSet map[effHandle]bool
}

// NewGraph creates an empty reactive graph.
func NewGraph() *Graph {
	return &Graph{pendingSet: make(map[effHandle]bool)}
}

// Batch defers propagation: writes inside fn are coalesced, and when the
// outermost batch ends each affected effect runs at most once, in
// registration order. Batches nest; only the outermost one flushes.
func (g *Graph) Batch(fn func()) {
	g.batchDepth++
	defer func() {
		g.batchDepth--
		if g.batchDepth == 0 {
			g.drain()
		}
	}()
	fn()
}

// --- arena ---------------------------------------------------------------

func (g *Graph) allocSignal(value any, equals func(old, new any) bool) sigHandle {
	if n := len(g.freeSigs); n > 0 {
		idx := g.freeSigs[n-1]
		g.freeSigs = g.freeSigs[:n-1]
		slot := &g.signals[idx]
		slot.gen++
		slot.occupied = true
		slot.value = value
		slot.equals = equals
		slot.subs = make(map[effHandle]struct{})
		return sigHandle{index: idx, gen: slot.gen}
	}
	g.signals = append(g.signals, signalSlot{
		gen:      1,
		occupied: true,
		value:    value,
		equals:   equals,
		subs:     make(map[effHandle]struct{}),
	})
	return sigHandle{index: uint32(len(g.signals) - 1), gen: 1}
}

func (g *Graph) allocEffect(body func()) effHandle {
	g.serial++
	if n := len(g.freeEffs); n > 0 {
		idx := g.freeEffs[n-1]
		g.freeEffs = g.freeEffs[:n-1]
		slot := &g.effects[idx]
		slot.gen++
		slot.occupied = true
		slot.body = body
		slot.deps = make(map[sigHandle]struct{})
		slot.serial = g.serial
		slot.active = true
		slot.err = nil
		return effHandle{index: idx, gen: slot.gen}
	}
	g.effects = append(g.effects, effectSlot{
		gen:      1,
		occupied: true,
		body:     body,
		deps:     make(map[sigHandle]struct{}),
		serial:   g.serial,
		active:   true,
	})
	return effHandle{index: uint32(len(g.effects) - 1), gen: 1}
}

// sigSlot resolves a handle, nil for stale or out-of-range ones.
func (g *Graph) sigSlot(h sigHandle) *signalSlot {
	if int(h.index) >= len(g.signals) {
		return nil
	}
	slot := &g.signals[h.index]
	if !slot.occupied || slot.gen != h.gen {
		return nil
	}
	return slot
}

func (g *Graph) effSlot(h effHandle) *effectSlot {
	if int(h.index) >= len(g.effects) {
		return nil
	}
	slot := &g.effects[h.index]
	if !slot.occupied || slot.gen != h.gen {
		return nil
	}
	return slot
}

// --- reads and writes ----------------------------------------------------

// read returns a signal's value and subscribes the currently tracked
// effect, if any.
func (g *Graph) read(h sigHandle) (any, bool) {
	slot := g.sigSlot(h)
	if slot == nil {
		return nil, false
	}
	if n := len(g.tracking); n > 0 {
		eh := g.tracking[n-1]
		if e := g.effSlot(eh); e != nil && e.active {
			e.deps[h] = struct{}{}
			slot.subs[eh] = struct{}{}
		}
	}
	return slot.value, true
}

// peek reads without subscribing.
func (g *Graph) peek(h sigHandle) (any, bool) {
	slot := g.sigSlot(h)
	if slot == nil {
		return nil, false
	}
	return slot.value, true
}

// write stores a new value and schedules subscribers. Writes on stale
// handles are no-ops; writes the equality function considers unchanged
// do not propagate. A write to a signal the currently running effect
// subscribes to aborts that effect's run with a CycleError.
func (g *Graph) write(h sigHandle, value any) {
	slot := g.sigSlot(h)
	if slot == nil {
		return
	}
	if slot.equals != nil && slot.equals(slot.value, value) {
		return
	}
	if n := len(g.tracking); n > 0 {
		eh := g.tracking[n-1]
		if _, subscribed := slot.subs[eh]; subscribed {
			panic(&CycleError{Effect: eh.String(), Signal: h.String()})
		}
	}
	slot.value = value
	g.schedule(slot.subs)
}

// schedule enqueues subscribers and, unless a batch or another
// propagation is in progress, drains the queue immediately.
func (g *Graph) schedule(subs map[effHandle]struct{}) {
	for eh := range subs {
		if g.pendingSet[eh] {
			continue
		}
		g.pendingSet[eh] = true
		g.pending = append(g.pending, eh)
	}
	if g.batchDepth > 0 {
		return
	}
	g.drain()
}

// drain runs pending effects in registration order until the queue is
// empty. Effects scheduled by a running effect land in the next wave;
// the notifying guard keeps writes inside effect bodies from starting
// a nested drain. The ran set holds the at-most-once contract: an
// effect re-queued after it already executed in this drain is dropped,
// e.g. when a memo's internal write reaches an effect that read both
// the memo and its source signal.
func (g *Graph) drain() {
	if g.notifying {
		return
	}
	g.notifying = true
	defer func() { g.notifying = false }()
	ran := make(map[effHandle]bool)
	for len(g.pending) > 0 {
		var wave []effHandle
		for _, eh := range g.pending {
			if e := g.effSlot(eh); e != nil && e.active && !ran[eh] {
				wave = append(wave, eh)
			}
		}
		g.pending = nil
		g.pendingSet = make(map[effHandle]bool)
		sort.Slice(wave, func(i, j int) bool {
			return g.effSlot(wave[i]).serial < g.effSlot(wave[j]).serial
		})
		tracer().Debugf("propagating to %d effect(s)", len(wave))
		for _, eh := range wave {
			ran[eh] = true
			g.runEffect(eh)
		}
	}
}

// runEffect rebuilds an effect's subscriptions and executes its body.
// Disposed or failed effects are skipped. A CycleError raised by a write
// inside the body fails this run only: the effect is marked failed,
// unsubscribed everywhere, and never rescheduled.
func (g *Graph) runEffect(h effHandle) {
	e := g.effSlot(h)
	if e == nil || !e.active {
		return
	}
	g.unsubscribe(h, e)
	g.tracking = append(g.tracking, h)
	defer func() {
		g.tracking = g.tracking[:len(g.tracking)-1]
		if r := recover(); r != nil {
			cycle, ok := r.(*CycleError)
			if !ok {
				panic(r)
			}
			tracer().Errorf("%v", cycle)
			e.active = false
			e.err = cycle
			g.unsubscribe(h, e)
		}
	}()
	e.body()
}

// unsubscribe removes an effect from every signal it depends on.
func (g *Graph) unsubscribe(h effHandle, e *effectSlot) {
	for sh := range e.deps {
		if slot := g.sigSlot(sh); slot != nil {
			delete(slot.subs, h)
		}
	}
	e.deps = make(map[sigHandle]struct{})
}

// untracked runs fn with tracking suspended; reads inside subscribe
// nothing.
func (g *Graph) untracked(fn func()) {
	saved := g.tracking
	g.tracking = nil
	defer func() { g.tracking = saved }()
	fn()
}

// disposeSignal frees a signal slot and severs its edges. Pending
// subscribers are left in the queue; their handles go stale with the
// slot, so they simply stop depending on it on their next run.
func (g *Graph) disposeSignal(h sigHandle) {
	slot := g.sigSlot(h)
	if slot == nil {
		return
	}
	for eh := range slot.subs {
		if e := g.effSlot(eh); e != nil {
			delete(e.deps, h)
		}
	}
	slot.occupied = false
	slot.value = nil
	slot.subs = nil
	g.freeSigs = append(g.freeSigs, h.index)
}

// disposeEffect unsubscribes an effect immediately and frees its slot.
// If the effect is pending in a batch, the stale handle makes the drain
// skip it: a disposed effect never runs again.
func (g *Graph) disposeEffect(h effHandle) {
	e := g.effSlot(h)
	if e == nil {
		return
	}
	g.unsubscribe(h, e)
	e.occupied = false
	e.active = false
	e.body = nil
	g.freeEffs = append(g.freeEffs, h.index)
}
