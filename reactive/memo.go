package reactive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// Memo is a derived value: a compute function over other signals whose
// result is itself readable like a signal. Downstream effects re-run
// only when the recomputed result actually differs from the previous
// one, so a memo cuts propagation short for equal values.
type Memo[T any] struct {
	sig *Signal[T]
	eff *Effect
}

// NewMemo creates a memo with reflect.DeepEqual as change detector.
func NewMemo[T any](g *Graph, compute func() T) *Memo[T] {
	return NewMemoEq(g, compute, func(prev, next T) bool {
		return deepEquals(prev, next)
	})
}

// NewMemoEq creates a memo with a custom change detector. A nil equals
// makes every recomputation propagate.
//
// The initial value is computed untracked; the memo's own effect then
// establishes the subscriptions and keeps the value fresh.
func NewMemoEq[T any](g *Graph, compute func() T, equals func(prev, next T) bool) *Memo[T] {
	var initial T
	g.untracked(func() { initial = compute() })
	sig := NewSignal(g, initial)
	sig.SetEquals(equals)
	eff := NewEffect(g, func() {
		sig.Set(compute())
	})
	return &Memo[T]{sig: sig, eff: eff}
}

// Get returns the memo's current value and subscribes the running
// effect, if any.
func (m *Memo[T]) Get() T {
	return m.sig.Get()
}

// Peek returns the current value without subscribing anybody.
func (m *Memo[T]) Peek() T {
	return m.sig.Peek()
}

// Err reports a CycleError if the memo's computation wrote a signal it
// subscribes to, nil while the memo is healthy.
func (m *Memo[T]) Err() error {
	return m.eff.Err()
}

// Dispose stops recomputation and frees the memo's value.
func (m *Memo[T]) Dispose() {
	m.eff.Dispose()
	m.sig.Dispose()
}
