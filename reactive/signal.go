package reactive

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import "reflect"

// Signal is a reactive value cell. Reading it with Get from inside an
// effect subscribes that effect; writing it re-runs the subscribers.
// A signal belongs to the graph that created it.
type Signal[T any] struct {
	g *Graph
	h sigHandle
}

// NewSignal creates a signal holding an initial value. Writes propagate
// only when the new value differs from the old one, compared with
// reflect.DeepEqual until SetEquals installs something else.
func NewSignal[T any](g *Graph, initial T) *Signal[T] {
	h := g.allocSignal(initial, deepEquals)
	tracer().Debugf("created %s", h)
	return &Signal[T]{g: g, h: h}
}

func deepEquals(old, new any) bool {
	return reflect.DeepEqual(old, new)
}

// Get returns the current value and subscribes the running effect, if
// any. On a disposed signal it returns the zero value.
func (s *Signal[T]) Get() T {
	v, ok := s.g.read(s.h)
	if !ok {
		var zero T
		return zero
	}
	return v.(T)
}

// Peek returns the current value without subscribing anybody.
func (s *Signal[T]) Peek() T {
	v, ok := s.g.peek(s.h)
	if !ok {
		var zero T
		return zero
	}
	return v.(T)
}

// Set stores a new value. If the equality function considers it equal to
// the current one, nothing happens; otherwise subscribers re-run, either
// immediately or, inside a batch, when the batch ends.
func (s *Signal[T]) Set(value T) {
	s.g.write(s.h, value)
}

// Update applies fn to the current value and stores the result. The read
// does not subscribe.
func (s *Signal[T]) Update(fn func(T) T) {
	v, ok := s.g.peek(s.h)
	if !ok {
		return
	}
	s.g.write(s.h, fn(v.(T)))
}

// SetEquals replaces the change detector. A nil function means every
// write counts as a change, for values DeepEqual cannot compare
// meaningfully (functions, values with unexported cached state).
func (s *Signal[T]) SetEquals(equals func(old, new T) bool) {
	slot := s.g.sigSlot(s.h)
	if slot == nil {
		return
	}
	if equals == nil {
		slot.equals = nil
		return
	}
	slot.equals = func(old, new any) bool {
		return equals(old.(T), new.(T))
	}
}

// Dispose frees the signal and severs its subscription edges. Later
// reads return the zero value; later writes are no-ops.
func (s *Signal[T]) Dispose() {
	s.g.disposeSignal(s.h)
}
