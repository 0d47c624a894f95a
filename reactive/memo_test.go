package reactive_test

import (
	"strings"
	"testing"

	"github.com/khalidelborai/gilt-tui/reactive"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMemoTracksDependencies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.reactive")
	defer teardown()
	g := reactive.NewGraph()
	width := reactive.NewSignal(g, 3)
	height := reactive.NewSignal(g, 4)
	area := reactive.NewMemo(g, func() int {
		return width.Get() * height.Get()
	})
	if area.Get() != 12 {
		t.Errorf("expected the initial area 12, is %d", area.Get())
	}
	width.Set(5)
	if area.Get() != 20 {
		t.Errorf("expected the area to follow its inputs, is %d", area.Get())
	}
}

func TestMemoEqualValueCutsPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.reactive")
	defer teardown()
	g := reactive.NewGraph()
	n := reactive.NewSignal(g, 4)
	even := reactive.NewMemo(g, func() bool {
		return n.Get()%2 == 0
	})
	runs := 0
	reactive.NewEffect(g, func() {
		even.Get()
		runs++
	})
	n.Set(6) // still even: the memo recomputes, downstream must not
	if runs != 1 {
		t.Errorf("expected an unchanged memo value to stop propagation, effect ran %d times", runs)
	}
	n.Set(7)
	if runs != 2 {
		t.Errorf("expected the parity flip to reach the effect, ran %d times", runs)
	}
	if even.Peek() {
		t.Error("expected the memo to be false for an odd input, isn't")
	}
}

func TestMemoCustomEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.reactive")
	defer teardown()
	g := reactive.NewGraph()
	title := reactive.NewSignal(g, "Panel")
	upper := reactive.NewMemoEq(g, func() string {
		return strings.ToUpper(title.Get())
	}, func(prev, next string) bool {
		return len(prev) == len(next)
	})
	runs := 0
	reactive.NewEffect(g, func() {
		upper.Get()
		runs++
	})
	title.Set("Label") // same length, equal under the custom detector
	if runs != 1 {
		t.Errorf("expected the custom equality to swallow the change, effect ran %d times", runs)
	}
	title.Set("Button")
	if runs != 2 {
		t.Errorf("expected a different length to propagate, effect ran %d times", runs)
	}
}

func TestMemoChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.reactive")
	defer teardown()
	g := reactive.NewGraph()
	n := reactive.NewSignal(g, 2)
	double := reactive.NewMemo(g, func() int { return n.Get() * 2 })
	quad := reactive.NewMemo(g, func() int { return double.Get() * 2 })
	if quad.Get() != 8 {
		t.Errorf("expected the chained memo to start at 8, is %d", quad.Get())
	}
	n.Set(3)
	if quad.Get() != 12 {
		t.Errorf("expected the change to flow through both memos, is %d", quad.Get())
	}
}

func TestMemoDispose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.reactive")
	defer teardown()
	g := reactive.NewGraph()
	n := reactive.NewSignal(g, 1)
	computes := 0
	m := reactive.NewMemo(g, func() int {
		computes++
		return n.Get() + 1
	})
	m.Dispose()
	before := computes
	n.Set(2)
	if computes != before {
		t.Errorf("expected a disposed memo to stop recomputing, computed %d more times",
			computes-before)
	}
}

func TestMemoCycleFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.reactive")
	defer teardown()
	g := reactive.NewGraph()
	n := reactive.NewSignal(g, 1)
	m := reactive.NewMemo(g, func() int {
		v := n.Get()
		n.Set(v + 1) // writes its own dependency
		return v
	})
	if m.Err() == nil {
		t.Error("expected a cycle error on a self-writing memo, got none")
	}
	// the failed memo stays at its last good value and never recomputes
	last := m.Peek()
	n.Set(100)
	if m.Peek() != last {
		t.Errorf("expected the failed memo to stay frozen, is %d", m.Peek())
	}
}
