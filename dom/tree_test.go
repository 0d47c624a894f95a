package dom_test

import (
	"testing"

	"github.com/khalidelborai/gilt-tui/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildTree creates
//
//	App
//	├── Sidebar #nav
//	└── Panel
//	    └── Button .primary
func buildTree(t *testing.T) (*dom.Tree, dom.NodeID, dom.NodeID, dom.NodeID, dom.NodeID) {
	t.Helper()
	tree := dom.NewTree()
	app := tree.Insert(dom.NewNode("App"))
	sidebar, err := tree.InsertChild(app, dom.NewNode("Sidebar").WithID("nav"))
	if err != nil {
		t.Fatal(err)
	}
	panel, err := tree.InsertChild(app, dom.NewNode("Panel"))
	if err != nil {
		t.Fatal(err)
	}
	button, err := tree.InsertChild(panel, dom.NewNode("Button").WithClasses("primary"))
	if err != nil {
		t.Fatal(err)
	}
	return tree, app, sidebar, panel, button
}

func TestTreeInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, app, sidebar, panel, _ := buildTree(t)
	if root, ok := tree.Root(); !ok || root != app {
		t.Errorf("expected first inserted node to be the root, is %s", root)
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 nodes, got %d", tree.Len())
	}
	children := tree.Children(app)
	if len(children) != 2 || children[0] != sidebar || children[1] != panel {
		t.Errorf("expected children in insertion order, got %v", children)
	}
	if tree.TypeName(sidebar) != "Sidebar" || tree.ID(sidebar) != "nav" {
		t.Errorf("expected sidebar identity to be kept, is %s #%s",
			tree.TypeName(sidebar), tree.ID(sidebar))
	}
}

func TestTreeInsertChildOfUnknownParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree := dom.NewTree()
	if _, err := tree.InsertChild(dom.NodeID{}, dom.NewNode("Button")); err == nil {
		t.Error("expected inserting below the null node to fail, didn't")
	}
}

func TestTreeRemoveSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, app, _, panel, button := buildTree(t)
	if err := tree.Remove(panel); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 2 {
		t.Errorf("expected 2 nodes after subtree removal, got %d", tree.Len())
	}
	if tree.Contains(panel) || tree.Contains(button) {
		t.Error("expected handles into the removed subtree to go stale, didn't")
	}
	if len(tree.Children(app)) != 1 {
		t.Errorf("expected the parent to lose the removed child, has %v", tree.Children(app))
	}
	if err := tree.Remove(panel); err == nil {
		t.Error("expected removing a stale handle to fail, didn't")
	}
}

func TestTreeHandleGenerations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, app, _, _, button := buildTree(t)
	stale := button
	if err := tree.Remove(button); err != nil {
		t.Fatal(err)
	}
	// the freed slot is recycled for the next insert
	replacement, err := tree.InsertChild(app, dom.NewNode("Label"))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Contains(stale) {
		t.Error("expected the stale handle to stay stale after slot reuse, doesn't")
	}
	if !tree.Contains(replacement) {
		t.Error("expected the replacement handle to be live, isn't")
	}
	if tree.TypeName(stale) != "" {
		t.Errorf("expected lookups through stale handles to fail, got %q", tree.TypeName(stale))
	}
}

func TestTreeReparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, _, sidebar, panel, button := buildTree(t)
	if err := tree.Reparent(button, sidebar); err != nil {
		t.Fatal(err)
	}
	if p, _ := tree.Parent(button); p != sidebar {
		t.Errorf("expected button to hang below sidebar, parent is %s", p)
	}
	if len(tree.Children(panel)) != 0 {
		t.Error("expected the old parent to lose the moved child, didn't")
	}
	anc := tree.Ancestors(button)
	if len(anc) != 2 || anc[0] != sidebar {
		t.Errorf("expected ancestors sidebar, app; got %v", anc)
	}
}

func TestTreeReparentRejectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, app, _, panel, button := buildTree(t)
	if err := tree.Reparent(app, button); err == nil {
		t.Error("expected moving the root below its descendant to fail, didn't")
	}
	if err := tree.Reparent(panel, panel); err == nil {
		t.Error("expected moving a node below itself to fail, didn't")
	}
}

func TestTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, app, sidebar, panel, button := buildTree(t)
	dfs := tree.WalkDepthFirst(app)
	want := []dom.NodeID{app, sidebar, panel, button}
	if len(dfs) != len(want) {
		t.Fatalf("expected %d nodes in preorder, got %d", len(want), len(dfs))
	}
	for i := range want {
		if dfs[i] != want[i] {
			t.Errorf("expected node %d of preorder to be %s, is %s", i, want[i], dfs[i])
		}
	}
	bfs := tree.WalkBreadthFirst(app)
	if bfs[3] != button {
		t.Errorf("expected button to come last in level order, got %v", bfs)
	}
}

func TestTreeQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, _, sidebar, _, button := buildTree(t)
	if found, ok := tree.QueryByID("nav"); !ok || found != sidebar {
		t.Errorf("expected #nav to find the sidebar, got %s (%v)", found, ok)
	}
	if _, ok := tree.QueryByID("missing"); ok {
		t.Error("expected an unknown id to find nothing, did")
	}
	byClass := tree.QueryByClass("primary")
	if len(byClass) != 1 || byClass[0] != button {
		t.Errorf("expected .primary to find the button, got %v", byClass)
	}
	byType := tree.QueryByType("Button")
	if len(byType) != 1 || byType[0] != button {
		t.Errorf("expected Button query to find the button, got %v", byType)
	}
}

func TestTreeClassMutators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, _, _, _, button := buildTree(t)
	tree.AddClass(button, "active")
	if !tree.HasClass(button, "active") || !tree.HasClass(button, "primary") {
		t.Errorf("expected classes primary+active, got %v", tree.Classes(button))
	}
	tree.AddClass(button, "active") // idempotent
	if len(tree.Classes(button)) != 2 {
		t.Errorf("expected adding a present class to be a no-op, got %v", tree.Classes(button))
	}
	tree.RemoveClass(button, "primary")
	if tree.HasClass(button, "primary") {
		t.Error("expected primary to be removed, isn't")
	}
	tree.ToggleClass(button, "active")
	if tree.HasClass(button, "active") {
		t.Error("expected toggle to remove active, didn't")
	}
}

func TestTreePseudoStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, _, _, _, button := buildTree(t)
	tree.SetPseudo(button, "hover")
	if !tree.HasPseudo(button, "hover") {
		t.Error("expected hover to be active, isn't")
	}
	tree.ClearPseudo(button, "hover")
	if tree.HasPseudo(button, "hover") {
		t.Error("expected hover to be cleared, isn't")
	}
}

// recordingListener collects mutation notifications.
type recordingListener struct {
	nodes    []dom.NodeID
	subtrees []dom.NodeID
}

func (r *recordingListener) NodeChanged(id dom.NodeID)    { r.nodes = append(r.nodes, id) }
func (r *recordingListener) SubtreeChanged(id dom.NodeID) { r.subtrees = append(r.subtrees, id) }

func TestTreeMutationListener(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gilt.dom")
	defer teardown()
	tree, _, _, panel, button := buildTree(t)
	rec := &recordingListener{}
	tree.Listen(rec)

	tree.AddClass(button, "active")
	tree.SetPseudo(button, "hover")
	tree.SetID(button, "ok")
	if len(rec.nodes) != 3 {
		t.Errorf("expected 3 node notifications, got %v", rec.nodes)
	}

	child, _ := tree.InsertChild(panel, dom.NewNode("Label"))
	tree.Reparent(child, button)
	tree.Remove(child)
	if len(rec.subtrees) != 3 {
		t.Errorf("expected 3 subtree notifications, got %v", rec.subtrees)
	}

	// no-op mutations stay silent
	before := len(rec.nodes)
	tree.AddClass(button, "active")
	tree.SetID(button, "ok")
	tree.ClearPseudo(button, "focus")
	if len(rec.nodes) != before {
		t.Errorf("expected no notifications for no-op mutations, got %d new",
			len(rec.nodes)-before)
	}
}
