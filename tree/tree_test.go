package tree

import (
	"errors"
	"testing"
)

func TestAddAndRemoveChildren(t *testing.T) {
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(b).AddChild(c)
	if root.ChildCount() != 3 {
		t.Fatalf("expected root to have 3 children, has %d", root.ChildCount())
	}
	if b.Parent() != root {
		t.Errorf("expected parent of b to be root, is %v", b.Parent())
	}
	if !root.RemoveChild(b) {
		t.Errorf("expected removal of b to succeed")
	}
	if root.ChildCount() != 2 || root.IndexOfChild(c) != 1 {
		t.Errorf("expected c to move up to position 1, is at %d", root.IndexOfChild(c))
	}
	if b.Parent() != nil {
		t.Errorf("expected removed child to have no parent")
	}
	if root.RemoveChild(b) {
		t.Errorf("expected second removal of b to fail")
	}
}

func TestInsertAndSetChild(t *testing.T) {
	root := NewNode(0)
	root.AddChild(NewNode(1)).AddChild(NewNode(3))
	root.InsertChildAt(1, NewNode(2))
	for i := 0; i < 3; i++ {
		ch, ok := root.Child(i)
		if !ok || ch.Payload != i+1 {
			t.Errorf("expected child #%d to carry %d, is %v", i, i+1, ch)
		}
	}
	old, _ := root.Child(0)
	root.SetChildAt(0, NewNode(10))
	if old.Parent() != nil {
		t.Errorf("expected replaced child to be disconnected")
	}
	if ch, _ := root.Child(0); ch.Payload != 10 {
		t.Errorf("expected child #0 to carry 10, is %d", ch.Payload)
	}
	if _, ok := root.Child(5); ok {
		t.Errorf("expected out-of-range child lookup to fail")
	}
}

func TestRootAndDepth(t *testing.T) {
	root := NewNode("r")
	n1 := NewNode("1")
	n2 := NewNode("2")
	root.AddChild(n1)
	n1.AddChild(n2)
	if n2.Root() != root {
		t.Errorf("expected root of n2 to be r, is %v", n2.Root())
	}
	if n2.Depth() != 2 {
		t.Errorf("expected depth of n2 to be 2, is %d", n2.Depth())
	}
	n1.Isolate()
	if n2.Root() != n1 || root.ChildCount() != 0 {
		t.Errorf("expected isolated subtree to be rooted at n1")
	}
}

func TestTopDownOrder(t *testing.T) {
	root := NewNode("a")
	b, c := NewNode("b"), NewNode("c")
	root.AddChild(b).AddChild(c)
	b.AddChild(NewNode("d"))
	c.AddChild(NewNode("e"))
	var seen string
	err := root.TopDown(func(n, _ *Node[string], _ int) error {
		seen += n.Payload
		if n.Payload == "c" {
			return ErrSkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != "abdc" {
		t.Errorf("expected traversal order abdc, is %q", seen)
	}
	stop := errors.New("stop")
	err = root.TopDown(func(n, _ *Node[string], _ int) error {
		if n.Payload == "d" {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("expected traversal to report stop error, is %v", err)
	}
}

func TestFinders(t *testing.T) {
	root := NewNode("x")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a)
	a.AddChild(b)
	leafs := root.DescendantsWith(NodeIsLeaf[string]())
	if len(leafs) != 1 || leafs[0] != b {
		t.Errorf("expected exactly one leaf b, have %v", leafs)
	}
	all := root.DescendantsWith(Whatever[string]())
	if len(all) != 2 {
		t.Errorf("expected 2 descendants, have %d", len(all))
	}
	if f := root.FirstDescendantWith(func(n *Node[string]) bool { return n.Payload == "b" }); f != b {
		t.Errorf("expected to find b, found %v", f)
	}
	if anc := b.AncestorWith(func(n *Node[string]) bool { return n.Payload == "x" }); anc != root {
		t.Errorf("expected ancestor x, found %v", anc)
	}
}
