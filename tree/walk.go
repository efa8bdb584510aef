package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrSkipChildren may be returned by an Action to stop TopDown from
// descending below the current node. It is not reported as an error.
var ErrSkipChildren = errors.New("skip children of node")

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for the finder functions to
// collect a selection of nodes.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// Action is a function type to operate on tree nodes.
// It receives the node, its parent and the position of the node
// within the children of parent.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children, and that siblings are processed in order.
//
// If the action function returns an error for a node,
// the traversal stops and the error is returned. ErrSkipChildren is
// an exception: the branch below the node is skipped and the traversal continues.
func (node *Node[T]) TopDown(action Action[T]) error {
	if node == nil || action == nil {
		return nil
	}
	return topDown(node, node.parent, node.positionInParent(), action)
}

func topDown[T comparable](n *Node[T], parent *Node[T], pos int, action Action[T]) error {
	if err := action(n, parent, pos); err != nil {
		if err == ErrSkipChildren {
			return nil
		}
		return err
	}
	for i, ch := range n.Children() {
		if ch == nil {
			continue
		}
		if err := topDown(ch, n, i, action); err != nil {
			return err
		}
	}
	return nil
}

func (node *Node[T]) positionInParent() int {
	if node.parent == nil {
		return 0
	}
	return node.parent.IndexOfChild(node)
}

// DescendantsWith finds descendants matching a predicate, in document order.
// The search does not include the start node.
func (node *Node[T]) DescendantsWith(predicate Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	if node == nil || predicate == nil {
		return selection
	}
	node.TopDown(func(n *Node[T], _ *Node[T], _ int) error {
		if n != node && predicate(n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}

// FirstDescendantWith returns the first descendant (in document order)
// matching a predicate, or nil.
func (node *Node[T]) FirstDescendantWith(predicate Predicate[T]) *Node[T] {
	var found *Node[T]
	if node == nil || predicate == nil {
		return nil
	}
	errFound := errors.New("found")
	node.TopDown(func(n *Node[T], _ *Node[T], _ int) error {
		if n != node && predicate(n) {
			found = n
			return errFound
		}
		return nil
	})
	return found
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
func (node *Node[T]) AncestorWith(predicate Predicate[T]) *Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	for p := node.parent; p != nil; p = p.parent {
		if predicate(p) {
			return p
		}
	}
	return nil
}
