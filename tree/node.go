package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type parameter T.
Nodes maintain an ordered slice of children; order of insertion is significant.

Trees are built and mutated by a single goroutine. There is no locking: a tree
under construction must not be shared, a finished tree may be read concurrently.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // ordered slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to the children of node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// AddChild does not check if ch is already present. Adding a node twice
// results in two references to the same child.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.addChild(ch, node)
	}
	return node
}

// SetChildAt replaces the child at position i with ch.
// The newly inserted node is connected to this node as its parent, the
// replaced child (if any) is disconnected.
// If i is beyond the end of the children, SetChildAt appends ch.
// It returns the parent node to allow for chaining.
func (node *Node[T]) SetChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil && i >= 0 {
		node.children.setChild(i, ch, node)
	}
	return node
}

// InsertChildAt inserts a new child node into the tree.
// The newly inserted node is connected to this node as its parent.
// The child is set at a given position in relation to other children,
// shifting children at later positions.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil && i >= 0 {
		node.children.insertChildAt(i, ch, node)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Root returns the topmost ancestor of node, which may be node itself.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors of node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// RemoveChild removes the first occurrence of ch from the children of node
// and clears its parent link. Later children move up by one position.
// It returns false if ch is not a child of node.
func (node *Node[T]) RemoveChild(ch *Node[T]) bool {
	if ch == nil {
		return false
	}
	return node.children.remove(ch)
}

// RemoveAll disconnects all children from node.
func (node *Node[T]) RemoveAll() {
	for _, ch := range node.children.slice {
		if ch.parent == node {
			ch.parent = nil
		}
	}
	node.children.slice = nil
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
// The slice is a copy; modifying it does not alter the tree.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children.slice {
		if ch == child {
			return i
		}
	}
	return -1
}

// --- Slices of children ----------------------------------------------------

type childrenSlice[T comparable] struct {
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	return len(chs.slice)
}

func (chs *childrenSlice[T]) addChild(child *Node[T], parent *Node[T]) {
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice[T]) setChild(i int, child *Node[T], parent *Node[T]) {
	if len(chs.slice) <= i {
		chs.addChild(child, parent)
		return
	}
	if old := chs.slice[i]; old != nil && old != child && old.parent == parent {
		old.parent = nil
	}
	chs.slice[i] = child
	child.parent = parent
}

func (chs *childrenSlice[T]) insertChildAt(i int, child *Node[T], parent *Node[T]) {
	if len(chs.slice) <= i {
		chs.addChild(child, parent)
		return
	}
	chs.slice = append(chs.slice, nil)   // make room for one child
	copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
	chs.slice[i] = child
	child.parent = parent
}

func (chs *childrenSlice[T]) remove(node *Node[T]) bool {
	for i, ch := range chs.slice {
		if ch == node {
			copy(chs.slice[i:], chs.slice[i+1:])
			chs.slice[len(chs.slice)-1] = nil
			chs.slice = chs.slice[:len(chs.slice)-1]
			node.parent = nil
			return true
		}
	}
	return false
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
