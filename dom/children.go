package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"reflect"

	"github.com/npillmayer/thedom/tree"
)

// ErrChildrenNotAllowed is reported if a child is added to an element which
// does not accept children.
var ErrChildrenNotAllowed = errors.New("element does not allow children")

// ErrNilChild is reported if a nil child is added.
var ErrNilChild = errors.New("cannot add nil child")

// ErrCyclicChild is reported if an element is added to one of its own descendants.
var ErrCyclicChild = errors.New("cannot add an element to its own subtree")

// ErrNegativeIndex is reported if a child is inserted at a negative position.
var ErrNegativeIndex = errors.New("cannot insert child at negative index")

// AddStatus is the outcome of adding a child element.
type AddStatus int

// Outcomes of adding a child element
const (
	Added          AddStatus = iota // child has been appended
	AlreadyPresent                  // child already is a child of the target; nothing changed
	Rejected                        // child has not been added, see AddResult.Err
)

func (s AddStatus) String() string {
	switch s {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already-present"
	}
	return "rejected"
}

// AddResult is returned by AddChildElement.
type AddResult struct {
	Status AddStatus
	Child  Node  // the child in question
	Err    error // reason for rejection
}

// OK is true if the child is a child of the target element after the call.
func (r AddResult) OK() bool {
	return r.Status != Rejected
}

// SetAddChildElementsTo redirects children added to this element to another
// element (usually an inner container of a composite widget).
// Setting nil resets the redirect.
func (e *Element) SetAddChildElementsTo(w Widget) *Element {
	e.addTo = w
	return e
}

// AddChildElementsTo returns the effective target for added children.
func (e *Element) AddChildElementsTo() Widget {
	if e.addTo != nil {
		return e.addTo
	}
	return e.Widget()
}

// AddChildElement appends a child to the element (or to its AddChildElementsTo
// target). If the child is attached to a different parent, it is moved.
// Adding a child already present leaves it in its position.
func (e *Element) AddChildElement(child Node) AddResult {
	return e.AddChild(child, true)
}

// AddChildElements adds a list of children in order. It stops at the first
// rejected child and returns its result.
func (e *Element) AddChildElements(children ...Node) AddResult {
	r := AddResult{Status: Added}
	for _, ch := range children {
		if r = e.AddChild(ch, true); !r.OK() {
			return r
		}
	}
	return r
}

// AddChild appends a child to the element (or to its AddChildElementsTo target).
// If ensureUnique is set, the child will first be detached from its current
// parent (a no-op returning AlreadyPresent if this is the target itself).
// Otherwise the child will be appended regardless, possibly creating a second
// reference to it.
//
// Adding a child emits SigChildAdded on the element and moves scripts which
// have been buffered on the child to the element.
func (e *Element) AddChild(child Node, ensureUnique bool) AddResult {
	if isNil(child) {
		return AddResult{Status: Rejected, Err: ErrNilChild}
	}
	target := e.AddChildElementsTo().Elem()
	if target.forbidChildren {
		return AddResult{Status: Rejected, Child: child, Err: ErrChildrenNotAllowed}
	}
	tn := child.tnode()
	if isAncestorOrSelf(tn, target.tnode()) {
		return AddResult{Status: Rejected, Child: child, Err: ErrCyclicChild}
	}
	if ensureUnique {
		if p := tn.Parent(); p != nil {
			if p == &target.node {
				return AddResult{Status: AlreadyPresent, Child: child}
			}
			p.RemoveChild(tn)
		}
	}
	target.node.AddChild(tn)
	e.Emit(SigChildAdded, child)
	if w, ok := child.(Widget); ok {
		e.adoptBufferedScripts(w.Elem())
	}
	return AddResult{Status: Added, Child: child}
}

// isAncestorOrSelf is true if a is n or one of its ancestors.
func isAncestorOrSelf(a, n *tree.Node[Node]) bool {
	for ; n != nil; n = n.Parent() {
		if n == a {
			return true
		}
	}
	return false
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// RemoveChild detaches a direct child. It returns false if child is not a child
// of the element (or of its AddChildElementsTo target).
func (e *Element) RemoveChild(child Node) bool {
	if isNil(child) {
		return false
	}
	if e.node.RemoveChild(child.tnode()) {
		return true
	}
	if e.addTo != nil {
		return e.addTo.Elem().node.RemoveChild(child.tnode())
	}
	return false
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	e.node.Isolate()
}

// Reset removes all children of the element.
func (e *Element) Reset() {
	e.node.RemoveAll()
}

// ReplaceWith puts other at the position of this element within its parent,
// detaching this element. If this element has no parent, or other is one of
// its ancestors, an Invalid element is returned and nothing changes.
func (e *Element) ReplaceWith(other Node) Node {
	return replaceNode(e, other)
}

func replaceNode(this Node, other Node) Node {
	tn := this.tnode()
	p := tn.Parent()
	if p == nil || isNil(other) {
		return NewInvalid()
	}
	on := other.tnode()
	if on == tn {
		return other
	}
	if isAncestorOrSelf(on, p) {
		tracer().Errorf("cannot replace a node by one of its ancestors")
		return NewInvalid()
	}
	on.Isolate()
	p.SetChildAt(p.IndexOfChild(tn), on)
	return other
}

// InsertChildAt inserts a child at position i of the element's own children
// (ignoring AddChildElementsTo). The child is moved if it has a parent.
// Positions beyond the last child append the child.
func (e *Element) InsertChildAt(i int, child Node) AddResult {
	if isNil(child) {
		return AddResult{Status: Rejected, Err: ErrNilChild}
	}
	if e.forbidChildren {
		return AddResult{Status: Rejected, Child: child, Err: ErrChildrenNotAllowed}
	}
	if i < 0 {
		return AddResult{Status: Rejected, Child: child, Err: ErrNegativeIndex}
	}
	tn := child.tnode()
	if isAncestorOrSelf(tn, e.tnode()) {
		return AddResult{Status: Rejected, Child: child, Err: ErrCyclicChild}
	}
	tn.Isolate()
	e.node.InsertChildAt(i, tn)
	e.Emit(SigChildAdded, child)
	return AddResult{Status: Added, Child: child}
}

// --- Text nodes ------------------------------------------------------------

// TextNode is a leaf holding literal text. Text is rendered verbatim, i.e.
// escaping is the responsibility of the client.
type TextNode struct {
	node tree.Node[Node]
	text string
}

var _ Node = &TextNode{}

// NewText creates a text node.
func NewText(text string) *TextNode {
	t := &TextNode{text: text}
	t.node.Payload = t
	return t
}

func (t *TextNode) tnode() *tree.Node[Node] {
	if t.node.Payload == nil {
		t.node.Payload = t
	}
	return &t.node
}

// Text returns the text of the node.
func (t *TextNode) Text() string {
	return t.text
}

// SetText replaces the text of the node.
func (t *TextNode) SetText(text string) {
	t.text = text
}

func (t *TextNode) String() string {
	return "\"" + t.text + "\""
}

// ToHTML returns the text verbatim.
func (t *TextNode) ToHTML(bool) string {
	return t.text
}

// Parent returns the element containing the text.
func (t *TextNode) Parent() Widget {
	return parentOf(&t.node)
}

// InsertVariables is a no-op for text.
func (t *TextNode) InsertVariables(Vars) {}

// ExportVariables is a no-op for text.
func (t *TextNode) ExportVariables(vars Vars, flat bool) Vars {
	if vars == nil {
		vars = Vars{}
	}
	return vars
}

// ReplaceWith puts other at the position of the text within its parent.
func (t *TextNode) ReplaceWith(other Node) Node {
	return replaceNode(t, other)
}

// Remove detaches the text from its parent.
func (t *TextNode) Remove() {
	t.node.Isolate()
}

// --- Invalid ---------------------------------------------------------------

// Invalid is a placeholder element which is put into a tree in place of
// elements which could not be created. It renders as a visible heading.
type Invalid struct {
	Element
}

// NewInvalid creates a placeholder element.
func NewInvalid() *Invalid {
	inv := &Invalid{}
	inv.Init(inv, "h2")
	inv.SetAllowsChildren(false)
	inv.props = NewPropertyTable()
	return inv
}

// Content is "Invalid Element".
func (inv *Invalid) Content(bool) string {
	return "Invalid Element"
}

// IsInvalid is a predicate wether a node is an Invalid placeholder.
func IsInvalid(n Node) bool {
	_, ok := n.(*Invalid)
	return ok
}
