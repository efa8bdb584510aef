package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/thedom/tree"
)

// AllChildren returns all descendants of the element in document order.
func (e *Element) AllChildren() []Node {
	descendants := e.node.DescendantsWith(tree.Whatever[Node]())
	return payloads(descendants)
}

// Select returns all descendant elements matching a predicate, in document order.
func (e *Element) Select(match func(*Element) bool) []Widget {
	nodes := e.node.DescendantsWith(func(n *tree.Node[Node]) bool {
		w, ok := n.Payload.(Widget)
		return ok && match(w.Elem())
	})
	widgets := make([]Widget, len(nodes))
	for i, n := range nodes {
		widgets[i] = n.Payload.(Widget)
	}
	return widgets
}

// ChildElementsWithClass returns all descendant elements carrying a class.
func (e *Element) ChildElementsWithClass(class string) []Widget {
	return e.Select(func(x *Element) bool { return x.HasClass(class) })
}

// ChildElementsWithName returns all descendant elements with a given name.
func (e *Element) ChildElementsWithName(name string) []Widget {
	return e.Select(func(x *Element) bool { return x.name == name })
}

// ChildElementsWithTagName returns all descendant elements with a given tag
// (case-insensitive).
func (e *Element) ChildElementsWithTagName(tag string) []Widget {
	return e.Select(func(x *Element) bool { return strings.EqualFold(x.tagName, tag) })
}

// ChildElementWithID returns the first descendant element with a given id, or nil.
func (e *Element) ChildElementWithID(id string) Widget {
	n := e.node.FirstDescendantWith(func(n *tree.Node[Node]) bool {
		w, ok := n.Payload.(Widget)
		return ok && w.Elem().id == id
	})
	if n == nil {
		return nil
	}
	return n.Payload.(Widget)
}

// Texts returns all descendant text nodes in document order.
func (e *Element) Texts() []*TextNode {
	var texts []*TextNode
	for _, n := range e.AllChildren() {
		if t, ok := n.(*TextNode); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

func payloads(nodes []*tree.Node[Node]) []Node {
	r := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Payload != nil {
			r = append(r, n.Payload)
		}
	}
	return r
}
