package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/thedom/dom/style"
	"github.com/npillmayer/thedom/maybe"
	"github.com/npillmayer/thedom/tree"
)

// Node is the common interface of all nodes of an element tree,
// i.e. elements and text nodes.
type Node interface {
	ToHTML(formatted bool) string           // render the node and its subtree
	Parent() Widget                          // parent element or nil
	InsertVariables(vars Vars)               // distribute values into the subtree
	ExportVariables(vars Vars, flat bool) Vars // collect values of the subtree
	ReplaceWith(other Node) Node             // splice other into the position of this node
	Remove()                                 // detach from parent
	tnode() *tree.Node[Node]
}

// Widget is implemented by *Element and by every type embedding it.
// Rendering of an element dispatches through this interface, thus types
// embedding Element may override StartTag, Content and EndTag.
type Widget interface {
	Node
	Elem() *Element
	StartTag() string
	Content(formatted bool) string
	EndTag() string
}

// Element is the base type of all tag-like nodes of an element tree.
//
// The zero value is a usable element without a tag. Types embedding Element
// should call Init with a reference to themselves.
type Element struct {
	node            tree.Node[Node]
	self            Widget
	tagName         string
	tagSelfCloses   bool
	forbidChildren  bool
	id, name, key   string
	product         string
	prefix          maybe.Maybe[string]
	editable        maybe.Maybe[bool]
	attributes      *Attributes
	classes         *Classes
	style           *style.Declarations
	addTo           Widget
	props           *PropertyTable
	validator       Validator
	slots           map[Signal][]Slot
	scriptContainer ScriptContainer
	scriptTemp      []string
	objectTemp      []string
}

var _ Widget = &Element{}

// New creates a plain element for a tag. tag may be empty, resulting
// in an element which renders only its content.
func New(tag string) *Element {
	e := &Element{}
	return e.Init(e, tag)
}

// NewElement creates a plain element for a tag, with an id and a name.
// If name is empty, it defaults to id.
func NewElement(tag, id, name string) *Element {
	return New(tag).SetIdentity(id, name)
}

// Init initializes an element embedded in a widget. self is the embedding
// widget, which will be used for rendering dispatch and as the payload of
// the tree node.
//
//     type Button struct { dom.Element }
//
//     func NewButton() *Button {
//         b := &Button{}
//         b.Init(b, "button")
//         return b
//     }
//
func (e *Element) Init(self Widget, tag string) *Element {
	if self == nil {
		self = e
	}
	e.self = self
	e.node.Payload = self
	e.tagName = tag
	e.prefix = maybe.Nothing[string]()
	e.editable = maybe.Nothing[bool]()
	return e
}

// Elem returns the element itself. It is the link from a Widget to its base element.
func (e *Element) Elem() *Element {
	return e
}

// Widget returns the widget this element is embedded in (or the element itself).
func (e *Element) Widget() Widget {
	if e.self != nil {
		return e.self
	}
	return e
}

func (e *Element) tnode() *tree.Node[Node] {
	if e.node.Payload == nil {
		e.node.Payload = e.Widget()
	}
	return &e.node
}

func (e *Element) String() string {
	s := "<" + e.tagName
	if e.id != "" {
		s += "#" + e.id
	}
	return fmt.Sprintf("%s>[%d]", s, e.node.ChildCount())
}

// --- Tag -------------------------------------------------------------------

// TagName returns the tag of the element. An empty tag means that the element
// renders its children only.
func (e *Element) TagName() string {
	return e.tagName
}

// SetTagName sets the tag of the element.
func (e *Element) SetTagName(tag string) *Element {
	e.tagName = tag
	return e
}

// TagSelfCloses is true if the element renders as a single tag, e.g. `<br />`.
func (e *Element) TagSelfCloses() bool {
	return e.tagSelfCloses
}

// SetTagSelfCloses marks an element as rendering without end tag.
func (e *Element) SetTagSelfCloses(b bool) *Element {
	e.tagSelfCloses = b
	return e
}

// AllowsChildren is false for elements which do not accept children.
func (e *Element) AllowsChildren() bool {
	return !e.forbidChildren
}

// SetAllowsChildren sets wether an element accepts children.
func (e *Element) SetAllowsChildren(b bool) *Element {
	e.forbidChildren = !b
	return e
}

// Product returns the factory product name the element has been built as,
// or the empty string.
func (e *Element) Product() string {
	return e.product
}

// SetProduct is called by factories to remember the product name.
func (e *Element) SetProduct(name string) {
	e.product = strings.ToLower(name)
}

// IsBlockElement returns true if the element renders as an HTML block type.
func (e *Element) IsBlockElement() bool {
	return style.IsBlockDisplay(style.DisplayPropertyForTag(e.tagName)) || e.HasClass("WBlock")
}

// --- Identity --------------------------------------------------------------

// ID returns the (unprefixed) id of the element.
func (e *Element) ID() string {
	return e.id
}

// SetID sets the (unprefixed) id of the element.
func (e *Element) SetID(id string) *Element {
	e.id = id
	return e
}

// Name returns the (unprefixed) name of the element.
func (e *Element) Name() string {
	return e.name
}

// SetName sets the (unprefixed) name of the element.
func (e *Element) SetName(name string) *Element {
	e.name = name
	return e
}

// SetIdentity sets id and name of an element. An empty name defaults to id.
func (e *Element) SetIdentity(id, name string) *Element {
	e.id = id
	if name == "" {
		name = id
	}
	e.name = name
	return e
}

// Key returns the dotted path of the element within a nested variables map.
func (e *Element) Key() string {
	return e.key
}

// SetKey sets the dotted path of the element within a nested variables map.
func (e *Element) SetKey(key string) *Element {
	e.key = key
	return e
}

// SetPrefix sets an explicit prefix for id and name of this element and its
// descendants. A single space as a prefix clears an inherited prefix.
func (e *Element) SetPrefix(prefix string) *Element {
	e.prefix = maybe.Just(prefix)
	return e
}

// HasExplicitPrefix is true if the element has been given a non-empty prefix
// of its own.
func (e *Element) HasExplicitPrefix() bool {
	if e.prefix == nil {
		return false
	}
	return e.prefix.WithDefault("") != ""
}

// Prefix returns the effective prefix of the element. If no prefix has been set
// for the element, it is inherited from the parent.
func (e *Element) Prefix() string {
	var p string
	if e.prefix != nil {
		switch m := e.prefix.Match(); m {
		case m.Just(&p):
			if p == " " {
				return ""
			}
			return p
		case m.Nothing():
		}
	}
	if parent := e.Parent(); parent != nil {
		return parent.Elem().Prefix()
	}
	return ""
}

// FullID returns the prefixed id, or the empty string if no id is set.
func (e *Element) FullID() string {
	if e.id == "" {
		return ""
	}
	return e.Prefix() + e.id
}

// FullName returns the prefixed name, or the empty string if no name is set.
func (e *Element) FullName() string {
	if e.name == "" {
		return ""
	}
	return e.Prefix() + e.name
}

// --- Tree structure --------------------------------------------------------

// Parent returns the parent element or nil.
func (e *Element) Parent() Widget {
	return parentOf(&e.node)
}

func parentOf(n *tree.Node[Node]) Widget {
	if p := n.Parent(); p != nil {
		if w, ok := p.Payload.(Widget); ok {
			return w
		}
	}
	return nil
}

// RootElement returns the topmost ancestor of the element, which may be
// the element itself.
func (e *Element) RootElement() *Element {
	r := e
	for p := r.Parent(); p != nil; p = p.Elem().Parent() {
		r = p.Elem()
	}
	return r
}

// Children returns the direct children of the element.
func (e *Element) Children() []Node {
	chs := e.node.Children()
	nodes := make([]Node, 0, len(chs))
	for _, ch := range chs {
		if ch != nil && ch.Payload != nil {
			nodes = append(nodes, ch.Payload)
		}
	}
	return nodes
}

// Child returns the n-th direct child, or nil.
func (e *Element) Child(n int) Node {
	if ch, ok := e.node.Child(n); ok {
		return ch.Payload
	}
	return nil
}

// Count returns the number of direct children.
func (e *Element) Count() int {
	return e.node.ChildCount()
}

// Index returns the position of the element within its parent, or -1.
func (e *Element) Index() int {
	if p := e.node.Parent(); p != nil {
		return p.IndexOfChild(&e.node)
	}
	return -1
}
