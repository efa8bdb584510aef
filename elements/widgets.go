package elements

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/thedom/dom"

// Texter is the capability of widgets displaying a text.
type Texter interface {
	dom.Widget
	Text() string
	SetText(text string)
}

// TextProperties is the capability table of Texters.
var TextProperties = dom.NewPropertyTable().Define("text", setText)

var setText = dom.Method(func(w Texter, v any) { w.SetText(dom.AsString(v)) })

// textElement is an element displaying a text as its first child.
type textElement struct {
	dom.Element
	text *dom.TextNode
}

// Text returns the displayed text.
func (t *textElement) Text() string {
	if t.text == nil {
		return ""
	}
	return t.text.Text()
}

// SetText sets the displayed text.
func (t *textElement) SetText(text string) {
	if t.text == nil {
		t.text = dom.NewText(text)
		t.InsertChildAt(0, t.text)
		return
	}
	t.text.SetText(text)
}

// --- Box, Container, Span ---------------------------------------------------

// Box is a block element (div).
type Box struct {
	dom.Element
}

// NewBox creates a box.
func NewBox() *Box {
	b := &Box{}
	b.Init(b, "div")
	return b
}

// Container groups elements without a tag of its own.
type Container struct {
	dom.Element
}

// NewContainer creates a container.
func NewContainer() *Container {
	c := &Container{}
	c.Init(c, "")
	return c
}

// Span is an inline element displaying a text.
type Span struct {
	textElement
}

// NewSpan creates a span.
func NewSpan() *Span {
	s := &Span{}
	s.Init(s, "span")
	return s
}

var spanProperties = dom.NewPropertyTable(dom.BaseProperties, TextProperties)

// Properties of a span include its text.
func (s *Span) Properties() *dom.PropertyTable {
	return spanProperties
}

// --- Label, Button, Anchor ------------------------------------------------

// Label is a caption, usually for an input element.
type Label struct {
	textElement
}

// NewLabel creates a label.
func NewLabel() *Label {
	l := &Label{}
	l.Init(l, "label")
	return l
}

var labelProperties = dom.NewPropertyTable(dom.BaseProperties, TextProperties).
	Define("for", dom.Attribute(""))

// Properties of a label.
func (l *Label) Properties() *dom.PropertyTable {
	return labelProperties
}

// Button is a clickable button of type "button".
type Button struct {
	textElement
}

// NewButton creates a button.
func NewButton() *Button {
	b := &Button{}
	b.Init(b, "button")
	b.SetAttribute("type", "button")
	return b
}

var buttonProperties = dom.NewPropertyTable(dom.BaseProperties, TextProperties).
	Define("onclick", dom.Event("")).
	Define("disabled", dom.Call(func(b *Button) { b.SetAttribute("disabled", dom.Empty) }))

// Properties of a button.
func (b *Button) Properties() *dom.PropertyTable {
	return buttonProperties
}

// Anchor is a hyperlink.
type Anchor struct {
	textElement
}

// NewAnchor creates a hyperlink.
func NewAnchor() *Anchor {
	a := &Anchor{}
	a.Init(a, "a")
	return a
}

var anchorProperties = dom.NewPropertyTable(dom.BaseProperties, TextProperties).
	Define("href", dom.Attribute("")).
	Define("target", dom.Attribute(""))

// Properties of an anchor.
func (a *Anchor) Properties() *dom.PropertyTable {
	return anchorProperties
}

// SetHref sets the link target.
func (a *Anchor) SetHref(href string) *Anchor {
	a.SetAttribute("href", href)
	return a
}
