package elements

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/thedom/dom"

// TextBox is a single line text input. A text box which is not editable is
// rendered readonly.
type TextBox struct {
	dom.ValueElement
}

// NewTextBox creates a text input.
func NewTextBox() *TextBox {
	tb := &TextBox{}
	newInput(&tb.ValueElement, tb, "text")
	tb.Connect(dom.SigRendering, func(e *dom.Element, _ any) {
		if e.Editable() {
			e.RemoveAttribute("readonly")
		} else {
			e.SetAttribute("readonly", "readonly")
		}
	})
	return tb
}

var textBoxProperties = dom.NewPropertyTable(dom.BaseProperties, dom.ValueProperties).
	Define("placeholder", dom.Attribute("")).
	Define("maxlength", dom.Attribute("")).
	Define("size", dom.Attribute(""))

// Properties of a text box.
func (tb *TextBox) Properties() *dom.PropertyTable {
	return textBoxProperties
}

// HiddenInput is an input of type "hidden", carrying a value through a
// request cycle.
type HiddenInput struct {
	dom.ValueElement
}

// NewHiddenInput creates a hidden input.
func NewHiddenInput() *HiddenInput {
	h := &HiddenInput{}
	newInput(&h.ValueElement, h, "hidden")
	return h
}

var hiddenInputProperties = dom.NewPropertyTable(dom.BaseProperties).
	Define("value", dom.Method(func(h *HiddenInput, v any) { h.SetValue(v) }))

// Properties of a hidden input.
func (h *HiddenInput) Properties() *dom.PropertyTable {
	return hiddenInputProperties
}

// newInput sets up v as an <input> of a given type, rendering its current
// value as attribute "value".
func newInput(v *dom.ValueElement, self dom.Widget, typ string) {
	v.Init(self, "input").
		SetTagSelfCloses(true).
		SetAllowsChildren(false).
		SetAttribute("type", typ).
		SetAttribute("value", dom.Callback(func() any { return v.Value() }))
}
