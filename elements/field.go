package elements

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/thedom/dom"
)

// Field is a labeled form field:
//
//     <div class="WField">
//      <label for="…">Caption</label>
//      <div class="WInputs"> … children … </div>
//     </div>
//
// Children added to a field go to the inputs box. At rendering time, the
// label is connected to the first value holder among them.
type Field struct {
	dom.Element
	label  *Label
	inputs *Box
}

// NewField creates a field without caption.
func NewField() *Field {
	f := &Field{label: NewLabel(), inputs: NewBox()}
	f.Init(f, "div").AddClass("WField")
	f.inputs.AddClass("WInputs")
	f.AddChildElements(f.label, f.inputs)
	f.SetAddChildElementsTo(f.inputs)
	f.Connect(dom.SigRendering, func(*dom.Element, any) {
		f.connectLabel()
	})
	return f
}

// Label returns the caption of the field.
func (f *Field) Label() *Label {
	return f.label
}

// Inputs returns the element holding the children of the field.
func (f *Field) Inputs() *Box {
	return f.inputs
}

// Delegate exposes "label" and "inputs" to property delegation.
func (f *Field) Delegate(accessor string) (dom.Widget, bool) {
	switch strings.ToLower(accessor) {
	case "label":
		return f.label, true
	case "inputs":
		return f.inputs, true
	}
	return nil, false
}

func (f *Field) connectLabel() {
	for _, ch := range f.inputs.AllChildren() {
		if _, ok := ch.(dom.ValueHolder); !ok {
			continue
		}
		if id := ch.(dom.Widget).Elem().FullID(); id != "" {
			f.label.SetAttribute("for", id)
			return
		}
	}
}

var fieldProperties = dom.NewPropertyTable(dom.BaseProperties).
	Define("text", dom.DelegateTo("label", setText)).
	Define("labelStyle", dom.DelegateTo("label", dom.Action{Kind: dom.SetStyle})).
	Define("labelClass", dom.DelegateTo("label", dom.Action{Kind: dom.AddClasses})).
	Define("inputsStyle", dom.DelegateTo("inputs", dom.Action{Kind: dom.SetStyle}))

// Properties of a field: its caption and the styles of its parts.
func (f *Field) Properties() *dom.PropertyTable {
	return fieldProperties
}
