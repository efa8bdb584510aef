package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/thedom/maybe"
)

// --- Visibility ------------------------------------------------------------

// Hide sets style "display:none". If the element is already hidden, nothing
// happens; otherwise SigHidden is emitted.
func (e *Element) Hide() {
	if !e.Shown() {
		return
	}
	e.SetStyle("display", "none")
	e.Emit(SigHidden, nil)
}

// Show removes a "display:none" style. If the element is not hidden, nothing
// happens; otherwise SigShown is emitted.
func (e *Element) Show() {
	if e.Shown() {
		return
	}
	e.Style().Remove("display")
	e.Emit(SigShown, nil)
}

// Shown is false if the element has style "display:none".
func (e *Element) Shown() bool {
	p, ok := e.style.Get("display")
	return !ok || !p.Is("none")
}

// SetVisible shows or hides the element.
func (e *Element) SetVisible(visible bool) {
	if visible {
		e.Show()
	} else {
		e.Hide()
	}
}

// --- Editability -----------------------------------------------------------

// Editable returns the editability of the element, if it has been set
// explicitly. Otherwise it is inherited from the parent, defaulting to true.
func (e *Element) Editable() bool {
	if e.editable != nil {
		if b, ok := e.editable.Get(); ok {
			return b
		}
	}
	if p := e.Parent(); p != nil {
		return p.Elem().Editable()
	}
	return true
}

// SetEditable sets the editability of the element and its descendants
// (unless overridden further down). SigEditableChanged is emitted if the
// explicit setting of the element changes.
func (e *Element) SetEditable(editable bool) {
	if e.editable != nil {
		if b, ok := e.editable.Get(); ok && b == editable {
			return
		}
	}
	e.editable = maybe.Just(editable)
	e.Emit(SigEditableChanged, editable)
}

// ClearEditable removes an explicit editability setting.
func (e *Element) ClearEditable() {
	e.editable = maybe.Nothing[bool]()
}

// --- Validators ------------------------------------------------------------

// Validator checks the value of an element.
type Validator interface {
	Validate(value any) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(value any) error

// Validate calls f(value).
func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// SetValidator attaches a validator to the element.
func (e *Element) SetValidator(v Validator) *Element {
	e.validator = v
	return e
}

// Validator returns the validator attached to the element, or nil.
func (e *Element) Validator() Validator {
	return e.validator
}

// Validators collects the validators of all editable elements of the subtree,
// keyed by full id (or id, if useFullID is false). Elements without an id are
// keyed by (full) name.
func (e *Element) Validators(useFullID bool) map[string]Validator {
	m := make(map[string]Validator)
	e.collectValidators(useFullID, m)
	return m
}

func (e *Element) collectValidators(useFullID bool, m map[string]Validator) {
	if e.validator != nil && e.Editable() {
		if k := e.validationKey(useFullID); k != "" {
			m[k] = e.validator
		}
	}
	for _, ch := range e.Children() {
		if w, ok := ch.(Widget); ok {
			w.Elem().collectValidators(useFullID, m)
		}
	}
}

func (e *Element) validationKey(useFullID bool) string {
	var k string
	if useFullID {
		if k = e.FullID(); k == "" {
			k = e.FullName()
		}
	} else if k = e.id; k == "" {
		k = e.name
	}
	return k
}

// ValidateValues runs the validators of all editable value holders of the
// subtree. It returns the failures, keyed like Validators(true).
func (e *Element) ValidateValues() map[string]error {
	errs := make(map[string]error)
	e.validateValues(errs)
	return errs
}

func (e *Element) validateValues(errs map[string]error) {
	if vh, ok := e.Widget().(ValueHolder); ok && e.validator != nil && e.Editable() {
		if err := e.validator.Validate(vh.Value()); err != nil {
			errs[e.validationKey(true)] = err
		}
	}
	for _, ch := range e.Children() {
		if w, ok := ch.(Widget); ok {
			w.Elem().validateValues(errs)
		}
	}
}
