package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Signal is the name of a notification an element emits.
type Signal string

// Signals emitted by elements
const (
	SigRendering       Signal = "rendering"       // emitted at the start of ToHTML
	SigChildAdded      Signal = "childAdded"      // value is the added child
	SigHidden          Signal = "hidden"          // element has been hidden
	SigShown           Signal = "shown"           // element has been shown
	SigEditableChanged Signal = "editableChanged" // value is the new editability
	SigValueChanged    Signal = "valueChanged"    // value is the new value
)

// Slot is a function connected to a signal of an element.
type Slot func(e *Element, value any)

// Connect calls slot whenever the element emits signal sig.
// Slots are called in order of connection.
func (e *Element) Connect(sig Signal, slot Slot) *Element {
	if slot == nil {
		return e
	}
	if e.slots == nil {
		e.slots = make(map[Signal][]Slot)
	}
	e.slots[sig] = append(e.slots[sig], slot)
	return e
}

// Disconnect removes all slots connected to a signal.
func (e *Element) Disconnect(sig Signal) {
	delete(e.slots, sig)
}

// Emit calls all slots connected to sig. Panics in slots are not recovered.
func (e *Element) Emit(sig Signal, value any) {
	for _, slot := range e.slots[sig] {
		slot(e, value)
	}
}
