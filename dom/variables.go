package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
	"strings"

	"golang.org/x/net/html"
)

// Vars is a flat or nested map of values, e.g. the fields of an HTTP request.
// Nested levels are of type Vars or map[string]any.
type Vars map[string]any

// ValueHolder is the capability of elements to carry a value, e.g. an input field.
type ValueHolder interface {
	Value() any
	SetValue(v any)
}

// NestedGet looks up a dotted path, e.g. "a.b.c", in a nested map.
func NestedGet(vars map[string]any, path string) (any, bool) {
	if vars == nil || path == "" {
		return nil, false
	}
	keys := strings.Split(path, ".")
	var cur any = vars
	for _, k := range keys {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// NestedSet sets a value at a dotted path in a nested map, creating
// intermediate levels as needed.
func NestedSet(vars map[string]any, path string, value any) {
	if vars == nil || path == "" {
		return
	}
	keys := strings.Split(path, ".")
	m := vars
	for _, k := range keys[:len(keys)-1] {
		next, ok := asMap(m[k])
		if !ok {
			next = Vars{}
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = value
}

func asMap(x any) (map[string]any, bool) {
	switch m := x.(type) {
	case Vars:
		return m, m != nil
	case map[string]any:
		return m, m != nil
	}
	return nil, false
}

// popValue returns the value for vars[key]. A list value is consumed from the
// front; keep is set if entries remain for later calls.
func popValue(vars map[string]any, key string) (value any, keep bool, found bool) {
	v, ok := vars[key]
	if !ok || v == nil {
		return nil, false, false
	}
	switch list := v.(type) {
	case []any:
		if len(list) == 0 {
			return nil, false, false
		}
		if len(list) > 1 {
			vars[key] = list[1:]
			return list[0], true, true
		}
		return list[0], false, true
	case []string:
		if len(list) == 0 {
			return nil, false, false
		}
		if len(list) > 1 {
			vars[key] = list[1:]
			return list[0], true, true
		}
		return list[0], false, true
	}
	return v, false, true
}

// InsertVariables distributes values from vars into the element's subtree.
// Children are served first. If the element is a ValueHolder, its value is
// taken from vars by (in order of priority) its key as a dotted path, its
// full id, id, full name or name. Consumed entries are deleted from vars,
// except for list values with remaining entries, which are consumed one by one.
func (e *Element) InsertVariables(vars Vars) {
	if vars == nil {
		return
	}
	for _, ch := range e.Children() {
		ch.InsertVariables(vars)
	}
	if vh, ok := e.Widget().(ValueHolder); ok {
		e.insertValue(vh, vars)
	}
}

func (e *Element) insertValue(vh ValueHolder, vars Vars) {
	var value any
	found, keep := false, false
	if e.key != "" {
		value, found = NestedGet(vars, e.key)
		found = found && value != nil
	}
	if !found {
		for _, k := range []string{e.FullID(), e.id, e.FullName(), e.name} {
			if k == "" {
				continue
			}
			if value, keep, found = popValue(vars, k); found {
				break
			}
		}
	}
	if found {
		tracer().Debugf("inserting value into %s", e)
		vh.SetValue(value)
	}
	if !keep {
		e.removeFromVars(vars)
	}
}

func (e *Element) removeFromVars(vars Vars) {
	for _, k := range []string{e.id, e.name, e.FullID(), e.FullName()} {
		if k != "" {
			delete(vars, k)
		}
	}
}

// ExportVariables collects the values of the element's subtree into vars
// (which is allocated if nil). With flat set, values are stored by name
// (repeated names accumulate into a list) or, lacking a name, by id.
// Otherwise values are stored in a nested map at the dotted key of the element.
func (e *Element) ExportVariables(vars Vars, flat bool) Vars {
	if vars == nil {
		vars = Vars{}
	}
	if vh, ok := e.Widget().(ValueHolder); ok {
		e.exportValue(vh.Value(), vars, flat)
	}
	for _, ch := range e.Children() {
		ch.ExportVariables(vars, flat)
	}
	return vars
}

func (e *Element) exportValue(value any, vars Vars, flat bool) {
	if !flat {
		if e.key != "" {
			NestedSet(vars, e.key, value)
		}
		return
	}
	if e.name != "" {
		switch prev := vars[e.name].(type) {
		case nil:
			vars[e.name] = value
		case []any:
			vars[e.name] = append(prev, value)
		default:
			vars[e.name] = []any{prev, value}
		}
	} else if e.id != "" {
		vars[e.id] = value
	}
}

// ClearFromRequest removes all entries for the element's subtree from vars.
func (e *Element) ClearFromRequest(vars Vars) {
	if vars == nil {
		return
	}
	e.removeFromVars(vars)
	for _, ch := range e.Children() {
		if w, ok := ch.(Widget); ok {
			w.Elem().ClearFromRequest(vars)
		}
	}
}

// --- Value elements --------------------------------------------------------

// ValueElement is an element carrying a value. It implements ValueHolder and
// is meant to be embedded into input-like widgets.
type ValueElement struct {
	Element
	value any
}

// Value returns the current value.
func (v *ValueElement) Value() any {
	return v.value
}

// SetValue sanitizes x and sets it as the value, emitting SigValueChanged
// if the value changes.
func (v *ValueElement) SetValue(x any) {
	v.SetValueSafe(Sanitize(x))
}

// SetValueSafe sets a value without sanitizing it.
func (v *ValueElement) SetValueSafe(x any) {
	if reflect.DeepEqual(x, v.value) {
		return
	}
	v.value = x
	v.Emit(SigValueChanged, x)
}

// Sanitize escapes HTML special characters in strings (and lists of strings)
// originating from user input.
func Sanitize(x any) any {
	switch s := x.(type) {
	case string:
		return html.EscapeString(s)
	case []string:
		r := make([]string, len(s))
		for i := range s {
			r[i] = html.EscapeString(s[i])
		}
		return r
	}
	return x
}
