/*
Package style holds inline CSS styles of DOM elements.

Elements carry their styles as an ordered list of declarations, i.e. the
content of a `style` attribute. Parsing of style strings is done with
douceur (github.com/aymerick/douceur).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'thedom.style'
func tracer() tracing.Trace {
	return tracing.Select("thedom.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Is compares a property case-insensitively to a keyword.
func (p Property) Is(keyword string) bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), keyword)
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Declarations ----------------------------------------------------------

// Declarations is an ordered set of style properties, as found in an
// inline `style` attribute. Order of first insertion is preserved;
// setting an existing key keeps its position.
//
// The zero value is an empty set of declarations ready to use.
type Declarations struct {
	keys   []string
	values map[string]Property
}

// Set a property's value. Overwrites an existing value, if present.
// Property keys are case-insensitive and stored in lower case.
func (d *Declarations) Set(key string, p Property) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return
	}
	if d.values == nil {
		d.values = make(map[string]Property)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = p
}

// Get a property's value.
func (d *Declarations) Get(key string) (Property, bool) {
	if d == nil || d.values == nil {
		return NullStyle, false
	}
	p, ok := d.values[strings.ToLower(key)]
	return p, ok
}

// IsSet is a predicate wether a property is set to a non-empty value.
func (d *Declarations) IsSet(key string) bool {
	p, ok := d.Get(key)
	return ok && !p.IsEmpty()
}

// Remove deletes a property. It returns false if the property has not been set.
func (d *Declarations) Remove(key string) bool {
	key = strings.ToLower(key)
	if d == nil || d.values == nil {
		return false
	}
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of properties set.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Properties returns all properties in order of insertion.
func (d *Declarations) Properties() []KeyValue {
	if d == nil {
		return nil
	}
	r := make([]KeyValue, len(d.keys))
	for i, k := range d.keys {
		r[i] = KeyValue{k, d.values[k]}
	}
	return r
}

// String renders the declarations in the form of a style attribute value,
// e.g. "margin:5px;color:red;". Properties with empty values are left out.
func (d *Declarations) String() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	for _, k := range d.keys {
		v := d.values[k]
		if v.IsEmpty() {
			continue
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(string(v))
		b.WriteByte(';')
	}
	return b.String()
}
