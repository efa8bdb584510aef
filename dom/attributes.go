package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/thedom/dom/style"
)

// Marker is the type of attribute values with special rendering.
type Marker string

// Attribute values Blank and Empty distinguish "present but empty" from "absent".
const (
	Blank Marker = "_BLANK_" // renders as key=""
	Empty Marker = "_EMPTY_" // renders as a bare key, e.g. `disabled`
)

// Callback is an attribute value which is evaluated at render time.
type Callback func() any

// Attributes is an ordered mapping of attribute names to values.
// Values may be strings, numbers, booleans, lists, maps, Markers or
// Callbacks; see Stringify.
//
// The zero value is an empty mapping ready to use.
type Attributes struct {
	keys   []string
	values map[string]any
}

// Set an attribute. Setting an existing attribute keeps its position.
func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get an attribute's raw value.
func (a *Attributes) Get(key string) (any, bool) {
	if a == nil || a.values == nil {
		return nil, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Remove an attribute. Returns false if the attribute has not been set.
func (a *Attributes) Remove(key string) bool {
	if a == nil || a.values == nil {
		return false
	}
	if _, ok := a.values[key]; !ok {
		return false
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the attribute names in order of insertion.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	k := make([]string, len(a.keys))
	copy(k, a.keys)
	return k
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Stringify converts an attribute value to its string representation:
// lists are joined by spaces, maps render as "key:value;" in key order,
// booleans in lower case, and callbacks are evaluated.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Marker:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case Callback:
		return Stringify(x())
	case func() any:
		return Stringify(x())
	case func() string:
		return x()
	case []string:
		return strings.Join(x, " ")
	case []any:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			if s := Stringify(p); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]string:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			b.WriteString(k + ":" + x[k] + ";")
		}
		return b.String()
	case map[string]any:
		return stringifyMap(x)
	case Vars:
		return stringifyMap(x)
	case *style.Declarations:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func stringifyMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + ":" + Stringify(m[k]) + ";")
	}
	return b.String()
}

func escapeAttribute(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// writeAttribute renders ` key="value"`. Empty values are skipped.
func writeAttribute(b *strings.Builder, key string, value any) {
	switch value {
	case Blank:
		b.WriteString(" " + key + `=""`)
		return
	case Empty:
		b.WriteString(" " + key)
		return
	}
	s := Stringify(value)
	if s == "" {
		return
	}
	b.WriteString(" " + key + `="` + escapeAttribute(s) + `"`)
}

// --- Element attribute API -------------------------------------------------

// Attributes returns the generic attributes of the element, allocating them on
// first access. The canonical attributes name, id, class and style are not part
// of it.
func (e *Element) Attributes() *Attributes {
	if e.attributes == nil {
		e.attributes = &Attributes{}
	}
	return e.attributes
}

// SetAttribute sets an attribute. Keys id, name and class are routed to
// their dedicated setters, style is parsed (a malformed style is kept as a raw
// attribute).
func (e *Element) SetAttribute(key string, value any) *Element {
	switch key {
	case "id":
		e.SetID(Stringify(value))
	case "name":
		e.SetName(Stringify(value))
	case "class":
		e.AddClassesFromString(Stringify(value))
	case "style":
		if err := e.SetStyleFromString(Stringify(value)); err != nil {
			tracer().Infof("keeping malformed style as raw attribute: %v", err)
			e.Attributes().Set(key, value)
		}
	default:
		e.Attributes().Set(key, value)
	}
	return e
}

// Attribute returns the rendered value of an attribute.
func (e *Element) Attribute(key string) string {
	v, _ := e.attributes.Get(key)
	return Stringify(v)
}

// AttributeValue returns the unrendered value of a generic attribute.
func (e *Element) AttributeValue(key string) (any, bool) {
	return e.attributes.Get(key)
}

// AttributeKeys returns the keys of the generic attributes in insertion order.
// Other than Attributes, it does not allocate for elements without attributes.
func (e *Element) AttributeKeys() []string {
	return e.attributes.Keys()
}

// HasAttribute is a predicate wether an attribute is set.
func (e *Element) HasAttribute(key string) bool {
	_, ok := e.attributes.Get(key)
	return ok
}

// RemoveAttribute removes an attribute.
func (e *Element) RemoveAttribute(key string) bool {
	return e.attributes.Remove(key)
}

// --- Style -----------------------------------------------------------------

// Style returns the inline style declarations, allocating them on first access.
func (e *Element) Style() *style.Declarations {
	if e.style == nil {
		e.style = &style.Declarations{}
	}
	return e.style
}

// StyleText returns the inline style as rendered, e.g. "color:red;margin:5px".
func (e *Element) StyleText() string {
	return e.style.String()
}

// StyleProperties returns the inline style declarations in order.
func (e *Element) StyleProperties() []style.KeyValue {
	return e.style.Properties()
}

// SetStyle sets a single style property.
func (e *Element) SetStyle(key string, value string) *Element {
	e.Style().Set(key, style.Property(value))
	return e
}

// StyleValue returns the value of a style property.
func (e *Element) StyleValue(key string) string {
	p, _ := e.style.Get(key)
	return string(p)
}

// SetStyleFromString sets style properties from a string like "margin:5px;color:red".
// A declaration without a ':' returns style.ErrMalformedStyle, leaving
// the style untouched.
func (e *Element) SetStyleFromString(s string) error {
	kv, err := style.ParseDeclarations(s)
	if err != nil {
		return err
	}
	for _, p := range kv {
		e.Style().Set(p.Key, p.Value)
	}
	return nil
}

// --- Classes ---------------------------------------------------------------

// Classes is an ordered set of class names.
type Classes struct {
	names []string
}

// Add a class name. Returns false if it is already present.
func (c *Classes) Add(name string) bool {
	if name == "" || c.Has(name) {
		return false
	}
	c.names = append(c.names, name)
	return true
}

// Remove a class name. Returns false if it is not present.
func (c *Classes) Remove(name string) bool {
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			return true
		}
	}
	return false
}

// Has is a predicate wether a class name is present.
func (c *Classes) Has(name string) bool {
	if c == nil {
		return false
	}
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns the class names in order of insertion.
func (c *Classes) Names() []string {
	if c == nil {
		return nil
	}
	n := make([]string, len(c.names))
	copy(n, c.names)
	return n
}

// Len returns the number of class names.
func (c *Classes) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

func (c *Classes) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.names, " ")
}

// Classes returns the set of class names, allocating it on first access.
func (e *Element) Classes() *Classes {
	if e.classes == nil {
		e.classes = &Classes{}
	}
	return e.classes
}

// ClassNames returns the class names of the element in insertion order.
func (e *Element) ClassNames() []string {
	return e.classes.Names()
}

// AddClass adds a class name to the element.
func (e *Element) AddClass(name string) *Element {
	e.Classes().Add(name)
	return e
}

// RemoveClass removes a class name from the element.
func (e *Element) RemoveClass(name string) bool {
	return e.classes != nil && e.classes.Remove(name)
}

// HasClass is a predicate wether the element carries a class name.
func (e *Element) HasClass(name string) bool {
	return e.classes.Has(name)
}

// AddClassesFromString adds space-separated class names.
func (e *Element) AddClassesFromString(s string) *Element {
	for _, c := range strings.Fields(s) {
		e.Classes().Add(c)
	}
	return e
}

// ChooseClass removes all classes of choices from the element and then adds choice.
func (e *Element) ChooseClass(choices []string, choice string) *Element {
	for _, c := range choices {
		e.RemoveClass(c)
	}
	return e.AddClass(choice)
}
