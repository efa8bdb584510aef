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

	"github.com/npillmayer/thedom/validate"
)

/*
Elements are configured from data (templates, maps) by properties. Every
widget type has a table mapping external property names to actions:

    ┌─────────────┬──────────────────────────────────────────────┐
    │ property    │ action                                       │
    ├─────────────┼──────────────────────────────────────────────┤
    │ style       │ SetStyle: parse a style string               │
    │ title       │ SetAttribute "title"                         │
    │ hide        │ CallMethod Hide() if the value is true       │
    │ text        │ InvokeMethod SetText(value)                  │
    │ label.text  │ Delegate "label" → InvokeMethod SetText(…)   │
    └─────────────┴──────────────────────────────────────────────┘

Tables are composed from capability tables (e.g., StyleProperties), later
tables overriding earlier ones.
*/

// ActionKind tags the variants of property actions.
type ActionKind int8

// Kinds of property actions
const (
	SetAttribute      ActionKind = iota // set a generic attribute
	SetClassAttribute                   // set a field of the widget through a setter
	CallMethod                          // call a method if the value is true
	InvokeMethod                        // call a method with the value as argument
	SetStyle                            // set style properties from a string or map
	AddClasses                          // add class names from a string or list
	SetJavascriptEvents                 // add client-side event handlers from a map
	JavascriptEvent                     // add a client-side event handler
	Delegate                            // forward to a nested widget
)

func (k ActionKind) String() string {
	switch k {
	case SetAttribute:
		return "attribute"
	case SetClassAttribute:
		return "classAttribute"
	case CallMethod:
		return "call"
	case InvokeMethod:
		return "invoke"
	case SetStyle:
		return "style"
	case AddClasses:
		return "classes"
	case SetJavascriptEvents:
		return "javascriptEvents"
	case JavascriptEvent:
		return "javascriptEvent"
	case Delegate:
		return "delegate"
	}
	return "unknown"
}

// Setter is the function type of setters and methods invoked by property actions.
type Setter func(w Widget, value any) error

// Action is a property action.
type Action struct {
	Kind  ActionKind
	Name  string  // attribute or event name; empty means: the property name
	Call  Setter  // for SetClassAttribute, CallMethod and InvokeMethod
	Path  string  // accessor of the nested widget, for Delegate
	Inner *Action // delegated action, for Delegate
}

func (a Action) String() string {
	if a.Kind == Delegate && a.Inner != nil {
		return fmt.Sprintf("%s(%s → %s)", a.Kind, a.Path, a.Inner)
	}
	return a.Kind.String()
}

// Attribute is an action setting a generic attribute.
// If name is empty, the property name is used.
func Attribute(name string) Action {
	return Action{Kind: SetAttribute, Name: name}
}

// Event is an action adding a client-side event handler.
// If name is empty, the property name is used.
func Event(name string) Action {
	return Action{Kind: JavascriptEvent, Name: name}
}

// ClassAttribute is an action setting a field of a widget of type W.
func ClassAttribute[W Widget](set func(w W, value any)) Action {
	return Action{Kind: SetClassAttribute, Call: adapt(set)}
}

// Method is an action invoking a method of a widget of type W with the value.
func Method[W Widget](m func(w W, value any)) Action {
	return Action{Kind: InvokeMethod, Call: adapt(m)}
}

// MethodErr is like Method, for methods which may fail.
func MethodErr[W Widget](m func(w W, value any) error) Action {
	return Action{Kind: InvokeMethod, Call: func(w Widget, v any) error {
		x, ok := w.(W)
		if !ok {
			return fmt.Errorf("property method for %T cannot be applied to %T", x, w)
		}
		return m(x, v)
	}}
}

// Call is an action calling a method of a widget of type W if the value is true.
func Call[W Widget](m func(w W)) Action {
	return Action{Kind: CallMethod, Call: adapt(func(w W, _ any) { m(w) })}
}

// DelegateTo forwards an action to the nested widget with a given accessor
// (see Delegator). Paths may be dotted to reach deeper levels.
func DelegateTo(path string, inner Action) Action {
	return Action{Kind: Delegate, Path: path, Inner: &inner}
}

func adapt[W Widget](f func(w W, value any)) Setter {
	return func(w Widget, v any) error {
		x, ok := w.(W)
		if !ok {
			return fmt.Errorf("property setter for %T cannot be applied to %T", x, w)
		}
		f(x, v)
		return nil
	}
}

// Delegator is the capability of composite widgets to expose nested widgets
// to property delegation.
type Delegator interface {
	Delegate(accessor string) (Widget, bool)
}

// --- Property tables -------------------------------------------------------

// PropertyTable maps property names to actions.
type PropertyTable struct {
	names       []string
	actions     map[string]Action
	passthrough bool
}

// NewPropertyTable creates a property table composed of capability tables.
// Later tables override earlier ones on name collision.
func NewPropertyTable(capabilities ...*PropertyTable) *PropertyTable {
	t := &PropertyTable{actions: make(map[string]Action)}
	for _, c := range capabilities {
		if c == nil {
			continue
		}
		for _, name := range c.names {
			t.Define(name, c.actions[name])
		}
		t.passthrough = t.passthrough || c.passthrough
	}
	return t
}

// Define adds or replaces a property.
func (t *PropertyTable) Define(name string, a Action) *PropertyTable {
	if _, ok := t.actions[name]; !ok {
		t.names = append(t.names, name)
	}
	t.actions[name] = a
	return t
}

// PassThrough makes the table accept unknown properties as generic attributes.
func (t *PropertyTable) PassThrough() *PropertyTable {
	t.passthrough = true
	return t
}

// Lookup returns the action for a property.
func (t *PropertyTable) Lookup(name string) (Action, bool) {
	if t == nil {
		return Action{}, false
	}
	if a, ok := t.actions[name]; ok {
		return a, true
	}
	if t.passthrough && name != "" {
		return Attribute(name), true
	}
	return Action{}, false
}

// Names returns the property names in order of definition.
func (t *PropertyTable) Names() []string {
	n := make([]string, len(t.names))
	copy(n, t.names)
	return n
}

// Capability tables, to be composed into the property tables of widgets.
var (
	// StyleProperties configure presentation.
	StyleProperties = NewPropertyTable().
			Define("style", Action{Kind: SetStyle}).
			Define("class", Action{Kind: AddClasses}).
			Define("hide", Call(hide))

	// CommonAttributes are the global HTML attributes.
	CommonAttributes = NewPropertyTable().
				Define("title", Attribute("")).
				Define("lang", Attribute("")).
				Define("contenteditable", Attribute("")).
				Define("draggable", Attribute("")).
				Define("hidden", Attribute("")).
				Define("tabindex", Attribute("")).
				Define("accesskey", Attribute(""))

	// ScriptingProperties configure client-side behaviour.
	ScriptingProperties = NewPropertyTable().
				Define("javascriptEvents", Action{Kind: SetJavascriptEvents})

	// BindingProperties configure variable binding and validation.
	BindingProperties = NewPropertyTable().
				Define("key", ClassAttribute(setKey)).
				Define("validator", ClassAttribute(setValidator)).
				Define("uneditable", Call(uneditable))

	// ValueProperties configure value holders.
	ValueProperties = NewPropertyTable().
			Define("value", Method(setValue)).
			Define("text", Method(setValue)).
			Define("tabindex", Attribute("")).
			Define("onchange", Event("")).
			Define("onclick", Event("")).
			Define("onblur", Event(""))

	// BaseProperties is the property table of plain elements.
	BaseProperties = NewPropertyTable(StyleProperties, CommonAttributes,
		ScriptingProperties, BindingProperties)
)

func hide(w Widget) {
	w.Elem().Hide()
}

func uneditable(w Widget) {
	w.Elem().SetEditable(false)
}

func setKey(w Widget, v any) {
	w.Elem().SetKey(AsString(v))
}

// setValidator accepts Validators and validation tags (see package validate).
func setValidator(w Widget, v any) {
	switch val := v.(type) {
	case Validator:
		w.Elem().SetValidator(val)
	case string:
		w.Elem().SetValidator(validate.Tag(val))
	}
}

func setValue(w Widget, v any) {
	if vh, ok := w.(ValueHolder); ok {
		vh.SetValue(v)
	}
}

// SetPropertyTable replaces the property table of the element.
func (e *Element) SetPropertyTable(t *PropertyTable) *Element {
	e.props = t
	return e
}

// Properties returns the property table of the element.
// Widgets may shadow this method to provide a table of their own.
func (e *Element) Properties() *PropertyTable {
	if e.props != nil {
		return e.props
	}
	return BaseProperties
}

// Prop is a (property, value) pair.
type Prop struct {
	Name  string
	Value any
}

// P is a shortcut for creating a Prop.
func P(name string, value any) Prop {
	return Prop{Name: name, Value: value}
}

type propertyHolder interface {
	Properties() *PropertyTable
}

// SetProperties applies properties in order. Properties with nil values and
// properties unknown to the element's property table are skipped.
// The first error of a setter is returned; errors of the style parser are
// among them.
func (e *Element) SetProperties(props ...Prop) error {
	w := e.Widget()
	table := e.Properties()
	if ph, ok := w.(propertyHolder); ok {
		table = ph.Properties()
	}
	for _, p := range props {
		if p.Value == nil {
			continue
		}
		a, ok := table.Lookup(p.Name)
		if !ok {
			tracer().Debugf("%s has no property %q, skipping", e, p.Name)
			continue
		}
		if err := applyAction(w, a, p.Name, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// SetPropertyMap applies properties from a map, in order of keys.
func (e *Element) SetPropertyMap(m map[string]any) error {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	props := make([]Prop, len(names))
	for i, k := range names {
		props[i] = Prop{k, m[k]}
	}
	return e.SetProperties(props...)
}

func applyAction(w Widget, a Action, name string, value any) error {
	e := w.Elem()
	attr := a.Name
	if attr == "" {
		attr = name
	}
	switch a.Kind {
	case SetAttribute:
		e.SetAttribute(attr, value)
	case SetClassAttribute, InvokeMethod:
		if a.Call != nil {
			return a.Call(w, value)
		}
	case CallMethod:
		if a.Call != nil && AsBool(value) {
			return a.Call(w, value)
		}
	case SetStyle:
		switch s := value.(type) {
		case map[string]string:
			for _, k := range sortedKeys(s) {
				e.SetStyle(k, s[k])
			}
		case map[string]any:
			for _, k := range sortedKeys(s) {
				e.SetStyle(k, Stringify(s[k]))
			}
		default:
			return e.SetStyleFromString(Stringify(value))
		}
	case AddClasses:
		switch c := value.(type) {
		case []string:
			for _, cl := range c {
				e.AddClass(cl)
			}
		default:
			e.AddClassesFromString(Stringify(value))
		}
	case SetJavascriptEvents:
		switch ev := value.(type) {
		case map[string]string:
			for _, k := range sortedKeys(ev) {
				e.AddJavascriptEvent(k, ev[k])
			}
		case map[string]any:
			for _, k := range sortedKeys(ev) {
				e.AddJavascriptEvent(k, Stringify(ev[k]))
			}
		}
	case JavascriptEvent:
		scripts := handlersOf(value)
		if scripts == nil {
			scripts = jsHandlers{Stringify(value)}
		}
		for _, s := range scripts {
			e.AddJavascriptEvent(attr, s)
		}
	case Delegate:
		target := w
		for _, acc := range strings.Split(a.Path, ".") {
			d, ok := target.(Delegator)
			if !ok {
				return fmt.Errorf("%s cannot delegate to %q", target.Elem(), acc)
			}
			if target, ok = d.Delegate(acc); !ok {
				return fmt.Errorf("%s has no nested widget %q", w.Elem(), acc)
			}
		}
		if a.Inner == nil {
			return nil
		}
		return applyAction(target, *a.Inner, name, value)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Value conversion ------------------------------------------------------

// AsString converts a property value to a string.
func AsString(v any) string {
	return Stringify(v)
}

// AsBool converts a property value to a boolean. Strings are true unless
// empty, "false", "no", "off" or "0".
func AsBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "false", "no", "off", "0":
			return false
		}
		return true
	}
	return true
}

// AsInt converts a property value to an integer.
func AsInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return int(x), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(x))
	}
	return 0, fmt.Errorf("cannot convert %v to int", v)
}
