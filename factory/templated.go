package factory

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
	"sort"
	"strings"

	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/template"
)

// TemplateElement is an element whose content is built from a template.
// Elements of the content are accessible by the accessors (or ids) of their
// templates. A TemplateElement has no tag of its own.
//
// TemplateElement is a dom.Delegator: properties of nested elements may be
// set by delegation to an accessor.
type TemplateElement struct {
	dom.Element
	accessors Accessors
	tmpl      *template.Template
}

var _ dom.Delegator = &TemplateElement{}

// NewTemplateElement builds t with factory f into a new TemplateElement.
// The error is the one returned by BuildFromTemplate.
func NewTemplateElement(f *Factory, t *template.Template, opts ...BuildOption) (*TemplateElement, error) {
	te := &TemplateElement{accessors: make(Accessors), tmpl: t}
	te.Init(te, "")
	opts = append(opts, WithParent(te), WithAccessors(te.accessors))
	_, err := f.BuildFromTemplate(t, opts...)
	return te, err
}

// Template returns the template the element has been built from.
func (te *TemplateElement) Template() *template.Template {
	return te.tmpl
}

// Accessor returns the element built from the template with a given accessor
// or id, or nil.
func (te *TemplateElement) Accessor(name string) dom.Widget {
	return te.accessors[name]
}

// Accessors returns the names of all accessors, sorted.
func (te *TemplateElement) Accessors() []string {
	names := make([]string, 0, len(te.accessors))
	for n := range te.accessors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Delegate implements dom.Delegator.
func (te *TemplateElement) Delegate(accessor string) (dom.Widget, bool) {
	w, ok := te.accessors[accessor]
	return w, ok
}

// TemplateOf creates a template describing an existing tree. Elements are
// described by their product name (or, lacking one, their tag), id and name,
// class, style, key and generic attributes. Name is left out if it equals id.
//
// Building the template with a factory which knows all the products (and
// tags) reproduces the tree.
func TemplateOf(n dom.Node) *template.Template {
	switch x := n.(type) {
	case nil:
		return nil
	case *dom.TextNode:
		return template.Text(x.Text())
	case dom.Widget:
		if dom.IsInvalid(x) {
			return nil
		}
		e := x.Elem()
		create := e.Product()
		if create == "" {
			create = e.TagName()
		}
		opts := []template.Option{template.WithID(e.ID())}
		if e.Name() != e.ID() {
			opts = append(opts, template.WithName(e.Name()))
		}
		var props []dom.Prop
		if names := e.ClassNames(); len(names) > 0 {
			props = append(props, dom.P("class", strings.Join(names, " ")))
		}
		if st := e.StyleText(); st != "" {
			props = append(props, dom.P("style", st))
		}
		if e.Key() != "" {
			props = append(props, dom.P("key", e.Key()))
		}
		for _, k := range e.AttributeKeys() {
			v, _ := e.AttributeValue(k)
			props = append(props, dom.P(k, cloneValue(v)))
		}
		opts = append(opts, template.WithProperties(props...))
		for _, ch := range e.Children() {
			opts = append(opts, template.WithChildren(TemplateOf(ch)))
		}
		return template.New(create, opts...)
	}
	return nil
}

// cloneValue copies slice values, which must not be shared between the
// template and the live tree.
func cloneValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(c, rv)
	return c.Interface()
}
