/*
Package factory builds elements by product name, either one at a time or
from templates.

A factory is a registry of constructors. Lookup of product names is
case-insensitive. Building an unknown product does not fail, but results in an
Invalid element, which renders as a visible placeholder. Thus a bad reference in
a template degrades visibly instead of aborting the construction of a page.

Factories may be combined into a composite factory. Products of later
factories override those of earlier ones, and every product is registered
a second time as "<factory>-<product>".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package factory

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom"
)

// tracer will return a tracer. We are tracing to 'thedom.factory'
func tracer() tracing.Trace {
	return tracing.Select("thedom.factory")
}

// Constructor creates a fresh, unattached widget.
type Constructor func() dom.Widget

// Factory is a registry of products.
type Factory struct {
	name     string
	products map[string]Constructor
}

// New creates an empty factory. The name is used as a namespace within
// composite factories and may be empty.
func New(name string) *Factory {
	return &Factory{
		name:     name,
		products: make(map[string]Constructor),
	}
}

// Name returns the name of the factory.
func (f *Factory) Name() string {
	return f.name
}

// AddProduct registers a constructor under a (case-insensitive) product name.
// An existing product of the same name is replaced.
func (f *Factory) AddProduct(name string, c Constructor) *Factory {
	if name == "" || c == nil {
		return f
	}
	f.products[strings.ToLower(name)] = c
	return f
}

// HasProduct is a predicate wether a product is registered.
func (f *Factory) HasProduct(name string) bool {
	_, ok := f.products[strings.ToLower(name)]
	return ok
}

// Products returns the registered product names, sorted.
func (f *Factory) Products() []string {
	names := make([]string, 0, len(f.products))
	for n := range f.products {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build creates a product, sets its id and name (name defaults to id) and
// appends it to parent, if parent is non-nil.
//
// If the product is unknown, an Invalid element is returned (and appended to
// parent) and an error is logged.
func (f *Factory) Build(product, id, name string, parent dom.Widget) dom.Widget {
	c, ok := f.products[strings.ToLower(product)]
	var w dom.Widget
	if !ok {
		tracer().Errorf("factory %q has no product %q", f.name, product)
		w = dom.NewInvalid()
	} else {
		w = c()
		w.Elem().SetIdentity(id, name)
		w.Elem().SetProduct(product)
	}
	if parent != nil {
		if r := parent.Elem().AddChildElement(w); !r.OK() {
			tracer().Infof("cannot attach %s to %s: %v", product, parent.Elem(), r.Err)
		}
	}
	return w
}

// NewComposite creates a factory combining the products of a list of
// factories. On name collision, products of later factories win. Every
// product of a named factory is registered a second time as
// "<factory>-<product>".
func NewComposite(name string, factories ...*Factory) *Factory {
	comp := New(name)
	for _, f := range factories {
		if f == nil {
			continue
		}
		ns := strings.ToLower(f.name)
		for p, c := range f.products {
			comp.products[p] = c
			if ns != "" {
				comp.products[ns+"-"+p] = c
			}
		}
	}
	return comp
}
