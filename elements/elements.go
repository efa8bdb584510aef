/*
Package elements is a small catalog of widgets built on package dom, together
with factories for them.

Widgets are configurations of dom elements: a tag, a property table composed
of capabilities, and occasionally a few child elements (see Field). The
factory returned by Tags builds plain elements for HTML tags; the factory
returned by NewFactory builds the widgets of this package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elements

import (
	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/factory"
	"github.com/npillmayer/thedom/parser"
	"golang.org/x/net/html/atom"
)

// GenericProperties is the property table of plain tag elements. Properties
// unknown to dom.BaseProperties are set as attributes.
var GenericProperties = dom.NewPropertyTable(dom.BaseProperties).PassThrough()

// Tag returns a constructor for a plain element with a given tag. Void tags
// (see parser.DefaultConfig) are self-closing and do not allow children.
func Tag(tag string) factory.Constructor {
	void := parser.DefaultConfig().VoidTags.Has(tag)
	return func() dom.Widget {
		e := dom.New(tag).SetPropertyTable(GenericProperties)
		if void {
			e.SetTagSelfCloses(true).SetAllowsChildren(false)
		}
		return e
	}
}

var htmlTags = []atom.Atom{
	atom.Html, atom.Head, atom.Title, atom.Meta, atom.Link, atom.Style, atom.Script,
	atom.Body, atom.Div, atom.Span, atom.P, atom.Br, atom.Hr, atom.Pre, atom.Code,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
	atom.A, atom.Img, atom.Em, atom.Strong, atom.B, atom.I, atom.Small, atom.Label,
	atom.Ul, atom.Ol, atom.Li, atom.Dl, atom.Dt, atom.Dd,
	atom.Table, atom.Thead, atom.Tbody, atom.Tfoot, atom.Tr, atom.Th, atom.Td,
	atom.Form, atom.Fieldset, atom.Legend, atom.Input, atom.Button, atom.Select,
	atom.Option, atom.Textarea,
	atom.Header, atom.Footer, atom.Nav, atom.Section, atom.Article, atom.Aside, atom.Main,
}

// Tags returns a factory named "dom" for plain elements of common HTML tags.
func Tags() *factory.Factory {
	f := factory.New("dom")
	for _, a := range htmlTags {
		f.AddProduct(a.String(), Tag(a.String()))
	}
	return f
}

// NewFactory returns a factory named "elements" for the widgets of this package.
func NewFactory() *factory.Factory {
	return factory.New("elements").
		AddProduct("box", func() dom.Widget { return NewBox() }).
		AddProduct("container", func() dom.Widget { return NewContainer() }).
		AddProduct("span", func() dom.Widget { return NewSpan() }).
		AddProduct("label", func() dom.Widget { return NewLabel() }).
		AddProduct("button", func() dom.Widget { return NewButton() }).
		AddProduct("anchor", func() dom.Widget { return NewAnchor() }).
		AddProduct("textbox", func() dom.Widget { return NewTextBox() }).
		AddProduct("hiddeninput", func() dom.Widget { return NewHiddenInput() }).
		AddProduct("field", func() dom.Widget { return NewField() }).
		AddProduct("scripts", func() dom.Widget { return NewScripts() })
}
