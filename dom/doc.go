/*
Package dom implements a server-side element tree which renders to HTML.

Status

Early draft: the API may change frequently. Please stay patient.

Overview

An element tree is a tree of mutable nodes, each representing one (possibly
self-closing) markup tag, or a piece of literal text. Trees are built
programmatically, from templates (package factory), or by parsing existing
markup (package parser). Once built, a tree is serialized with

    html := root.ToHTML(false)   // compact
    html := root.ToHTML(true)    // one indentation unit per nesting level

Elements own attributes, inline styles, class names and children. Identity is
given by an id and a name, both of which may be prefixed by a string inherited
from the nearest ancestor setting one (FullID, FullName). Values of form-like
elements are distributed from and collected into plain maps (InsertVariables,
ExportVariables), mirroring an HTTP request round-trip.

Tree Implementation

We implement element trees on top of a general purpose tree type
(package tree). In a fully object oriented programming language we would
subclass a base element for every kind of widget, but in Go we resort to
composition: concrete widgets embed dom.Element and hand a reference to
themselves to Element.Init. Rendering dispatches through this reference, so
widgets may override StartTag, Content or EndTag. Other variation points are
capabilities, i.e. interfaces a widget may implement (ValueHolder, Delegator).

Configuring elements from data (templates, maps) is done through property
tables: every widget type declares a table mapping external property names to
actions. Tables are composed from capability tables, see PropertyTable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'thedom.dom'
func tracer() tracing.Trace {
	return tracing.Select("thedom.dom")
}
