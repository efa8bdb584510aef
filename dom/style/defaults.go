package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// DisplayPropertyForTag returns the default `display` CSS property for an
// element with a given tag name. Unknown and custom tags are inline, empty
// tags (i.e., pure content containers) have no display property of their own.
func DisplayPropertyForTag(tag string) Property {
	tag = strings.ToLower(tag)
	if tag == "" {
		return NullStyle
	}
	switch a := atom.Lookup([]byte(tag)); a {
	case atom.Head, atom.Script, atom.Style, atom.Meta, atom.Link, atom.Title:
		return "none"
	case atom.Address, atom.Blockquote, atom.Center, atom.Dir, atom.Div, atom.Dl,
		atom.Fieldset, atom.Form, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5,
		atom.H6, atom.Hr, atom.Isindex, atom.Menu, atom.Noframes, atom.Noscript,
		atom.Ol, atom.P, atom.Pre, atom.Ul, atom.Dd, atom.Dt, atom.Frameset,
		atom.Html, atom.Body, atom.Section, atom.Article, atom.Aside, atom.Header,
		atom.Footer, atom.Nav:
		return "block"
	case atom.Li:
		return "list-item"
	case atom.Table:
		return "table"
	case atom.Tbody:
		return "table-row-group"
	case atom.Thead:
		return "table-header-group"
	case atom.Tfoot:
		return "table-footer-group"
	case atom.Tr:
		return "table-row"
	case atom.Td, atom.Th:
		return "table-cell"
	}
	return "inline"
}

// IsBlockDisplay is a predicate wether a display property renders as a block
// (including list items and table parts).
func IsBlockDisplay(p Property) bool {
	switch {
	case p.Is("block"), p.Is("list-item"), p.Is("flex"), p.Is("grid"):
		return true
	case strings.HasPrefix(strings.ToLower(string(p)), "table"):
		return true
	}
	return false
}
