/*
Package w3cdom mirrors element trees as W3C-style HTML node trees.

Element trees are rendered to strings; sometimes clients need a node tree of
golang.org/x/net/html instead, e.g. to feed it into tools which work on
HTML nodes, or to select elements with CSS selectors (see Query).

Elements without a tag are transparent: their children become children of
the enclosing HTML node. Text nodes carry escaped HTML; they are unescaped
into HTML text nodes, and comments and declarations become nodes of their
respective types.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer will return a tracer. We are tracing to 'thedom.dom'
func tracer() tracing.Trace {
	return tracing.Select("thedom.dom")
}

// Document is an HTML node tree mirroring an element tree.
type Document struct {
	Root    *html.Node // of type html.DocumentNode
	widgets map[*html.Node]dom.Widget
}

// Convert creates an HTML node tree for the subtree of root. Signal
// dom.SigRendering is emitted for every element, as rendering would do.
func Convert(root dom.Node) *Document {
	doc := &Document{
		Root:    &html.Node{Type: html.DocumentNode},
		widgets: make(map[*html.Node]dom.Widget),
	}
	doc.convert(root, doc.Root)
	return doc
}

func (doc *Document) convert(n dom.Node, parent *html.Node) {
	switch x := n.(type) {
	case *dom.TextNode:
		parent.AppendChild(textNode(x.Text()))
	case dom.Widget:
		e := x.Elem()
		e.Emit(dom.SigRendering, nil)
		if e.TagName() == "" {
			for _, ch := range e.Children() {
				doc.convert(ch, parent)
			}
			return
		}
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     e.TagName(),
			DataAtom: atom.Lookup([]byte(e.TagName())),
			Attr:     attributes(e),
		}
		doc.widgets[h] = x
		parent.AppendChild(h)
		for _, ch := range e.Children() {
			doc.convert(ch, h)
		}
	}
}

func textNode(text string) *html.Node {
	switch {
	case strings.HasPrefix(text, "<!--") && strings.HasSuffix(text, "-->"):
		return &html.Node{Type: html.CommentNode, Data: strings.TrimSpace(text[4 : len(text)-3])}
	case len(text) > 9 && strings.EqualFold(text[:9], "<!doctype") && strings.HasSuffix(text, ">"):
		return &html.Node{Type: html.DoctypeNode, Data: strings.TrimSpace(text[9 : len(text)-1])}
	}
	return &html.Node{Type: html.TextNode, Data: html.UnescapeString(text)}
}

// attributes collects the attributes of e in rendering order.
func attributes(e *dom.Element) []html.Attribute {
	var attrs []html.Attribute
	add := func(key string, value any) {
		switch value {
		case dom.Empty, dom.Blank:
			attrs = append(attrs, html.Attribute{Key: key})
			return
		}
		if s := dom.Stringify(value); s != "" {
			attrs = append(attrs, html.Attribute{Key: key, Val: s})
		}
	}
	add("name", e.FullName())
	add("id", e.FullID())
	add("class", strings.Join(e.ClassNames(), " "))
	add("style", e.StyleText())
	for _, k := range e.AttributeKeys() {
		v, _ := e.AttributeValue(k)
		add(k, v)
	}
	return attrs
}

// Widget returns the element an HTML node has been created for.
func (doc *Document) Widget(n *html.Node) (dom.Widget, bool) {
	w, ok := doc.widgets[n]
	return w, ok
}

// Render writes the HTML node tree, as rendered by package html.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.Root)
}

// Query returns the elements matching a CSS selector, in document order.
func (doc *Document) Query(selector string) ([]dom.Widget, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	matches := sel.MatchAll(doc.Root)
	widgets := make([]dom.Widget, 0, len(matches))
	for _, m := range matches {
		if w, ok := doc.widgets[m]; ok {
			widgets = append(widgets, w)
		}
	}
	tracer().Debugf("selector %q matches %d elements", selector, len(widgets))
	return widgets, nil
}

// Query selects elements of the subtree of root by a CSS selector, e.g.
//
//     w3cdom.Query(page, "form#login input[type=text]")
//
func Query(root dom.Node, selector string) ([]dom.Widget, error) {
	return Convert(root).Query(selector)
}

// TextContent returns the text of an HTML node and its descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
