package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Indentation is the unit of indentation for formatted output.
var Indentation = " "

// StartTag renders the opening tag, including name, id, class and style
// (in this order), followed by the generic attributes in insertion order.
// It is empty for an element without tag.
func (e *Element) StartTag() string {
	if e.tagName == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("<" + e.tagName)
	writeAttribute(&b, "name", e.FullName())
	writeAttribute(&b, "id", e.FullID())
	if e.classes.Len() > 0 {
		writeAttribute(&b, "class", e.classes.String())
	}
	if e.style.Len() > 0 {
		writeAttribute(&b, "style", e.style.String())
	}
	if e.attributes != nil {
		for _, k := range e.attributes.keys {
			writeAttribute(&b, k, e.attributes.values[k])
		}
	}
	if e.tagSelfCloses {
		b.WriteString(" />")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

// EndTag renders the closing tag. It is empty for self-closing elements and
// for elements without tag.
func (e *Element) EndTag() string {
	if e.tagSelfCloses || e.tagName == "" {
		return ""
	}
	return "</" + e.tagName + ">"
}

// Content renders the children of the element. If formatted is set,
// each non-empty line of the children's output is indented by one unit
// (elements without a tag do not indent).
func (e *Element) Content(formatted bool) string {
	children := e.Children()
	if len(children) == 0 {
		return ""
	}
	parts := make([]string, len(children))
	for i, ch := range children {
		parts[i] = ch.ToHTML(formatted)
	}
	if !formatted {
		return strings.Join(parts, "")
	}
	indent := ""
	if e.tagName != "" {
		indent = Indentation
	}
	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, indent+line)
		}
	}
	return strings.Join(out, "\n")
}

// ToHTML renders the element and its subtree. Before rendering, signal
// SigRendering is emitted, allowing for last-moment changes.
// If formatted is set, start tag, content and end tag are placed on
// separate lines.
func (e *Element) ToHTML(formatted bool) string {
	e.Emit(SigRendering, nil)
	w := e.Widget()
	start, content, end := w.StartTag(), w.Content(formatted), w.EndTag()
	if !formatted {
		return start + content + end
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{start, content, end} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}
