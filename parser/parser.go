/*
Package parser builds element trees from HTML.

The parser is a forgiving, hand-written recursive descent parser. It never
fails: unbalanced or misplaced tags are resolved by implicitly closing open
tags, and every recovery is reported as a Warning (and traced to
'thedom.parser'). The resulting tree consists of plain dom elements and
text nodes.

Recovery is driven by tables of tags (see Config):

    <ul><li>one<li>two</ul>       li does not nest: first li is closed
    <div><span></div>             </div> closes the open span
    <head><body>                  body forces the end of head

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom"
)

// tracer will return a tracer. We are tracing to 'thedom.parser'
func tracer() tracing.Trace {
	return tracing.Select("thedom.parser")
}

// Warning is a diagnostic about a recovery from malformed input.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
}

// Parser parses HTML with a given configuration.
type Parser struct {
	cfg Config
}

// New creates a parser.
func New(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse parses HTML with the default configuration. See Parser.Parse.
func Parse(src string) (*dom.Element, []Warning) {
	return New(DefaultConfig()).Parse(src)
}

// Parse parses HTML into a tree of elements. The root of the tree is an
// element without tag, the top-level nodes of the source are its children.
func (p *Parser) Parse(src string) (*dom.Element, []Warning) {
	ps := &parseState{cfg: p.cfg, s: &scanner{src: src}}
	root := dom.New("")
	ps.parse(root, "", 0)
	return root, ps.warnings
}

type parseState struct {
	cfg      Config
	s        *scanner
	warnings []Warning
}

func (ps *parseState) warn(pos int, format string, args ...any) {
	w := Warning{Line: ps.s.line(pos), Msg: fmt.Sprintf(format, args...)}
	tracer().Errorf("%s", w)
	ps.warnings = append(ps.warnings, w)
}

// parse reads the content of an element el with tag context, which has been
// opened at position start. It returns after the end tag of el or if el has
// to be closed implicitly, leaving the scanner in front of the tag to be
// re-read by an enclosing frame.
func (ps *parseState) parse(el *dom.Element, context string, start int) {
	s := ps.s
	for s.more() {
		text, delim := s.textTill("</", "<", "\n")
		prev := s.pos - len(delim)
		if t := strings.TrimSpace(text); t != "" {
			el.AddChild(dom.NewText(t), false)
		}
		switch delim {
		case "<":
			if ps.startTag(el, context, start, prev) {
				return
			}
		case "</":
			if ps.endTag(context, start, prev) {
				return
			}
		}
	}
	if context != "" && context != "html" && !ps.cfg.ForceEndBefore.Has(context) {
		ps.warn(len(s.src), "tag <%s> opened at line %d is not closed at end of input",
			context, s.line(start))
	}
}

// startTag reads a start tag (the '<' has been consumed). It returns true if
// the current element has to be closed before the new tag.
func (ps *parseState) startTag(el *dom.Element, context string, start, prev int) bool {
	s := ps.s
	if s.peek() == '!' {
		ps.markupDeclaration(el)
		return false
	}
	delims := append([]string{"/>", ">"}, whitespace...)
	raw, endedBy := s.textTill(append(delims, "<")...)
	raw = strings.TrimSpace(raw)
	if endedBy == "<" || !isTagName(raw) {
		el.AddChild(dom.NewText("&lt;"+raw), false)
		s.pos -= len(endedBy)
		return false
	}
	tag := strings.ToLower(raw)
	if (ps.cfg.ForceEndBefore.Has(tag) && context != "html" && context != "") ||
		(context == tag && (ps.cfg.NoSelfNesting.Has(tag) || ps.cfg.CloseIfNested.Has(tag))) {
		ps.warn(prev, "tag <%s> opened at line %d must be closed before <%s>; closing it",
			context, s.line(start), tag)
		s.pos = prev
		return true
	}
	child := dom.New(tag)
	el.AddChildElement(child)
	if isWhitespace(endedBy) {
		ps.attributes(child)
		_, endedBy = s.textTill("/>", ">")
	}
	switch {
	case ps.cfg.VoidTags.Has(tag):
		child.SetTagSelfCloses(true)
	case endedBy == "/>":
		// empty element, no content to parse
	case ps.cfg.RetainFormat.Has(tag):
		content, _ := s.textTillFold("</" + tag + ">")
		if c := strings.TrimSpace(content); c != "" {
			child.AddChildElement(dom.NewText(c))
		}
	default:
		ps.parse(child, tag, prev)
	}
	return false
}

// endTag reads an end tag (the '</' has been consumed). It returns true if
// the current element is closed.
func (ps *parseState) endTag(context string, start, prev int) bool {
	s := ps.s
	raw, delim := s.textTill("/>", ">", "</", "<")
	if delim == "</" || delim == "<" {
		s.pos -= len(delim)
	}
	tag := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case !isTagName(tag):
		ps.warn(prev, "malformed end tag </%s>; ignoring it", strings.TrimSpace(raw))
		return false
	case tag == context:
		return true
	case context != "" && ps.cfg.ForceEndBefore.Has(context):
		return true
	case ps.cfg.VoidTags.Has(tag):
		tracer().Debugf("ignoring end tag </%s> of void element", tag)
		return false
	case context == "":
		ps.warn(prev, "end tag </%s> has no start tag; ignoring it", tag)
		return false
	}
	ps.warn(prev, "end tag </%s> does not match start tag <%s> at line %d; closing <%s>",
		tag, context, s.line(start), context)
	s.pos = prev
	return true
}

// markupDeclaration reads a comment or a declaration like <!DOCTYPE html> as
// literal text. Inside comments, "--" is replaced by "==".
func (ps *parseState) markupDeclaration(el *dom.Element) {
	s := ps.s
	if s.hasPrefix("!--") {
		s.pos += 3
		content, end := s.textTill("-->")
		el.AddChild(dom.NewText("<!--"+strings.ReplaceAll(content, "--", "==")+end), false)
		return
	}
	content, end := s.textTill(">")
	el.AddChild(dom.NewText("<"+content+end), false)
}

// attributes reads `name`, `name=value`, `name="value"` or `name='value'`
// up to the end of a start tag. Attribute names are lower case. An attribute
// without value gets dom.Empty, one with an empty value dom.Blank.
func (ps *parseState) attributes(el *dom.Element) {
	s := ps.s
	for {
		s.skipSpace()
		if !s.more() || s.hasPrefix(">") || s.hasPrefix("/>") {
			return
		}
		begin := s.pos
		for s.more() && !isSpace(s.peek()) && s.peek() != '=' && !s.hasPrefix(">") && !s.hasPrefix("/>") {
			s.pos++
		}
		name := strings.ToLower(s.src[begin:s.pos])
		if name == "" { // stray '='
			s.pos++
			continue
		}
		s.skipSpace()
		if s.peek() != '=' {
			setAttribute(el, name, "", false)
			continue
		}
		s.pos++
		s.skipSpace()
		var value string
		if q := s.peek(); q == '"' || q == '\'' {
			s.pos++
			value, _ = s.textTill(string(q))
		} else {
			begin = s.pos
			for s.more() && !isSpace(s.peek()) && !s.hasPrefix(">") && !s.hasPrefix("/>") {
				s.pos++
			}
			value = s.src[begin:s.pos]
		}
		setAttribute(el, name, value, true)
	}
}

func setAttribute(el *dom.Element, name, value string, hasValue bool) {
	switch name {
	case "id", "name", "class", "style":
		el.SetAttribute(name, value)
		return
	}
	switch {
	case !hasValue:
		el.SetAttribute(name, dom.Empty)
	case value == "":
		el.SetAttribute(name, dom.Blank)
	default:
		el.SetAttribute(name, value)
	}
}
