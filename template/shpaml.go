package template

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/thedom/dom"
)

// FromSHPAML reads a template from an indentation based syntax (SHPAML).
// Every non-blank line describes one element:
//
//     tag#id.class1.class2 attr=value other="quoted value" | text
//
// Nesting is expressed by indentation. Lines starting with '>' are leaf
// elements which may not have indented children, lines starting with '|'
// are literal text. Attributes id, name and accessor are extracted like
// in FromXML; class names are collected into a property "class".
func FromSHPAML(src string) (*Template, error) {
	type frame struct {
		indent int
		t      *Template
		leaf   bool
	}
	var root *Template
	var stack []frame
	for lineno, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		var parent *frame
		if len(stack) > 0 {
			parent = &stack[len(stack)-1]
			if parent.leaf {
				return nil, fmt.Errorf("line %d: leaf element <%s> cannot have children",
					lineno+1, parent.t.create)
			}
		}
		if strings.HasPrefix(trimmed, "|") {
			if parent == nil {
				return nil, fmt.Errorf("line %d: text outside of root element", lineno+1)
			}
			parent.t.children = append(parent.t.children, Text(strings.TrimSpace(trimmed[1:])))
			continue
		}
		leaf := false
		if strings.HasPrefix(trimmed, ">") {
			leaf = true
			trimmed = strings.TrimSpace(trimmed[1:])
		}
		t, err := shpamlElement(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno+1, err)
		}
		if parent == nil {
			if root != nil {
				return nil, fmt.Errorf("line %d: template has more than one root element", lineno+1)
			}
			root = t
		} else {
			parent.t.children = append(parent.t.children, t)
		}
		stack = append(stack, frame{indent: indent, t: t, leaf: leaf})
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	tracer().Debugf("read SHPAML template %s", root)
	return root, nil
}

// shpamlElement reads a line like `tag#id.class attr=value | text`.
func shpamlElement(line string) (*Template, error) {
	var text string
	hasText := false
	if i := strings.Index(line, " |"); i >= 0 {
		text, hasText = strings.TrimSpace(line[i+2:]), true
		line = line[:i]
	}
	fields, err := splitQuoted(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("missing tag")
	}
	t := &Template{}
	head := fields[0]
	var classes []string
	if i := strings.IndexAny(head, "#."); i >= 0 {
		t.create = head[:i]
		rest := head[i:]
		for rest != "" {
			sep := rest[0]
			rest = rest[1:]
			j := strings.IndexAny(rest, "#.")
			if j < 0 {
				j = len(rest)
			}
			part := rest[:j]
			rest = rest[j:]
			if sep == '#' {
				t.id = part
			} else if part != "" {
				classes = append(classes, part)
			}
		}
	} else {
		t.create = head
	}
	if t.create == "" {
		return nil, fmt.Errorf("missing tag in %q", head)
	}
	if len(classes) > 0 {
		t.props = append(t.props, dom.P("class", strings.Join(classes, " ")))
	}
	for _, f := range fields[1:] {
		key, value, _ := strings.Cut(f, "=")
		switch key {
		case "id":
			t.id = value
		case "name":
			t.name = value
		case "accessor":
			t.accessor = value
		default:
			t.props = append(t.props, dom.P(key, value))
		}
	}
	if hasText && text != "" {
		t.children = append(t.children, Text(text))
	}
	return t, nil
}

// splitQuoted splits a line at white space, respecting single and double
// quotes. Quotes are removed.
func splitQuoted(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	var quote rune
	inField := false
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote, inField = r, true
		case unicode.IsSpace(r):
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
