package template

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/thedom/dom"
)

// FromXML reads a template from XML. The root element of the XML source
// is the root of the template. Attributes id, name and accessor are extracted
// from an element's attributes, the remaining attributes become properties
// in document order. Child elements and text (which is not all white space)
// become child templates.
//
// Property values are strings.
func FromXML(src string) (*Template, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	dec.Strict = true
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		} else if err != nil {
			return nil, fmt.Errorf("reading XML template: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return xmlElement(dec, start)
		}
	}
}

func xmlElement(dec *xml.Decoder, start xml.StartElement) (*Template, error) {
	t := &Template{create: xmlName(start.Name)}
	for _, a := range start.Attr {
		switch key := xmlName(a.Name); key {
		case "id":
			t.id = a.Value
		case "name":
			t.name = a.Value
		case "accessor":
			t.accessor = a.Value
		default:
			t.props = append(t.props, dom.P(key, a.Value))
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("reading XML template element <%s>: %w", t.create, err)
		}
		switch x := tok.(type) {
		case xml.StartElement:
			ch, err := xmlElement(dec, x)
			if err != nil {
				return nil, err
			}
			t.children = append(t.children, ch)
		case xml.CharData:
			if s := strings.TrimSpace(string(x)); s != "" {
				t.children = append(t.children, Text(s))
			}
		case xml.EndElement:
			return t, nil
		}
	}
}

func xmlName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// ToXML writes a template as XML, in the form read by FromXML.
func (t *Template) ToXML() string {
	var b strings.Builder
	t.writeXML(&b)
	return b.String()
}

func (t *Template) writeXML(b *strings.Builder) {
	if t == nil {
		return
	}
	if t.isText {
		xml.EscapeText(b, []byte(t.text))
		return
	}
	b.WriteString("<" + t.create)
	writeXMLAttr(b, "id", t.id)
	writeXMLAttr(b, "name", t.name)
	writeXMLAttr(b, "accessor", t.accessor)
	for _, p := range t.props {
		b.WriteString(" " + p.Name + `="`)
		xml.EscapeText(b, []byte(dom.Stringify(p.Value)))
		b.WriteString(`"`)
	}
	if len(t.children) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	for _, ch := range t.children {
		ch.writeXML(b)
	}
	b.WriteString("</" + t.create + ">")
}

func writeXMLAttr(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(" " + key + `="`)
	xml.EscapeText(b, []byte(value))
	b.WriteString(`"`)
}
