package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ErrMalformedStyle is returned for style strings which contain a
// declaration without a colon.
var ErrMalformedStyle = errors.New("malformed style declaration")

// ParseDeclarations parses the content of a `style` attribute, e.g.
//
//     margin: 5px; color: red
//
// into a list of key-value pairs, in order of appearance.
// A declaration lacking a ':' is an error.
func ParseDeclarations(text string) ([]KeyValue, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	for _, decl := range strings.Split(text, ";") {
		if d := strings.TrimSpace(decl); d != "" && !strings.Contains(d, ":") {
			return nil, fmt.Errorf("%w: %q", ErrMalformedStyle, d)
		}
	}
	if !strings.HasSuffix(text, ";") {
		// douceur drops a trailing declaration without terminator
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedStyle, err.Error())
	}
	kv := make([]KeyValue, 0, len(decls))
	for _, d := range decls {
		v := d.Value
		if d.Important {
			v += " !important"
		}
		kv = append(kv, KeyValue{Key: strings.ToLower(d.Property), Value: Property(v)})
	}
	tracer().Debugf("parsed %d style declarations", len(kv))
	return kv, nil
}

// Parse parses a style string and returns the declarations.
func Parse(text string) (*Declarations, error) {
	kv, err := ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	d := &Declarations{}
	for _, p := range kv {
		d.Set(p.Key, p.Value)
	}
	return d, nil
}
