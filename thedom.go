package thedom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/elements"
	"github.com/npillmayer/thedom/factory"
	"github.com/npillmayer/thedom/parser"
	"github.com/npillmayer/thedom/template"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// tracer will return a tracer. We are tracing to 'thedom'
func tracer() tracing.Trace {
	return tracing.Select("thedom")
}

var (
	defaultFactory *factory.Factory
	factoryOnce    sync.Once
)

// Factory returns the default factory. It builds the widgets of package
// elements and plain elements for common HTML tags. Widgets take precedence
// over tags of the same name; plain tags are available as "dom-<tag>" as well.
func Factory() *factory.Factory {
	factoryOnce.Do(func() {
		defaultFactory = factory.NewComposite("thedom", elements.Tags(), elements.NewFactory())
	})
	return defaultFactory
}

// ParseHTML parses HTML with the default recovery tables.
// See package parser.
func ParseHTML(src string) (*dom.Element, []parser.Warning) {
	return parser.Parse(src)
}

// ParseHTMLWith parses HTML, reading the recovery tables from a configuration.
func ParseHTMLWith(conf schuko.Configuration, src string) (*dom.Element, []parser.Warning) {
	return parser.New(parser.ConfigFrom(conf)).Parse(src)
}

// BuildFromXML builds a tree from an XML template with the default factory.
func BuildFromXML(src string, opts ...factory.BuildOption) (dom.Node, error) {
	t, err := template.FromXML(src)
	if err != nil {
		return nil, err
	}
	return Factory().BuildFromTemplate(t, opts...)
}

// BuildFromSHPAML builds a tree from a SHPAML template with the default factory.
func BuildFromSHPAML(src string, opts ...factory.BuildOption) (dom.Node, error) {
	t, err := template.FromSHPAML(src)
	if err != nil {
		return nil, err
	}
	return Factory().BuildFromTemplate(t, opts...)
}

// BuildFromFile loads a template file (see template.Load) and builds a tree
// with the default factory.
func BuildFromFile(path string, opts ...factory.BuildOption) (dom.Node, error) {
	t, err := template.Load(path)
	if err != nil {
		return nil, err
	}
	return Factory().BuildFromTemplate(t, opts...)
}

var (
	minifier   *minify.M
	minifyOnce sync.Once
)

func getMinifier() *minify.M {
	minifyOnce.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
	})
	return minifier
}

// Minify removes insignificant whitespace and comments from rendered HTML.
func Minify(src string) (string, error) {
	if !strings.Contains(src, "<") {
		return strings.Join(strings.Fields(src), " "), nil
	}
	out, err := getMinifier().String("text/html", src)
	if err != nil {
		tracer().Errorf("cannot minify HTML: %v", err)
		return src, fmt.Errorf("minify: %w", err)
	}
	return out, nil
}

// Render renders a node, optionally minified. If minification fails, the
// unminified HTML is returned along with the error.
func Render(n dom.Node, minified bool) (string, error) {
	if n == nil {
		return "", nil
	}
	if !minified {
		return n.ToHTML(true), nil
	}
	return Minify(n.ToHTML(false))
}
