package factory

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/template"
)

// Accessors collects elements built from templates, keyed by the accessor
// (or, lacking one, the id) of their templates.
type Accessors map[string]dom.Widget

type buildConfig struct {
	vars      dom.Vars
	idPrefix  string
	parent    dom.Widget
	scripts   dom.ScriptContainer
	accessors Accessors
}

// BuildOption configures BuildFromTemplate.
type BuildOption func(*buildConfig)

// WithVariables inserts values into the built tree, see dom.Element.InsertVariables.
func WithVariables(vars dom.Vars) BuildOption {
	return func(c *buildConfig) { c.vars = vars }
}

// WithIDPrefix sets a prefix for the built root element, unless it has a
// prefix of its own.
func WithIDPrefix(prefix string) BuildOption {
	return func(c *buildConfig) { c.idPrefix = prefix }
}

// WithParent appends the built tree to a parent element.
func WithParent(parent dom.Widget) BuildOption {
	return func(c *buildConfig) { c.parent = parent }
}

// WithScriptContainer attaches a script container to the tree of the built element.
func WithScriptContainer(sc dom.ScriptContainer) BuildOption {
	return func(c *buildConfig) { c.scripts = sc }
}

// WithAccessors collects the built elements into acc.
func WithAccessors(acc Accessors) BuildOption {
	return func(c *buildConfig) { c.accessors = acc }
}

// BuildFromTemplate builds a tree of elements from a template.
//
// A nil template results in an Invalid element, a text template in a text node.
// Otherwise the template's product is built and configured: id prefix, script
// container and the template's properties are applied, and the element is
// registered with the accessors. If the element allows children, the child
// templates are built in order and appended to the element's AddChildElementsTo
// target. Finally, variables are inserted into the new subtree.
//
// Building never stops early. The returned error, if any, is the first error
// reported by a property setter (e.g., a malformed style); the tree is
// returned in any case.
func (f *Factory) BuildFromTemplate(t *template.Template, opts ...BuildOption) (dom.Node, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	var errs []error
	n := f.build(t, &cfg, &errs)
	if cfg.vars != nil {
		n.InsertVariables(cfg.vars)
	}
	if len(errs) > 0 {
		return n, errs[0]
	}
	return n, nil
}

func (f *Factory) build(t *template.Template, cfg *buildConfig, errs *[]error) dom.Node {
	if t == nil {
		return attach(dom.NewInvalid(), cfg.parent)
	}
	if t.IsText() {
		return attach(dom.NewText(t.Text()), cfg.parent)
	}
	w := f.Build(t.Create(), t.ID(), t.Name(), cfg.parent)
	if dom.IsInvalid(w) {
		return w
	}
	e := w.Elem()
	if cfg.idPrefix != "" && !e.HasExplicitPrefix() {
		e.SetPrefix(cfg.idPrefix)
	}
	if cfg.scripts != nil {
		e.SetScriptContainer(cfg.scripts)
	}
	props := t.Properties()
	for i := range props {
		props[i].Value = cloneValue(props[i].Value)
	}
	if err := e.SetProperties(props...); err != nil {
		*errs = append(*errs, fmt.Errorf("template %s: %w", t, err))
	}
	if cfg.accessors != nil {
		if acc := t.Accessor(); acc != "" {
			cfg.accessors[acc] = w
		} else if id := t.ID(); id != "" {
			cfg.accessors[id] = w
		}
	}
	if e.AllowsChildren() {
		sub := &buildConfig{
			parent:    e.AddChildElementsTo(),
			accessors: cfg.accessors,
		}
		for _, ch := range t.Children() {
			f.build(ch, sub, errs)
		}
	} else if len(t.Children()) > 0 {
		tracer().Infof("%s does not allow children, dropping %d child templates", e, len(t.Children()))
	}
	return w
}

func attach(n dom.Node, parent dom.Widget) dom.Node {
	if parent != nil {
		parent.Elem().AddChildElement(n)
	}
	return n
}
