/*
Package template holds declarative descriptions of element trees.

A Template names a factory product to create, together with id, name,
accessor, an ordered list of properties and child templates. Templates are
values: they are created once (by hand or by one of the readers for XML,
SHPAML or YAML) and then used by a factory to stamp out any number of
independent element trees.

    container randomattribute=Hello
        childelement#SomeRandomId name=SomeRandomName
            > childishchildelement

is the SHPAML equivalent of

    <container randomattribute="Hello">
        <childelement id="SomeRandomId" name="SomeRandomName">
            <childishchildelement />
        </childelement>
    </container>

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thedom/dom"
)

// tracer will return a tracer. We are tracing to 'thedom.template'
func tracer() tracing.Trace {
	return tracing.Select("thedom.template")
}

// ErrNoRoot is returned by the readers if the source does not contain
// a root element.
var ErrNoRoot = errors.New("template has no root element")

// Template is an immutable description of an element tree.
//
// A template is either an element template, naming a factory product to create,
// or a text template, which stands for a literal text node.
type Template struct {
	create   string
	accessor string
	id, name string
	props    []dom.Prop
	children []*Template
	text     string
	isText   bool
}

// Option configures a template under construction.
type Option func(t *Template)

// WithID sets the id of the element to build.
func WithID(id string) Option {
	return func(t *Template) { t.id = id }
}

// WithName sets the name of the element to build.
func WithName(name string) Option {
	return func(t *Template) { t.name = name }
}

// WithAccessor sets the accessor under which the built element will be
// registered.
func WithAccessor(accessor string) Option {
	return func(t *Template) { t.accessor = accessor }
}

// WithProperties appends properties. Properties are applied in order.
func WithProperties(props ...dom.Prop) Option {
	return func(t *Template) { t.props = append(t.props, props...) }
}

// WithChildren appends child templates. Nil children are dropped.
func WithChildren(children ...*Template) Option {
	return func(t *Template) {
		for _, ch := range children {
			if ch != nil {
				t.children = append(t.children, ch)
			}
		}
	}
}

// New creates an element template for a factory product.
func New(create string, opts ...Option) *Template {
	t := &Template{create: create}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Text creates a template for a literal text node.
func Text(text string) *Template {
	return &Template{text: text, isText: true}
}

// Create is the name of the factory product to build.
func (t *Template) Create() string {
	if t == nil {
		return ""
	}
	return t.create
}

// Accessor is the name under which a built element is registered with the
// accessors of a build. It is empty if not set.
func (t *Template) Accessor() string {
	if t == nil {
		return ""
	}
	return t.accessor
}

// ID returns the id of the element to build.
func (t *Template) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Name returns the name of the element to build.
func (t *Template) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Properties returns a copy of the properties, in order of application.
func (t *Template) Properties() []dom.Prop {
	if t == nil || len(t.props) == 0 {
		return nil
	}
	p := make([]dom.Prop, len(t.props))
	copy(p, t.props)
	return p
}

// Property returns the value of a property.
func (t *Template) Property(name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	for _, p := range t.props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Children returns a copy of the child templates.
func (t *Template) Children() []*Template {
	if t == nil || len(t.children) == 0 {
		return nil
	}
	ch := make([]*Template, len(t.children))
	copy(ch, t.children)
	return ch
}

// IsText is true for text templates.
func (t *Template) IsText() bool {
	return t != nil && t.isText
}

// Text returns the text of a text template.
func (t *Template) Text() string {
	if t == nil {
		return ""
	}
	return t.text
}

// Equal compares templates structurally. Two templates are equal if all of
// their fields are equal and their children are equal pairwise, in order.
func (t *Template) Equal(other *Template) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.isText != other.isText || t.text != other.text || t.create != other.create ||
		t.accessor != other.accessor || t.id != other.id || t.name != other.name {
		return false
	}
	if len(t.props) != len(other.props) || len(t.children) != len(other.children) {
		return false
	}
	for i, p := range t.props {
		q := other.props[i]
		if p.Name != q.Name || !reflect.DeepEqual(p.Value, q.Value) {
			return false
		}
	}
	for i, ch := range t.children {
		if !ch.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (t *Template) String() string {
	if t == nil {
		return "Template(nil)"
	}
	if t.isText {
		return fmt.Sprintf("Text(%q)", t.text)
	}
	var b strings.Builder
	b.WriteString("Template(" + t.create)
	if t.id != "" {
		b.WriteString(" #" + t.id)
	}
	if t.accessor != "" {
		b.WriteString(" @" + t.accessor)
	}
	fmt.Fprintf(&b, ", %d props, %d children)", len(t.props), len(t.children))
	return b.String()
}

// Load reads a template from a file. The format is chosen by the file
// extension: .xml, .shpaml, .yaml or .yml.
func Load(path string) (*Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FromXML(string(src))
	case ".shpaml":
		return FromSHPAML(string(src))
	case ".yaml", ".yml":
		return FromYAML(src)
	}
	return nil, fmt.Errorf("unknown template format for file %s", path)
}
