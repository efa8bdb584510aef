package template

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/thedom/dom"
	"gopkg.in/yaml.v3"
)

// FromYAML reads a template from YAML. Every element is a mapping
//
//     create: container
//     id: main
//     properties:
//       randomattribute: Hello
//     children:
//       - create: childelement
//       - just some text
//
// Plain scalars in a list of children are text templates. The order of
// properties is kept. Scalar property values are strings, mappings and
// sequences are decoded into maps and slices.
func FromYAML(src []byte) (*Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("reading YAML template: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNoRoot
	}
	return yamlElement(doc.Content[0])
}

func yamlElement(n *yaml.Node) (*Template, error) {
	if n.Kind == yaml.ScalarNode {
		return Text(n.Value), nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: template element must be a mapping", n.Line)
	}
	t := &Template{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "create":
			t.create = value.Value
		case "id":
			t.id = value.Value
		case "name":
			t.name = value.Value
		case "accessor":
			t.accessor = value.Value
		case "text":
			t.children = append(t.children, Text(value.Value))
		case "properties":
			props, err := yamlProperties(value)
			if err != nil {
				return nil, err
			}
			t.props = append(t.props, props...)
		case "children":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: children must be a list", value.Line)
			}
			for _, c := range value.Content {
				ch, err := yamlElement(c)
				if err != nil {
					return nil, err
				}
				t.children = append(t.children, ch)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown template field %q", key.Line, key.Value)
		}
	}
	if t.create == "" {
		return nil, fmt.Errorf("line %d: template element without 'create'", n.Line)
	}
	return t, nil
}

func yamlProperties(n *yaml.Node) ([]dom.Prop, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: properties must be a mapping", n.Line)
	}
	props := make([]dom.Prop, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		var v any
		switch value.Kind {
		case yaml.ScalarNode:
			v = value.Value
		case yaml.MappingNode:
			m := map[string]any{}
			if err := value.Decode(&m); err != nil {
				return nil, err
			}
			v = m
		default:
			var list []any
			if err := value.Decode(&list); err != nil {
				return nil, err
			}
			v = list
		}
		props = append(props, dom.P(key.Value, v))
	}
	return props, nil
}
