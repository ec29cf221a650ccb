package jsonv

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a single YAML document into a JSON value tree. Mapping
// keys must be strings; mapping order is preserved. Scalars outside JSON's
// reach (timestamps, tagged values) come through as strings.
func FromYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("jsonv: decode yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null{}, nil
	}
	return fromYAMLNode(root.Content[0])
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		arr := make(Array, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("jsonv: yaml mapping key at line %d is not a scalar", keyNode.Line)
			}
			v, err := fromYAMLNode(valNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, v)
		}
		return obj, nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	default:
		return nil, fmt.Errorf("jsonv: unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("jsonv: yaml bool at line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		// base 0 admits YAML's hex and octal forms
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("jsonv: yaml int at line %d: %w", n.Line, err)
		}
		return Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("jsonv: yaml float at line %d: %w", n.Line, err)
		}
		return Float(f), nil
	default:
		return String(n.Value), nil
	}
}
