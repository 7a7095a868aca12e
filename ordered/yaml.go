package ordered

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a YAML node that must be a mapping is something else.
var ErrNotMapping = errors.New("yaml node is not a mapping")

// --- Map YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Map.
// Keys keep the order of the document and aliases are resolved.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeNode(node)
	if err != nil {
		return err
	}

	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: got %T at line %d", ErrNotMapping, v, node.Line)
	}

	*m = *decoded

	return nil
}

// MarshalYAML implements custom YAML marshaling for Map.
// Outputs a mapping node with keys in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range m.All() {
		var value yaml.Node

		err := value.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", k, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	return node, nil
}

// DecodeYAML decodes any YAML node. Mappings become *Map and sequences []any.
func DecodeYAML(node *yaml.Node) (any, error) {
	return decodeNode(node)
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return decodeNode(node.Content[0])

	case yaml.AliasNode:
		return decodeNode(node.Alias)

	case yaml.MappingNode:
		m := New(len(node.Content) / 2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]

			// merge keys ("<<: *base") splice the aliased mapping in place
			if keyNode.Tag == "!!merge" {
				err := spliceMerge(m, valueNode)
				if err != nil {
					return nil, err
				}

				continue
			}

			var key string

			err := keyNode.Decode(&key)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
			}

			value, err := decodeNode(valueNode)
			if err != nil {
				return nil, err
			}

			m.Set(key, value)
		}

		return m, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := decodeNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	case yaml.ScalarNode:
		var v any

		err := node.Decode(&v)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		// integers decode as int64, like they do from JSON
		if i, ok := v.(int); ok {
			return int64(i), nil
		}

		return v, nil

	default:
		return nil, fmt.Errorf("unexpected yaml node kind %v at line %d", node.Kind, node.Line)
	}
}

func spliceMerge(m *Map, node *yaml.Node) error {
	v, err := decodeNode(node)
	if err != nil {
		return err
	}

	sources := []any{v}
	if seq, ok := v.([]any); ok {
		sources = seq
	}

	for _, src := range sources {
		sm, ok := src.(*Map)
		if !ok {
			return fmt.Errorf("%w: merge key at line %d", ErrNotMapping, node.Line)
		}

		for k, sv := range sm.All() {
			if !m.Has(k) {
				m.Set(k, sv)
			}
		}
	}

	return nil
}
