package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringArray is a string slice that can be unmarshaled from a single string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			*s = nil
			return nil
		}

		*s = StringArray{node.Value}

		return nil

	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}

		*s = list

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
// Single element arrays are marshaled as a plain string.
func (s StringArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringArray) Contains(str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

// OneToOne is the "121" shorthand. It is written as a YAML mapping but
// keeps declaration order.
type OneToOne []NamePair

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OneToOne) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: 121 must be a mapping of source to target fields", node.Line)
	}

	pairs := make(OneToOne, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: 121 entries must be plain field names", k.Line)
		}

		pairs = append(pairs, NamePair{Source: k.Value, Target: v.Value})
	}

	*o = pairs

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o OneToOne) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range o {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Source},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Target},
		)
	}

	return node, nil
}
