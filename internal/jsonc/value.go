package jsonc

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind tags the shape of a parsed Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member is one key/value pair of an object, in source order.
type Member struct {
	Key   string
	Value Value
}

// Value is a tagged union over the JSON value shapes. Only the payload field
// matching Kind is meaningful; the rest are zero.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  json.Number
	Str     string
	Items   []Value
	Members []Member
}

// Num returns the numeric payload, as int64 when the literal is integral and
// float64 otherwise.
func (v Value) Num() (any, error) {
	if v.Kind != KindNumber {
		return nil, fmt.Errorf("value is %s, not a number", v.Kind)
	}
	if i, err := v.Number.Int64(); err == nil {
		return i, nil
	}
	f, err := v.Number.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %w", v.Number.String(), err)
	}
	return f, nil
}

// MarshalYAML implements yaml.Marshaler, preserving object member order.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode()
}

func (v Value) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{}
	switch v.Kind {
	case KindNull:
		node.Kind = yaml.ScalarNode
		node.Tag = "!!null"
		node.Value = "null"
	case KindBool:
		if err := node.Encode(v.Bool); err != nil {
			return nil, err
		}
	case KindNumber:
		n, err := v.Num()
		if err != nil {
			return nil, err
		}
		if err := node.Encode(n); err != nil {
			return nil, err
		}
	case KindString:
		if err := node.Encode(v.Str); err != nil {
			return nil, err
		}
	case KindArray:
		node.Kind = yaml.SequenceNode
		node.Tag = "!!seq"
		for _, item := range v.Items {
			child, err := item.yamlNode()
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
	case KindObject:
		node.Kind = yaml.MappingNode
		node.Tag = "!!map"
		for _, m := range v.Members {
			key := &yaml.Node{}
			if err := key.Encode(m.Key); err != nil {
				return nil, err
			}
			child, err := m.Value.yamlNode()
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, key, child)
		}
	}
	return node, nil
}
