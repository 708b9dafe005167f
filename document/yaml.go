/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLCodec is an alternate Codec storing documents as YAML mappings.
// yaml.Node round-trips mapping key order, so ordering guarantees match the
// JSON codec.
type YAMLCodec struct {
	// IndentWidth is the emitted indent in spaces. Zero means the default
	// of 2.
	IndentWidth int
}

// DecodeFile implements Codec.
func (c YAMLCodec) DecodeFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("reading %s: empty YAML document", path)
		}
		node = node.Content[0]
	}
	v, err := valueFromYAMLNode(node)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("reading %s: top-level YAML value is not a mapping", path)
	}
	return obj, nil
}

// EncodeFile implements Codec.
func (c YAMLCodec) EncodeFile(path string, obj *Object) error {
	node, err := yamlNodeFromValue(obj)
	if err != nil {
		return err
	}
	width := c.IndentWidth
	if width <= 0 {
		width = 2
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(width)
	if err := enc.Encode(node); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func valueFromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("non-scalar mapping key at line %d", keyNode.Line)
			}
			v, err := valueFromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make(Array, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := valueFromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalarFromYAMLNode(n)
	case yaml.AliasNode:
		return valueFromYAMLNode(n.Alias)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind %v at line %d", n.Kind, n.Line)
	}
}

func scalarFromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return nil, err
		}
		return i, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

func yamlNodeFromValue(v Value) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			child, err := yamlNodeFromValue(val)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child)
		}
		return node, nil
	case Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			child, err := yamlNodeFromValue(e)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(t, 10)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	default:
		return nil, fmt.Errorf("unsupported document value type %T", v)
	}
}
