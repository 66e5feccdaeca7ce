package jsondot

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/jsondot/jsondot/internal/dotpath"
	"github.com/jsondot/jsondot/internal/node"
)

// FromYAML builds a Document from YAML text. Mapping key order is
// preserved, so the document iterates and serializes in source order.
func FromYAML(data []byte, opts ...Option) (*Document, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	n, err := fromYAMLValue(v)
	if err != nil {
		return nil, err
	}

	d := &Document{delimiter: dotpath.DefaultDelimiter}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if !n.IsContainer() {
		if err := d.initWrapped(n, repScalar); err != nil {
			return nil, err
		}
		return d, nil
	}
	d.root = n
	if _, ok := v.(yaml.MapSlice); ok {
		d.rep = repMap
	} else {
		d.rep = repValue
	}
	return d, nil
}

// YAML returns the Document serialized as YAML, with mapping keys in
// insertion order.
func (d *Document) YAML() ([]byte, error) {
	root := d.root
	if s, ok := d.scalarRoot(); ok {
		root = s
	}
	out, err := yaml.Marshal(toYAMLValue(root))
	if err != nil {
		return nil, fmt.Errorf("jsondot: encoding yaml: %w", err)
	}
	return out, nil
}

// fromYAMLValue normalizes the ordered value tree the YAML decoder
// produces. MapSlice carries the source order that plain Go maps
// cannot.
func fromYAMLValue(v any) (*node.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		out := node.NewObject()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			c, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			out.Set(key, c)
		}
		return out, nil
	case []any:
		out := node.NewContainer()
		for _, el := range x {
			c, err := fromYAMLValue(el)
			if err != nil {
				return nil, err
			}
			out.Append(c)
		}
		return out, nil
	}
	return node.FromGo(v)
}

// toYAMLValue converts the canonical tree into values the YAML encoder
// keeps ordered: MapSlice for objects, []any for dense containers.
func toYAMLValue(n *node.Node) any {
	if !n.IsContainer() {
		return n.ScalarValue()
	}
	if n.IsDense() {
		out := make([]any, 0, n.Len())
		for _, k := range n.Keys() {
			c, _ := n.Child(k)
			out = append(out, toYAMLValue(c))
		}
		return out
	}
	out := make(yaml.MapSlice, 0, n.Len())
	for _, k := range n.Keys() {
		c, _ := n.Child(k)
		out = append(out, yaml.MapItem{Key: k, Value: toYAMLValue(c)})
	}
	return out
}
