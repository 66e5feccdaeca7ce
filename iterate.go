package jsondot

import (
	"fmt"
	"iter"

	"github.com/jsondot/jsondot/internal/node"
)

// Shape selects the output representation of a converted value.
type Shape uint8

const (
	// ShapeJSON renders container children as compact JSON text.
	ShapeJSON Shape = iota
	// ShapeValue renders containers as native Go values: []any when
	// dense, map[string]any otherwise.
	ShapeValue
	// ShapeMap renders container children as map[string]any at the top
	// level, with nested values as in ShapeValue.
	ShapeMap
	// ShapeFullMap renders every container as map[string]any, even
	// dense integer-indexed ones.
	ShapeFullMap
)

func (s Shape) valid() bool { return s <= ShapeFullMap }

// Iterate returns a lazy sequence over the direct children of the
// container at path (or the root, when no path is given), yielding
// (key, value) pairs in insertion order. Child containers are
// converted on the fly into the requested shape; scalar children pass
// through unchanged.
//
// The sequence is bounded by the child count at call time. Calling
// Iterate again produces a fresh sequence reflecting current state.
// Iterate fails before yielding anything when the target does not
// resolve to a container or the shape is unknown.
func (d *Document) Iterate(shape Shape, path ...string) (iter.Seq2[string, any], error) {
	if !shape.valid() {
		return nil, &PathError{Op: "iterate", Err: fmt.Errorf("unknown shape %d: %w", shape, ErrInvalidInput)}
	}
	n, p, err := d.target("iterate", path)
	if err != nil {
		return nil, err
	}
	if !n.IsContainer() {
		return nil, &PathError{Op: "iterate", Path: p, Err: ErrNotContainer}
	}

	keys := n.Keys()
	return func(yield func(string, any) bool) {
		for _, k := range keys {
			c, ok := n.Child(k)
			if !ok {
				// Removed since the sequence was created.
				continue
			}
			if !yield(k, shaped(c, shape)) {
				return
			}
		}
	}, nil
}

// shaped converts one child node into the requested shape. Scalars are
// returned as-is regardless of shape.
func shaped(n *node.Node, shape Shape) any {
	if !n.IsContainer() {
		return n.ScalarValue()
	}
	switch shape {
	case ShapeJSON:
		b, err := node.Encode(n, node.EncodeOptions{EscapeHTML: true})
		if err != nil {
			return nil
		}
		return string(b)
	case ShapeMap:
		return n.ToGoMap(false)
	case ShapeFullMap:
		return n.ToGoMap(true)
	}
	return n.ToGo(false)
}
