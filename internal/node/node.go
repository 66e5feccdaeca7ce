// Package node implements the canonical value: the single normalized
// nested-container-or-scalar form every document is stored as,
// independent of the representation supplied at construction.
//
// A container is an insertion-ordered mapping from string key to child
// node. There is no separate array kind: a container whose keys are
// exactly "0".."n-1" in order is dense and serializes as a JSON array,
// every other container serializes as an object. This single container
// shape is what lets the same tree be read back as an array, an
// object, or JSON text on demand.
package node

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// Kind identifies the shape of a Node.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Container
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Container:
		return "container"
	}
	return "<unknown kind>"
}

// Node is one position in the canonical tree. Containers are mutable
// and addressed by reference; scalar nodes are immutable after
// creation.
type Node struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	keys     []string
	children map[string]*Node

	// obj pins the container to the object shape even when its keys
	// happen to be dense. Containers built from JSON objects or Go
	// maps keep their shape across a round trip this way.
	obj bool
}

// NewContainer returns an empty array-like container node.
func NewContainer() *Node {
	return &Node{kind: Container, children: map[string]*Node{}}
}

// NewObject returns an empty container pinned to the object shape.
func NewObject() *Node {
	return &Node{kind: Container, children: map[string]*Node{}, obj: true}
}

// NewNull returns a null scalar node.
func NewNull() *Node { return &Node{kind: Null} }

func newBool(v bool) *Node     { return &Node{kind: Bool, boolVal: v} }
func newInt(v int64) *Node     { return &Node{kind: Int, intVal: v} }
func newFloat(v float64) *Node { return &Node{kind: Float, floatVal: v} }
func newString(v string) *Node { return &Node{kind: String, strVal: v} }

// Kind reports the node's shape.
func (n *Node) Kind() Kind { return n.kind }

// IsContainer reports whether the node can hold children.
func (n *Node) IsContainer() bool { return n.kind == Container }

// Len returns the number of direct children. Scalars have none.
func (n *Node) Len() int { return len(n.keys) }

// Keys returns the container's keys in insertion order. The returned
// slice is a copy; mutating it does not affect the node.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Child returns the child stored at key.
func (n *Node) Child(key string) (*Node, bool) {
	if n.kind != Container {
		return nil, false
	}
	c, ok := n.children[key]
	return c, ok
}

// Set stores child at key, appending the key when it is new.
func (n *Node) Set(key string, child *Node) {
	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// Delete removes the child at key and reports whether it was present.
func (n *Node) Delete(key string) bool {
	if _, ok := n.children[key]; !ok {
		return false
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Append stores child at the next free integer key, mirroring how a
// dense container grows.
func (n *Node) Append(child *Node) {
	n.Set(strconv.Itoa(n.nextIndex()), child)
}

// nextIndex is one past the largest integer key in use, so appending
// after out-of-order integer keys never collides.
func (n *Node) nextIndex() int {
	next := 0
	for _, k := range n.keys {
		if i, err := strconv.Atoi(k); err == nil && i >= next {
			next = i + 1
		}
	}
	return next
}

// PopLast removes and returns the container's last child. It reports
// false when the container is empty.
func (n *Node) PopLast() (string, *Node, bool) {
	if len(n.keys) == 0 {
		return "", nil, false
	}
	key := n.keys[len(n.keys)-1]
	child := n.children[key]
	n.keys = n.keys[:len(n.keys)-1]
	delete(n.children, key)
	return key, child, true
}

// IsDense reports whether the container's keys are exactly "0".."n-1"
// in order, i.e. whether it serializes as a JSON array.
func (n *Node) IsDense() bool {
	if n.kind != Container || n.obj {
		return false
	}
	for i, k := range n.keys {
		if k != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// ScalarValue returns the Go value of a scalar node: nil, bool, int64,
// float64 or string. It returns nil for containers.
func (n *Node) ScalarValue() any {
	switch n.kind {
	case Bool:
		return n.boolVal
	case Int:
		return n.intVal
	case Float:
		return n.floatVal
	case String:
		return n.strVal
	}
	return nil
}

// Clone returns a deep copy sharing no structure with n.
func (n *Node) Clone() *Node {
	if n.kind != Container {
		c := *n
		return &c
	}
	out := NewContainer()
	out.obj = n.obj
	for _, k := range n.keys {
		out.Set(k, n.children[k].Clone())
	}
	return out
}

// ToGo converts the subtree into fresh native Go values: dense
// containers become []any, other containers map[string]any, scalars
// their Go scalar. When full is set every container becomes a map,
// dense or not. Nothing in the result aliases the canonical tree.
func (n *Node) ToGo(full bool) any {
	if n.kind != Container {
		return n.ScalarValue()
	}
	if !full && n.IsDense() {
		out := make([]any, 0, len(n.keys))
		for _, k := range n.keys {
			out = append(out, n.children[k].ToGo(full))
		}
		return out
	}
	return n.ToGoMap(full)
}

// ToGoMap converts the container into a map[string]any even when it is
// dense. Children convert as in ToGo.
func (n *Node) ToGoMap(full bool) map[string]any {
	out := make(map[string]any, len(n.keys))
	for _, k := range n.keys {
		out[k] = n.children[k].ToGo(full)
	}
	return out
}

// FromGo normalizes an arbitrary Go value into a canonical node.
// Containers convert deeply; *Node values are deep-copied so the
// result never aliases its source. Values without a JSON-like shape
// (channels, functions, ...) report ErrInvalidInput.
func FromGo(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return NewNull(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return newBool(x), nil
	case string:
		return newString(x), nil
	case int:
		return newInt(int64(x)), nil
	case int8:
		return newInt(int64(x)), nil
	case int16:
		return newInt(int64(x)), nil
	case int32:
		return newInt(int64(x)), nil
	case int64:
		return newInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return newInt(int64(x)), nil
	case uint16:
		return newInt(int64(x)), nil
	case uint32:
		return newInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return newFloat(float64(x)), nil
	case float64:
		return newFloat(x), nil
	case json.Number:
		return fromNumber(x), nil
	case map[string]any:
		return fromStringMap(x)
	case []any:
		out := NewContainer()
		for _, el := range x {
			c, err := FromGo(el)
			if err != nil {
				return nil, err
			}
			out.Append(c)
		}
		return out, nil
	}
	return fromReflect(v)
}

// fromUint keeps integers integral while they fit in int64.
func fromUint(x uint64) *Node {
	if x > math.MaxInt64 {
		return newFloat(float64(x))
	}
	return newInt(int64(x))
}

// fromNumber keeps integral JSON numbers integral.
func fromNumber(x json.Number) *Node {
	if i, err := x.Int64(); err == nil {
		return newInt(i)
	}
	if f, err := x.Float64(); err == nil {
		return newFloat(f)
	}
	return newString(x.String())
}

// fromStringMap converts a native Go map. Go maps carry no order, so
// keys are taken in sorted order to keep the canonical form
// deterministic.
func fromStringMap(m map[string]any) (*Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := NewObject()
	for _, k := range keys {
		c, err := FromGo(m[k])
		if err != nil {
			return nil, err
		}
		out.Set(k, c)
	}
	return out, nil
}

// fromReflect handles the long tail: typed maps, slices, arrays,
// pointers and anything encoding/json can represent.
func fromReflect(v any) (*Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NewNull(), nil
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map with %s keys: %w", rv.Type().Key(), ErrInvalidInput)
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return fromStringMap(m)
	case reflect.Slice, reflect.Array:
		out := NewContainer()
		for i := 0; i < rv.Len(); i++ {
			c, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out.Append(c)
		}
		return out, nil
	case reflect.Struct:
		// Structs normalize through their JSON form so tags and custom
		// marshalers apply.
		return fromJSONRoundTrip(v)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, fmt.Errorf("value of type %T: %w", v, ErrInvalidInput)
	}
	// Named scalar types (type Level string, type Port int) land here;
	// their JSON form is the underlying scalar.
	return fromJSONRoundTrip(v)
}
