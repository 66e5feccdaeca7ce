package jsondot

import "github.com/jsondot/jsondot/internal/node"

// Get returns the value at path, or nil when the path does not
// resolve. A read miss is never an error: missing keys, scalars in the
// way and a value explicitly stored as null all read back as nil.
// Containers come back as fresh native Go values ([]any when dense,
// map[string]any otherwise).
func (d *Document) Get(path string) any {
	v, _ := d.Lookup(path)
	return v
}

// Lookup returns the value at path and reports whether the path is
// actually present. Unlike Exists, it distinguishes a stored null
// (nil, true) from an absent key (nil, false).
func (d *Document) Lookup(path string) (any, bool) {
	n, err := d.node(path)
	if err != nil {
		return nil, false
	}
	return fromNode(n), true
}

// Exists reports whether Get(path) would return a non-nil value. A
// value explicitly stored as null is indistinguishable from an absent
// key here; use Lookup when that distinction matters.
func (d *Document) Exists(path string) bool {
	return d.Get(path) != nil
}

// GetString returns the string at path.
func (d *Document) GetString(path string) (string, bool) {
	s, ok := d.Get(path).(string)
	return s, ok
}

// GetInt returns the integer at path.
func (d *Document) GetInt(path string) (int64, bool) {
	i, ok := d.Get(path).(int64)
	return i, ok
}

// GetFloat returns the number at path, widening stored integers.
func (d *Document) GetFloat(path string) (float64, bool) {
	switch v := d.Get(path).(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// GetBool returns the boolean at path.
func (d *Document) GetBool(path string) (bool, bool) {
	b, ok := d.Get(path).(bool)
	return b, ok
}

// Set stores value at path, creating missing intermediate containers
// along the way. The value is normalized into canonical form first;
// with DecodeStrings set, string values that parse as JSON store the
// decoded value instead.
func (d *Document) Set(path string, value any) error {
	return d.setKeys("set", path, d.split(path), value)
}

// Unset removes the value at path, deleting the terminal key from its
// parent container. Unlike Get, it requires the full path to exist and
// reports ErrPathNotFound otherwise.
func (d *Document) Unset(path string) error {
	return d.unsetKeys("unset", path, d.split(path))
}

// Count returns the number of direct children of the container at
// path, or of the root container when no path is given. It reports
// ErrNotContainer when the target is a scalar or absent.
func (d *Document) Count(path ...string) (int, error) {
	n, p, err := d.target("count", path)
	if err != nil {
		return 0, err
	}
	if !n.IsContainer() {
		return 0, &PathError{Op: "count", Path: p, Err: ErrNotContainer}
	}
	return n.Len(), nil
}

// IsContainer reports whether path (or the root, when no path is
// given) resolves to a container.
func (d *Document) IsContainer(path ...string) bool {
	n, _, err := d.target("isContainer", path)
	return err == nil && n.IsContainer()
}

// Keys returns the child keys of the container at path (or the root)
// in insertion order.
func (d *Document) Keys(path ...string) ([]string, error) {
	n, p, err := d.target("keys", path)
	if err != nil {
		return nil, err
	}
	if !n.IsContainer() {
		return nil, &PathError{Op: "keys", Path: p, Err: ErrNotContainer}
	}
	return n.Keys(), nil
}

// Push appends value to the container at path (or the root), storing
// it at the next free integer key. The value is normalized as in Set.
func (d *Document) Push(value any, path ...string) error {
	n, p, err := d.target("push", path)
	if err != nil {
		return err
	}
	if !n.IsContainer() {
		return &PathError{Op: "push", Path: p, Err: ErrNotContainer}
	}
	c, err := d.normalize(value)
	if err != nil {
		return &PathError{Op: "push", Path: p, Err: err}
	}
	n.Append(c)
	return nil
}

// Pop removes and returns the last element of the container at path
// (or the root). Popping an empty container is a no-op returning nil.
func (d *Document) Pop(path ...string) (any, error) {
	n, p, err := d.target("pop", path)
	if err != nil {
		return nil, err
	}
	if !n.IsContainer() {
		return nil, &PathError{Op: "pop", Path: p, Err: ErrNotContainer}
	}
	_, c, ok := n.PopLast()
	if !ok {
		return nil, nil
	}
	return fromNode(c), nil
}

// setKeys and unsetKeys carry the shared key-sequence logic so the
// single-key indexed protocol can delegate to the same operations.

func (d *Document) setKeys(op, path string, keys []string, value any) error {
	c, err := d.normalize(value)
	if err != nil {
		return &PathError{Op: op, Path: path, Err: err}
	}
	_, err = node.Walk(d.root, keys, false, func(parent *node.Node, key string) (any, error) {
		parent.Set(key, c)
		return nil, nil
	})
	if err != nil {
		return &PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (d *Document) unsetKeys(op, path string, keys []string) error {
	_, err := node.Walk(d.root, keys, true, func(parent *node.Node, key string) (any, error) {
		parent.Delete(key)
		return nil, nil
	})
	if err != nil {
		return &PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

// normalize converts a caller-supplied value into canonical form.
func (d *Document) normalize(value any) (*node.Node, error) {
	if s, ok := value.(string); ok && d.decodeStrings {
		if n, err := node.Parse([]byte(s)); err == nil {
			return n, nil
		}
	}
	if doc, ok := value.(*Document); ok {
		return doc.root.Clone(), nil
	}
	return node.FromGo(value)
}

// fromNode converts a canonical node into a fresh native Go value.
func fromNode(n *node.Node) any {
	return n.ToGo(false)
}
