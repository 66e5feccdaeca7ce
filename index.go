package jsondot

import (
	"fmt"
	"strconv"

	"github.com/jsondot/jsondot/internal/node"
)

// Indexed-collection protocol: conventional subscript-style access by
// a single string or integer key. Each method delegates to the path
// engine with a one-element key sequence, so keys containing the path
// delimiter address exactly one child and are never split.

// ExistsKey reports whether key holds a non-nil value in the root
// container.
func (d *Document) ExistsKey(key any) bool {
	return d.GetKey(key) != nil
}

// GetKey returns the root container's value at key, or nil when the
// key is absent or invalid.
func (d *Document) GetKey(key any) any {
	k, err := keyString(key)
	if err != nil {
		return nil
	}
	res, err := node.Walk(d.root, []string{k}, true, func(parent *node.Node, key string) (any, error) {
		c, _ := parent.Child(key)
		return c, nil
	})
	if err != nil {
		return nil
	}
	return fromNode(res.(*node.Node))
}

// SetKey stores value at key in the root container.
func (d *Document) SetKey(key, value any) error {
	k, err := keyString(key)
	if err != nil {
		return &PathError{Op: "setKey", Err: err}
	}
	return d.setKeys("setKey", k, []string{k}, value)
}

// UnsetKey removes key from the root container, reporting
// ErrPathNotFound when it is absent.
func (d *Document) UnsetKey(key any) error {
	k, err := keyString(key)
	if err != nil {
		return &PathError{Op: "unsetKey", Err: err}
	}
	return d.unsetKeys("unsetKey", k, []string{k})
}

// keyString normalizes a subscript key: strings pass through, integers
// convert to their decimal form.
func keyString(key any) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case int:
		return strconv.Itoa(k), nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	}
	return "", fmt.Errorf("key of type %T: %w", key, ErrInvalidInput)
}
