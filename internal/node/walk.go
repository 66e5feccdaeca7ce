package node

import "fmt"

// Op is invoked by Walk at the terminal position of a traversal. It
// receives the direct parent container of the target and the terminal
// key, and carries out the actual read, write or delete there; Walk
// itself only resolves the path.
type Op func(parent *Node, key string) (any, error)

// Walk descends root one key at a time and invokes op at the terminal
// position, returning whatever op returns.
//
// In strict mode a missing key at any step reports ErrPathNotFound. In
// lenient mode missing intermediate keys are created as empty
// containers and a missing terminal key is created with a null
// placeholder before op runs, so lenient creation is immediately
// visible through root. A present key holding a scalar can never be
// descended into; that reports ErrInvalidInput in both modes.
func Walk(root *Node, keys []string, strict bool, op Op) (any, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty key sequence: %w", ErrInvalidInput)
	}
	key := keys[0]
	if len(keys) == 1 {
		if _, ok := root.Child(key); !ok {
			if strict {
				return nil, fmt.Errorf("key %q: %w", key, ErrPathNotFound)
			}
			root.Set(key, NewNull())
		}
		return op(root, key)
	}

	child, ok := root.Child(key)
	if !ok {
		if strict {
			return nil, fmt.Errorf("key %q: %w", key, ErrPathNotFound)
		}
		child = NewContainer()
		root.Set(key, child)
	}
	if !child.IsContainer() {
		return nil, fmt.Errorf("key %q holds a %s, not a container: %w", key, child.Kind(), ErrInvalidInput)
	}
	return Walk(child, keys[1:], strict, op)
}
