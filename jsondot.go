package jsondot

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jsondot/jsondot/internal/dotpath"
	"github.com/jsondot/jsondot/internal/node"
)

// representation records the external shape a Document was originally
// given. It is the implicit return shape of Export.
type representation uint8

const (
	repJSON representation = iota
	repValue
	repMap
	repScalar
)

// A Document is a single handle over a JSON-like tree. Whatever
// representation it was constructed from — JSON text, a map, a slice
// or a bare scalar — the data is normalized into one canonical nested
// form that can be read, mutated, counted, iterated and re-serialized
// through dotted paths.
//
// A Document is not safe for concurrent use; callers sharing one
// across goroutines must serialize access themselves.
type Document struct {
	root *node.Node
	rep  representation
	// wrapped marks a root that is the one-element wrap of a scalar.
	wrapped bool

	delimiter     string
	rawStrings    bool
	decodeStrings bool
}

// New builds a Document from input, which may be JSON text (string or
// []byte), a container value (a map with string keys, a slice or an
// array, or a struct with a JSON shape) or a scalar. The input is
// deep-copied into the canonical form; later changes to it do not
// affect the Document.
//
// String input parses as JSON text unless RawStrings is set. A string
// that starts with "{" or "[" must be well-formed JSON; any other
// string that fails to parse is stored as a literal string scalar.
// []byte input must always be well-formed JSON.
func New(input any, opts ...Option) (*Document, error) {
	d := &Document{delimiter: dotpath.DefaultDelimiter}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if err := d.init(input); err != nil {
		return nil, err
	}
	return d, nil
}

// Exchange discards the canonical value and the recorded
// representation and reinitializes the Document from newData, as if it
// had been constructed anew. Configuration carries over unless
// overridden by opts. On error the Document is left unchanged, options
// included.
func (d *Document) Exchange(newData any, opts ...Option) error {
	staged := *d
	for _, opt := range opts {
		if err := opt(&staged); err != nil {
			return err
		}
	}
	if err := staged.init(newData); err != nil {
		return err
	}
	*d = staged
	return nil
}

func (d *Document) init(input any) error {
	switch x := input.(type) {
	case *Document:
		d.root = x.root.Clone()
		d.rep = x.rep
		d.wrapped = x.wrapped
		return nil
	case []byte:
		if d.rawStrings {
			return d.initScalar(string(x))
		}
		n, err := node.Parse(x)
		if err != nil {
			return err
		}
		return d.initParsed(n)
	case string:
		if d.rawStrings {
			return d.initScalar(x)
		}
		n, err := node.Parse([]byte(x))
		if err != nil {
			trimmed := strings.TrimSpace(x)
			if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
				return err
			}
			// Not JSON-looking text; keep it as a literal string.
			return d.initScalar(x)
		}
		return d.initParsed(n)
	}

	n, err := node.FromGo(input)
	if err != nil {
		return err
	}
	if !n.IsContainer() {
		return d.initWrapped(n, repScalar)
	}
	switch reflect.Indirect(reflect.ValueOf(input)).Kind() {
	case reflect.Slice, reflect.Array:
		d.rep = repValue
	default:
		d.rep = repMap
	}
	d.root = n
	d.wrapped = false
	return nil
}

// initParsed installs a freshly parsed JSON value.
func (d *Document) initParsed(n *node.Node) error {
	if !n.IsContainer() {
		return d.initWrapped(n, repJSON)
	}
	d.root = n
	d.rep = repJSON
	d.wrapped = false
	return nil
}

func (d *Document) initScalar(s string) error {
	n, err := node.FromGo(s)
	if err != nil {
		return err
	}
	return d.initWrapped(n, repScalar)
}

// initWrapped wraps a scalar root as the sole element of a one-element
// sequence. The wrap is transparent: root reads and serialization
// unwrap it again.
func (d *Document) initWrapped(scalar *node.Node, rep representation) error {
	root := node.NewContainer()
	root.Append(scalar)
	d.root = root
	d.rep = rep
	d.wrapped = true
	return nil
}

// scalarRoot returns the wrapped scalar when the Document still holds
// exactly the one-element wrap it was constructed with.
func (d *Document) scalarRoot() (*node.Node, bool) {
	if !d.wrapped || d.root.Len() != 1 {
		return nil, false
	}
	c, ok := d.root.Child("0")
	if !ok || c.IsContainer() {
		return nil, false
	}
	return c, true
}

func (d *Document) split(path string) []string {
	return dotpath.Split(path, d.delimiter)
}

// target resolves the optional trailing path of container operations:
// no path addresses the root (with the scalar wrap unwrapped), one
// path element addresses the container at that path. Any resolution
// failure, including a missing or scalar target, reports
// ErrNotContainer wrapped in a PathError.
func (d *Document) target(op string, path []string) (*node.Node, string, error) {
	switch len(path) {
	case 0:
		if s, ok := d.scalarRoot(); ok {
			return s, "", nil
		}
		return d.root, "", nil
	case 1:
		n, err := d.node(path[0])
		if err != nil {
			return nil, path[0], &PathError{Op: op, Path: path[0], Err: ErrNotContainer}
		}
		return n, path[0], nil
	}
	return nil, "", &PathError{Op: op, Err: fmt.Errorf("%w: at most one path accepted", ErrInvalidInput)}
}

// node strictly resolves path to its canonical node.
func (d *Document) node(path string) (*node.Node, error) {
	res, err := node.Walk(d.root, d.split(path), true, func(parent *node.Node, key string) (any, error) {
		c, _ := parent.Child(key)
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*node.Node), nil
}

// String returns the compact JSON form of the Document.
func (d *Document) String() string {
	b, err := d.JSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// Export returns the Document in the representation it was originally
// given: JSON text as a compact JSON string, a map as map[string]any,
// a slice as []any and a scalar as the bare scalar.
func (d *Document) Export() any {
	switch d.rep {
	case repJSON:
		return d.String()
	case repMap:
		return d.Map()
	case repValue:
		return d.Value()
	}
	if s, ok := d.scalarRoot(); ok {
		return s.ScalarValue()
	}
	return d.Value()
}
