package jsondot

import "github.com/jsondot/jsondot/internal/node"

// JSON returns the JSON text of the Document. Output is compact unless
// an Indent option is given; key order is insertion order. A Document
// constructed from a bare scalar serializes as that scalar, not as its
// internal one-element wrap.
func (d *Document) JSON(opts ...EncodeOption) ([]byte, error) {
	o := encodeOptions{escapeHTML: true}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	root := d.root
	if s, ok := d.scalarRoot(); ok {
		root = s
	}
	return node.Encode(root, node.EncodeOptions{Indent: o.indent, EscapeHTML: o.escapeHTML})
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.JSON()
}

// UnmarshalJSON implements json.Unmarshaler, replacing the Document's
// contents as Exchange would.
func (d *Document) UnmarshalJSON(data []byte) error {
	if d.delimiter == "" {
		d.delimiter = "."
	}
	n, err := node.Parse(data)
	if err != nil {
		return err
	}
	return d.initParsed(n)
}

// Value returns the Document as fresh native Go values: dense
// containers become []any, all other containers map[string]any. The
// result shares no structure with the Document.
func (d *Document) Value() any {
	return d.root.ToGo(false)
}

// Map returns the Document's root container as a map[string]any, even
// when it is array-shaped. Nested values convert as in Value.
func (d *Document) Map() map[string]any {
	return d.root.ToGoMap(false)
}

// FullMap returns the Document with every container forced to the
// map[string]any shape, including dense integer-indexed ones.
func (d *Document) FullMap() map[string]any {
	return d.root.ToGoMap(true)
}
