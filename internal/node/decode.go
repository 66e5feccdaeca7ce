package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parse decodes JSON text into a canonical node, preserving object key
// order. It reports ErrMalformedDocument (wrapping the decoder's
// error) for input that is not well-formed JSON, which keeps a failed
// parse distinguishable from the valid JSON literal null.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedDocument)
	}
	return n, nil
}

// decodeValue consumes one JSON value from the token stream. Objects
// and arrays both build containers; array elements take their index as
// key, which is what makes them dense.
func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return newString(t), nil
	case bool:
		return newBool(t), nil
	case json.Number:
		return fromNumber(t), nil
	case nil:
		return NewNull(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	out := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		out.Set(key, child)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return out, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	out := NewContainer()
	for dec.More() {
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		out.Append(child)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return out, nil
}

// fromJSONRoundTrip normalizes a value through its encoding/json form.
func fromJSONRoundTrip(v any) (*Node, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("value of type %T: %w", v, ErrInvalidInput)
	}
	return Parse(b)
}
