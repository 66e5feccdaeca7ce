package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// EncodeOptions control the JSON text produced by Encode.
type EncodeOptions struct {
	// Indent pretty-prints with the given sequence per nesting level.
	// Empty means compact output.
	Indent string
	// EscapeHTML escapes <, > and & inside strings, matching
	// encoding/json's default behavior.
	EscapeHTML bool
}

// Encode serializes the subtree as JSON text. Dense containers emit as
// arrays, all other containers as objects; key order follows insertion
// order. Values JSON cannot represent (NaN, infinities) report
// ErrInvalidInput.
func Encode(n *Node, opts EncodeOptions) ([]byte, error) {
	es := &encodeState{opts: opts}
	es.strEnc = json.NewEncoder(&es.scratch)
	es.strEnc.SetEscapeHTML(opts.EscapeHTML)

	if err := es.writeNode(n); err != nil {
		return nil, err
	}
	if opts.Indent == "" {
		return es.buf.Bytes(), nil
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, es.buf.Bytes(), "", opts.Indent); err != nil {
		return nil, err
	}
	return pretty.Bytes(), nil
}

// encodeState writes compact JSON to buf. String scalars pass through
// an encoding/json encoder so escaping rules stay the standard ones.
type encodeState struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	strEnc  *json.Encoder
	opts    EncodeOptions
}

func (es *encodeState) writeNode(n *Node) error {
	switch n.kind {
	case Null:
		es.buf.WriteString("null")
	case Bool:
		es.buf.WriteString(strconv.FormatBool(n.boolVal))
	case Int:
		es.buf.WriteString(strconv.FormatInt(n.intVal, 10))
	case Float:
		b, err := json.Marshal(n.floatVal)
		if err != nil {
			return fmt.Errorf("number %v: %w", n.floatVal, ErrInvalidInput)
		}
		es.buf.Write(b)
	case String:
		return es.writeString(n.strVal)
	case Container:
		if n.IsDense() {
			return es.writeArray(n)
		}
		return es.writeObject(n)
	}
	return nil
}

func (es *encodeState) writeArray(n *Node) error {
	es.buf.WriteByte('[')
	for i, k := range n.keys {
		if i > 0 {
			es.buf.WriteByte(',')
		}
		if err := es.writeNode(n.children[k]); err != nil {
			return err
		}
	}
	es.buf.WriteByte(']')
	return nil
}

func (es *encodeState) writeObject(n *Node) error {
	es.buf.WriteByte('{')
	for i, k := range n.keys {
		if i > 0 {
			es.buf.WriteByte(',')
		}
		if err := es.writeString(k); err != nil {
			return err
		}
		es.buf.WriteByte(':')
		if err := es.writeNode(n.children[k]); err != nil {
			return err
		}
	}
	es.buf.WriteByte('}')
	return nil
}

func (es *encodeState) writeString(s string) error {
	es.scratch.Reset()
	if err := es.strEnc.Encode(s); err != nil {
		return err
	}
	// Encoder.Encode appends a newline; drop it.
	es.buf.Write(bytes.TrimRight(es.scratch.Bytes(), "\n"))
	return nil
}
