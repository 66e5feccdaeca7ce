package jsondot

import (
	"fmt"
	"strings"
)

// An Option configures a Document at construction or exchange time.
type Option func(*Document) error

// Delimiter returns an Option that sets the key separator used when
// splitting paths. The default is ".".
//
// The delimiter must be non-empty and must not contain a backslash,
// which is reserved for escaping the delimiter inside keys.
func Delimiter(s string) Option {
	return func(d *Document) error {
		if s == "" {
			return fmt.Errorf("jsondot: delimiter cannot be empty")
		}
		if strings.Contains(s, `\`) {
			return fmt.Errorf("jsondot: delimiter cannot contain a backslash")
		}
		d.delimiter = s
		return nil
	}
}

// RawStrings returns an Option that makes the constructor store string
// input as a literal string scalar instead of parsing it as JSON text.
func RawStrings() Option {
	return func(d *Document) error {
		d.rawStrings = true
		return nil
	}
}

// DecodeStrings returns an Option that makes Set and Push attempt to
// parse every string value as JSON first, storing the decoded value
// when the parse succeeds and falling back to the literal string when
// it does not. The decode wins whenever the parse succeeds, so the
// string "5" stores the number 5.
func DecodeStrings() Option {
	return func(d *Document) error {
		d.decodeStrings = true
		return nil
	}
}

// An EncodeOption configures JSON serialization.
type EncodeOption func(*encodeOptions) error

type encodeOptions struct {
	indent     string
	escapeHTML bool
}

// Indent returns an EncodeOption that pretty-prints with n spaces per
// nesting level. Zero produces compact output.
func Indent(n int) EncodeOption {
	return func(o *encodeOptions) error {
		if n < 0 {
			return fmt.Errorf("jsondot: indent spaces cannot be negative")
		}
		o.indent = strings.Repeat(" ", n)
		return nil
	}
}

// EscapeHTML returns an EncodeOption that controls escaping of <, >
// and & inside strings. The default is true, matching encoding/json.
func EscapeHTML(on bool) EncodeOption {
	return func(o *encodeOptions) error {
		o.escapeHTML = on
		return nil
	}
}
