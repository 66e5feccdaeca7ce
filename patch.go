package jsondot

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/jsondot/jsondot/internal/node"
)

// Merge applies an RFC 7396 JSON merge patch to the Document. The
// patch must be well-formed JSON; nulls in the patch remove the
// corresponding keys. The result replaces the canonical value in
// place, keeping the Document's configuration.
func (d *Document) Merge(patch []byte) error {
	doc, err := d.JSON()
	if err != nil {
		return fmt.Errorf("jsondot: merge: %w", err)
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return fmt.Errorf("jsondot: merge: %w: %w", ErrMalformedDocument, err)
	}
	return d.reparse(merged)
}

// Patch applies an RFC 6902 JSON patch (an array of operations) to the
// Document.
func (d *Document) Patch(ops []byte) error {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return fmt.Errorf("jsondot: patch: %w: %w", ErrMalformedDocument, err)
	}
	doc, err := d.JSON()
	if err != nil {
		return fmt.Errorf("jsondot: patch: %w", err)
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("jsondot: patch: %w", err)
	}
	return d.reparse(patched)
}

// reparse installs the outcome of a patch as the new canonical value.
// The representation tag survives; only the data changes.
func (d *Document) reparse(data []byte) error {
	n, err := node.Parse(data)
	if err != nil {
		return err
	}
	rep := d.rep
	if !n.IsContainer() {
		if err := d.initWrapped(n, rep); err != nil {
			return err
		}
		return nil
	}
	d.root = n
	d.wrapped = false
	return nil
}
