package jsonplan

import (
	"fmt"

	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/pointer"
)

// Clone deep-copies the fragment at fromPtr and inserts the copy at
// toPtr, returning the document root. When overrideName is non-empty and
// the copy is an object, its "name" field is set to overrideName,
// replacing an existing one in place or appending. Insertion follows
// pointer.Add semantics: cloning onto a populated object key fails with
// pointer.ErrTargetExists, cloning into an array inserts or appends.
func Clone(doc *ir.Node, fromPtr, toPtr string, overrideName string) (*ir.Node, error) {
	from, err := pointer.Parse(fromPtr)
	if err != nil {
		return nil, fmt.Errorf("from pointer: %w", err)
	}
	to, err := pointer.Parse(toPtr)
	if err != nil {
		return nil, fmt.Errorf("to pointer: %w", err)
	}
	src, err := pointer.Get(doc, from)
	if err != nil {
		return nil, err
	}
	cp := src.Clone()
	if overrideName != "" && cp.Type == ir.ObjectType {
		cp.SetField("name", ir.FromString(overrideName))
	}
	return pointer.Add(doc, to, cp)
}
