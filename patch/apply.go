package patch

import (
	"errors"
	"fmt"

	"github.com/jsonplan/go-jsonplan/debug"
	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/pointer"
)

// ErrTestFailed matches every TestFailedError.
var ErrTestFailed = errors.New("test failed")

// TestFailedError reports a test operation whose expected value did not
// match the document.
type TestFailedError struct {
	Path     string
	Expected *ir.Node
	Actual   *ir.Node
}

func (e *TestFailedError) Error() string {
	return fmt.Sprintf("test failed at %q: expected %s, got %s",
		e.Path, encode.MustString(e.Expected, encode.Indent(-1)),
		encode.MustString(e.Actual, encode.Indent(-1)))
}

func (e *TestFailedError) Is(target error) bool {
	return target == ErrTestFailed
}

type applyOpts struct {
	upsert bool
}

type ApplyOption func(*applyOpts)

// Upsert makes object add overwrite existing keys instead of failing,
// the RFC 6902 reading. Move and copy insert through the same path and
// follow the option.
func Upsert(v bool) ApplyOption {
	return func(o *applyOpts) { o.upsert = v }
}

// Apply executes ops against doc in order and returns the resulting
// document root, which differs from doc only when an operation targets
// the root pointer. doc is mutated in place; on error the mutations of
// already executed operations remain.
//
// Every operation is validated before the first one executes, so a
// structurally malformed patch never mutates the document.
func Apply(doc *ir.Node, ops []*Operation, opts ...ApplyOption) (*ir.Node, error) {
	aOpts := &applyOpts{}
	for _, opt := range opts {
		opt(aOpts)
	}
	for i, op := range ops {
		if err := op.validate(); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}
	for i, op := range ops {
		if debug.Patch() {
			debug.Logf("patch: op %d: %s\n", i, op)
		}
		next, err := applyOne(doc, op, aOpts)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op, err)
		}
		doc = next
		if debug.Patches() {
			debug.Logf("patch: doc after op %d:\n%v\n", i, doc)
		}
	}
	return doc, nil
}

func applyOne(doc *ir.Node, op *Operation, aOpts *applyOpts) (*ir.Node, error) {
	switch op.Op {
	case OpAdd:
		return addValue(doc, op.Path, op.Value.Clone(), aOpts)
	case OpRemove:
		return pointer.Remove(doc, op.Path)
	case OpReplace:
		return pointer.Replace(doc, op.Path, op.Value.Clone())
	case OpMove:
		moved, err := pointer.Get(doc, op.From)
		if err != nil {
			return nil, err
		}
		doc, err = pointer.Remove(doc, op.From)
		if err != nil {
			return nil, err
		}
		return addValue(doc, op.Path, moved, aOpts)
	case OpCopy:
		src, err := pointer.Get(doc, op.From)
		if err != nil {
			return nil, err
		}
		return addValue(doc, op.Path, src.Clone(), aOpts)
	case OpTest:
		actual, err := pointer.Get(doc, op.Path)
		if err != nil {
			return nil, err
		}
		if !ir.Equal(actual, op.Value) {
			return nil, &TestFailedError{
				Path:     op.RawPath,
				Expected: op.Value,
				Actual:   actual,
			}
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrMalformedOp, op.Op)
}

// addValue is pointer.Add with the upsert fallback to Replace.
func addValue(doc *ir.Node, p pointer.Pointer, value *ir.Node, aOpts *applyOpts) (*ir.Node, error) {
	res, err := pointer.Add(doc, p, value)
	if err == nil {
		return res, nil
	}
	if aOpts.upsert && errors.Is(err, pointer.ErrTargetExists) {
		return pointer.Replace(doc, p, value)
	}
	return nil, err
}
