package pointer

import (
	"fmt"
	"strconv"

	"github.com/jsonplan/go-jsonplan/debug"
	"github.com/jsonplan/go-jsonplan/ir"
)

// Get navigates doc along p and returns the addressed fragment. The "-"
// token is never valid for Get.
func Get(doc *ir.Node, p Pointer) (*ir.Node, error) {
	cur := doc
	for _, tok := range p {
		switch cur.Type {
		case ir.ObjectType:
			i := cur.FieldIndex(tok)
			if i < 0 {
				return nil, fmt.Errorf("%w: key %q in %q", ErrNotFound, tok, p)
			}
			cur = cur.Values[i]
		case ir.ArrayType:
			i, err := arrayIndex(tok, p)
			if err != nil {
				return nil, err
			}
			if i >= len(cur.Values) {
				return nil, fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, i, len(cur.Values), p)
			}
			cur = cur.Values[i]
		default:
			return nil, fmt.Errorf("%w: cannot traverse %s at %q in %q", ErrTypeMismatch, cur.Type, tok, p)
		}
	}
	return cur, nil
}

// Add inserts value at p and returns the document root, which is value
// itself when p is the root pointer. The container of p's final token
// must already exist. Object insertion is strict: an existing key fails
// with ErrTargetExists. Array insertion accepts indices in [0, len] and
// the "-" append token.
func Add(doc *ir.Node, p Pointer, value *ir.Node) (*ir.Node, error) {
	if debug.Pointer() {
		debug.Logf("pointer: add %q\n", p)
	}
	if p.IsRoot() {
		return value, nil
	}
	parent, err := resolveParent(doc, p)
	if err != nil {
		return nil, err
	}
	_, last := p.Parent()
	switch parent.Type {
	case ir.ObjectType:
		if parent.FieldIndex(last) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrTargetExists, p)
		}
		parent.AppendField(last, value)
	case ir.ArrayType:
		if last == "-" {
			parent.InsertValueAt(len(parent.Values), value)
			break
		}
		i, err := arrayIndex(last, p)
		if err != nil {
			return nil, err
		}
		if i > len(parent.Values) {
			return nil, fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, i, len(parent.Values), p)
		}
		parent.InsertValueAt(i, value)
	default:
		return nil, fmt.Errorf("%w: cannot add under %s at %q", ErrTypeMismatch, parent.Type, p)
	}
	return doc, nil
}

// Replace overwrites the value at p, which must already resolve, and
// returns the document root (value itself for the root pointer).
func Replace(doc *ir.Node, p Pointer, value *ir.Node) (*ir.Node, error) {
	if debug.Pointer() {
		debug.Logf("pointer: replace %q\n", p)
	}
	if p.IsRoot() {
		return value, nil
	}
	parent, err := resolveParent(doc, p)
	if err != nil {
		return nil, err
	}
	_, last := p.Parent()
	switch parent.Type {
	case ir.ObjectType:
		i := parent.FieldIndex(last)
		if i < 0 {
			return nil, fmt.Errorf("%w: replace target %q", ErrNotFound, p)
		}
		parent.Values[i] = value
	case ir.ArrayType:
		i, err := arrayIndex(last, p)
		if err != nil {
			return nil, err
		}
		if i >= len(parent.Values) {
			return nil, fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, i, len(parent.Values), p)
		}
		parent.Values[i] = value
	default:
		return nil, fmt.Errorf("%w: cannot replace under %s at %q", ErrTypeMismatch, parent.Type, p)
	}
	return doc, nil
}

// Remove deletes the value at p and returns the document root. The root
// itself cannot be removed.
func Remove(doc *ir.Node, p Pointer) (*ir.Node, error) {
	if debug.Pointer() {
		debug.Logf("pointer: remove %q\n", p)
	}
	if p.IsRoot() {
		return nil, ErrRootRemoval
	}
	parent, err := resolveParent(doc, p)
	if err != nil {
		return nil, err
	}
	_, last := p.Parent()
	switch parent.Type {
	case ir.ObjectType:
		i := parent.FieldIndex(last)
		if i < 0 {
			return nil, fmt.Errorf("%w: remove target %q", ErrNotFound, p)
		}
		parent.RemoveFieldAt(i)
	case ir.ArrayType:
		i, err := arrayIndex(last, p)
		if err != nil {
			return nil, err
		}
		if i >= len(parent.Values) {
			return nil, fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, i, len(parent.Values), p)
		}
		parent.RemoveValueAt(i)
	default:
		return nil, fmt.Errorf("%w: cannot remove under %s at %q", ErrTypeMismatch, parent.Type, p)
	}
	return doc, nil
}

// resolveParent walks to the container of p's final token. The container
// and everything above it must already exist: a missing level is never
// created, so a failed resolution leaves the document untouched.
func resolveParent(doc *ir.Node, p Pointer) (*ir.Node, error) {
	toks, _ := p.Parent()
	cur := doc
	for _, tok := range toks {
		switch cur.Type {
		case ir.ObjectType:
			j := cur.FieldIndex(tok)
			if j < 0 {
				return nil, fmt.Errorf("%w: key %q in %q", ErrNotFound, tok, p)
			}
			cur = cur.Values[j]
		case ir.ArrayType:
			j, err := arrayIndex(tok, p)
			if err != nil {
				return nil, err
			}
			if j >= len(cur.Values) {
				return nil, fmt.Errorf("%w: index %d (len %d) in %q", ErrIndexOutOfRange, j, len(cur.Values), p)
			}
			cur = cur.Values[j]
		default:
			return nil, fmt.Errorf("%w: cannot traverse %s at %q in %q", ErrTypeMismatch, cur.Type, tok, p)
		}
	}
	return cur, nil
}

func arrayIndex(tok string, p Pointer) (int, error) {
	if tok == "-" {
		return 0, fmt.Errorf("%w: %q is only valid as an add target, in %q", ErrInvalidToken, tok, p)
	}
	i, err := strconv.Atoi(tok)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: bad array index %q in %q", ErrIndexOutOfRange, tok, p)
	}
	return i, nil
}
