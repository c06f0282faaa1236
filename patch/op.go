package patch

import (
	"errors"
	"fmt"

	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/parse"
	"github.com/jsonplan/go-jsonplan/pointer"
)

// ErrMalformedOp reports a structurally invalid operation: unknown op
// name, missing required member, or a patch document that is not an array
// of objects.
var ErrMalformedOp = errors.New("malformed operation")

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
	OpMove    Op = "move"
	OpCopy    Op = "copy"
	OpTest    Op = "test"
)

// Operation is one decoded patch operation. RawPath and RawFrom keep the
// pointer spellings from the patch document for error reporting.
type Operation struct {
	Op      Op
	Path    pointer.Pointer
	From    pointer.Pointer
	RawPath string
	RawFrom string
	Value   *ir.Node
	// HasValue distinguishes an absent value member from an explicit
	// null; HasFrom distinguishes an absent from member from the root
	// pointer.
	HasValue bool
	HasFrom  bool
}

func (o *Operation) String() string {
	switch o.Op {
	case OpMove, OpCopy:
		return fmt.Sprintf("%s %s -> %s", o.Op, o.RawFrom, o.RawPath)
	default:
		return fmt.Sprintf("%s %s", o.Op, o.RawPath)
	}
}

// Decode reads a patch document, an array of operation objects, from an
// ir.Node tree.
func Decode(node *ir.Node) ([]*Operation, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: patch document is %s, not an array", ErrMalformedOp, node.Type)
	}
	res := make([]*Operation, 0, len(node.Values))
	for i, v := range node.Values {
		op, err := decodeOp(v)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		res = append(res, op)
	}
	return res, nil
}

// DecodeBytes parses JSON patch text and decodes it.
func DecodeBytes(d []byte, opts ...parse.ParseOption) ([]*Operation, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return Decode(node)
}

func decodeOp(node *ir.Node) (*Operation, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: operation is %s, not an object", ErrMalformedOp, node.Type)
	}
	res := &Operation{}
	for i, f := range node.Fields {
		val := node.Values[i]
		switch f.String {
		case "op":
			if val.Type != ir.StringType {
				return nil, fmt.Errorf("%w: op member is %s", ErrMalformedOp, val.Type)
			}
			res.Op = Op(val.String)
		case "path":
			if val.Type != ir.StringType {
				return nil, fmt.Errorf("%w: path member is %s", ErrMalformedOp, val.Type)
			}
			res.RawPath = val.String
			p, err := pointer.Parse(val.String)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedOp, err)
			}
			res.Path = p
		case "from":
			if val.Type != ir.StringType {
				return nil, fmt.Errorf("%w: from member is %s", ErrMalformedOp, val.Type)
			}
			res.RawFrom = val.String
			p, err := pointer.Parse(val.String)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedOp, err)
			}
			res.From = p
			res.HasFrom = true
		case "value":
			res.Value = val
			res.HasValue = true
		default:
			// RFC 6902 ignores unrecognized members
		}
	}
	if err := res.validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// validate checks the member set required for o's op kind.
func (o *Operation) validate() error {
	switch o.Op {
	case "":
		return fmt.Errorf("%w: missing op member", ErrMalformedOp)
	case OpAdd, OpReplace, OpTest:
		if !o.HasValue {
			return fmt.Errorf("%w: %s requires a value member", ErrMalformedOp, o.Op)
		}
	case OpMove, OpCopy:
		if !o.HasFrom {
			return fmt.Errorf("%w: %s requires a from member", ErrMalformedOp, o.Op)
		}
	case OpRemove:
	default:
		return fmt.Errorf("%w: unknown op %q", ErrMalformedOp, o.Op)
	}
	return nil
}
