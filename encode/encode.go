package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsonplan/go-jsonplan/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	sortKeys      bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent == 0 {
		es.indent = 2
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		lit, err := numberLiteral(node)
		if err != nil {
			return err
		}
		return writeValue(w, es, node.Type, lit)
	case ir.StringType:
		return writeValue(w, es, node.Type, quoteJSON(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	order := make([]int, len(node.Fields))
	for i := range order {
		order[i] = i
	}
	if es.sortKeys {
		slices.SortFunc(order, func(a, b int) int {
			return ir.Compare(node.Fields[a], node.Fields[b])
		})
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, j := range order {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := quoteJSON(node.Fields[j].String)
		if es.Color != nil {
			key = es.Color(ir.ObjectType, FieldColor, key)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, colon(es)); err != nil {
			return err
		}
		if err := encode(node.Values[j], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// numberLiteral prefers the raw spelling recorded at parse time.
func numberLiteral(node *ir.Node) (string, error) {
	if node.Number != "" {
		return node.Number, nil
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 == nil {
		return "0", nil
	}
	f := *node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no JSON representation", ErrEncoding, f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// quoteJSON escapes only what JSON requires, leaving non-ASCII text as
// UTF-8.
func quoteJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case utf8.RuneError:
			b.WriteString(`�`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func colon(es *EncState) string {
	if es.indent < 0 {
		return ":"
	}
	return ": "
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent < 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
