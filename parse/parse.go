package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jsonplan/go-jsonplan/ir"
)

// ErrParse wraps every error returned by Parse.
var ErrParse = errors.New("parse error")

// Parse decodes d into an ir.Node tree. The input is JSON unless a
// ParseOption selects another format. Object key order is preserved and
// duplicate keys are an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts()
	for _, opt := range opts {
		opt(pOpts)
	}
	if pOpts.format.IsYAML() {
		return parseYAML(d)
	}
	return parseJSON(d)
}

// MustParse is Parse for inputs known to be well formed; it panics on
// error.
func MustParse(d []byte, opts ...ParseOption) *ir.Node {
	n, err := Parse(d, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	n, err := parseValue(dec)
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return n, nil
}

func parseValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q", t.String())
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(t)
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// parseObject consumes tokens after the opening '{' through the matching
// '}'.
func parseObject(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		if res.FieldIndex(key) >= 0 {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		res.AppendField(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func parseArray(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

// numberNode keeps the raw literal and classifies it as integral or
// floating.
func numberNode(num json.Number) (*ir.Node, error) {
	raw := string(num)
	n := &ir.Node{Type: ir.NumberType, Number: raw}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		n.Int64 = &i
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number literal %q", raw)
	}
	n.Float64 = &f
	return n, nil
}
