package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst and returns dst. The copy shares no
// mutable state with y.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	} else {
		dst.Fields = nil
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	} else {
		dst.Values = nil
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	} else {
		dst.Float64 = nil
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	} else {
		dst.Int64 = nil
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node with keys in sorted order. Use FromKeyVals
// when insertion order matters.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(yMap))
	res.Fields = make([]*Node, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = ySlice
	return res
}

// Get returns the value of field in an object node, or nil if absent.
func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the index of field in an object node, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// SetField replaces the value at field if present, preserving key position,
// and appends a new field otherwise.
func (y *Node) SetField(field string, val *Node) {
	if i := y.FieldIndex(field); i >= 0 {
		y.Values[i] = val
		return
	}
	y.AppendField(field, val)
}

func (y *Node) AppendField(field string, val *Node) {
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

func (y *Node) RemoveFieldAt(i int) {
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
}

// InsertValueAt inserts val at index i of an array node, shifting
// subsequent elements right. i == len appends.
func (y *Node) InsertValueAt(i int, val *Node) {
	y.Values = slices.Insert(y.Values, i, val)
}

// RemoveValueAt removes the element at index i of an array node, shifting
// subsequent elements left.
func (y *Node) RemoveValueAt(i int) {
	y.Values = slices.Delete(y.Values, i, i+1)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
