package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/jsonplan/go-jsonplan/ir"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	n, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", x)
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v", item.Key)
			}
			if res.FieldIndex(key) >= 0 {
				return nil, fmt.Errorf("duplicate key %q", key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.AppendField(key, val)
		}
		return res, nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType}
		for _, item := range x {
			val, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, val)
		}
		return res, nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}
