package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsonplan/go-jsonplan/format"
	"github.com/jsonplan/go-jsonplan/ir"
)

func TestParseKeyOrder(t *testing.T) {
	doc := `{"zeta": 1, "alpha": {"b": true, "a": null}, "mid": [1, 2]}`
	n, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, f := range n.Fields {
		keys = append(keys, f.String)
	}
	if got, want := strings.Join(keys, ","), "zeta,alpha,mid"; got != want {
		t.Errorf("top-level keys = %s, want %s", got, want)
	}
	inner := ir.Get(n, "alpha")
	if got, want := inner.Fields[0].String+","+inner.Fields[1].String, "b,a"; got != want {
		t.Errorf("nested keys = %s, want %s", got, want)
	}
}

func TestParseNumbers(t *testing.T) {
	n, err := Parse([]byte(`[0, -3, 1.50, 1e3, 9223372036854775807]`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		raw     string
		integer bool
	}{
		{"0", true},
		{"-3", true},
		{"1.50", false},
		{"1e3", false},
		{"9223372036854775807", true},
	}
	for i, tt := range tests {
		v := n.Values[i]
		if v.Number != tt.raw {
			t.Errorf("Values[%d].Number = %q, want %q", i, v.Number, tt.raw)
		}
		if got := v.Int64 != nil; got != tt.integer {
			t.Errorf("Values[%d] integer = %v, want %v", i, got, tt.integer)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"truncated", `{"a": `},
		{"trailing", `{} {}`},
		{"duplicate key", `{"a": 1, "a": 2}`},
		{"bare delim", `}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", tt.doc, err)
			}
		})
	}
}

func TestParseYAMLFormat(t *testing.T) {
	doc := `
zeta: 1
alpha:
  - x
  - true
null_field:
`
	n, err := Parse([]byte(doc), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(n.Fields), 3; got != want {
		t.Fatalf("fields = %d, want %d", got, want)
	}
	if n.Fields[0].String != "zeta" || n.Fields[1].String != "alpha" {
		t.Errorf("key order = %s, %s", n.Fields[0].String, n.Fields[1].String)
	}
	arr := ir.Get(n, "alpha")
	if arr.Type != ir.ArrayType || len(arr.Values) != 2 {
		t.Fatalf("alpha = %v", arr)
	}
	if !ir.Equal(arr.Values[1], ir.FromBool(true)) {
		t.Errorf("alpha[1] = %v", arr.Values[1])
	}
	if ir.Get(n, "null_field").Type != ir.NullType {
		t.Errorf("null_field type = %v", ir.Get(n, "null_field").Type)
	}
}

func TestParseScalarRoots(t *testing.T) {
	for _, doc := range []string{`"s"`, `0`, `true`, `null`} {
		if _, err := Parse([]byte(doc)); err != nil {
			t.Errorf("Parse(%q) error = %v", doc, err)
		}
	}
}
