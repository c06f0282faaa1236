package pointer_test

import (
	"errors"
	"testing"

	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/parse"
	"github.com/jsonplan/go-jsonplan/pointer"
)

func doc(t *testing.T) *ir.Node {
	t.Helper()
	return parse.MustParse([]byte(`{
		"name": "base",
		"layers": [
			{"id": "l0", "ops": []},
			{"id": "l1", "ops": [1, 2, 3]}
		],
		"meta": {"a/b": "slash", "t~e": "tilde"}
	}`))
}

func TestGet(t *testing.T) {
	tests := []struct {
		ptr     string
		want    *ir.Node
		wantErr error
	}{
		{ptr: "/name", want: ir.FromString("base")},
		{ptr: "/layers/1/id", want: ir.FromString("l1")},
		{ptr: "/layers/1/ops/2", want: ir.FromInt(3)},
		{ptr: "/meta/a~1b", want: ir.FromString("slash")},
		{ptr: "/meta/t~0e", want: ir.FromString("tilde")},
		{ptr: "/missing", wantErr: pointer.ErrNotFound},
		{ptr: "/layers/5", wantErr: pointer.ErrIndexOutOfRange},
		{ptr: "/layers/-", wantErr: pointer.ErrInvalidToken},
		{ptr: "/layers/id", wantErr: pointer.ErrIndexOutOfRange},
		{ptr: "/layers/-1", wantErr: pointer.ErrIndexOutOfRange},
		{ptr: "/name/deeper", wantErr: pointer.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			got, err := pointer.Get(doc(t), pointer.MustParse(tt.ptr))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get(%q) error = %v, want %v", tt.ptr, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.ptr, err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("Get(%q) = %v, want %v", tt.ptr, got, tt.want)
			}
		})
	}
}

func TestGetRoot(t *testing.T) {
	d := doc(t)
	got, err := pointer.Get(d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Error("root Get did not return the document itself")
	}
}

func TestAddObject(t *testing.T) {
	d := doc(t)
	res, err := pointer.Add(d, pointer.MustParse("/extra"), ir.FromBool(true))
	if err != nil {
		t.Fatal(err)
	}
	if res != d {
		t.Error("Add did not return the document root")
	}
	// insertion lands at the end of the key order
	if got := d.Fields[len(d.Fields)-1].String; got != "extra" {
		t.Errorf("last key = %q, want %q", got, "extra")
	}
	// strict insert: the key now exists
	_, err = pointer.Add(d, pointer.MustParse("/extra"), ir.Null())
	if !errors.Is(err, pointer.ErrTargetExists) {
		t.Errorf("second Add error = %v, want ErrTargetExists", err)
	}
}

func TestAddArray(t *testing.T) {
	d := doc(t)
	ops := pointer.MustParse("/layers/1/ops")
	if _, err := pointer.Add(d, pointer.MustParse("/layers/1/ops/1"), ir.FromInt(99)); err != nil {
		t.Fatal(err)
	}
	if _, err := pointer.Add(d, pointer.MustParse("/layers/1/ops/-"), ir.FromInt(100)); err != nil {
		t.Fatal(err)
	}
	arr, err := pointer.Get(d, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 99, 2, 3, 100}
	for i, w := range want {
		if !ir.Equal(arr.Values[i], ir.FromInt(w)) {
			t.Errorf("ops[%d] = %v, want %d", i, arr.Values[i], w)
		}
	}
	// index == len is a valid append position, len+1 is not
	if _, err := pointer.Add(d, pointer.MustParse("/layers/1/ops/5"), ir.FromInt(101)); err != nil {
		t.Errorf("Add at len: %v", err)
	}
	_, err = pointer.Add(d, pointer.MustParse("/layers/1/ops/99"), ir.FromInt(102))
	if !errors.Is(err, pointer.ErrIndexOutOfRange) {
		t.Errorf("Add past len error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAddMissingParent(t *testing.T) {
	// the container of the final token must already exist, at any depth
	for _, ptr := range []string{"/b/c", "/x/y/z"} {
		d := parse.MustParse([]byte(`{"a": 1}`))
		_, err := pointer.Add(d, pointer.MustParse(ptr), ir.FromInt(7))
		if !errors.Is(err, pointer.ErrNotFound) {
			t.Errorf("Add(%s) error = %v, want ErrNotFound", ptr, err)
		}
		// and the failed Add never creates intermediate levels
		if want := parse.MustParse([]byte(`{"a": 1}`)); !ir.Equal(d, want) {
			t.Errorf("doc after failed Add(%s) = %v, want %v", ptr, d, want)
		}
	}

	d := parse.MustParse([]byte(`{"x": {"y": {}}}`))
	if _, err := pointer.Add(d, pointer.MustParse("/x/y/z"), ir.FromInt(7)); err != nil {
		t.Fatal(err)
	}
	got, err := pointer.Get(d, pointer.MustParse("/x/y/z"))
	if err != nil || !ir.Equal(got, ir.FromInt(7)) {
		t.Fatalf("Get(/x/y/z) = %v, %v", got, err)
	}
}

func TestAddRoot(t *testing.T) {
	d := doc(t)
	v := ir.FromString("whole")
	res, err := pointer.Add(d, nil, v)
	if err != nil {
		t.Fatal(err)
	}
	if res != v {
		t.Error("root Add did not return the new value as document")
	}
}

func TestReplace(t *testing.T) {
	d := doc(t)
	if _, err := pointer.Replace(d, pointer.MustParse("/name"), ir.FromString("v2")); err != nil {
		t.Fatal(err)
	}
	got, _ := pointer.Get(d, pointer.MustParse("/name"))
	if !ir.Equal(got, ir.FromString("v2")) {
		t.Errorf("name = %v", got)
	}
	if _, err := pointer.Replace(d, pointer.MustParse("/layers/1/ops/0"), ir.Null()); err != nil {
		t.Fatal(err)
	}

	_, err := pointer.Replace(d, pointer.MustParse("/absent"), ir.Null())
	if !errors.Is(err, pointer.ErrNotFound) {
		t.Errorf("Replace absent error = %v, want ErrNotFound", err)
	}
	_, err = pointer.Replace(d, pointer.MustParse("/layers/1/ops/3"), ir.Null())
	if !errors.Is(err, pointer.ErrIndexOutOfRange) {
		t.Errorf("Replace past end error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRemove(t *testing.T) {
	d := doc(t)
	if _, err := pointer.Remove(d, pointer.MustParse("/layers/1/ops/1")); err != nil {
		t.Fatal(err)
	}
	arr, _ := pointer.Get(d, pointer.MustParse("/layers/1/ops"))
	if len(arr.Values) != 2 || !ir.Equal(arr.Values[1], ir.FromInt(3)) {
		t.Errorf("ops after remove = %v", arr.Values)
	}
	if _, err := pointer.Remove(d, pointer.MustParse("/meta")); err != nil {
		t.Fatal(err)
	}
	if _, err := pointer.Get(d, pointer.MustParse("/meta")); !errors.Is(err, pointer.ErrNotFound) {
		t.Error("meta still resolves after remove")
	}

	_, err := pointer.Remove(d, nil)
	if !errors.Is(err, pointer.ErrRootRemoval) {
		t.Errorf("root Remove error = %v, want ErrRootRemoval", err)
	}
	_, err = pointer.Remove(d, pointer.MustParse("/absent"))
	if !errors.Is(err, pointer.ErrNotFound) {
		t.Errorf("Remove absent error = %v, want ErrNotFound", err)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	d := doc(t)
	want := doc(t)
	p := pointer.MustParse("/layers/0/ops/0")
	if _, err := pointer.Add(d, p, ir.FromString("tmp")); err != nil {
		t.Fatal(err)
	}
	if _, err := pointer.Remove(d, p); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(d, want) {
		t.Error("add then remove did not restore the document")
	}
}
