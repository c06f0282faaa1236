package jsonplan_test

import (
	"errors"
	"testing"

	jsonplan "github.com/jsonplan/go-jsonplan"
	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/parse"
	"github.com/jsonplan/go-jsonplan/pointer"
)

func TestClone(t *testing.T) {
	doc := parse.MustParse([]byte(`{
		"templates": {"base": {"name": "base", "steps": [1, 2]}},
		"layers": []
	}`))
	res, err := jsonplan.Clone(doc, "/templates/base", "/layers/-", "layer-1")
	if err != nil {
		t.Fatal(err)
	}
	got, err := pointer.Get(res, pointer.MustParse("/layers/0"))
	if err != nil {
		t.Fatal(err)
	}
	want := parse.MustParse([]byte(`{"name": "layer-1", "steps": [1, 2]}`))
	if !ir.Equal(got, want) {
		t.Errorf("clone = %v, want %v", got, want)
	}
	// the template is untouched
	orig, _ := pointer.Get(res, pointer.MustParse("/templates/base/name"))
	if !ir.Equal(orig, ir.FromString("base")) {
		t.Errorf("template name = %v", orig)
	}
}

func TestCloneNoAliasing(t *testing.T) {
	doc := parse.MustParse([]byte(`{"tpl": {"steps": [1]}, "out": {}}`))
	if _, err := jsonplan.Clone(doc, "/tpl", "/out/copy", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := pointer.Replace(doc, pointer.MustParse("/out/copy/steps/0"), ir.FromInt(9)); err != nil {
		t.Fatal(err)
	}
	got, _ := pointer.Get(doc, pointer.MustParse("/tpl/steps/0"))
	if !ir.Equal(got, ir.FromInt(1)) {
		t.Error("mutating the clone changed the source")
	}
}

func TestCloneNameOverrideAppends(t *testing.T) {
	doc := parse.MustParse([]byte(`{"tpl": {"kind": "x"}}`))
	if _, err := jsonplan.Clone(doc, "/tpl", "/copy", "fresh"); err != nil {
		t.Fatal(err)
	}
	got, _ := pointer.Get(doc, pointer.MustParse("/copy/name"))
	if !ir.Equal(got, ir.FromString("fresh")) {
		t.Errorf("name = %v", got)
	}
}

func TestCloneScalarIgnoresName(t *testing.T) {
	doc := parse.MustParse([]byte(`{"v": 7}`))
	if _, err := jsonplan.Clone(doc, "/v", "/w", "ignored"); err != nil {
		t.Fatal(err)
	}
	got, _ := pointer.Get(doc, pointer.MustParse("/w"))
	if !ir.Equal(got, ir.FromInt(7)) {
		t.Errorf("w = %v", got)
	}
}

func TestCloneErrors(t *testing.T) {
	doc := parse.MustParse([]byte(`{"a": 1, "b": 2}`))
	if _, err := jsonplan.Clone(doc, "/missing", "/c", ""); !errors.Is(err, pointer.ErrNotFound) {
		t.Errorf("absent source error = %v, want ErrNotFound", err)
	}
	if _, err := jsonplan.Clone(doc, "/a", "/b", ""); !errors.Is(err, pointer.ErrTargetExists) {
		t.Errorf("populated target error = %v, want ErrTargetExists", err)
	}
	if _, err := jsonplan.Clone(doc, "bad", "/c", ""); !errors.Is(err, pointer.ErrMalformed) {
		t.Errorf("bad pointer error = %v, want ErrMalformed", err)
	}
}
