package fstdb

import (
	"errors"
	"testing"
)

func TestExportJSON(t *testing.T) {
	db := openMem(t)
	ensure(db.Set("flat", "value"))
	ensure(db.Set("user.name", "Ada"))
	ensure(db.Set("user.address.city", "London"))

	got := parseTree(db.ExportJSON())
	deepEq(t, got.kind, kindObject)
	want := map[string]*treeValue{
		"flat":              stringValue("value"),
		"user.name":         stringValue("Ada"),
		"user.address.city": stringValue("London"),
	}
	deepEq(t, got.obj, want)
}

func TestExportEmpty(t *testing.T) {
	db := openMem(t)
	deepEq(t, db.ExportJSON(), "{}")
}

func TestImportJSON(t *testing.T) {
	db := openMem(t)
	ensure(db.ImportJSON(`{
		"a": "x",
		"user": {"name": "Ada", "age": 36},
		"flag": true,
		"none": null,
		"list": [1, 2]
	}`))

	getOK(t, db, "a", "x")
	getOK(t, db, "user.name", "Ada")
	getOK(t, db, "user.age", "36")
	getOK(t, db, "flag", "true")
	getOK(t, db, "none", "null")
	getOK(t, db, "list", "[1,2]")
}

func TestImportRejectsNonObject(t *testing.T) {
	db := openMem(t)
	var verr *ValidationError
	for _, text := range []string{`[1]`, `"s"`, `42`, `garbage`} {
		err := db.ImportJSON(text)
		if !errors.As(err, &verr) {
			t.Errorf("ImportJSON(%q): got %v, wanted validation error", text, err)
		}
	}
	deepEq(t, db.Size(), 0)
}

func TestExportImportRoundTrip(t *testing.T) {
	db := openMem(t)
	ensure(db.Set("flat", "v"))
	ensure(db.Set("a.b.c", "deep"))
	exported := db.ExportJSON()

	db2 := openMem(t)
	ensure(db2.ImportJSON(exported))
	getOK(t, db2, "flat", "v")
	getOK(t, db2, "a.b.c", "deep")
}
