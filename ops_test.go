package fstdb

import (
	"errors"
	"testing"
)

func TestSetValueCoercion(t *testing.T) {
	db := openMem(t)
	ensure(db.SetValue("s", "text"))
	ensure(db.SetValue("b", true))
	ensure(db.SetValue("f", false))
	ensure(db.SetValue("n", nil))
	ensure(db.SetValue("i", 36))
	ensure(db.SetValue("fl", 2.5))

	getOK(t, db, "s", "text")
	getOK(t, db, "b", "true")
	getOK(t, db, "f", "false")
	getOK(t, db, "n", "null")
	getOK(t, db, "i", "36")
	getOK(t, db, "fl", "2.5")

	err := db.SetValue("x", struct{}{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("SetValue(struct): got %v, wanted validation error", err)
	}
}

func TestPushPull(t *testing.T) {
	db := openMem(t)
	ensure(db.Push("list", "a"))
	ensure(db.Push("list", "b"))
	ensure(db.Push("list", "a"))
	getOK(t, db, "list", `["a","b","a"]`)

	deepEq(t, must(db.Pull("list", "a")), true)
	getOK(t, db, "list", `["b"]`)
	deepEq(t, must(db.Pull("list", "a")), false)
	deepEq(t, must(db.Pull("missing", "a")), false)
}

func TestPushOverwritesNonArray(t *testing.T) {
	db := openMem(t)
	ensure(db.Set("k", "scalar"))
	ensure(db.Push("k", "item"))
	getOK(t, db, "k", `["item"]`)
}

func TestPushNestedKey(t *testing.T) {
	db := openMem(t)
	ensure(db.Push("user.tags", "go"))
	ensure(db.Push("user.tags", "db"))
	getOK(t, db, "user.tags", `["go","db"]`)
}

func TestArithmetic(t *testing.T) {
	db := openMem(t)
	deepEq(t, must(db.Add("n", 4)), 4.0) // missing key counts as 0
	deepEq(t, must(db.Add("n", 2)), 6.0)
	deepEq(t, must(db.Subtract("n", 1)), 5.0)
	deepEq(t, must(db.Multiply("n", 3)), 15.0)
	deepEq(t, must(db.Divide("n", 2)), 7.5)
	getOK(t, db, "n", "7.5")
}

func TestArithmeticErrors(t *testing.T) {
	db := openMem(t)
	var verr *ValidationError

	_, err := db.Divide("n", 0)
	if !errors.As(err, &verr) {
		t.Errorf("Divide by zero: got %v, wanted validation error", err)
	}

	ensure(db.Set("s", "not a number"))
	_, err = db.Add("s", 1)
	if !errors.As(err, &verr) {
		t.Errorf("Add to non-numeric: got %v, wanted validation error", err)
	}
	getOK(t, db, "s", "not a number")
}
