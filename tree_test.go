package fstdb

import "testing"

func TestSplitPath(t *testing.T) {
	for _, test := range []struct {
		key  string
		segs []string
	}{
		{"a.b", []string{"a", "b"}},
		{"a..b", []string{"a", "b"}},
		{".a.b.", []string{"a", "b"}},
		{"...", []string{}},
		{"single", []string{"single"}},
	} {
		deepEq(t, splitPath(test.key), test.segs)
	}
}

func TestSetPathCoercesIntermediates(t *testing.T) {
	root := objectValue()
	deepEq(t, setPath(root, []string{"a"}, "leaf"), true)
	deepEq(t, root.obj["a"].kind, kindString)

	// Writing through the string leaf bulldozes it into an object.
	deepEq(t, setPath(root, []string{"a", "b"}, "deep"), true)
	deepEq(t, root.obj["a"].kind, kindObject)
	v, ok := getPath(root, []string{"a", "b"})
	deepEq(t, ok, true)
	deepEq(t, v, "deep")
}

func TestSetPathCoercesRoot(t *testing.T) {
	root := stringValue("scalar")
	deepEq(t, setPath(root, []string{"k"}, "v"), true)
	deepEq(t, root.kind, kindObject)

	deepEq(t, setPath(root, nil, "v"), false)
}

func TestGetPathAbsentCases(t *testing.T) {
	root := objectValue()
	setPath(root, []string{"a", "b"}, "x")

	for _, path := range [][]string{
		nil,
		{"missing"},
		{"a", "missing"},
		{"a", "b", "too", "deep"},
	} {
		if v, ok := getPath(root, path); ok {
			t.Errorf("getPath(%v) = %q, wanted absent", path, v)
		}
		deepEq(t, hasPath(root, path), false)
	}

	_, ok := getPath(stringValue("s"), []string{"a"})
	deepEq(t, ok, false)
	_, ok = getPath(nil, []string{"a"})
	deepEq(t, ok, false)
}

func TestGetPathSerializesContainers(t *testing.T) {
	root := objectValue()
	setPath(root, []string{"obj", "inner"}, "x")
	v, ok := getPath(root, []string{"obj"})
	deepEq(t, ok, true)
	deepEq(t, v, `{"inner":"x"}`)
}

func TestDeletePath(t *testing.T) {
	root := objectValue()
	setPath(root, []string{"a", "b"}, "x")
	setPath(root, []string{"a", "c"}, "y")

	deepEq(t, deletePath(root, []string{"a", "b"}), true)
	deepEq(t, deletePath(root, []string{"a", "b"}), false)
	deepEq(t, hasPath(root, []string{"a", "c"}), true)
	deepEq(t, hasPath(root, []string{"a"}), true)

	deepEq(t, deletePath(root, nil), false)
	deepEq(t, deletePath(root, []string{"missing", "b"}), false)
	deepEq(t, deletePath(nil, []string{"a"}), false)
	deepEq(t, deletePath(stringValue("s"), []string{"a"}), false)
}

func TestHasPath(t *testing.T) {
	root := objectValue()
	setPath(root, []string{"a", "b"}, "x")
	deepEq(t, hasPath(root, []string{"a"}), true)
	deepEq(t, hasPath(root, []string{"a", "b"}), true)
	deepEq(t, hasPath(root, []string{"a", "b", "c"}), false)
	deepEq(t, hasPath(nil, []string{"a"}), false)
}
