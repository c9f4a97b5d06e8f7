package fstdb

import "strings"

// The hierarchical side of the store is a single tree of tagged values.
// Dot-separated keys address object keys inside it; the tree as a whole
// serializes to a compact JSON-like text (encjson.go) so it can ride in
// one snapshot entry.

type valueKind uint8

const (
	kindNull valueKind = iota
	kindString
	kindNumber
	kindBool
	kindObject
	kindArray
)

type treeValue struct {
	kind valueKind
	str  string
	num  float64
	boo  bool
	obj  map[string]*treeValue
	arr  []*treeValue
}

func nullValue() *treeValue           { return &treeValue{kind: kindNull} }
func stringValue(s string) *treeValue { return &treeValue{kind: kindString, str: s} }
func numberValue(n float64) *treeValue {
	return &treeValue{kind: kindNumber, num: n}
}
func boolValue(b bool) *treeValue { return &treeValue{kind: kindBool, boo: b} }
func objectValue() *treeValue {
	return &treeValue{kind: kindObject, obj: make(map[string]*treeValue)}
}
func arrayValue(items []*treeValue) *treeValue {
	return &treeValue{kind: kindArray, arr: items}
}

// coerceObject forcibly turns v into an empty object unless it already
// is one, discarding any previous content. Path writes rely on this to
// create (or bulldoze) intermediate nodes.
func (v *treeValue) coerceObject() {
	if v.kind != kindObject {
		*v = treeValue{kind: kindObject, obj: make(map[string]*treeValue)}
	}
}

// splitPath splits a dotted key into segments, silently discarding
// empty ones, so "a..b" and ".a.b." both normalize to ["a" "b"].
func splitPath(key string) []string {
	parts := strings.Split(key, ".")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// setPath stores value (always as a string leaf) at the given path,
// coercing the root and every intermediate node to an object as needed.
func setPath(root *treeValue, path []string, value string) bool {
	if len(path) == 0 {
		return false
	}
	root.coerceObject()
	cur := root
	for _, seg := range path[:len(path)-1] {
		child := cur.obj[seg]
		if child == nil || child.kind != kindObject {
			child = objectValue()
			cur.obj[seg] = child
		}
		cur = child
	}
	cur.obj[path[len(path)-1]] = stringValue(value)
	return true
}

// getPath resolves a path. Missing keys and wrong-shaped intermediates
// both come back as absent; callers cannot tell the two apart. A string
// leaf yields its literal text, any other node yields its serialized
// form.
func getPath(root *treeValue, path []string) (string, bool) {
	cur := root
	if cur == nil || len(path) == 0 || cur.kind != kindObject {
		return "", false
	}
	for _, seg := range path {
		if cur.kind != kindObject {
			return "", false
		}
		child := cur.obj[seg]
		if child == nil {
			return "", false
		}
		cur = child
	}
	if cur.kind == kindString {
		return cur.str, true
	}
	return stringifyTree(cur), true
}

// deletePath removes the final segment's entry from its immediate
// parent object, reporting whether anything was removed.
func deletePath(root *treeValue, path []string) bool {
	cur := root
	if cur == nil || len(path) == 0 || cur.kind != kindObject {
		return false
	}
	for _, seg := range path[:len(path)-1] {
		if cur.kind != kindObject {
			return false
		}
		child := cur.obj[seg]
		if child == nil {
			return false
		}
		cur = child
	}
	if cur.kind != kindObject {
		return false
	}
	last := path[len(path)-1]
	if _, ok := cur.obj[last]; !ok {
		return false
	}
	delete(cur.obj, last)
	return true
}

func hasPath(root *treeValue, path []string) bool {
	cur := root
	if cur == nil || len(path) == 0 || cur.kind != kindObject {
		return false
	}
	for _, seg := range path {
		if cur.kind != kindObject {
			return false
		}
		child := cur.obj[seg]
		if child == nil {
			return false
		}
		cur = child
	}
	return true
}
