package fstdb

// ExportJSON renders the whole store as one JSON object: flat entries
// under their own keys, tree leaves under their dotted keys. Non-string
// tree leaves export as their serialized text, matching what Get would
// return for them.
func (db *DB) ExportJSON() string {
	obj := objectValue()
	for k, v := range db.entries {
		obj.obj[k] = stringValue(v)
	}
	if db.root != nil && db.root.kind == kindObject {
		flattenInto(obj, "", db.root)
	}
	return stringifyTree(obj)
}

func flattenInto(out *treeValue, prefix string, node *treeValue) {
	for k, child := range node.obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child != nil && child.kind == kindObject {
			flattenInto(out, key, child)
			continue
		}
		if child != nil && child.kind == kindString {
			out.obj[key] = stringValue(child.str)
		} else {
			out.obj[key] = stringValue(stringifyTree(child))
		}
	}
}

// ImportJSON writes every member of a JSON object into the store
// through Set, expanding nested objects into dotted keys. Returns a
// validation error when text is not a JSON object; individual writes
// stop at the first error.
func (db *DB) ImportJSON(text string) error {
	v := parseTree(text)
	if v.kind != kindObject {
		return validationErrf("", "import expects a JSON object")
	}
	return db.importObject("", v)
}

func (db *DB) importObject(prefix string, node *treeValue) error {
	for k, child := range node.obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		var err error
		switch {
		case child == nil || child.kind == kindNull:
			err = db.Set(key, "null")
		case child.kind == kindObject:
			err = db.importObject(key, child)
		case child.kind == kindString:
			err = db.Set(key, child.str)
		case child.kind == kindNumber:
			err = db.Set(key, formatNumber(child.num))
		case child.kind == kindBool:
			if child.boo {
				err = db.Set(key, "true")
			} else {
				err = db.Set(key, "false")
			}
		default:
			err = db.Set(key, stringifyTree(child))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
