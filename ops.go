package fstdb

import "strconv"

// Convenience operations expressed purely in terms of the core
// primitives plus string conversions. Nothing here touches the snapshot
// machinery directly, so dotted keys work throughout.

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// SetValue coerces value to its canonical text form and stores it.
// The store is string-typed throughout; numbers render in their
// shortest decimal form, booleans and nil as JSON literals.
func (db *DB) SetValue(key string, value any) error {
	switch v := value.(type) {
	case string:
		return db.Set(key, v)
	case bool:
		if v {
			return db.Set(key, "true")
		}
		return db.Set(key, "false")
	case nil:
		return db.Set(key, "null")
	case float64:
		return db.Set(key, formatNumber(v))
	case float32:
		return db.Set(key, formatNumber(float64(v)))
	case int:
		return db.Set(key, formatNumber(float64(v)))
	case int64:
		return db.Set(key, formatNumber(float64(v)))
	case uint64:
		return db.Set(key, formatNumber(float64(v)))
	default:
		return validationErrf(key, "unsupported value type %T", value)
	}
}

// Push appends item to the JSON array stored under key, creating the
// array if the key is missing or holds something that is not an array.
func (db *DB) Push(key, item string) error {
	arr := arrayValue(nil)
	if cur, ok := db.Get(key); ok {
		if v := parseTree(cur); v.kind == kindArray {
			arr = v
		}
	}
	arr.arr = append(arr.arr, stringValue(item))
	return db.Set(key, stringifyTree(arr))
}

// Pull removes every string element equal to item from the JSON array
// stored under key, reporting whether anything was removed.
func (db *DB) Pull(key, item string) (bool, error) {
	cur, ok := db.Get(key)
	if !ok {
		return false, nil
	}
	v := parseTree(cur)
	if v.kind != kindArray {
		return false, nil
	}
	kept := v.arr[:0]
	for _, el := range v.arr {
		if el.kind == kindString && el.str == item {
			continue
		}
		kept = append(kept, el)
	}
	if len(kept) == len(v.arr) {
		return false, nil
	}
	v.arr = kept
	return true, db.Set(key, stringifyTree(v))
}

// Add interprets the value under key as a number (0 when missing), adds
// operand, stores the result and returns it.
func (db *DB) Add(key string, operand float64) (float64, error) {
	return db.applyNumeric(key, func(n float64) (float64, error) {
		return n + operand, nil
	})
}

func (db *DB) Subtract(key string, operand float64) (float64, error) {
	return db.applyNumeric(key, func(n float64) (float64, error) {
		return n - operand, nil
	})
}

func (db *DB) Multiply(key string, operand float64) (float64, error) {
	return db.applyNumeric(key, func(n float64) (float64, error) {
		return n * operand, nil
	})
}

func (db *DB) Divide(key string, operand float64) (float64, error) {
	return db.applyNumeric(key, func(n float64) (float64, error) {
		if operand == 0 {
			return 0, validationErrf(key, "division by zero")
		}
		return n / operand, nil
	})
}

func (db *DB) applyNumeric(key string, op func(float64) (float64, error)) (float64, error) {
	var n float64
	if cur, ok := db.Get(key); ok {
		var err error
		n, err = strconv.ParseFloat(cur, 64)
		if err != nil {
			return 0, validationErrf(key, "value %q is not numeric", cur)
		}
	}
	result, err := op(n)
	if err != nil {
		return 0, err
	}
	return result, db.Set(key, formatNumber(result))
}
