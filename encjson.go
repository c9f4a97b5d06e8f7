package fstdb

import "strconv"

// Compact JSON-like text codec for tree values. The encoder emits no
// insignificant whitespace; the parser tolerates whitespace between
// tokens and recovers from any malformed input by returning a null
// value instead of an error, since a damaged tree entry must never take
// the whole store down.

func stringifyTree(v *treeValue) string {
	return string(appendTreeValue(nil, v))
}

func appendTreeValue(buf []byte, v *treeValue) []byte {
	if v == nil {
		return append(buf, "null"...)
	}
	switch v.kind {
	case kindString:
		return appendQuoted(buf, v.str)
	case kindNumber:
		return strconv.AppendFloat(buf, v.num, 'g', -1, 64)
	case kindBool:
		if v.boo {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case kindObject:
		buf = append(buf, '{')
		first := true
		for k, item := range v.obj {
			if !first {
				buf = append(buf, ',')
			}
			first = false
			buf = appendQuoted(buf, k)
			buf = append(buf, ':')
			buf = appendTreeValue(buf, item)
		}
		return append(buf, '}')
	case kindArray:
		buf = append(buf, '[')
		for i, item := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendTreeValue(buf, item)
		}
		return append(buf, ']')
	default:
		return append(buf, "null"...)
	}
}

func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}

// parseTree parses the compact text form. Best effort: anything it
// cannot make sense of parses as null.
func parseTree(s string) *treeValue {
	d := jsonDecoder{s: s}
	d.skipSpace()
	if d.pos >= len(d.s) {
		return nullValue()
	}
	return d.parseValue()
}

type jsonDecoder struct {
	s   string
	pos int
}

func (d *jsonDecoder) skipSpace() {
	for d.pos < len(d.s) {
		switch d.s[d.pos] {
		case ' ', '\t', '\n', '\r':
			d.pos++
		default:
			return
		}
	}
}

func (d *jsonDecoder) parseValue() *treeValue {
	d.skipSpace()
	if d.pos >= len(d.s) {
		return nullValue()
	}
	switch c := d.s[d.pos]; {
	case c == '{':
		return d.parseObject()
	case c == '[':
		return d.parseArray()
	case c == '"':
		return stringValue(d.parseString())
	case c == 't':
		if d.lit("true") {
			return boolValue(true)
		}
	case c == 'f':
		if d.lit("false") {
			return boolValue(false)
		}
	case c == 'n':
		if d.lit("null") {
			return nullValue()
		}
	case c == '-' || (c >= '0' && c <= '9'):
		return numberValue(d.parseNumber())
	}
	return nullValue()
}

func (d *jsonDecoder) lit(word string) bool {
	if len(d.s)-d.pos >= len(word) && d.s[d.pos:d.pos+len(word)] == word {
		d.pos += len(word)
		return true
	}
	return false
}

func (d *jsonDecoder) parseObject() *treeValue {
	obj := objectValue()
	d.pos++ // '{'
	d.skipSpace()
	if d.pos < len(d.s) && d.s[d.pos] == '}' {
		d.pos++
		return obj
	}
	for d.pos < len(d.s) {
		d.skipSpace()
		if d.pos >= len(d.s) || d.s[d.pos] != '"' {
			break
		}
		key := d.parseString()
		d.skipSpace()
		if d.pos >= len(d.s) || d.s[d.pos] != ':' {
			break
		}
		d.pos++ // ':'
		obj.obj[key] = d.parseValue()
		d.skipSpace()
		if d.pos >= len(d.s) {
			break
		}
		if d.s[d.pos] == '}' {
			d.pos++
			break
		}
		if d.s[d.pos] == ',' {
			d.pos++
			continue
		}
		break
	}
	return obj
}

func (d *jsonDecoder) parseArray() *treeValue {
	arr := arrayValue(nil)
	d.pos++ // '['
	d.skipSpace()
	if d.pos < len(d.s) && d.s[d.pos] == ']' {
		d.pos++
		return arr
	}
	for d.pos < len(d.s) {
		arr.arr = append(arr.arr, d.parseValue())
		d.skipSpace()
		if d.pos >= len(d.s) {
			break
		}
		if d.s[d.pos] == ']' {
			d.pos++
			break
		}
		if d.s[d.pos] == ',' {
			d.pos++
			continue
		}
		break
	}
	return arr
}

func (d *jsonDecoder) parseString() string {
	if d.pos >= len(d.s) || d.s[d.pos] != '"' {
		return ""
	}
	d.pos++ // opening quote
	var buf []byte
	for d.pos < len(d.s) && d.s[d.pos] != '"' {
		c := d.s[d.pos]
		if c == '\\' && d.pos+1 < len(d.s) {
			d.pos++
			switch d.s[d.pos] {
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			default:
				buf = append(buf, d.s[d.pos])
			}
		} else {
			buf = append(buf, c)
		}
		d.pos++
	}
	if d.pos < len(d.s) {
		d.pos++ // closing quote
	}
	return string(buf)
}

func (d *jsonDecoder) parseNumber() float64 {
	start := d.pos
	if d.pos < len(d.s) && d.s[d.pos] == '-' {
		d.pos++
	}
	for d.pos < len(d.s) {
		c := d.s[d.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			d.pos++
		} else {
			break
		}
	}
	n, err := strconv.ParseFloat(d.s[start:d.pos], 64)
	if err != nil {
		return 0
	}
	return n
}
