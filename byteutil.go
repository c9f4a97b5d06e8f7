package fstdb

import "encoding/binary"

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

type bytesBuilder struct {
	Buf []byte
}

func (bb *bytesBuilder) Grow(n int) (off int) {
	off, bb.Buf = grow(bb.Buf, n)
	return
}

func (bb *bytesBuilder) AppendRaw(v []byte) {
	off := bb.Grow(len(v))
	copy(bb.Buf[off:], v)
}

func (bb *bytesBuilder) AppendUint32(v uint32) {
	off := bb.Grow(4)
	binary.LittleEndian.PutUint32(bb.Buf[off:], v)
}

func (bb *bytesBuilder) AppendLenPrefixed(s string) {
	bb.AppendUint32(uint32(len(s)))
	off := bb.Grow(len(s))
	copy(bb.Buf[off:], s)
}

type byteDecoder struct {
	Orig []byte
	Buf  []byte
}

func makeByteDecoder(buf []byte) byteDecoder {
	return byteDecoder{buf, buf}
}

func (d *byteDecoder) Off() int {
	return len(d.Orig) - len(d.Buf)
}

func (d *byteDecoder) Remaining() int {
	return len(d.Buf)
}

func (d *byteDecoder) Raw(n int) ([]byte, bool) {
	if len(d.Buf) < n {
		return nil, false
	}
	v := d.Buf[:n]
	d.Buf = d.Buf[n:]
	return v, true
}

func (d *byteDecoder) Uint32() (uint32, bool) {
	raw, ok := d.Raw(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(raw), true
}

// LenPrefixed reads a uint32 length followed by that many bytes.
// The second result is false when the stream runs out or the declared
// length exceeds ceiling; the decoder position is then unspecified and
// the caller must stop consuming.
func (d *byteDecoder) LenPrefixed(ceiling uint32) (string, bool) {
	n, ok := d.Uint32()
	if !ok || n > ceiling {
		return "", false
	}
	raw, ok := d.Raw(int(n))
	if !ok {
		return "", false
	}
	return string(raw), true
}
