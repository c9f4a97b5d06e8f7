package fstdb

const (
	snapshotMagic   = "FSTDB"
	snapshotVersion = 1

	// Sanity ceilings for load. A declared count above maxSnapshotEntries
	// fails the whole load; a string length above maxStringLen merely
	// stops the entry loop.
	maxSnapshotEntries = 10_000_000
	maxStringLen       = 10_000_000
)

// encodeSnapshot renders the flat entry map in the FSTDB snapshot
// layout. Entry order follows map iteration order and carries no
// meaning.
func encodeSnapshot(entries map[string]string) []byte {
	size := len(snapshotMagic) + 8
	for k, v := range entries {
		size += 8 + len(k) + len(v)
	}
	bb := bytesBuilder{Buf: make([]byte, 0, size)}
	bb.AppendRaw([]byte(snapshotMagic))
	bb.AppendUint32(snapshotVersion)
	bb.AppendUint32(uint32(len(entries)))
	for k, v := range entries {
		bb.AppendLenPrefixed(k)
		bb.AppendLenPrefixed(v)
	}
	return bb.Buf
}

// decodeSnapshot parses an FSTDB snapshot. A foreign or truncated magic
// yields an empty map and no error (best-effort recovery: a file we did
// not write is not ours to complain about). A version mismatch or an
// oversized entry count is a hard error. A damaged entry section stops
// the loop, keeping the entries decoded so far. Entries with empty keys
// are dropped.
func decodeSnapshot(data []byte) (map[string]string, error) {
	entries := make(map[string]string)

	d := makeByteDecoder(data)
	magic, ok := d.Raw(len(snapshotMagic))
	if !ok || string(magic) != snapshotMagic {
		return entries, nil
	}
	ver, ok := d.Uint32()
	if !ok || ver != snapshotVersion {
		return nil, ErrUnsupportedVersion
	}
	count, ok := d.Uint32()
	if !ok {
		return entries, nil
	}
	if count > maxSnapshotEntries {
		return nil, ErrCountCeiling
	}
	for i := uint32(0); i < count; i++ {
		key, ok := d.LenPrefixed(maxStringLen)
		if !ok {
			break
		}
		value, ok := d.LenPrefixed(maxStringLen)
		if !ok {
			break
		}
		if key == "" {
			continue
		}
		entries[key] = value
	}
	return entries, nil
}
