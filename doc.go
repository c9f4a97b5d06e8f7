/*
Package fstdb implements an embedded key-value store that persists the
entire data set to a single binary file after every mutation.

Keys are strings. A key without a dot maps directly to a string value.
A key containing dots ("user.profile.name") addresses a location inside
a single hierarchical tree of values; the tree is serialized to a
compact JSON-like text and stored under one reserved slot, so the whole
store still round-trips through the flat snapshot format.

The store serves exactly one in-process owner: every call is synchronous
and there is no internal locking. It is not safe for concurrent use.

# Snapshot file format

	bytes[5]  magic = "FSTDB"
	uint32    version (little-endian, currently 1)
	uint32    entry count
	repeated per entry:
	  uint32  key length, then that many key bytes (UTF-8)
	  uint32  value length, then that many value bytes (UTF-8)

Loading is deliberately forgiving: a missing file or a file with a
foreign magic yields an empty store, and a truncated entry section keeps
whatever entries decoded cleanly before the damage. Only a version
mismatch or an implausibly large entry count fails the load outright.

# Reserved slot

On disk the serialized tree occupies the entry keyed "__root__". In
memory it lives in a dedicated field of DB, so user data can never
collide with it; flat operations on the literal key "__root__" are
rejected outright.

# Durability

Each mutation rewrites the snapshot file in place with a truncating
write. A crash in the middle of that write can leave the file empty or
truncated. Opening the store with Options.Atomic switches to a
write-to-temporary-then-rename scheme that closes this gap at the cost
of briefly creating a sibling temp file.
*/
package fstdb
