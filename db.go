package fstdb

import (
	"sort"
	"strings"
)

const (
	// reservedRootKey is the snapshot entry holding the serialized tree.
	// It exists only on disk; in memory the tree lives in DB.root, so
	// user keys can never collide with it.
	reservedRootKey = "__root__"

	// MaxKeyLen is the longest accepted key, in bytes.
	MaxKeyLen = 1000
	// MaxValueLen is the longest accepted value, in bytes.
	MaxValueLen = 10_000_000
)

// DB is an embedded key-value store backed by a single snapshot file.
// Flat keys live in a plain map; dotted keys address the single
// hierarchical tree. Every mutation synchronously rewrites the full
// snapshot. DB is not safe for concurrent use.
type DB struct {
	store   storage
	entries map[string]string
	root    *treeValue // nil until the first dotted write
}

type Options struct {
	// Backend selects the persistence backend (default BackendFile).
	Backend Backend
	// Atomic makes the file backend write-to-temp-then-rename instead of
	// truncating in place. Ignored by other backends.
	Atomic bool
}

// Open creates a store bound to path and loads the existing snapshot.
// A missing snapshot is the normal first run and yields an empty store;
// a snapshot with an unsupported version or an implausible entry count
// fails the open.
func Open(path string, opt Options) (*DB, error) {
	var st storage
	switch opt.Backend {
	case BackendBolt:
		var err error
		st, err = newBoltStorage(path)
		if err != nil {
			return nil, err
		}
	case BackendMemory:
		st = newMemStorage()
	default:
		st = newFileStorage(path, opt.Atomic)
	}
	db := &DB{store: st, entries: make(map[string]string)}
	if err := db.Load(); err != nil {
		st.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the backend. It does not persist: every mutation
// already did.
func (db *DB) Close() error {
	return db.store.Close()
}

// Set stores value under key, routing dotted keys into the tree, then
// persists the snapshot. Validation errors are reported before any
// mutation; a persist error is returned with the in-memory state
// already updated.
func (db *DB) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) > MaxValueLen {
		return validationErrf(key, "value exceeds %d bytes", MaxValueLen)
	}
	if strings.ContainsRune(key, '.') {
		path := splitPath(key)
		if len(path) == 0 {
			return validationErrf(key, "key has no path segments")
		}
		if db.root == nil {
			db.root = objectValue()
		}
		setPath(db.root, path, value)
		return db.Save()
	}
	db.entries[key] = value
	return db.Save()
}

// Get returns the value stored under key. For dotted keys, a string
// leaf yields its text and any other node yields its serialized form;
// missing paths and wrong-shaped intermediates both read as absent.
func (db *DB) Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if strings.ContainsRune(key, '.') {
		return getPath(db.root, splitPath(key))
	}
	v, ok := db.entries[key]
	return v, ok
}

// Has reports whether key resolves to a stored value.
func (db *DB) Has(key string) bool {
	if key == "" {
		return false
	}
	if strings.ContainsRune(key, '.') {
		return hasPath(db.root, splitPath(key))
	}
	_, ok := db.entries[key]
	return ok
}

// Delete removes key, reporting whether it existed. The snapshot is
// rewritten only when something was removed.
func (db *DB) Delete(key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	if strings.ContainsRune(key, '.') {
		if !deletePath(db.root, splitPath(key)) {
			return false, nil
		}
		return true, db.Save()
	}
	if _, ok := db.entries[key]; !ok {
		return false, nil
	}
	delete(db.entries, key)
	return true, db.Save()
}

// Clear drops every entry, including the tree, and persists the empty
// snapshot.
func (db *DB) Clear() error {
	db.entries = make(map[string]string)
	db.root = nil
	return db.Save()
}

// Size returns the number of snapshot entries, counting the serialized
// tree as one.
func (db *DB) Size() int {
	n := len(db.entries)
	if db.root != nil {
		n++
	}
	return n
}

// Keys returns every snapshot key in sorted order, including the
// reserved root entry when the tree exists. Consumers wanting dotted
// keys expand the root entry themselves (see ExportJSON).
func (db *DB) Keys() []string {
	keys := make([]string, 0, db.Size())
	for k := range db.entries {
		keys = append(keys, k)
	}
	if db.root != nil {
		keys = append(keys, reservedRootKey)
	}
	sort.Strings(keys)
	return keys
}

// Values returns snapshot values positionally parallel to Keys.
func (db *DB) Values() []string {
	keys := db.Keys()
	values := make([]string, len(keys))
	for i, k := range keys {
		if k == reservedRootKey && db.root != nil {
			values[i] = stringifyTree(db.root)
		} else {
			values[i] = db.entries[k]
		}
	}
	return values
}

// Save rewrites the persisted snapshot from the in-memory state.
// Failure leaves memory untouched; the store stays usable.
func (db *DB) Save() error {
	return db.store.Save(db.snapshot())
}

// Load replaces the in-memory state with the persisted snapshot.
// On a hard format failure the store is left empty.
func (db *DB) Load() error {
	m, err := db.store.Load()
	if err != nil {
		db.entries = make(map[string]string)
		db.root = nil
		return err
	}
	if rootText, ok := m[reservedRootKey]; ok {
		delete(m, reservedRootKey)
		db.root = parseTree(rootText)
	} else {
		db.root = nil
	}
	db.entries = m
	return nil
}

func (db *DB) snapshot() map[string]string {
	snap := make(map[string]string, len(db.entries)+1)
	for k, v := range db.entries {
		snap[k] = v
	}
	if db.root != nil {
		snap[reservedRootKey] = stringifyTree(db.root)
	}
	return snap
}

func validateKey(key string) error {
	if key == "" || len(key) > MaxKeyLen {
		return validationErrf(key, "key must be 1-%d characters", MaxKeyLen)
	}
	if key == reservedRootKey {
		return validationErrf(key, "key is reserved")
	}
	return nil
}
