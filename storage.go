package fstdb

// storage represents a snapshot persistence backend (FSTDB file, Bolt,
// in-memory, etc.). The store rewrites the full snapshot on every
// mutation, so the contract is deliberately coarse: load everything,
// save everything.
type storage interface {
	// Load reads the latest snapshot. A backend that has no snapshot yet
	// returns an empty map and no error.
	Load() (map[string]string, error)

	// Save replaces the persisted snapshot with the given entries.
	// Failure leaves the in-memory state untouched; the previous on-disk
	// state is backend-defined.
	Save(entries map[string]string) error

	// Close releases backend resources.
	Close() error
}

// Backend selects the persistence backend for Open.
type Backend int

const (
	// BackendFile persists to a single FSTDB binary file. The default.
	BackendFile Backend = iota
	// BackendBolt persists entries in a bbolt database, trading the
	// fixed file format for crash safety.
	BackendBolt
	// BackendMemory keeps snapshots in memory only. Intended for tests.
	BackendMemory
)
