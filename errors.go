package fstdb

import "fmt"

var (
	// ErrUnsupportedVersion is returned by Load when the snapshot file
	// declares a format version this package does not understand.
	ErrUnsupportedVersion = fmt.Errorf("unsupported snapshot version")

	// ErrCountCeiling is returned by Load when the snapshot file declares
	// more entries than the sanity ceiling allows.
	ErrCountCeiling = fmt.Errorf("snapshot entry count exceeds ceiling")
)

// ValidationError reports a caller mistake (bad key or value) detected
// before any mutation takes place.
type ValidationError struct {
	Key string
	Msg string
}

func validationErrf(key string, format string, args ...any) error {
	return &ValidationError{key, fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: key %q", e.Msg, e.Key)
}
