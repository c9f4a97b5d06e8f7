package fstdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type fileStorage struct {
	path   string
	atomic bool
}

func newFileStorage(path string, atomic bool) storage {
	return &fileStorage{path: path, atomic: atomic}
}

func (s *fileStorage) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("fstdb: %w", err)
	}
	return decodeSnapshot(data)
}

func (s *fileStorage) Save(entries map[string]string) error {
	data := encodeSnapshot(entries)
	if s.atomic {
		return s.saveAtomic(data)
	}
	if err := os.WriteFile(s.path, data, 0o666); err != nil {
		return fmt.Errorf("fstdb: %w", err)
	}
	return nil
}

// saveAtomic writes to a sibling temp file and renames it over the
// snapshot, so a crash mid-write cannot truncate the previous snapshot.
func (s *fileStorage) saveAtomic(data []byte) error {
	dir, base := filepath.Split(s.path)
	f, err := os.CreateTemp(dir, base+".tmp*")
	if err != nil {
		return fmt.Errorf("fstdb: %w", err)
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, s.path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fstdb: %w", err)
	}
	return nil
}

func (s *fileStorage) Close() error {
	return nil
}
