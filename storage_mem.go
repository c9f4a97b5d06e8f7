package fstdb

import "maps"

// memStorage is a transient Storage implementation intended for tests.
type memStorage struct {
	entries map[string]string
}

func newMemStorage() storage {
	return &memStorage{}
}

func (s *memStorage) Load() (map[string]string, error) {
	entries := make(map[string]string, len(s.entries))
	maps.Copy(entries, s.entries)
	return entries, nil
}

func (s *memStorage) Save(entries map[string]string) error {
	snap := make(map[string]string, len(entries))
	maps.Copy(snap, entries)
	s.entries = snap
	return nil
}

func (s *memStorage) Close() error {
	return nil
}
