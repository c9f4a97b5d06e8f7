package fstdb

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var boltEntriesBucket = []byte("entries")

type boltStorage struct {
	bdb *bbolt.DB
}

func newBoltStorage(path string) (storage, error) {
	bopt := &bbolt.Options{
		Timeout: 10 * time.Second,
	}
	bdb, err := bbolt.Open(path, 0o666, bopt)
	if err != nil {
		return nil, fmt.Errorf("fstdb: %w", err)
	}
	return &boltStorage{bdb: bdb}, nil
}

func (s *boltStorage) Load() (map[string]string, error) {
	entries := make(map[string]string)
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		b := btx.Bucket(boltEntriesBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			entries[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("fstdb: %w", err)
	}
	return entries, nil
}

func (s *boltStorage) Save(entries map[string]string) error {
	err := s.bdb.Update(func(btx *bbolt.Tx) error {
		if btx.Bucket(boltEntriesBucket) != nil {
			if err := btx.DeleteBucket(boltEntriesBucket); err != nil {
				return err
			}
		}
		b, err := btx.CreateBucket(boltEntriesBucket)
		if err != nil {
			return err
		}
		for k, v := range entries {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("fstdb: %w", err)
	}
	return nil
}

func (s *boltStorage) Close() error {
	return s.bdb.Close()
}
