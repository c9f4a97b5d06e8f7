package fstdb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBackupRestore(t *testing.T) {
	dir := t.TempDir()
	db := must(Open(filepath.Join(dir, "db.bin"), Options{}))
	defer db.Close()
	ensure(db.Set("flat", "v"))
	ensure(db.Set("user.name", "Ada"))

	bak := filepath.Join(dir, "db.bak")
	ensure(db.Backup(bak))

	ensure(db.Clear())
	deepEq(t, db.Size(), 0)

	ensure(db.Restore(bak))
	getOK(t, db, "flat", "v")
	getOK(t, db, "user.name", "Ada")
}

func TestRestoreDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	db := must(Open(filepath.Join(dir, "db.bin"), Options{}))
	defer db.Close()
	ensure(db.Set("k", "v"))

	bak := filepath.Join(dir, "db.bak")
	ensure(db.Backup(bak))

	data := must(os.ReadFile(bak))
	data[len(data)-1] ^= 0xFF
	ensure(os.WriteFile(bak, data, 0o666))

	if err := db.Restore(bak); !errors.Is(err, ErrCorruptedBackup) {
		t.Errorf("Restore: got %v, wanted ErrCorruptedBackup", err)
	}
}

func TestRestoreShortFile(t *testing.T) {
	dir := t.TempDir()
	db := must(Open(filepath.Join(dir, "db.bin"), Options{}))
	defer db.Close()

	bak := filepath.Join(dir, "short.bak")
	ensure(os.WriteFile(bak, []byte{1, 2, 3}, 0o666))
	if err := db.Restore(bak); !errors.Is(err, ErrCorruptedBackup) {
		t.Errorf("Restore: got %v, wanted ErrCorruptedBackup", err)
	}
}

func TestSnapshotter(t *testing.T) {
	ticks := make(chan struct{}, 16)
	s := NewSnapshotter(func() error {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return nil
	}, SnapshotterOptions{Interval: 5 * time.Millisecond})
	s.Start()
	defer s.Stop()

	select {
	case <-ticks:
	case <-time.After(5 * time.Second):
		t.Fatalf("snapshot function never ran")
	}
}

func TestSnapshotterStopWithoutStart(t *testing.T) {
	s := NewSnapshotter(func() error { return nil }, SnapshotterOptions{})
	s.Stop() // must not hang
}
