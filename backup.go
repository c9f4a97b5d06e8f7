package fstdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrCorruptedBackup is returned by Restore when the backup file fails
// its checksum or cannot be decoded.
var ErrCorruptedBackup = fmt.Errorf("corrupted backup file")

const backupHeaderSize = 8

// Backup writes a point-in-time copy of the store to path. The format
// is a msgpack-encoded snapshot map prefixed with its xxhash64
// checksum, so Restore can tell damage from data.
func (db *DB) Backup(path string) error {
	body, err := msgpack.Marshal(db.snapshot())
	if err != nil {
		return fmt.Errorf("fstdb: backup: %w", err)
	}
	buf := make([]byte, backupHeaderSize, backupHeaderSize+len(body))
	binary.LittleEndian.PutUint64(buf, xxhash.Sum64(body))
	buf = append(buf, body...)
	if err := os.WriteFile(path, buf, 0o666); err != nil {
		return fmt.Errorf("fstdb: backup: %w", err)
	}
	return nil
}

// Restore replaces the store contents with the backup at path and
// persists the result.
func (db *DB) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fstdb: restore: %w", err)
	}
	if len(data) < backupHeaderSize {
		return ErrCorruptedBackup
	}
	sum := binary.LittleEndian.Uint64(data)
	body := data[backupHeaderSize:]
	if xxhash.Sum64(body) != sum {
		return ErrCorruptedBackup
	}
	var snap map[string]string
	if err := msgpack.Unmarshal(body, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptedBackup, err)
	}
	if rootText, ok := snap[reservedRootKey]; ok {
		delete(snap, reservedRootKey)
		db.root = parseTree(rootText)
	} else {
		db.root = nil
	}
	if snap == nil {
		snap = make(map[string]string)
	}
	db.entries = snap
	return db.Save()
}

const DefaultSnapshotInterval = time.Minute

type SnapshotterOptions struct {
	Context  context.Context
	Interval time.Duration
	Logger   *slog.Logger
}

// Snapshotter runs a backup function on a fixed interval. It only
// schedules: the function it runs must itself be safe to call at that
// point, since DB performs no internal locking. Failures are logged
// and the schedule keeps going.
type Snapshotter struct {
	fn       func() error
	interval time.Duration
	logger   *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

func NewSnapshotter(fn func() error, o SnapshotterOptions) *Snapshotter {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Interval == 0 {
		o.Interval = DefaultSnapshotInterval
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(o.Context)
	return &Snapshotter{
		fn:       fn,
		interval: o.Interval,
		logger:   o.Logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

func (s *Snapshotter) Start() {
	if s.started {
		return
	}
	s.started = true
	go s.run()
}

// Stop cancels the schedule and waits for an in-flight run to finish.
func (s *Snapshotter) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
}

func (s *Snapshotter) run() {
	defer close(s.done)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-t.C:
			if err := s.fn(); err != nil {
				s.logger.LogAttrs(s.ctx, slog.LevelError, "fstdb: snapshot failed", slog.Any("err", err))
			}
		}
	}
}
