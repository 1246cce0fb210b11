package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/natefinch/atomic"
)

// FileStore reads and writes a Data document as indented JSON at a fixed
// path. Writes go through an atomic replace so a crash mid-save never leaves
// a half-written file behind.
type FileStore struct {
	path string
}

// NewFileStore returns a file store for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (fs *FileStore) Path() string { return fs.path }

// Load reads and decodes the store file. A missing file is reported through
// os.ErrNotExist so callers can start fresh; a malformed file is an error and
// the caller's in-memory state must be left untouched.
func (fs *FileStore) Load() (Data, error) {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return Data{}, fmt.Errorf("read store file: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode store file %s: %w", fs.path, err)
	}
	return d, nil
}

// Exists reports whether the backing file is present.
func (fs *FileStore) Exists() bool {
	_, err := os.Stat(fs.path)
	return !errors.Is(err, os.ErrNotExist)
}

// Save encodes the data and atomically replaces the store file.
func (fs *FileStore) Save(d Data) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := atomic.WriteFile(fs.path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("write store file %s: %w", fs.path, err)
	}
	return nil
}

// AutoSaver coalesces bursts of edits into a single save after a quiet
// period. Triggering while a save is pending resets the timer rather than
// queueing another write; the in-memory store stays authoritative and the
// file is eventually consistent.
type AutoSaver struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	save    func() error
	onError func(error)
	closed  bool
}

// NewAutoSaver wraps a save function with a debounce delay. onError may be
// nil; it is invoked for saves that fail in the background.
func NewAutoSaver(delay time.Duration, save func() error, onError func(error)) *AutoSaver {
	return &AutoSaver{delay: delay, save: save, onError: onError}
}

// Trigger schedules a save after the quiet period, cancelling any pending one.
func (a *AutoSaver) Trigger() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *AutoSaver) fire() {
	if err := a.save(); err != nil && a.onError != nil {
		a.onError(err)
	}
}

// Flush cancels any pending timer and saves immediately.
func (a *AutoSaver) Flush() error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	return a.save()
}

// Close stops the saver without a final write.
func (a *AutoSaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.closed = true
}
