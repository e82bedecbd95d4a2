// Package journal keeps an append-only record of transactions the CLI submitted.
package journal

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// Status values stored in Entry.Status.
const (
	StatusSent      = "sent"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
	StatusDryRun    = "dry-run"
)

// Entry describes one submission attempt.
type Entry struct {
	Time          time.Time         `json:"time"`
	Command       string            `json:"command"`
	Signature     string            `json:"signature,omitempty"`
	Status        string            `json:"status"`
	Error         string            `json:"error,omitempty"`
	ComputeUnits  uint32            `json:"compute_units,omitempty"`
	PriorityPrice uint64            `json:"priority_price,omitempty"`
	Accounts      map[string]string `json:"accounts,omitempty"`
}

// Recorder persists entries.
type Recorder interface {
	Record(Entry) error
	Close() error
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Record(Entry) error { return nil }
func (Nop) Close() error       { return nil }

// Multi records every entry in each of its recorders, in order.
type Multi []Recorder

func (m Multi) Record(entry Entry) error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Record(entry))
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}

// Open picks a backend from path: "" discards, .db/.sqlite/.sqlite3 use SQLite, anything
// else appends JSON lines.
func Open(path string) (Recorder, error) {
	if path == "" {
		return Nop{}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteRecorder(path)
	}
	return NewJSONLRecorder(path)
}
