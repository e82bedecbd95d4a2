package journal

import (
	"path/filepath"
	"testing"
)

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	nop, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error: %v", err)
	}
	if _, ok := nop.(Nop); !ok {
		t.Fatalf("expected Nop recorder, got %T", nop)
	}

	cases := map[string]string{
		"journal.db":     "*journal.SQLiteRecorder",
		"journal.SQLITE": "*journal.SQLiteRecorder",
		"journal.jsonl":  "*journal.JSONLRecorder",
		"journal.ndjson": "*journal.JSONLRecorder",
	}
	for name, want := range cases {
		rec, err := Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Open(%s) error: %v", name, err)
		}
		if got := typeName(rec); got != want {
			t.Fatalf("Open(%s) = %s, want %s", name, got, want)
		}
		if err := rec.Record(sampleEntry()); err != nil {
			t.Fatalf("Record via %s: %v", name, err)
		}
		rec.Close()
	}
}

func typeName(r Recorder) string {
	switch r.(type) {
	case *SQLiteRecorder:
		return "*journal.SQLiteRecorder"
	case *JSONLRecorder:
		return "*journal.JSONLRecorder"
	case *Ledger:
		return "*journal.Ledger"
	}
	return "unknown"
}

func TestMultiFansOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	file, err := NewJSONLRecorder(path)
	if err != nil {
		t.Fatalf("NewJSONLRecorder: %v", err)
	}
	ledger := NewLedger(1)
	multi := Multi{file, ledger}

	if err := multi.Record(sampleEntry()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := multi.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := ledger.Snapshot(); len(got) != 1 || got[0].Command != sampleEntry().Command {
		t.Fatalf("ledger did not receive the entry: %+v", got)
	}
	if err := multi.Record(sampleEntry()); err == nil {
		t.Fatalf("expected the closed file recorder error to surface")
	}
	if got := ledger.Snapshot(); len(got) != 2 {
		t.Fatalf("ledger must keep recording when a sibling fails, got %d entries", len(got))
	}
}
