package journal

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	recorder, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder error: %v", err)
	}
	defer recorder.Close()

	first := sampleEntry()
	second := Entry{Time: first.Time.Add(1e9), Command: "withdraw", Status: StatusFailed, Error: "boom"}
	for _, e := range []Entry{first, second} {
		if err := recorder.Record(e); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	entries, err := recorder.Entries()
	if err != nil {
		t.Fatalf("Entries error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	got := entries[0]
	if !got.Time.Equal(first.Time) || got.Command != "deposit" || got.ComputeUnits != 11_330 || got.PriorityPrice != 25 {
		t.Fatalf("unexpected first entry %+v", got)
	}
	if got.Accounts["vesting_token"] != "Tok1" {
		t.Fatalf("accounts not restored: %+v", got.Accounts)
	}
	if entries[1].Error != "boom" || entries[1].Accounts != nil {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
}

func TestSQLiteRecorderReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.sqlite")
	recorder, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder error: %v", err)
	}
	if err := recorder.Record(sampleEntry()); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := recorder.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	reopened, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()
	entries, err := reopened.Entries()
	if err != nil {
		t.Fatalf("Entries error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected persisted entry, got %d", len(entries))
	}
}
