package journal

import "testing"

func TestLedgerRecordSnapshot(t *testing.T) {
	ledger := NewLedger(2)
	entry := Entry{Command: "split", Status: StatusDryRun}
	if err := ledger.Record(entry); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	snapshot := ledger.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snapshot))
	}
	if snapshot[0].Command != entry.Command {
		t.Fatalf("unexpected entry command")
	}

	ledger.Reset()
	if len(ledger.Snapshot()) != 0 {
		t.Fatalf("expected ledger reset")
	}
}
