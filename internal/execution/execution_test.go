package execution

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/rs/zerolog"

	"governance-addins-go/internal/chain"
	"governance-addins-go/internal/journal"
)

type fakeClient struct {
	buildErr   error
	sendErr    error
	confirmErr error
	price      *uint64
	sent       int
	confirmed  int
}

func (f *fakeClient) BuildTransaction(_ context.Context, instrs []solana.Instruction, payer solana.PrivateKey, signers []solana.PrivateKey, price *uint64) (*chain.Built, error) {
	f.price = price
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	tx, err := solana.NewTransaction(instrs, solana.Hash{1}, solana.TransactionPayer(payer.PublicKey()))
	if err != nil {
		return nil, err
	}
	if err := chain.Sign(tx, append([]solana.PrivateKey{payer}, signers...)); err != nil {
		return nil, err
	}
	return &chain.Built{Tx: tx, ComputeUnits: 330}, nil
}

func (f *fakeClient) Send(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	f.sent++
	return tx.Signatures[0], f.sendErr
}

func (f *fakeClient) Confirm(context.Context, solana.Signature) error {
	f.confirmed++
	return f.confirmErr
}

func request(confirm bool) Request {
	payer := solana.NewWallet().PrivateKey
	return Request{
		Command:      "withdraw",
		Instructions: []solana.Instruction{system.NewTransferInstruction(1, payer.PublicKey(), solana.NewWallet().PublicKey()).Build()},
		Payer:        payer,
		Confirm:      confirm,
		Accounts:     map[string]solana.PublicKey{"vesting_token": solana.NewWallet().PublicKey()},
	}
}

func newExecutor(client Client, ledger *journal.Ledger, buf *bytes.Buffer) *Executor {
	exec := NewExecutor(client, ledger, zerolog.New(buf))
	exec.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return exec
}

func TestSubmitConfirmsAndJournals(t *testing.T) {
	var buf bytes.Buffer
	ledger := journal.NewLedger(1)
	client := &fakeClient{}
	exec := newExecutor(client, ledger, &buf)

	req := request(true)
	res, err := exec.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.Status != journal.StatusConfirmed || client.sent != 1 || client.confirmed != 1 {
		t.Fatalf("unexpected result %+v (sent=%d confirmed=%d)", res, client.sent, client.confirmed)
	}

	entries := ledger.Snapshot()
	if len(entries) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Command != "withdraw" || entry.Signature != res.Signature.String() || entry.ComputeUnits != 330 {
		t.Fatalf("unexpected journal entry %+v", entry)
	}
	if entry.Accounts["vesting_token"] != req.Accounts["vesting_token"].String() {
		t.Fatalf("accounts missing from journal: %+v", entry.Accounts)
	}
	if !strings.Contains(buf.String(), req.Accounts["vesting_token"].String()) {
		t.Fatalf("log does not contain vesting token: %s", buf.String())
	}
}

func TestSubmitWithoutConfirm(t *testing.T) {
	var buf bytes.Buffer
	client := &fakeClient{}
	exec := newExecutor(client, journal.NewLedger(0), &buf)

	res, err := exec.Submit(context.Background(), request(false))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.Status != journal.StatusSent || client.confirmed != 0 {
		t.Fatalf("expected sent without confirmation, got %+v", res)
	}
}

func TestSubmitDryRun(t *testing.T) {
	var buf bytes.Buffer
	ledger := journal.NewLedger(1)
	client := &fakeClient{}
	exec := newExecutor(client, ledger, &buf)
	exec.DryRun = true
	price := uint64(7)
	exec.ComputeUnitPrice = &price

	res, err := exec.Submit(context.Background(), request(true))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if client.sent != 0 {
		t.Fatalf("dry run must not send")
	}
	if res.Status != journal.StatusDryRun || res.Tx == nil {
		t.Fatalf("unexpected dry run result %+v", res)
	}
	if client.price == nil || *client.price != 7 {
		t.Fatalf("compute unit price not forwarded")
	}
	if got := ledger.Snapshot()[0].Status; got != journal.StatusDryRun {
		t.Fatalf("expected dry-run journal status, got %s", got)
	}
}

func TestSubmitFailures(t *testing.T) {
	boom := errors.New("boom")
	cases := map[string]*fakeClient{
		"build":   {buildErr: boom},
		"send":    {sendErr: boom},
		"confirm": {confirmErr: boom},
	}
	for name, client := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			ledger := journal.NewLedger(1)
			exec := newExecutor(client, ledger, &buf)
			if _, err := exec.Submit(context.Background(), request(true)); !errors.Is(err, boom) {
				t.Fatalf("expected boom, got %v", err)
			}
			entries := ledger.Snapshot()
			if len(entries) != 1 || entries[0].Status != journal.StatusFailed || entries[0].Error != "boom" {
				t.Fatalf("expected failed journal entry, got %+v", entries)
			}
		})
	}
}

func TestSubmitRequiresPayer(t *testing.T) {
	var buf bytes.Buffer
	exec := newExecutor(&fakeClient{}, journal.NewLedger(0), &buf)
	req := request(false)
	req.Payer = nil
	if _, err := exec.Submit(context.Background(), req); err == nil {
		t.Fatalf("expected error without payer")
	}
}
