package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"governance-addins-go/internal/budget"
	"governance-addins-go/internal/chain"
	"governance-addins-go/internal/chain/chaintest"
	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/journal"
	"governance-addins-go/internal/report"
	"governance-addins-go/internal/vesting"
)

var programID = solana.MustPublicKeyFromBase58("Hu548Kzvfo9C9zATuXVpnmxYRUCJxrsXLdiKjxuTczim")

func TestVestingFlowDepositThenWithdraw(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv := chaintest.NewServer()
	defer srv.Close()

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	client := chain.NewClient(srv.URL, "", "confirmed", logger)
	client.PollInterval = 10 * time.Millisecond
	client.Limits = budget.Limits{MaxComputeUnitPrice: 1_000}
	ledger := journal.NewLedger(4)
	exec := execution.NewExecutor(client, ledger, logger)
	price := uint64(100)
	exec.ComputeUnitPrice = &price

	owner := solana.NewWallet().PrivateKey
	vestingToken := solana.NewWallet().PrivateKey
	mint := solana.NewWallet().PublicKey()

	schedules, err := vesting.ParseSchedules(vesting.ScheduleInput{
		Amounts:          []uint64{900},
		ReleaseFrequency: "P1D",
		Start:            "2024-01-01T00:00:00Z",
		End:              "2024-01-04T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("ParseSchedules returned error: %v", err)
	}
	deposit, err := vesting.Deposit(programID, vesting.DepositAccounts{
		VestingToken:     vestingToken.PublicKey(),
		SourceTokenOwner: owner.PublicKey(),
		SourceToken:      solana.NewWallet().PublicKey(),
		VestingOwner:     owner.PublicKey(),
		Payer:            owner.PublicKey(),
	}, schedules)
	if err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	res, err := exec.Submit(ctx, execution.Request{
		Command:      "deposit",
		Instructions: []solana.Instruction{deposit},
		Payer:        owner,
		Signers:      []solana.PrivateKey{vestingToken},
		Confirm:      true,
	})
	if err != nil {
		t.Fatalf("deposit Submit returned error: %v", err)
	}
	if res.Status != journal.StatusConfirmed || res.ComputeUnits != budget.Estimate(srv.UnitsConsumed) {
		t.Fatalf("unexpected deposit result %+v", res)
	}

	// the program would now hold the record at the vesting account
	vestingAccount, err := vesting.VestingAddress(programID, vestingToken.PublicKey())
	if err != nil {
		t.Fatalf("VestingAddress returned error: %v", err)
	}
	data, err := vesting.EncodeRecord(vesting.Record{
		AccountType: vesting.AccountVestingRecord,
		Owner:       owner.PublicKey(),
		Mint:        mint,
		Token:       vestingToken.PublicKey(),
		Schedule:    schedules,
	})
	if err != nil {
		t.Fatalf("EncodeRecord returned error: %v", err)
	}
	srv.SetAccount(vestingAccount, programID, data)

	raw, err := client.AccountData(ctx, vestingAccount)
	if err != nil {
		t.Fatalf("AccountData returned error: %v", err)
	}
	rec, err := vesting.DecodeRecord(raw)
	if err != nil {
		t.Fatalf("DecodeRecord returned error: %v", err)
	}
	view, err := report.NewRecordView(vestingAccount, rec)
	if err != nil {
		t.Fatalf("NewRecordView returned error: %v", err)
	}
	var out bytes.Buffer
	if err := report.New(&out, report.FormatText).Info(programID, view); err != nil {
		t.Fatalf("Info returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Total amount: 900") {
		t.Fatalf("expected rendered total, got %s", out.String())
	}

	withdraw, err := vesting.Withdraw(programID, vesting.WithdrawAccounts{
		VestingToken:     rec.Token,
		DestinationToken: solana.NewWallet().PublicKey(),
		VestingOwner:     rec.Owner,
	})
	if err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	if _, err := exec.Submit(ctx, execution.Request{
		Command:      "withdraw",
		Instructions: []solana.Instruction{withdraw},
		Payer:        owner,
	}); err != nil {
		t.Fatalf("withdraw Submit returned error: %v", err)
	}

	entries := ledger.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected 2 journal entries, got %d", len(entries))
	}
	if entries[0].Command != "deposit" || entries[1].Status != journal.StatusSent {
		t.Fatalf("unexpected journal %+v", entries)
	}
	if len(srv.Sent()) != 2 {
		t.Fatalf("expected 2 transactions on the wire, got %d", len(srv.Sent()))
	}
	if !strings.Contains(logs.String(), `"status":"confirmed"`) {
		t.Fatalf("expected confirmation in logs, got %s", logs.String())
	}
}
