// Package execution drives a transaction through build, sign, submit and confirmation.
package execution

import (
	"context"
	"errors"
	"sort"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"governance-addins-go/internal/chain"
	"governance-addins-go/internal/journal"
	"governance-addins-go/internal/metrics"
)

// Client is the part of chain.Client the executor needs.
type Client interface {
	BuildTransaction(ctx context.Context, instrs []solana.Instruction, payer solana.PrivateKey, signers []solana.PrivateKey, computeUnitPrice *uint64) (*chain.Built, error)
	Send(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	Confirm(ctx context.Context, sig solana.Signature) error
}

// Request is one transaction a command wants on chain.
type Request struct {
	Command      string
	Instructions []solana.Instruction
	Payer        solana.PrivateKey
	Signers      []solana.PrivateKey
	Confirm      bool
	// Accounts are reported in the log and the journal, keyed by role.
	Accounts map[string]solana.PublicKey
}

// Result is what happened to a Request.
type Result struct {
	Signature    solana.Signature    `json:"signature"`
	Status       string              `json:"status"`
	ComputeUnits uint32              `json:"compute_units,omitempty"`
	Tx           *solana.Transaction `json:"-"`
}

// Executor submits requests through a Client and journals every outcome.
type Executor struct {
	client   Client
	recorder journal.Recorder
	log      zerolog.Logger

	ComputeUnitPrice *uint64 // nil leaves the compute budget alone
	DryRun           bool    // build and sign, never send
	now              func() time.Time
}

// NewExecutor wires a client, a journal and a logger together.
func NewExecutor(client Client, recorder journal.Recorder, log zerolog.Logger) *Executor {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Executor{client: client, recorder: recorder, log: log, now: time.Now}
}

// Submit builds, signs and (unless dry-running) sends req, waiting for confirmation when asked.
func (executor *Executor) Submit(ctx context.Context, req Request) (*Result, error) {
	if len(req.Payer) == 0 {
		return nil, errors.New("payer keypair is required")
	}
	executor.logAccounts(req)

	built, err := executor.client.BuildTransaction(ctx, req.Instructions, req.Payer, req.Signers, executor.ComputeUnitPrice)
	if err != nil {
		executor.finish(req, &Result{Status: journal.StatusFailed}, nil, err)
		return nil, err
	}
	res := &Result{Signature: built.Tx.Signatures[0], ComputeUnits: built.ComputeUnits, Tx: built.Tx}
	if executor.DryRun {
		res.Status = journal.StatusDryRun
		executor.finish(req, res, built, nil)
		return res, nil
	}

	sig, err := executor.client.Send(ctx, built.Tx)
	if err != nil {
		res.Status = journal.StatusFailed
		executor.finish(req, res, built, err)
		return nil, err
	}
	res.Signature = sig
	res.Status = journal.StatusSent
	if req.Confirm {
		if err := executor.client.Confirm(ctx, sig); err != nil {
			res.Status = journal.StatusFailed
			executor.finish(req, res, built, err)
			return res, err
		}
		res.Status = journal.StatusConfirmed
	}
	executor.finish(req, res, built, nil)
	return res, nil
}

func (executor *Executor) logAccounts(req Request) {
	names := make([]string, 0, len(req.Accounts))
	for name := range req.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		executor.log.Info().Str("cmd", req.Command).Str(name, req.Accounts[name].String()).Send()
	}
}

func (executor *Executor) finish(req Request, res *Result, built *chain.Built, cause error) {
	metrics.TransactionsTotal.WithLabelValues(req.Command, res.Status).Inc()

	entry := journal.Entry{
		Time:     executor.now().UTC(),
		Command:  req.Command,
		Status:   res.Status,
		Accounts: make(map[string]string, len(req.Accounts)),
	}
	for name, key := range req.Accounts {
		entry.Accounts[name] = key.String()
	}
	if res.Signature != (solana.Signature{}) {
		entry.Signature = res.Signature.String()
	}
	if built != nil {
		entry.ComputeUnits = built.ComputeUnits
		entry.PriorityPrice = built.PriorityPrice
	}
	if cause != nil {
		entry.Error = cause.Error()
	}
	if err := executor.recorder.Record(entry); err != nil {
		executor.log.Warn().Err(err).Msg("journal write failed")
	}

	event := executor.log.Info()
	if cause != nil {
		event = executor.log.Error().Err(cause)
	}
	event.Str("cmd", req.Command).Str("status", res.Status).Str("signature", entry.Signature).Msg("transaction")
}
