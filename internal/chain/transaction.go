package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"governance-addins-go/internal/budget"
	"governance-addins-go/internal/metrics"
)

// Built is a signed transaction ready for submission.
type Built struct {
	Tx            *solana.Transaction
	Blockhash     solana.Hash
	ComputeUnits  uint32 // zero when no compute budget was requested
	PriorityPrice uint64
}

// BuildTransaction fetches a blockhash, optionally prices compute via simulation, and signs
// with the payer plus every extra signer. computeUnitPrice nil leaves the budget untouched.
func (c *Client) BuildTransaction(ctx context.Context, instrs []solana.Instruction, payer solana.PrivateKey, signers []solana.PrivateKey, computeUnitPrice *uint64) (*Built, error) {
	if len(instrs) == 0 {
		return nil, errors.New("no instructions to submit")
	}
	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	built := &Built{Blockhash: blockhash}
	all := instrs
	if computeUnitPrice != nil {
		consumed, err := c.simulateUnits(ctx, instrs, payer.PublicKey(), blockhash)
		if err != nil {
			return nil, err
		}
		units := budget.Estimate(consumed)
		if err := c.Limits.Allow(units, *computeUnitPrice); err != nil {
			return nil, err
		}
		metrics.ComputeUnitsEstimated.Observe(float64(units))
		c.log.Debug().Uint64("consumed", consumed).Uint32("limit", units).Uint64("price", *computeUnitPrice).Msg("compute budget")
		all = make([]solana.Instruction, 0, len(instrs)+2)
		all = append(all, budget.SetComputeUnitLimit(units), budget.SetComputeUnitPrice(*computeUnitPrice))
		all = append(all, instrs...)
		built.ComputeUnits = units
		built.PriorityPrice = *computeUnitPrice
	}

	tx, err := solana.NewTransaction(all, blockhash, solana.TransactionPayer(payer.PublicKey()))
	if err != nil {
		return nil, fmt.Errorf("new transaction: %w", err)
	}
	if err := Sign(tx, append([]solana.PrivateKey{payer}, signers...)); err != nil {
		return nil, err
	}
	built.Tx = tx
	return built, nil
}

func (c *Client) simulateUnits(ctx context.Context, instrs []solana.Instruction, payer solana.PublicKey, blockhash solana.Hash) (uint64, error) {
	tx, err := solana.NewTransaction(instrs, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return 0, fmt.Errorf("new transaction: %w", err)
	}
	// unsigned: placeholder signatures, the node skips verification
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)

	out, err := c.RPC.SimulateTransactionWithOpts(ctx, tx, &rpc.SimulateTransactionOpts{
		SigVerify:  false,
		Commitment: c.Commit,
	})
	metrics.ObserveRPC("simulateTransaction", err)
	if err != nil {
		return 0, fmt.Errorf("simulate transaction to get consumed compute units: %w", err)
	}
	if out == nil || out.Value == nil {
		return 0, errors.New("simulate transaction: empty response")
	}
	if out.Value.Err != nil {
		return 0, fmt.Errorf("simulation failed: %v\n%s", out.Value.Err, strings.Join(out.Value.Logs, "\n"))
	}
	if out.Value.UnitsConsumed == nil {
		return 0, errors.New("can't estimate compute units")
	}
	return *out.Value.UnitsConsumed, nil
}

// Sign signs tx with every key in keys; duplicates are fine and extra keys are ignored.
func Sign(tx *solana.Transaction, keys []solana.PrivateKey) error {
	byPub := make(map[solana.PublicKey]solana.PrivateKey, len(keys))
	for _, k := range keys {
		if len(k) == 0 {
			continue
		}
		byPub[k.PublicKey()] = k
	}
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if k, ok := byPub[key]; ok {
			return &k
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	return nil
}
