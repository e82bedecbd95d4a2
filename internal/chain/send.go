package chain

import (
	"context"
	"fmt"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"governance-addins-go/internal/metrics"
)

// Send submits tx with preflight checks and returns its signature without waiting.
func (c *Client) Send(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.RPC.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: c.Commit,
	})
	metrics.ObserveRPC("sendTransaction", err)
	if err != nil {
		return sig, fmt.Errorf("send transaction: %w", err)
	}
	return sig, nil
}

// SendAndConfirm submits tx and blocks until it reaches confirmed (or finalized) commitment.
func (c *Client) SendAndConfirm(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.Send(ctx, tx)
	if err != nil {
		return sig, err
	}
	return sig, c.Confirm(ctx, sig)
}

// Confirm waits for sig. A websocket subscription is used when a ws endpoint is configured;
// if it cannot be established the status is polled instead.
func (c *Client) Confirm(ctx context.Context, sig solana.Signature) error {
	target := c.confirmTarget()
	if c.WSURL != "" {
		err := c.waitWebsocket(ctx, sig, target)
		if err == nil || !isDialError(err) {
			return err
		}
		c.log.Warn().Err(err).Msg("websocket confirmation unavailable, polling")
	}
	return c.waitPolling(ctx, sig, target)
}

func (c *Client) confirmTarget() rpc.CommitmentType {
	if c.Commit == rpc.CommitmentFinalized {
		return rpc.CommitmentFinalized
	}
	return rpc.CommitmentConfirmed
}

// signatureStatus returns done=true once sig reached target, or the on-chain error.
func (c *Client) signatureStatus(ctx context.Context, sig solana.Signature, target rpc.CommitmentType) (bool, error) {
	out, err := c.RPC.GetSignatureStatuses(ctx, false, sig)
	metrics.ObserveRPC("getSignatureStatuses", err)
	if err != nil {
		c.log.Debug().Err(err).Msg("signature status")
		return false, nil
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return false, nil
	}
	status := out.Value[0]
	if status.Err != nil {
		return true, fmt.Errorf("transaction %s failed: %v", sig, status.Err)
	}
	return reached(status.ConfirmationStatus, target), nil
}

func (c *Client) waitPolling(ctx context.Context, sig solana.Signature, target rpc.CommitmentType) error {
	interval := c.PollInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		done, err := c.signatureStatus(ctx, sig, target)
		if done || err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("confirm %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

var commitmentRank = map[rpc.ConfirmationStatusType]int{
	rpc.ConfirmationStatusProcessed: 0,
	rpc.ConfirmationStatusConfirmed: 1,
	rpc.ConfirmationStatusFinalized: 2,
}

func reached(status rpc.ConfirmationStatusType, target rpc.CommitmentType) bool {
	rank, ok := commitmentRank[status]
	if !ok {
		return false
	}
	want := commitmentRank[rpc.ConfirmationStatusConfirmed]
	if target == rpc.CommitmentFinalized {
		want = commitmentRank[rpc.ConfirmationStatusFinalized]
	}
	return rank >= want
}
