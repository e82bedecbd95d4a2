// Package chain wraps the ledger RPC calls the vesting CLI depends on.
package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"governance-addins-go/internal/budget"
	"governance-addins-go/internal/metrics"
)

// ErrAccountNotFound is returned when an account does not exist or holds no data.
var ErrAccountNotFound = errors.New("account not found")

// Client issues blocking RPC calls against one ledger endpoint.
type Client struct {
	RPC          *rpc.Client
	WSURL        string
	Commit       rpc.CommitmentType
	Limits       budget.Limits
	PollInterval time.Duration
	log          zerolog.Logger
}

// NewClient builds a client for rpcURL; wsURL is optional and enables websocket confirmation.
func NewClient(rpcURL, wsURL, commit string, log zerolog.Logger) *Client {
	return &Client{
		RPC:          rpc.New(rpcURL),
		WSURL:        wsURL,
		Commit:       ParseCommitment(commit),
		PollInterval: 500 * time.Millisecond,
		log:          log,
	}
}

// ParseCommitment maps processed|confirmed|finalized onto the RPC type; anything else is confirmed.
func ParseCommitment(commit string) rpc.CommitmentType {
	switch strings.ToLower(commit) {
	case "processed":
		return rpc.CommitmentProcessed
	case "finalized":
		return rpc.CommitmentFinalized
	}
	return rpc.CommitmentConfirmed
}

// LatestBlockhash fetches the recent blockhash transactions are built against.
func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.RPC.GetLatestBlockhash(ctx, c.Commit)
	metrics.ObserveRPC("getLatestBlockhash", err)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	if out == nil || out.Value == nil {
		return solana.Hash{}, errors.New("get latest blockhash: empty response")
	}
	return out.Value.Blockhash, nil
}

// AccountData returns the raw data of addr.
func (c *Client) AccountData(ctx context.Context, addr solana.PublicKey) ([]byte, error) {
	out, err := c.RPC.GetAccountInfoWithOpts(ctx, addr, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: c.Commit,
	})
	metrics.ObserveRPC("getAccountInfo", err)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", addr, ErrAccountNotFound)
		}
		return nil, fmt.Errorf("get account %s: %w", addr, err)
	}
	if out == nil || out.Value == nil || out.Value.Data == nil {
		return nil, fmt.Errorf("%s: %w", addr, ErrAccountNotFound)
	}
	data := out.Value.Data.GetBinary()
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", addr, ErrAccountNotFound)
	}
	return data, nil
}

// KeyedData is one program account returned by a scan.
type KeyedData struct {
	Address solana.PublicKey
	Data    []byte
}

// ProgramAccounts scans accounts owned by program whose data starts with prefix.
func (c *Client) ProgramAccounts(ctx context.Context, program solana.PublicKey, prefix []byte) ([]KeyedData, error) {
	opts := &rpc.GetProgramAccountsOpts{
		Commitment: c.Commit,
		Encoding:   solana.EncodingBase64,
	}
	if len(prefix) > 0 {
		opts.Filters = []rpc.RPCFilter{{
			Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: solana.Base58(prefix)},
		}}
	}
	out, err := c.RPC.GetProgramAccountsWithOpts(ctx, program, opts)
	metrics.ObserveRPC("getProgramAccounts", err)
	if err != nil {
		return nil, fmt.Errorf("get program accounts of %s: %w", program, err)
	}
	accounts := make([]KeyedData, 0, len(out))
	for _, ka := range out {
		if ka == nil || ka.Account == nil || ka.Account.Data == nil {
			continue
		}
		accounts = append(accounts, KeyedData{Address: ka.Pubkey, Data: ka.Account.Data.GetBinary()})
	}
	return accounts, nil
}
