package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gorilla/websocket"

	"governance-addins-go/internal/metrics"
)

type dialError struct{ err error }

func (e *dialError) Error() string { return "websocket dial: " + e.err.Error() }
func (e *dialError) Unwrap() error { return e.err }

func isDialError(err error) bool {
	var de *dialError
	return errors.As(err, &de)
}

type wsRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type wsError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type wsEnvelope struct {
	ID     *int            `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *wsError        `json:"error"`
	Method string          `json:"method"`
	Params *struct {
		Subscription uint64 `json:"subscription"`
		Result       struct {
			Value struct {
				Err any `json:"err"`
			} `json:"value"`
		} `json:"result"`
	} `json:"params"`
}

const subscribeID = 1

// waitWebsocket subscribes to sig and returns once the node notifies the target commitment.
func (c *Client) waitWebsocket(ctx context.Context, sig solana.Signature, target rpc.CommitmentType) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.WSURL, nil)
	metrics.ObserveRPC("signatureSubscribe", err)
	if err != nil {
		return &dialError{err: err}
	}
	defer conn.Close()

	conn.SetReadLimit(1 << 20)
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	})

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
			case <-watchCtx.Done():
				// unblocks ReadMessage
				_ = conn.Close()
				return
			}
		}
	}()

	req := wsRequest{
		JSONRPC: "2.0",
		ID:      subscribeID,
		Method:  "signatureSubscribe",
		Params:  []any{sig.String(), map[string]string{"commitment": string(target)}},
	}
	if err := conn.WriteJSON(req); err != nil {
		return &dialError{err: err}
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("confirm %s: %w", sig, ctx.Err())
			}
			return fmt.Errorf("confirm %s: %w", sig, err)
		}
		var env wsEnvelope
		if err := json.Unmarshal(message, &env); err != nil {
			c.log.Warn().Err(err).Msg("failed to decode websocket message")
			continue
		}
		switch {
		case env.ID != nil && *env.ID == subscribeID:
			if env.Error != nil {
				return fmt.Errorf("signatureSubscribe: %s (%d)", env.Error.Message, env.Error.Code)
			}
			// the transaction may have landed before the subscription existed
			if done, err := c.signatureStatus(ctx, sig, target); done || err != nil {
				return err
			}
		case env.Method == "signatureNotification" && env.Params != nil:
			if txErr := env.Params.Result.Value.Err; txErr != nil {
				return fmt.Errorf("transaction %s failed: %v", sig, txErr)
			}
			return nil
		}
	}
}
