// Package chaintest serves a minimal in-process ledger JSON-RPC endpoint for tests.
package chaintest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gorilla/websocket"
	"github.com/mr-tron/base58"
)

// Account is the state the fake returns for an address.
type Account struct {
	Owner solana.PublicKey
	Data  []byte
}

// Server answers the RPC subset used by the vesting CLI.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	accounts      map[solana.PublicKey]Account
	calls         []string
	sent          []*solana.Transaction
	Blockhash     solana.Hash
	UnitsConsumed uint64
	SimulateErr   any
	TxErr         any  // reported by getSignatureStatuses and notifications
	Pending       bool // getSignatureStatuses reports nothing yet
}

type request struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// NewServer starts the fake; HTTP JSON-RPC at URL, websocket at WSURL().
func NewServer() *Server {
	s := &Server{
		accounts:      make(map[solana.PublicKey]Account),
		Blockhash:     solana.HashFromBytes(bytes.Repeat([]byte{7}, 32)),
		UnitsConsumed: 5_000,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/", s.serveRPC)
	s.Server = httptest.NewServer(mux)
	return s
}

// WSURL returns the websocket endpoint of the fake.
func (s *Server) WSURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http") + "/ws"
}

// SetAccount stores data at addr owned by owner.
func (s *Server) SetAccount(addr, owner solana.PublicKey, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[addr] = Account{Owner: owner, Data: append([]byte(nil), data...)}
}

// Calls returns the RPC methods invoked so far, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Sent returns every transaction submitted through sendTransaction.
func (s *Server) Sent() []*solana.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*solana.Transaction(nil), s.sent...)
}

func (s *Server) serveRPC(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.calls = append(s.calls, req.Method)
	s.mu.Unlock()

	result, rpcErr := s.dispatch(req)
	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if rpcErr != "" {
		resp["error"] = map[string]any{"code": -32602, "message": rpcErr}
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func rpcContext() map[string]any { return map[string]any{"slot": 1} }

func (s *Server) dispatch(req request) (any, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Method {
	case "getLatestBlockhash":
		return map[string]any{
			"context": rpcContext(),
			"value":   map[string]any{"blockhash": s.Blockhash.String(), "lastValidBlockHeight": 100},
		}, ""
	case "simulateTransaction":
		return map[string]any{
			"context": rpcContext(),
			"value":   map[string]any{"err": s.SimulateErr, "logs": []string{}, "unitsConsumed": s.UnitsConsumed},
		}, ""
	case "sendTransaction":
		tx, msg := decodeTx(req.Params)
		if msg != "" {
			return nil, msg
		}
		s.sent = append(s.sent, tx)
		return tx.Signatures[0].String(), ""
	case "getSignatureStatuses":
		if s.Pending {
			return map[string]any{"context": rpcContext(), "value": []any{nil}}, ""
		}
		return map[string]any{
			"context": rpcContext(),
			"value": []any{map[string]any{
				"slot": 1, "confirmations": nil, "err": s.TxErr, "confirmationStatus": "finalized",
			}},
		}, ""
	case "getAccountInfo":
		addr, msg := decodeKey(req.Params)
		if msg != "" {
			return nil, msg
		}
		acct, ok := s.accounts[addr]
		if !ok {
			return map[string]any{"context": rpcContext(), "value": nil}, ""
		}
		return map[string]any{"context": rpcContext(), "value": encodeAccount(acct)}, ""
	case "getProgramAccounts":
		return s.programAccounts(req.Params)
	}
	return nil, "method not supported: " + req.Method
}

func (s *Server) programAccounts(params []json.RawMessage) (any, string) {
	program, msg := decodeKey(params)
	if msg != "" {
		return nil, msg
	}
	var opts struct {
		Filters []struct {
			Memcmp *struct {
				Offset uint64 `json:"offset"`
				Bytes  string `json:"bytes"`
			} `json:"memcmp"`
		} `json:"filters"`
	}
	if len(params) > 1 {
		if err := json.Unmarshal(params[1], &opts); err != nil {
			return nil, err.Error()
		}
	}
	out := []any{}
	for addr, acct := range s.accounts {
		if !acct.Owner.Equals(program) || !matches(acct.Data, opts.Filters) {
			continue
		}
		out = append(out, map[string]any{"pubkey": addr.String(), "account": encodeAccount(acct)})
	}
	return out, ""
}

func matches(data []byte, filters []struct {
	Memcmp *struct {
		Offset uint64 `json:"offset"`
		Bytes  string `json:"bytes"`
	} `json:"memcmp"`
}) bool {
	for _, f := range filters {
		if f.Memcmp == nil {
			continue
		}
		want, err := base58.Decode(f.Memcmp.Bytes)
		if err != nil {
			return false
		}
		end := f.Memcmp.Offset + uint64(len(want))
		if uint64(len(data)) < end || !bytes.Equal(data[f.Memcmp.Offset:end], want) {
			return false
		}
	}
	return true
}

func encodeAccount(acct Account) map[string]any {
	return map[string]any{
		"data":       []string{base64.StdEncoding.EncodeToString(acct.Data), "base64"},
		"executable": false,
		"lamports":   2_039_280,
		"owner":      acct.Owner.String(),
		"rentEpoch":  0,
	}
}

func decodeKey(params []json.RawMessage) (solana.PublicKey, string) {
	if len(params) == 0 {
		return solana.PublicKey{}, "missing params"
	}
	var raw string
	if err := json.Unmarshal(params[0], &raw); err != nil {
		return solana.PublicKey{}, err.Error()
	}
	key, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, err.Error()
	}
	return key, ""
}

func decodeTx(params []json.RawMessage) (*solana.Transaction, string) {
	if len(params) == 0 {
		return nil, "missing params"
	}
	var encoded string
	if err := json.Unmarshal(params[0], &encoded); err != nil {
		return nil, err.Error()
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err.Error()
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, err.Error()
	}
	if len(tx.Signatures) == 0 {
		return nil, "transaction is not signed"
	}
	return tx, ""
}

var upgrader = websocket.Upgrader{}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req request
	if err := conn.ReadJSON(&req); err != nil {
		return
	}
	const subscription = 7
	_ = conn.WriteJSON(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": subscription})

	s.mu.Lock()
	txErr := s.TxErr
	s.mu.Unlock()
	_ = conn.WriteJSON(map[string]any{
		"jsonrpc": "2.0",
		"method":  "signatureNotification",
		"params": map[string]any{
			"subscription": subscription,
			"result": map[string]any{
				"context": rpcContext(),
				"value":   map[string]any{"err": txErr},
			},
		},
	})
	// wait for the client to hang up
	_, _, _ = conn.ReadMessage()
}
