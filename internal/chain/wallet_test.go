package chain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	solana "github.com/gagliardetto/solana-go"
)

func TestLoadPrivateKeyFromEnv(t *testing.T) {
	wallet := solana.NewWallet()
	t.Setenv(DefaultKeyEnv, wallet.PrivateKey.String())

	key, err := LoadPrivateKeyFromEnv()
	if err != nil {
		t.Fatalf("expected key, got error: %v", err)
	}
	if !key.PublicKey().Equals(wallet.PublicKey()) {
		t.Fatalf("expected public key %s, got %s", wallet.PublicKey(), key.PublicKey())
	}
}

func TestLoadPrivateKeyFromEnvMissing(t *testing.T) {
	t.Setenv(DefaultKeyEnv, "")
	if _, err := LoadPrivateKeyFromEnv(); err == nil {
		t.Fatalf("expected error when env missing")
	}
}

func writeKeygenFile(t *testing.T, key solana.PrivateKey) string {
	t.Helper()
	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		t.Fatalf("marshal keypair: %v", err)
	}
	path := filepath.Join(t.TempDir(), "id.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write keypair: %v", err)
	}
	return path
}

func TestResolveSignerSources(t *testing.T) {
	wallet := solana.NewWallet()

	fromFile, err := ResolveSigner(writeKeygenFile(t, wallet.PrivateKey), Prompt{})
	if err != nil {
		t.Fatalf("file signer: %v", err)
	}
	if !fromFile.PublicKey().Equals(wallet.PublicKey()) {
		t.Fatalf("file signer mismatch")
	}

	t.Setenv("PAYER_KEY", wallet.PrivateKey.String())
	fromEnv, err := ResolveSigner("env:PAYER_KEY", Prompt{})
	if err != nil {
		t.Fatalf("env signer: %v", err)
	}
	if !fromEnv.PublicKey().Equals(wallet.PublicKey()) {
		t.Fatalf("env signer mismatch")
	}

	var out strings.Builder
	asked, err := ResolveSigner(AskKeyword, Prompt{In: strings.NewReader(wallet.PrivateKey.String() + "\n"), Out: &out})
	if err != nil {
		t.Fatalf("ASK signer: %v", err)
	}
	if !asked.PublicKey().Equals(wallet.PublicKey()) {
		t.Fatalf("ASK signer mismatch")
	}
	if !strings.Contains(out.String(), "private key") {
		t.Fatalf("expected prompt text, got %q", out.String())
	}
}

func TestResolveSignerTwoAsksShareInput(t *testing.T) {
	first, second := solana.NewWallet(), solana.NewWallet()
	input := first.PrivateKey.String() + "\n" + second.PrivateKey.String() + "\n"

	prompt := NewPrompt(strings.NewReader(input), nil)
	for i, want := range []solana.PublicKey{first.PublicKey(), second.PublicKey()} {
		key, err := ResolveSigner(AskKeyword, prompt)
		if err != nil {
			t.Fatalf("ASK %d: %v", i, err)
		}
		if !key.PublicKey().Equals(want) {
			t.Fatalf("ASK %d resolved %s, want %s", i, key.PublicKey(), want)
		}
	}

	// without NewPrompt the reader must not be drained past the first line either
	raw := Prompt{In: strings.NewReader(input)}
	if _, err := ResolveSigner(AskKeyword, raw); err != nil {
		t.Fatalf("first unbuffered ASK: %v", err)
	}
	key, err := ResolveSigner(AskKeyword, raw)
	if err != nil {
		t.Fatalf("second unbuffered ASK: %v", err)
	}
	if !key.PublicKey().Equals(second.PublicKey()) {
		t.Fatalf("second unbuffered ASK resolved %s", key.PublicKey())
	}
}

func TestResolveSignerErrors(t *testing.T) {
	if _, err := ResolveSigner("", Prompt{}); err == nil {
		t.Fatalf("expected error for empty source")
	}
	if _, err := ResolveSigner(filepath.Join(t.TempDir(), "missing.json"), Prompt{}); err == nil {
		t.Fatalf("expected error for missing keypair file")
	}
	if _, err := ResolveSigner(AskKeyword, Prompt{}); err == nil {
		t.Fatalf("expected error for ASK without input")
	}
	if _, err := ResolveSigner(AskKeyword, Prompt{In: strings.NewReader("\n")}); err == nil {
		t.Fatalf("expected error for empty ASK answer")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.config/solana/id.json")
	if err != nil {
		t.Fatalf("expandHome returned error: %v", err)
	}
	if got != filepath.Join(home, ".config/solana/id.json") {
		t.Fatalf("unexpected expansion %s", got)
	}
	if got, _ := expandHome("/abs/id.json"); got != "/abs/id.json" {
		t.Fatalf("absolute paths must pass through, got %s", got)
	}
}
