package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected App.LogLevel: %s", cfg.App.LogLevel)
	}
	if cfg.App.Output != "json" {
		t.Fatalf("unexpected App.Output: %s", cfg.App.Output)
	}
	if cfg.App.JournalPath != "runs/journal.jsonl" {
		t.Fatalf("unexpected App.JournalPath: %s", cfg.App.JournalPath)
	}
	if cfg.RPC.URL != "https://api.devnet.solana.com" {
		t.Fatalf("unexpected RPC.URL: %s", cfg.RPC.URL)
	}
	if cfg.RPC.WSURL != "wss://api.devnet.solana.com" {
		t.Fatalf("unexpected RPC.WSURL: %s", cfg.RPC.WSURL)
	}
	if cfg.RPC.Commitment != "finalized" {
		t.Fatalf("expected finalized commitment, got %s", cfg.RPC.Commitment)
	}
	if cfg.RPC.TimeoutSecs != 30 {
		t.Fatalf("unexpected RPC.TimeoutSecs: %d", cfg.RPC.TimeoutSecs)
	}
	if cfg.Programs.Vesting != "5pCNSb4tGe6GxQjx9GVGE5MEYwFXWwh8pn6AC9zbMx9g" {
		t.Fatalf("unexpected vesting program: %s", cfg.Programs.Vesting)
	}
	if cfg.Programs.Governance != DefaultGovernanceProgramID {
		t.Fatalf("expected default governance program, got %s", cfg.Programs.Governance)
	}
	if cfg.Budget.ComputeUnitPrice != 1500 {
		t.Fatalf("unexpected compute unit price: %d", cfg.Budget.ComputeUnitPrice)
	}
	if cfg.Budget.MaxPriorityFeeLamports != 50000 {
		t.Fatalf("unexpected max priority fee: %d", cfg.Budget.MaxPriorityFeeLamports)
	}
	if cfg.Wallet.Keypair != "~/.config/solana/id.json" {
		t.Fatalf("unexpected keypair path: %s", cfg.Wallet.Keypair)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional("")
	if err != nil {
		t.Fatalf("LoadOptional returned error: %v", err)
	}
	if cfg.RPC.URL != DefaultRPCURL || cfg.Programs.Vesting != DefaultVestingProgramID {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.RPC.TimeoutSecs != DefaultTimeoutSecs {
		t.Fatalf("expected default timeout, got %d", cfg.RPC.TimeoutSecs)
	}

	_, err = LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a named missing file to fail, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Budget.ComputeUnitPrice = 42
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Budget.ComputeUnitPrice != 42 {
		t.Fatalf("expected compute unit price 42, got %d", loaded.Budget.ComputeUnitPrice)
	}
	if err := Save(path, nil); err == nil {
		t.Fatalf("expected error saving nil config")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRPCURL, "https://rpc.example")
	t.Setenv(EnvComputeUnitPrice, "777")
	t.Setenv(EnvCommitment, "")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv returned error: %v", err)
	}
	if cfg.RPC.URL != "https://rpc.example" {
		t.Fatalf("expected env rpc url, got %s", cfg.RPC.URL)
	}
	if cfg.Budget.ComputeUnitPrice != 777 {
		t.Fatalf("expected env compute unit price, got %d", cfg.Budget.ComputeUnitPrice)
	}
	if cfg.RPC.Commitment != DefaultCommitment {
		t.Fatalf("empty env must not override commitment, got %s", cfg.RPC.Commitment)
	}
}

func TestApplyEnvRejectsMalformedPrice(t *testing.T) {
	t.Setenv(EnvComputeUnitPrice, "12abc")

	cfg := Default()
	if err := ApplyEnv(cfg); err == nil {
		t.Fatalf("expected malformed %s to fail", EnvComputeUnitPrice)
	}
	if cfg.Budget.ComputeUnitPrice != 0 {
		t.Fatalf("malformed price must not be applied, got %d", cfg.Budget.ComputeUnitPrice)
	}
}
