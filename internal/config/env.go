package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvRPCURL           = "VESTING_RPC_URL"
	EnvWSURL            = "VESTING_WS_URL"
	EnvCommitment       = "VESTING_COMMITMENT"
	EnvComputeUnitPrice = "VESTING_COMPUTE_UNIT_PRICE"
	EnvKeypair          = "VESTING_KEYPAIR"
)

// ApplyEnv loads .env (best-effort) and overlays any set variables onto cfg. A set but
// malformed value is an error.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()
	cfg.RPC.URL = getEnv(EnvRPCURL, cfg.RPC.URL)
	cfg.RPC.WSURL = getEnv(EnvWSURL, cfg.RPC.WSURL)
	cfg.RPC.Commitment = getEnv(EnvCommitment, cfg.RPC.Commitment)
	cfg.Wallet.Keypair = getEnv(EnvKeypair, cfg.Wallet.Keypair)
	if v := os.Getenv(EnvComputeUnitPrice); v != "" {
		price, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvComputeUnitPrice, err)
		}
		cfg.Budget.ComputeUnitPrice = price
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
