// Package config exposes strongly typed CLI configuration loaded from YAML and the environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRPCURL              = "http://localhost:8899"
	DefaultCommitment          = "confirmed"
	DefaultGovernanceProgramID = "82pQHEmBbW6CQS8GzLP3WE2pCgMUPSW2XzpuSih3aFDk"
	DefaultVestingProgramID    = "Hu548Kzvfo9C9zATuXVpnmxYRUCJxrsXLdiKjxuTczim"
	DefaultTimeoutSecs         = 60
)

// App captures process-wide settings such as logging and output.
type App struct {
	LogLevel    string `yaml:"log_level"`
	Output      string `yaml:"output"` // text|json
	JournalPath string `yaml:"journal_path"`
	MetricsFile string `yaml:"metrics_file"`
}

// RPC describes the ledger endpoint the CLI talks to.
type RPC struct {
	URL         string `yaml:"url"`
	WSURL       string `yaml:"ws_url"`
	Commitment  string `yaml:"commitment"` // processed|confirmed|finalized
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// Programs holds the on-chain program ids the CLI targets.
type Programs struct {
	Governance string `yaml:"governance"`
	Vesting    string `yaml:"vesting"`
}

// Budget configures compute unit pricing and its guard-rails.
type Budget struct {
	ComputeUnitPrice       uint64 `yaml:"compute_unit_price"` // micro-lamports, 0 disables
	MaxComputeUnitPrice    uint64 `yaml:"max_compute_unit_price"`
	MaxPriorityFeeLamports uint64 `yaml:"max_priority_fee_lamports"`
}

// Wallet points at default signing material.
type Wallet struct {
	Keypair string `yaml:"keypair"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	RPC      RPC      `yaml:"rpc"`
	Programs Programs `yaml:"programs"`
	Budget   Budget   `yaml:"budget"`
	Wallet   Wallet   `yaml:"wallet"`
}

// Default returns a config pointing at a local validator with the mainnet program ids.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.Output == "" {
		c.App.Output = "text"
	}
	if c.RPC.URL == "" {
		c.RPC.URL = DefaultRPCURL
	}
	if c.RPC.Commitment == "" {
		c.RPC.Commitment = DefaultCommitment
	}
	if c.RPC.TimeoutSecs <= 0 {
		c.RPC.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.Programs.Governance == "" {
		c.Programs.Governance = DefaultGovernanceProgramID
	}
	if c.Programs.Vesting == "" {
		c.Programs.Vesting = DefaultVestingProgramID
	}
}

// Load reads a YAML file from disk and hydrates a Config struct with defaults applied.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	config.applyDefaults()
	return &config, nil
}

// LoadOptional returns defaults when no path is given and behaves like Load otherwise;
// a named file that does not exist is an error.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
