package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"governance-addins-go/internal/config"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "vesting", cmd.Use)
	assert.Contains(t, cmd.Long, "vesting addin program")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"deposit", "withdraw", "change-owner", "create-voter-weight-record",
		"set-vote-percentage", "split", "info", "info-owner", "list", "weights", "schedule",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	flags := cmd.PersistentFlags()

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	defaults := map[string]string{
		"url":                   "http://localhost:8899",
		"governance_program_id": "82pQHEmBbW6CQS8GzLP3WE2pCgMUPSW2XzpuSih3aFDk",
		"vesting_program_id":    "Hu548Kzvfo9C9zATuXVpnmxYRUCJxrsXLdiKjxuTczim",
		"output":                "text",
		"commitment":            "confirmed",
		"compute-unit-price":    "0",
		"dry-run":               "false",
	}
	for name, want := range defaults {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, "flag %s", name)
		assert.Equal(t, want, flag.DefValue, "default of --%s", name)
	}
}

func TestDepositConfirmDefaultsToTrue(t *testing.T) {
	cmd := NewRootCommand()
	depositCmd, _, err := cmd.Find([]string{"deposit"})
	require.NoError(t, err)

	confirm := depositCmd.Flags().Lookup("confirm")
	require.NotNil(t, confirm)
	assert.Equal(t, "true", confirm.DefValue)

	for _, name := range []string{"amounts", "release-times", "release-frequency", "start-date-time", "end-date-time"} {
		assert.NotNil(t, depositCmd.Flags().Lookup(name), "deposit should accept --%s", name)
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"invalid output", []string{"weights", "--output", "yaml"}, ExitCommandError},
		{"unknown flag", []string{"weights", "--bogus"}, ExitCommandError},
		{"missing vesting address", []string{"info", "--url", "http://127.0.0.1:0"}, ExitCommandError},
		{"bad pubkey", []string{"info", "--vesting_address", "not-a-key", "--url", "http://127.0.0.1:0"}, ExitCommandError},
		{"bad schedule", []string{"schedule", "--amounts", "1,2", "--release-times", "5"}, ExitCommandError},
		{"missing percentage", []string{"set-vote-percentage"}, ExitCommandError},
		{"frequency longer than window", []string{"schedule", "--amounts", "1000", "--release-frequency", "P1D",
			"--start-date-time", "2022-01-01T00:00:00Z", "--end-date-time", "2022-01-01T12:00:00Z"}, ExitCommandError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := Execute(tc.args, nil, &stdout, &stderr)
			assert.Equal(t, tc.code, code, "stderr: %s", stderr.String())
			assert.Contains(t, stderr.String(), "error:")
		})
	}
}

func TestConfigErrorsAreUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	code := Execute([]string{"weights", "--config", missing}, nil, &stdout, &stderr)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "missing.yaml")

	t.Setenv(config.EnvComputeUnitPrice, "fast")
	stderr.Reset()
	code = Execute([]string{"weights"}, nil, &stdout, &stderr)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), config.EnvComputeUnitPrice)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(usageError("bad %s", "flag")))
	wrapped := WrapExitError(ExitFailure, "rpc", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "rpc: "+assert.AnError.Error(), wrapped.Error())
}

func TestParseUintList(t *testing.T) {
	got, err := parseUintList("amounts", []string{"1", "2", "3", "!"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got)

	got, err = parseUintList("amounts", []string{"4", "5!", "6"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 5}, got)

	_, err = parseUintList("amounts", []string{"x"})
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
