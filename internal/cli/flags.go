package cli

import (
	"strconv"
	"strings"

	solana "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/vesting"
)

// parsePubkey reads a required base58 address flag.
func parsePubkey(flag, value string) (solana.PublicKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return solana.PublicKey{}, usageError("--%s is required", flag)
	}
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, WrapExitError(ExitCommandError, "invalid --"+flag, err)
	}
	return key, nil
}

// parseOptionalPubkey returns nil for an empty flag.
func parseOptionalPubkey(flag, value string) (*solana.PublicKey, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	key, err := parsePubkey(flag, value)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// parseUintList parses comma separated integers. A "!" terminates the list, so both
// "1,2,3,!" and "1,2,3!" are accepted.
func parseUintList(flag string, values []string) ([]uint64, error) {
	out := make([]uint64, 0, len(values))
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		end := strings.HasSuffix(raw, "!")
		raw = strings.TrimSuffix(raw, "!")
		if raw != "" {
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, WrapExitError(ExitCommandError, "invalid --"+flag, err)
			}
			out = append(out, v)
		}
		if end {
			break
		}
	}
	return out, nil
}

// scheduleFlags are the flags shared by every command that takes a release schedule.
type scheduleFlags struct {
	amounts      []string
	releaseTimes []string
	frequency    string
	start        string
	end          string
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.amounts, "amounts", nil,
		"Amounts of tokens to lock, comma separated for multiple schedules (e.g. 1,2,3,!)")
	cmd.Flags().StringSliceVar(&f.releaseTimes, "release-times", nil,
		"Unix timestamps at which each amount unlocks, comma separated (e.g. 1,2,3,!)")
	cmd.Flags().StringVar(&f.frequency, "release-frequency", "",
		"Linear vesting: ISO 8601 duration between releases, e.g. P1D")
	cmd.Flags().StringVar(&f.start, "start-date-time", "",
		"Linear vesting: first release, RFC 3339 (e.g. 2022-01-06T20:11:18Z)")
	cmd.Flags().StringVar(&f.end, "end-date-time", "",
		"Linear vesting: last release, RFC 3339")
}

func (f *scheduleFlags) schedules() ([]vesting.Schedule, error) {
	amounts, err := parseUintList("amounts", f.amounts)
	if err != nil {
		return nil, err
	}
	if len(amounts) == 0 {
		return nil, usageError("--amounts is required")
	}
	times, err := parseUintList("release-times", f.releaseTimes)
	if err != nil {
		return nil, err
	}
	schedules, err := vesting.ParseSchedules(vesting.ScheduleInput{
		Amounts:          amounts,
		ReleaseTimes:     times,
		ReleaseFrequency: f.frequency,
		Start:            f.start,
		End:              f.end,
	})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid schedule", err)
	}
	return schedules, nil
}
