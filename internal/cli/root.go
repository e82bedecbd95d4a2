// Package cli implements the vesting command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"governance-addins-go/internal/config"
	"governance-addins-go/internal/report"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath          string
	Verbose             bool
	Output              string // "text" | "json"
	URL                 string
	WSURL               string
	Commitment          string
	ComputeUnitPrice    uint64
	GovernanceProgramID string
	VestingProgramID    string
	Journal             string
	MetricsFile         string
	DryRun              bool

	// Stdin feeds ASK signer prompts; nil means os.Stdin.
	Stdin io.Reader
}

// NewRootCommand creates the root command of the vesting CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "vesting",
		Short: "Governance vesting addin command line client",
		Long: `Build and submit transactions for the governance vesting addin program:
lock tokens under a release schedule, withdraw matured amounts, move or split
vesting records, manage voter weight records and inspect locked tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !report.IsValidFormat(opts.Output) {
				return usageError("invalid output %q: must be one of %v", opts.Output, report.ValidFormats)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	})

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Show additional information")
	flags.StringVar(&opts.Output, "output", report.FormatText, "output format (text|json)")
	flags.StringVar(&opts.URL, "url", config.DefaultRPCURL, "Specify the url of the rpc client (solana network).")
	flags.StringVar(&opts.WSURL, "ws-url", "", "websocket endpoint used to await confirmations")
	flags.StringVar(&opts.Commitment, "commitment", config.DefaultCommitment, "processed|confirmed|finalized")
	flags.Uint64Var(&opts.ComputeUnitPrice, "compute-unit-price", 0,
		"Set compute unit price for transaction, integer in increments of 1/1000000 lamports per compute unit.")
	flags.StringVar(&opts.GovernanceProgramID, "governance_program_id", config.DefaultGovernanceProgramID,
		"Specify the address (public key) of the governance program.")
	flags.StringVar(&opts.VestingProgramID, "vesting_program_id", config.DefaultVestingProgramID,
		"Specify the address (public key) of the vesting addin program.")
	flags.StringVar(&opts.Journal, "journal", "", "record submitted transactions to this file (.jsonl or .db)")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "build and sign transactions without sending them")

	// Add subcommands
	cmd.AddCommand(NewDepositCommand(opts))
	cmd.AddCommand(NewWithdrawCommand(opts))
	cmd.AddCommand(NewChangeOwnerCommand(opts))
	cmd.AddCommand(NewCreateVoterWeightRecordCommand(opts))
	cmd.AddCommand(NewSetVotePercentageCommand(opts))
	cmd.AddCommand(NewSplitCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewInfoOwnerCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewWeightsCommand(opts))
	cmd.AddCommand(NewScheduleCommand(opts))

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
