package cli

import (
	"context"

	solana "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/report"
	"governance-addins-go/internal/vesting"
)

type splitOptions struct {
	payer           string
	vestingOwner    string
	vesting         string
	newVestingOwner string
	confirm         bool
	schedule        scheduleFlags
}

// NewSplitCommand creates the split command.
func NewSplitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &splitOptions{}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Move remaining vesting to another account using a new release schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				return runSplit(ctx, s, opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.payer, "payer", "",
		"Specify the transaction fee payer account address. This may be a keypair file, the ASK keyword.")
	cmd.Flags().StringVar(&opts.vestingOwner, "vesting_owner", "",
		"Specify the vesting owner account address. This may be a keypair file, the ASK keyword.")
	cmd.Flags().StringVar(&opts.vesting, "vesting_address", "", "Specify the vesting token address (publickey).")
	cmd.Flags().StringVar(&opts.newVestingOwner, "new_vesting_owner", "", "Specify the new vesting owner address (publickey).")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "wait for the transaction to be confirmed")
	opts.schedule.register(cmd)
	return cmd
}

func runSplit(ctx context.Context, s *session, opts *splitOptions) error {
	vestingToken, err := parsePubkey("vesting_address", opts.vesting)
	if err != nil {
		return err
	}
	newOwner, err := parsePubkey("new_vesting_owner", opts.newVestingOwner)
	if err != nil {
		return err
	}
	schedules, err := opts.schedule.schedules()
	if err != nil {
		return err
	}
	owner, err := s.signer("vesting_owner", opts.vestingOwner)
	if err != nil {
		return err
	}
	payer, err := s.payer(opts.payer, owner)
	if err != nil {
		return err
	}

	vestingAccount, rec, err := s.record(ctx, vestingToken)
	if err != nil {
		return err
	}
	newVestingToken := solana.NewWallet().PrivateKey
	newVestingAccount, err := vesting.VestingAddress(s.program, newVestingToken.PublicKey())
	if err != nil {
		return err
	}

	instrs, err := createTokenAccount(payer.PublicKey(), newVestingToken.PublicKey(), rec.Mint, newVestingAccount)
	if err != nil {
		return err
	}
	accounts := vesting.SplitAccounts{
		VestingToken:    vestingToken,
		VestingOwner:    owner.PublicKey(),
		NewVestingToken: newVestingToken.PublicKey(),
		NewVestingOwner: newOwner,
		Payer:           payer.PublicKey(),
	}
	var split *solana.GenericInstruction
	if rec.Realm != nil {
		split, err = vesting.SplitWithRealm(s.program, accounts, schedules, vesting.Realm{
			GovernanceProgramID: s.governance,
			Address:             *rec.Realm,
			Mint:                rec.Mint,
		})
	} else {
		split, err = vesting.Split(s.program, accounts, schedules)
	}
	if err != nil {
		return err
	}

	if s.printer.Format == report.FormatText {
		if err := s.printer.Schedule(schedules); err != nil {
			return err
		}
	}
	return s.submit(ctx, execution.Request{
		Command:      "split",
		Instructions: append(instrs, split),
		Payer:        payer,
		Signers:      []solana.PrivateKey{owner, newVestingToken},
		Confirm:      opts.confirm,
		Accounts: map[string]solana.PublicKey{
			"vesting_program":     s.program,
			"token_program":       solana.TokenProgramID,
			"payer":               payer.PublicKey(),
			"vesting_account":     vestingAccount,
			"new_vesting_owner":   newOwner,
			"new_vesting_account": newVestingAccount,
			"new_vesting_token":   newVestingToken.PublicKey(),
		},
	})
}
