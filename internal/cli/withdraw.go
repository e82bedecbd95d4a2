package cli

import (
	"context"

	solana "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/vesting"
)

type withdrawOptions struct {
	payer        string
	vestingOwner string
	vesting      string
	destination  string
	confirm      bool
}

// NewWithdrawCommand creates the withdraw command.
func NewWithdrawCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &withdrawOptions{}
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Unlock & Withdraw a vesting contract",
		Long: `Unlock & Withdraw a vesting contract. This will only release the schedules
that have reached maturity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				return runWithdraw(ctx, s, opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.payer, "payer", "",
		"Specify the transaction fee payer account address. This may be a keypair file, the ASK keyword.")
	cmd.Flags().StringVar(&opts.vestingOwner, "vesting_owner", "",
		"Specify the vesting owner account address. This may be a keypair file, the ASK keyword.")
	cmd.Flags().StringVar(&opts.vesting, "vesting_address", "", "Specify the vesting token address (publickey).")
	cmd.Flags().StringVar(&opts.destination, "destination_address", "", "Specify the destination token address (publickey).")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "wait for the transaction to be confirmed")
	return cmd
}

func runWithdraw(ctx context.Context, s *session, opts *withdrawOptions) error {
	vestingToken, err := parsePubkey("vesting_address", opts.vesting)
	if err != nil {
		return err
	}
	destination, err := parsePubkey("destination_address", opts.destination)
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
	accounts := vesting.WithdrawAccounts{
		VestingToken:     vestingToken,
		DestinationToken: destination,
		VestingOwner:     owner.PublicKey(),
	}
	var instr *solana.GenericInstruction
	if rec.Realm != nil {
		instr, err = vesting.WithdrawWithRealm(s.program, accounts, vesting.Realm{
			GovernanceProgramID: s.governance,
			Address:             *rec.Realm,
			Mint:                rec.Mint,
		})
	} else {
		instr, err = vesting.Withdraw(s.program, accounts)
	}
	if err != nil {
		return err
	}
	return s.submit(ctx, execution.Request{
		Command:      "withdraw",
		Instructions: []solana.Instruction{instr},
		Payer:        payer,
		Signers:      []solana.PrivateKey{owner},
		Confirm:      opts.confirm,
		Accounts: map[string]solana.PublicKey{
			"vesting_account": vestingAccount,
			"vesting_token":   vestingToken,
			"destination":     destination,
			"vesting_owner":   owner.PublicKey(),
		},
	})
}
