package cli

import (
	"context"
	"fmt"
	"strconv"

	solana "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/vesting"
)

type depositOptions struct {
	sourceOwner  string
	sourceToken  string
	vestingOwner string
	mint         string
	realm        string
	payer        string
	confirm      string
	schedule     scheduleFlags
}

// NewDepositCommand creates the deposit command.
func NewDepositCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &depositOptions{}
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Create a new vesting contract with an optional release schedule",
		Long: `Create a fresh vesting token account owned by the vesting account, then lock the
given amounts from the source token account under the release schedule. With
--realm_address the deposit also updates the owner's voter weight record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				return runDeposit(ctx, s, opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.sourceOwner, "source_owner", "",
		"Specify the source account owner. This may be a keypair file, the ASK keyword. Defaults to the client keypair.")
	cmd.Flags().StringVar(&opts.sourceToken, "source_token_address", "",
		"Specify the source token account address. Defaults to the associated token account.")
	cmd.Flags().StringVar(&opts.vestingOwner, "vesting_owner", "",
		"Specify the address (publickey) of the vesting record owner.")
	cmd.Flags().StringVar(&opts.mint, "mint_address", "",
		"Specify the address (publickey) of the mint for the token that should be used.")
	cmd.Flags().StringVar(&opts.realm, "realm_address", "",
		"Specify the address (publickey) of the governance realm.")
	cmd.Flags().StringVar(&opts.payer, "payer", "",
		"Specify the transaction fee payer account address. This may be a keypair file, the ASK keyword.")
	cmd.Flags().StringVar(&opts.confirm, "confirm", "true", "Specify whether to wait transaction confirmation")
	opts.schedule.register(cmd)
	return cmd
}

func runDeposit(ctx context.Context, s *session, opts *depositOptions) error {
	confirm, err := strconv.ParseBool(opts.confirm)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --confirm", err)
	}
	vestingOwner, err := parsePubkey("vesting_owner", opts.vestingOwner)
	if err != nil {
		return err
	}
	mint, err := parsePubkey("mint_address", opts.mint)
	if err != nil {
		return err
	}
	realm, err := parseOptionalPubkey("realm_address", opts.realm)
	if err != nil {
		return err
	}
	sourceTokenOpt, err := parseOptionalPubkey("source_token_address", opts.sourceToken)
	if err != nil {
		return err
	}
	schedules, err := opts.schedule.schedules()
	if err != nil {
		return err
	}
	sourceOwner, err := s.signer("source_owner", opts.sourceOwner)
	if err != nil {
		return err
	}
	payer, err := s.payer(opts.payer, sourceOwner)
	if err != nil {
		return err
	}

	var sourceToken solana.PublicKey
	if sourceTokenOpt != nil {
		sourceToken = *sourceTokenOpt
	} else {
		sourceToken, _, err = solana.FindAssociatedTokenAddress(sourceOwner.PublicKey(), mint)
		if err != nil {
			return fmt.Errorf("derive associated token address: %w", err)
		}
	}

	vestingToken := solana.NewWallet().PrivateKey
	vestingAccount, err := vesting.VestingAddress(s.program, vestingToken.PublicKey())
	if err != nil {
		return err
	}

	instrs, err := createTokenAccount(sourceOwner.PublicKey(), vestingToken.PublicKey(), mint, vestingAccount)
	if err != nil {
		return err
	}
	accounts := vesting.DepositAccounts{
		VestingToken:     vestingToken.PublicKey(),
		SourceTokenOwner: sourceOwner.PublicKey(),
		SourceToken:      sourceToken,
		VestingOwner:     vestingOwner,
		Payer:            payer.PublicKey(),
	}
	var deposit *solana.GenericInstruction
	if realm != nil {
		deposit, err = vesting.DepositWithRealm(s.program, accounts, schedules, vesting.Realm{
			GovernanceProgramID: s.governance,
			Address:             *realm,
			Mint:                mint,
		})
	} else {
		deposit, err = vesting.Deposit(s.program, accounts, schedules)
	}
	if err != nil {
		return err
	}

	logged := map[string]solana.PublicKey{
		"vesting_program":    s.program,
		"token_program":      solana.TokenProgramID,
		"source_token_owner": sourceOwner.PublicKey(),
		"source_token":       sourceToken,
		"vesting_owner":      vestingOwner,
		"payer":              payer.PublicKey(),
		"vesting_account":    vestingAccount,
		"vesting_token":      vestingToken.PublicKey(),
	}
	if realm != nil {
		logged["governance_program"] = s.governance
		logged["realm"] = *realm
	}
	return s.submit(ctx, execution.Request{
		Command:      "deposit",
		Instructions: append(instrs, deposit),
		Payer:        payer,
		Signers:      []solana.PrivateKey{vestingToken, sourceOwner},
		Confirm:      confirm,
		Accounts:     logged,
	})
}
