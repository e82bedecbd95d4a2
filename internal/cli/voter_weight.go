package cli

import (
	"context"

	solana "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/vesting"
)

type createVoterWeightRecordOptions struct {
	payer       string
	recordOwner string
	mint        string
	realm       string
	confirm     bool
}

// NewCreateVoterWeightRecordCommand creates the create-voter-weight-record command.
func NewCreateVoterWeightRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &createVoterWeightRecordOptions{}
	cmd := &cobra.Command{
		Use:   "create-voter-weight-record",
		Short: "Create Voter Weight Record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				return runCreateVoterWeightRecord(ctx, s, opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.payer, "payer", "",
		"Specify the transaction fee payer account address. This may be a keypair file, the ASK keyword. Defaults to the client keypair.")
	cmd.Flags().StringVar(&opts.recordOwner, "record_owner", "", "Specify the record owner address (publickey).")
	cmd.Flags().StringVar(&opts.mint, "mint_address", "",
		"Specify the address (publickey) of the mint for the token that should be used.")
	cmd.Flags().StringVar(&opts.realm, "realm_address", "", "Specify the address (publickey) of the governance realm.")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "wait for the transaction to be confirmed")
	return cmd
}

func runCreateVoterWeightRecord(ctx context.Context, s *session, opts *createVoterWeightRecordOptions) error {
	recordOwner, err := parsePubkey("record_owner", opts.recordOwner)
	if err != nil {
		return err
	}
	mint, err := parsePubkey("mint_address", opts.mint)
	if err != nil {
		return err
	}
	realm, err := parsePubkey("realm_address", opts.realm)
	if err != nil {
		return err
	}
	payer, err := s.signer("payer", opts.payer)
	if err != nil {
		return err
	}

	instr, err := vesting.CreateVoterWeightRecord(s.program, recordOwner, payer.PublicKey(), realm, mint)
	if err != nil {
		return err
	}
	return s.submit(ctx, execution.Request{
		Command:      "create-voter-weight-record",
		Instructions: []solana.Instruction{instr},
		Payer:        payer,
		Confirm:      opts.confirm,
		Accounts: map[string]solana.PublicKey{
			"record_owner": recordOwner,
			"realm":        realm,
			"mint":         mint,
		},
	})
}

type setVotePercentageOptions struct {
	payer        string
	authority    string
	vestingOwner string
	mint         string
	realm        string
	percentage   uint16
	confirm      bool
}

// NewSetVotePercentageCommand creates the set-vote-percentage command.
func NewSetVotePercentageCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &setVotePercentageOptions{}
	cmd := &cobra.Command{
		Use:   "set-vote-percentage",
		Short: "Set vote percentage of a vesting contract for a Realm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("percentage") {
				return usageError("--percentage is required")
			}
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				return runSetVotePercentage(ctx, s, opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.payer, "payer", "",
		"Specify the transaction fee payer account address. This may be a keypair file, the ASK keyword.")
	cmd.Flags().StringVar(&opts.authority, "vesting_authority", "",
		"Specify the vesting authority account address. This may be a keypair file, the ASK keyword. Defaults to the client keypair.")
	cmd.Flags().StringVar(&opts.vestingOwner, "vesting_owner", "",
		"Specify the address (publickey) of the vesting record owner.")
	cmd.Flags().StringVar(&opts.mint, "mint_address", "",
		"Specify the address (publickey) of the mint for the token that should be used.")
	cmd.Flags().StringVar(&opts.realm, "realm_address", "", "Specify the address (publickey) of the governance realm.")
	cmd.Flags().Uint16Var(&opts.percentage, "percentage", 0, "Deposited tokens percentage of voting.")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "wait for the transaction to be confirmed")
	return cmd
}

func runSetVotePercentage(ctx context.Context, s *session, opts *setVotePercentageOptions) error {
	vestingOwner, err := parsePubkey("vesting_owner", opts.vestingOwner)
	if err != nil {
		return err
	}
	mint, err := parsePubkey("mint_address", opts.mint)
	if err != nil {
		return err
	}
	realm, err := parsePubkey("realm_address", opts.realm)
	if err != nil {
		return err
	}
	authority, err := s.signer("vesting_authority", opts.authority)
	if err != nil {
		return err
	}
	payer, err := s.payer(opts.payer, authority)
	if err != nil {
		return err
	}

	instr, err := vesting.SetVotePercentageWithRealm(s.program, vestingOwner, authority.PublicKey(), vesting.Realm{
		GovernanceProgramID: s.governance,
		Address:             realm,
		Mint:                mint,
	}, opts.percentage)
	if err != nil {
		return err
	}
	return s.submit(ctx, execution.Request{
		Command:      "set-vote-percentage",
		Instructions: []solana.Instruction{instr},
		Payer:        payer,
		Signers:      []solana.PrivateKey{authority},
		Confirm:      opts.confirm,
		Accounts: map[string]solana.PublicKey{
			"vesting_owner":     vestingOwner,
			"vesting_authority": authority.PublicKey(),
			"realm":             realm,
			"mint":              mint,
		},
	})
}
