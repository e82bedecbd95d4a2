package cli

import (
	"context"
	"errors"

	solana "github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"governance-addins-go/internal/chain"
	"governance-addins-go/internal/execution"
	"governance-addins-go/internal/vesting"
)

type changeOwnerOptions struct {
	payer           string
	vestingOwner    string
	vesting         string
	newVestingOwner string
	confirm         bool
}

// NewChangeOwnerCommand creates the change-owner command.
func NewChangeOwnerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &changeOwnerOptions{}
	cmd := &cobra.Command{
		Use:   "change-owner",
		Short: "Change the owner of a vesting contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				return runChangeOwner(ctx, s, opts)
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
	return cmd
}

func runChangeOwner(ctx context.Context, s *session, opts *changeOwnerOptions) error {
	vestingToken, err := parsePubkey("vesting_address", opts.vesting)
	if err != nil {
		return err
	}
	newOwner, err := parsePubkey("new_vesting_owner", opts.newVestingOwner)
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
	accounts := vesting.ChangeOwnerAccounts{
		VestingToken:    vestingToken,
		VestingOwner:    owner.PublicKey(),
		NewVestingOwner: newOwner,
	}

	var instrs []solana.Instruction
	if rec.Realm == nil {
		instr, err := vesting.ChangeOwner(s.program, accounts)
		if err != nil {
			return err
		}
		instrs = append(instrs, instr)
	} else {
		realm := vesting.Realm{GovernanceProgramID: s.governance, Address: *rec.Realm, Mint: rec.Mint}
		missing, err := s.voterWeightRecordMissing(ctx, realm, newOwner)
		if err != nil {
			return err
		}
		if missing {
			create, err := vesting.CreateVoterWeightRecord(s.program, newOwner, payer.PublicKey(), realm.Address, realm.Mint)
			if err != nil {
				return err
			}
			instrs = append(instrs, create)
		}
		instr, err := vesting.ChangeOwnerWithRealm(s.program, accounts, realm)
		if err != nil {
			return err
		}
		instrs = append(instrs, instr)
	}

	return s.submit(ctx, execution.Request{
		Command:      "change-owner",
		Instructions: instrs,
		Payer:        payer,
		Signers:      []solana.PrivateKey{owner},
		Confirm:      opts.confirm,
		Accounts: map[string]solana.PublicKey{
			"vesting_account":   vestingAccount,
			"vesting_token":     vestingToken,
			"vesting_owner":     owner.PublicKey(),
			"new_vesting_owner": newOwner,
		},
	})
}

// voterWeightRecordMissing reports whether owner has no (or an empty) voter weight record in realm.
func (s *session) voterWeightRecordMissing(ctx context.Context, realm vesting.Realm, owner solana.PublicKey) (bool, error) {
	addr, err := vesting.VoterWeightRecordAddress(s.program, realm.Address, realm.Mint, owner)
	if err != nil {
		return false, err
	}
	_, err = s.client.AccountData(ctx, addr)
	if errors.Is(err, chain.ErrAccountNotFound) {
		return true, nil
	}
	if err != nil {
		// any failure to read counts as missing
		s.log.Debug().Err(err).Str("voter_weight_record", addr.String()).Msg("voter weight record lookup")
		return true, nil
	}
	return false, nil
}
