package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"governance-addins-go/internal/report"
	"governance-addins-go/internal/vesting"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	var vestingAddress string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print information about a vesting contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				vestingToken, err := parsePubkey("vesting_address", vestingAddress)
				if err != nil {
					return err
				}
				vestingAccount, rec, err := s.record(ctx, vestingToken)
				if err != nil {
					return err
				}
				view, err := report.NewRecordView(vestingAccount, rec)
				if err != nil {
					return err
				}
				return s.printer.Info(s.program, view)
			})
		},
	}
	cmd.Flags().StringVar(&vestingAddress, "vesting_address", "", "Specify the vesting token address (publickey).")
	return cmd
}

// NewInfoOwnerCommand creates the info-owner command.
func NewInfoOwnerCommand(rootOpts *RootOptions) *cobra.Command {
	var vestingOwner string
	cmd := &cobra.Command{
		Use:   "info-owner",
		Short: "Print information about vesting contracts of a vesting owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				owner, err := parsePubkey("vesting_owner", vestingOwner)
				if err != nil {
					return err
				}
				accounts, err := s.client.ProgramAccounts(ctx, s.program, vesting.OwnerFilter(owner))
				if err != nil {
					return err
				}
				views := make([]report.RecordView, 0, len(accounts))
				for _, acct := range accounts {
					rec, err := vesting.DecodeRecord(acct.Data)
					if err != nil {
						return fmt.Errorf("decode %s: %w", acct.Address, err)
					}
					view, err := report.NewRecordView(acct.Address, rec)
					if err != nil {
						return err
					}
					views = append(views, view)
				}
				return s.printer.Records(views)
			})
		},
	}
	cmd.Flags().StringVar(&vestingOwner, "vesting_owner", "",
		"Specify the address (publickey) of the vesting record owner.")
	return cmd
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the list of locked tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, true, func(ctx context.Context, s *session) error {
				accounts, err := s.client.ProgramAccounts(ctx, s.program, vesting.RecordFilter())
				if err != nil {
					return err
				}
				rows := make([]report.ListRow, 0, len(accounts))
				for _, acct := range accounts {
					rec, err := vesting.DecodeRecord(acct.Data)
					if errors.Is(err, vesting.ErrNotVestingRecord) {
						continue
					}
					if err != nil {
						return fmt.Errorf("decode %s: %w", acct.Address, err)
					}
					amount, err := rec.Amount()
					if err != nil {
						return fmt.Errorf("sum %s: %w", acct.Address, err)
					}
					rows = append(rows, report.ListRow{Token: rec.Token, Owner: rec.Owner, Amount: amount})
				}
				report.SortRows(rows)
				return s.printer.List(rows)
			})
		},
	}
}
