package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"governance-addins-go/internal/vesting"
)

// NewScheduleCommand creates the schedule command.
func NewScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	var flags scheduleFlags
	var summary bool
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Expand and print a release schedule without touching the network",
		Long: `Expand the same schedule flags deposit and split accept and print the
resulting release list. Useful to check a linear schedule before locking tokens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, false, func(_ context.Context, s *session) error {
				schedules, err := flags.schedules()
				if err != nil {
					return err
				}
				if err := s.printer.Schedule(schedules); err != nil {
					return err
				}
				if !summary {
					return nil
				}
				sum, err := vesting.Summarize(schedules, time.Now())
				if err != nil {
					return err
				}
				s.log.Info().Uint64("released", sum.Released).Uint64("locked", sum.Locked).Msg("schedule summary")
				return nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&summary, "summary", false, "log how much of the schedule has already matured")
	return cmd
}
