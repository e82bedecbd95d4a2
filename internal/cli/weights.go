package cli

import (
	"context"

	"github.com/spf13/cobra"

	"governance-addins-go/internal/weights"
)

// NewWeightsCommand creates the weights command.
func NewWeightsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "Print the fixed voter weight table compiled into this build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, false, func(_ context.Context, s *session) error {
				total, err := weights.Total()
				if err != nil {
					return err
				}
				return s.printer.Weights(weights.CurrentParams(), weights.VoterList(), total)
			})
		},
	}
}
