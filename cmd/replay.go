package cmd

import (
	"RouletteLedger/internal/report"
	"RouletteLedger/internal/session"

	"github.com/spf13/cobra"
)

func newReplayCommand(a *app) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "replay SCRIPT...",
		Short: "Replay recorded table sessions from yaml scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes, err := session.ReplayFiles(cmd.Context(), args, a.cfg, a.lg)
			if err != nil {
				return err
			}

			for _, o := range outcomes {
				if summary {
					o.Rounds = nil
				}
				if err := report.WriteOutcome(cmd.OutOrStdout(), o); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print only the per player summary")

	return cmd
}
