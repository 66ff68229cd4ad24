package cmd

import (
	"RouletteLedger/internal/ledger"
	"RouletteLedger/internal/report"
	"RouletteLedger/internal/session"
	"RouletteLedger/internal/table"
	"RouletteLedger/pkg/errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayCommand(a *app) *cobra.Command {
	var (
		bankroll int64
		games    []string
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Record games into one ledger and print its statistics",
		Example: `  ledger play --bankroll 100000 --game=-3500,3500,17 --game=7000,500,0
  ledger play --yaml -g 100,100,7 -g=-50,100,7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := table.SeatOptionsFromConfig(a.cfg)
			if cmd.Flags().Changed("bankroll") {
				opts.InitialBankroll = bankroll
			}

			l := ledger.New(append([]ledger.Option{ledger.WithInitialBankroll(opts.InitialBankroll)}, opts.Ledger...)...)

			for i, spec := range games {
				if err := session.RecordSpec(l, spec); err != nil {
					return errors.WrapMessage(err, fmt.Sprintf("game %d", i+1))
				}
				a.lg.Debugf("game %d recorded: %s, bankroll %d", i+1, spec, l.Bankroll())
			}

			out := cmd.OutOrStdout()
			stats := l.Stats()

			if asYAML {
				data, err := report.MarshalStats(stats)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return errors.WrapStack(err)
			}

			if err := report.WriteSequences(out, l.History(), l.Stakes(), l.Numbers()); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return report.WriteStats(out, stats, l.Bankroll())
		},
	}

	cmd.Flags().Int64VarP(&bankroll, "bankroll", "b", ledger.DefaultBankroll, "initial bankroll in cents (default from config)")
	cmd.Flags().StringArrayVarP(&games, "game", "g", nil, "game as result,stake,number in cents, repeatable")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the stats mapping as yaml")

	return cmd
}
