package cmd

import (
	"RouletteLedger/internal/config"
	"RouletteLedger/pkg/errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	var (
		outPath   string
		effective bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default (or the loaded) configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return errors.WrapStack(err, "create config file")
				}
				defer f.Close()
				w = f
			}

			if effective {
				return config.Write(w, a.cfg)
			}
			return config.WriteDefault(w)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&effective, "effective", false, "write the configuration in use instead of the defaults")

	return cmd
}
