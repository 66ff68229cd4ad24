package cmd

import (
	"RouletteLedger/internal/config"
	intlogger "RouletteLedger/internal/logger"
	"RouletteLedger/pkg/errors"
	"RouletteLedger/pkg/logger"
	"RouletteLedger/pkg/tools"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	DebugMode = false
	Ver       = "dev"
	BuildDate = ""
	GitBranch = ""
)

// app is shared by all sub commands, filled in PersistentPreRunE
type app struct {
	configPath string
	debug      bool

	cfg      config.Configurations
	lg       logger.Logger
	closeLog func() error
}

func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	root, _ := newRootCommand(out, errOut)
	return root
}

func newRootCommand(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Roulette session ledger",
		Long:          "Records wager outcomes per player, keeps the bankroll and prints session statistics. All amounts are in cents.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", DebugMode, "debug logging")

	root.AddCommand(
		newPlayCommand(a),
		newReplayCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)

	return root, a
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg.SetDebug(a.debug)

	lg, closeLog, err := intlogger.NewLogger(cfg, logOut)
	if err != nil {
		return err
	}

	a.cfg, a.lg, a.closeLog = cfg, lg, closeLog
	a.lg.Debugf("config loaded from %q", a.configPath)

	return nil
}

// closeLogger releases the log file, later calls do nothing
func (a *app) closeLogger() error {
	if a.closeLog == nil {
		return nil
	}
	closeFn := a.closeLog
	a.closeLog = nil
	return errors.WrapStack(closeFn(), "close log file")
}

// execute runs root and closes the log file whether the command failed or not
func execute(ctx context.Context, root *cobra.Command, a *app) (err error) {
	defer func() {
		if cerr := a.closeLogger(); err == nil {
			err = cerr
		}
	}()
	return root.ExecuteContext(ctx)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ledger %s (branch %q, built %q)\n", Ver, GitBranch, BuildDate)
			return err
		},
	}
}

// Run executes the command line and returns the process exit code.
// SIGINT and SIGTERM cancel the running command.
func Run() (code int) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		select {
		case sig := <-sigs:
			fmt.Fprintln(os.Stderr, "received", sig)
			cancelFn()
		case <-ctx.Done():
		}
	}()

	var err error
	func() {
		defer tools.Recover(nil, &err)
		root, a := newRootCommand(os.Stdout, os.Stderr)
		err = execute(ctx, root, a)
	}()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
