// Package cli implements the postcraft command line.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"postcraft/internal/cmdlog"
	"postcraft/internal/config"
	"postcraft/internal/engine"
	"postcraft/internal/logging"
)

// Version is stamped at build time with -ldflags "-X postcraft/internal/cli.Version=...".
var Version = "dev"

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string { return e.Msg }

type app struct {
	cfgFile  string
	logLevel string
	jsonOut  bool
	now      string
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "postcraft",
		Short:         "Adapt, check and score social posts for every platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetOutput(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner(cmd.OutOrStdout())
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "./postcraft.yaml", "config file (defaults apply when it does not exist)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")
	root.PersistentFlags().StringVar(&a.now, "now", "", "reference time in RFC3339 (default: current time)")

	root.AddCommand(
		a.newInitCmd(),
		a.newPlatformsCmd(),
		a.newAdaptCmd(),
		a.newPreflightCmd(),
		a.newPredictCmd(),
		a.newScheduleCmd(),
		a.newHashtagsCmd(),
		a.newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the config file if present, then applies env and flag overrides.
func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.cfgFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
		cfg.ResolveEnv()
		err = cfg.Validate()
	}
	if err != nil {
		return cfg, err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	logging.SetLevel(cfg.Logging.Level)
	return cfg, nil
}

func (a *app) clock() (func() time.Time, error) {
	if a.now == "" {
		return time.Now, nil
	}
	t, err := time.Parse(time.RFC3339, a.now)
	if err != nil {
		return nil, fmt.Errorf("--now must be RFC3339: %w", err)
	}
	return func() time.Time { return t }, nil
}

func (a *app) engine() (*engine.Engine, config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	clock, err := a.clock()
	if err != nil {
		return nil, cfg, err
	}
	return engine.New(cfg, engine.WithClock(clock)), cfg, nil
}

// run wraps a command body with cmdlog accounting.
func run(name string, f func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return cmdlog.Run(name, func() error { return f(cmd, args) })
	}
}
