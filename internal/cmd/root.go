// Package cmd implements the filelog command line.
package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LixenWraith/filelog"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath  string
	name        string
	directory   string
	level       string
	maxSizeMB   int64
	storeByDate bool
	utc         bool
	console     bool
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "filelog",
		Short: "Write to and maintain rotating log files",
		Long: `filelog writes entries to rotating, retention-managed log files using the
same engine applications embed.

Settings come from an optional config file (.toml, .yaml or .json) and are
overridden by flags.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (.toml, .yaml, .yml or .json)")
	pf.StringVar(&flags.name, "name", "", "log file base name")
	pf.StringVarP(&flags.directory, "dir", "d", "", "log directory")
	pf.StringVarP(&flags.level, "level", "l", "", "threshold level name or short name")
	pf.Int64Var(&flags.maxSizeMB, "max-size", 0, "rotation size in MB, -1 for unlimited")
	pf.BoolVar(&flags.storeByDate, "store-by-date", false, "store files in per-day directories")
	pf.BoolVar(&flags.utc, "utc", false, "use UTC timestamps")
	pf.BoolVar(&flags.console, "console", false, "mirror entries to stdout")

	rootCmd.AddCommand(
		newWriteCmd(flags),
		newEchoCmd(flags),
		newBannerCmd(flags),
		newClearCmd(flags),
		newSweepCmd(flags),
		newPathCmd(flags),
		newConfigCmd(flags),
	)
	return rootCmd
}

// Execute runs the root command and returns any error.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the config file, if any, and applies flags that were set.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*filelog.Config, error) {
	cfg := filelog.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := filelog.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		cfg.Name = flags.name
	}
	if changed("dir") {
		cfg.Directory = flags.directory
	}
	if changed("level") {
		level, err := lookupLevel(flags.level)
		if err != nil {
			return nil, err
		}
		cfg.Level = level.Name
	}
	if changed("max-size") {
		cfg.MaxSizeMB = flags.maxSizeMB
	}
	if changed("store-by-date") {
		cfg.StoreByDate = flags.storeByDate
	}
	if changed("utc") {
		cfg.UTC = flags.utc
	}
	if changed("console") {
		cfg.Console = flags.console
	}
	return cfg, nil
}

// openLogger creates a logger from the effective configuration. Console output goes
// to the command's output stream.
func openLogger(cmd *cobra.Command, flags *globalFlags) (*filelog.Logger, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	l, err := filelog.New(cfg, filelog.WithConsoleWriter(cmd.OutOrStdout()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	return l, nil
}

// lookupLevel resolves a level name strictly; the command line rejects unknown names.
func lookupLevel(name string) (*filelog.Level, error) {
	level, ok := filelog.DefaultRegistry().Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown level %q", name)
	}
	return level, nil
}
