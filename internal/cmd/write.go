package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newWriteCmd(flags *globalFlags) *cobra.Command {
	var (
		level   string
		context string
	)
	writeCmd := &cobra.Command{
		Use:   "write [text...]",
		Short: "Write a leveled entry",
		Long: `Write one entry at the given level. Entries below the threshold are
dropped silently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, flags, level, context, strings.Join(args, " "))
		},
	}
	writeCmd.Flags().StringVar(&level, "as", "Info", "level of the entry")
	writeCmd.Flags().StringVar(&context, "context", "cli", "calling context shown in the caller segment")
	return writeCmd
}

func runWrite(cmd *cobra.Command, flags *globalFlags, levelName, context, text string) error {
	level, err := lookupLevel(levelName)
	if err != nil {
		return err
	}
	l, err := openLogger(cmd, flags)
	if err != nil {
		return err
	}
	defer l.Close()

	l.Log(level, context, text)
	return nil
}

func newEchoCmd(flags *globalFlags) *cobra.Command {
	var indent bool
	echoCmd := &cobra.Command{
		Use:   "echo [text...]",
		Short: "Write raw text without stamp or label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLogger(cmd, flags)
			if err != nil {
				return err
			}
			defer l.Close()

			l.Echo(strings.Join(args, " "), indent, nil)
			return nil
		},
	}
	echoCmd.Flags().BoolVar(&indent, "indent", false, "indent the line")
	return echoCmd
}

func newBannerCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "banner [message...]",
		Short: "Write a banner",
		Long:  `Write a bordered banner. Without a message the process, user and time are written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLogger(cmd, flags)
			if err != nil {
				return err
			}
			defer l.Close()

			l.Banner(strings.Join(args, " "))
			return nil
		},
	}
}

func newClearCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Truncate the current log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLogger(cmd, flags)
			if err != nil {
				return err
			}
			defer l.Close()

			return l.Clear()
		},
	}
}

func newSweepCmd(flags *globalFlags) *cobra.Command {
	var days int
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete log files and date directories older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return errors.Errorf("--days must be positive, got %d", days)
			}
			l, err := openLogger(cmd, flags)
			if err != nil {
				return err
			}
			defer l.Close()

			l.SetRetentionDays(days)
			return nil
		},
	}
	sweepCmd.Flags().IntVar(&days, "days", 30, "days of logs to keep")
	return sweepCmd
}

func newPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file the next entry is written to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLogger(cmd, flags)
			if err != nil {
				return err
			}
			defer l.Close()

			fmt.Fprintln(cmd.OutOrStdout(), l.Path())
			return nil
		},
	}
}
