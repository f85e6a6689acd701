package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/LixenWraith/filelog"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration files",
	}

	var format string
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, the config file and flags are
applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, flags, format)
		},
	}
	configShowCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, toml or json")

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a default config file",
		Long: `Write the default configuration to path. The format follows the
extension. An existing file is kept unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, args[0], force)
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd, configInitCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, flags *globalFlags, format string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	var data []byte
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		return errors.Errorf("unknown format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "failed to serialize config")
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at: %s\n", path)
		return nil
	}
	if err := filelog.DefaultConfig().Save(path); err != nil {
		return errors.Wrap(err, "failed to create config")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created default config at: %s\n", path)
	return nil
}
