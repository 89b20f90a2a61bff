package commands

import (
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/descry-dev/descry/assets"
	"github.com/descry-dev/descry/internal/app"
	"github.com/descry-dev/descry/internal/domain"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect descry configuration",
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigDiffCommand(container),
		newConfigPathCommand(container),
		newConfigCheckCommand(container),
	)

	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout(), container)
		},
	}
}

func newConfigDiffCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show differences from the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return diffConfig(cmd.OutOrStdout(), container)
		},
	}
}

func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ConfigLoader == nil {
				return fmt.Errorf(ErrConfigLoaderUnavailable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}
}

func newConfigCheckCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ConfigLoader == nil {
				return fmt.Errorf(ErrConfigLoaderUnavailable)
			}
			if _, err := container.ConfigLoader.Load(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")
			return nil
		},
	}
}

func showConfig(out io.Writer, container *app.Container) error {
	raw, err := yaml.Marshal(container.Config)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	_, err = out.Write(raw)
	return err
}

func diffConfig(out io.Writer, container *app.Container) error {
	defaults, err := defaultConfig()
	if err != nil {
		return err
	}
	diff := cmp.Diff(defaults, container.Config)
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}
	fmt.Fprintln(out, diff)
	return nil
}

// defaultConfig parses the embedded defaults so the diff compares against
// exactly what a fresh install would write.
func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}
