// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"chordbook/internal/config"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chordbook configuration",
	Long: `Provides subcommands to manage the chordbook configuration file.
This includes the default layout width for non-terminal output. Custom
chord fingerings are added by editing the file's 'chords' list directly.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty configuration file ready for editing",
	Long: `Creates the configuration directory and an empty configuration file.
Fails if the file already exists so an edited config is never clobbered.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.EnsureConfigDir(); err != nil {
			return err
		}
		if err := config.SaveConfig(config.Config{}); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

var configSetWidthCmd = &cobra.Command{
	Use:   "set-width <columns>",
	Short: "Set the default layout width for non-terminal output",
	Long: `Sets the layout width used by 'cb show' when stdout is not a terminal
and no --width flag is given. Set it to 0 to revert to the built-in default.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := strconv.Atoi(args[0])
		if err != nil || width < 0 {
			return fmt.Errorf("width must be a non-negative integer, got %q", args[0])
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg.Width = width
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		if width == 0 {
			successColor.Fprintln(cmd.OutOrStdout(), "Layout width reset to the built-in default.")
		} else {
			successColor.Fprintf(cmd.OutOrStdout(), "Layout width set to: %d\n", width)
		}
		return nil
	},
}

var configGetWidthCmd = &cobra.Command{
	Use:   "get-width",
	Short: "Show the configured default layout width",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.Width > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Configured layout width: %s\n", identifierColor.Sprint(cfg.Width))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Layout width not configured (default %d).\n", defaultLayoutWidth)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetWidthCmd)
	configCmd.AddCommand(configGetWidthCmd)

	rootCmd.AddCommand(configCmd)
}
