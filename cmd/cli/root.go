// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"chordbook/internal/chord"
	"chordbook/internal/config"
	"chordbook/internal/logger"
)

var (
	chordTable *chord.Table
	appConfig  config.Config

	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	headerColor     = color.New(color.FgCyan, color.Bold)
	identifierColor = color.New(color.FgBlue)
)

var rootCmd = &cobra.Command{
	Use:   "cb",
	Short: "Ukulele chord diagrams in your terminal",
	Long: `Renders ASCII fretboard diagrams for ukulele chords.

Run without arguments for the interactive TUI; use the subcommands for
one-shot output. Custom chord fingerings can be defined in
~/.config/chordbook/config.yaml and override the embedded dataset.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(false)
		var err error
		chordTable, appConfig, err = config.BuildTable()
		if err != nil {
			return fmt.Errorf("failed to load chord table: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}
