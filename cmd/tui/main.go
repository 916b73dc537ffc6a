// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chordbook/internal/config"
	"chordbook/internal/logger"
	"chordbook/internal/ui"
)

// RunTUI initializes and runs the Bubble Tea TUI application.
func RunTUI() {
	logger.InitLogger(true)

	table, _, err := config.BuildTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load chord table: %v\n", err)
		os.Exit(1)
	}
	logger.Info("chord table loaded", "chords", table.Len())

	m := ui.InitialModel(table)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
