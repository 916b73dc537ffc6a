// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chordbook/internal/chord"
	"chordbook/internal/diagram"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

func (m *model) handleSplashKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.currentState = stateHelp
		m.helpView.GotoTop()
		return nil
	}

	// Any other key dismisses the splash. Text runes are forwarded to the
	// input line so the first typed character is not swallowed.
	m.currentState = stateInput
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshDiagrams()
	return cmd
}

func (m *model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.currentState = stateHelp
		m.helpView.GotoTop()
	case key.Matches(msg, m.keymap.Up),
		key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PgUp),
		key.Matches(msg, m.keymap.PgDown):
		m.viewport, cmd = m.viewport.Update(msg)
	case key.Matches(msg, m.keymap.Clear):
		m.input.SetValue("")
		m.refreshDiagrams()
	default:
		// Everything else edits the input line; diagrams follow live.
		m.input, cmd = m.input.Update(msg)
		m.refreshDiagrams()
	}

	return cmd
}

func (m *model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, m.keymap.Close):
		m.currentState = stateInput
	case key.Matches(msg, m.keymap.Up),
		key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PgUp),
		key.Matches(msg, m.keymap.PgDown):
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return cmd
}

// refreshDiagrams rebuilds the diagram viewport content from the current
// input text. The whole grid is re-rendered on every edit; unknown chord
// tokens become visible error lines above the grid rather than aborting
// the rest of the batch.
func (m *model) refreshDiagrams() {
	tokens := chord.Split(m.input.Value())
	if len(tokens) == 0 {
		m.viewport.SetContent(promptStyle.Render("Type comma separated chords, e.g. C, Am7, F, G7"))
		m.viewport.GotoTop()
		return
	}

	var lines []string
	blocks := make([]diagram.Block, 0, len(tokens))
	for _, token := range tokens {
		c, err := m.table.Lookup(token)
		if err != nil {
			if errors.Is(err, chord.ErrUnknownChord) {
				lines = append(lines, errorStyle.Render("Chord not found: "+token))
			}
			continue
		}
		blocks = append(blocks, diagram.RenderChord(c))
	}

	if grid := diagram.Arrange(blocks, m.viewport.Width); grid != "" {
		lines = append(lines, grid)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}
