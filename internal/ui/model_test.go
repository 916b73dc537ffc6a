// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordbook/internal/chord"
	"chordbook/internal/ui"
)

func newTestModel(t *testing.T) tea.Model {
	t.Helper()
	table, err := chord.Load()
	require.NoError(t, err)

	m := ui.InitialModel(table)
	var model tea.Model = &m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model
}

func typeRunes(model tea.Model, s string) tea.Model {
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func TestSplashToInputOnFirstKeypress(t *testing.T) {
	model := newTestModel(t)

	assert.Contains(t, model.View(), "c h o r d b o o k", "starts on the splash view")

	model = typeRunes(model, "C")

	view := model.View()
	assert.Contains(t, view, "●", "first keypress lands in the input line and renders a diagram")
	assert.Contains(t, view, " G O|")
}

func TestHelpToggle(t *testing.T) {
	model := typeRunes(newTestModel(t), "C")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Contains(t, model.View(), "Keybindings")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	view := model.View()
	assert.NotContains(t, view, "Keybindings")
	assert.Contains(t, view, "●", "input text survives the help round trip")
}

func TestLiveUpdateOnEdit(t *testing.T) {
	model := typeRunes(newTestModel(t), "C")
	require.Contains(t, model.View(), " G O|")

	// Deleting the chord name empties the render set again.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	view := model.View()
	assert.NotContains(t, view, "●")
	assert.Contains(t, view, "Type comma separated chords")
}

func TestUnknownChordShownAsError(t *testing.T) {
	model := typeRunes(newTestModel(t), "C,Zz")

	view := model.View()
	assert.Contains(t, view, "Chord not found: Zz")
	assert.Contains(t, view, "●", "known chords still render alongside the error")
}

func TestQuitFromInput(t *testing.T) {
	model := typeRunes(newTestModel(t), "C")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
