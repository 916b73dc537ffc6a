// SPDX-License-Identifier: Apache-2.0

// Package ui implements the interactive chord diagram TUI as a Bubble Tea
// model. The rendering pipeline (parse, lookup, window, render, layout)
// lives in internal/chord and internal/diagram; this package owns the input
// line, the state machine and the screen composition.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"chordbook/internal/chord"
)

type model struct {
	table  *chord.Table
	keymap KeyMap

	input    textinput.Model
	viewport viewport.Model // scrollable diagram area
	helpView viewport.Model // scrollable help overlay

	currentState state
	width        int
	height       int
	ready        bool // set after the first WindowSizeMsg
}

// InitialModel builds the TUI model around a loaded chord table.
func InitialModel(table *chord.Table) model {
	input := textinput.New()
	input.Placeholder = "C, Am7, F, G7"
	input.Prompt = "♪ "
	input.Focus()

	return model{
		table:        table,
		keymap:       DefaultKeyMap,
		input:        input,
		viewport:     viewport.New(0, 0),
		helpView:     viewport.New(0, 0),
		currentState: stateSplash,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch m.currentState {
		case stateSplash:
			return m, m.handleSplashKeys(msg)
		case stateInput:
			return m, m.handleInputKeys(msg)
		case stateHelp:
			return m, m.handleHelpKeys(msg)
		}
	}

	// Non-key messages (e.g. cursor blink) belong to the input line.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize recomputes widget dimensions after a terminal resize. The diagram
// grid wraps at the viewport width, so its content is rebuilt too.
func (m *model) resize() {
	bodyWidth := m.width - 2 // diagram area border
	bodyHeight := m.height - headerHeight - inputBoxHeight - footerHeight - 2
	if bodyWidth < 1 {
		bodyWidth = 1
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.viewport.Width = bodyWidth
	m.viewport.Height = bodyHeight
	m.helpView.Width = min(m.width-8, 64)
	m.helpView.Height = m.height - 8
	if m.helpView.Width < 1 {
		m.helpView.Width = 1
	}
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}

	m.input.Width = bodyWidth - 4

	m.refreshDiagrams()
	m.helpView.SetContent(helpContent())
}

func (m *model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.currentState {
	case stateSplash:
		return m.renderSplashView()
	case stateHelp:
		return m.renderHelpView()
	default:
		return m.renderMainView()
	}
}
