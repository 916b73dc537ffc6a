// SPDX-License-Identifier: Apache-2.0

// This file defines the keyboard bindings for the TUI application.
// It maps keys to actions and provides descriptions for the help view.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application. Plain text characters
// (including the comma separator) are not bound here; they fall through to
// the input line.
type KeyMap struct {
	// Scrolling in the diagram area and the help view
	Up     key.Binding // Scroll up
	Down   key.Binding // Scroll down
	PgUp   key.Binding // Page up
	PgDown key.Binding // Page down

	// General UI control
	Quit  key.Binding // Exit the application
	Help  key.Binding // Toggle the help view
	Close key.Binding // Dismiss the help view
	Clear key.Binding // Clear the input line
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "scroll down"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc/ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "enter", "?"),
		key.WithHelp("esc", "close help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear input"),
	),
}
