// SPDX-License-Identifier: Apache-2.0

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateSplash state = iota
	stateInput
	stateHelp
)

const (
	headerHeight   = 1 // Height reserved for the main title header.
	inputBoxHeight = 3 // Single input line plus its border.
	footerHeight   = 1 // Keybinding hint line.
)
