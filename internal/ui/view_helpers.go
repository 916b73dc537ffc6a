// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// --- State-Specific View Renderers ---

func (m *model) renderSplashView() string {
	art := strings.Join(artFor(m.width, m.height), "\n")
	body := splashStyle.Render(art)
	footer := m.renderFooter(m.keymap.Help, m.keymap.Quit)
	splash := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, splash, footer)
}

func (m *model) renderMainView() string {
	header := titleStyle.Render("chordbook")

	inputBox := inputBoxStyle.Width(m.width - 2).Render(m.input.View())

	diagrams := diagramAreaStyle.Width(m.width - 2).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	footer := m.renderFooter(m.keymap.Help, m.keymap.Up, m.keymap.Clear, m.keymap.Quit)

	return lipgloss.JoinVertical(lipgloss.Left, header, inputBox, diagrams, footer)
}

func (m *model) renderHelpView() string {
	title := helpTitleStyle.Render("Help")
	box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.helpView.View()))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderFooter builds the "key: desc | key: desc" hint line from
// keybindings.
func (m *model) renderFooter(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(": "+h.Desc))
	}
	sep := footerSeparatorStyle.Render(" | ")
	return footerStyle.Render(" ") + strings.Join(parts, sep)
}

// helpContent is the body of the help overlay: keybindings plus the chord
// name grammar the table understands.
func helpContent() string {
	entry := func(k, desc string) string {
		return "  " + helpKeyStyle.Render(padRight(k, 12)) + desc
	}

	lines := []string{
		"Keybindings",
		"",
		entry("?", "toggle this help"),
		entry("esc", "close help / quit"),
		entry("ctrl+c", "quit"),
		entry("↑/↓", "scroll"),
		entry("ctrl+u", "clear the input line"),
		"",
		"Chord names: [Note][Accidental][Quality]",
		"",
		entry("Note", "C D E F G A B"),
		entry("Accidental", "# or b (optional)"),
		entry("Quality", "m, 7, m7, maj7, dim, aug,"),
		entry("", "sus2, sus4, 6, m6, 9, add9"),
		"",
		"Separate several chords with commas.",
		"",
		"Example: C, Ebm, G#m7",
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
