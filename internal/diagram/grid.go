// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gap between blocks in the same row, and the blank-line gap between rows.
const (
	blockGap = 2
	rowGap   = 1
)

// Arrange packs diagram blocks left to right in input order, wrapping to a
// new row when the next block would exceed maxWidth. Rows are left-aligned
// and separated by a blank line. A block wider than maxWidth still gets a
// row of its own, so a too-narrow terminal degrades to a single column
// instead of failing. An empty block list yields an empty frame.
func Arrange(blocks []Block, maxWidth int) string {
	if len(blocks) == 0 {
		return ""
	}

	var rows [][]Block
	var cur []Block
	usedWidth := 0
	for _, b := range blocks {
		w := b.Width()
		needed := w
		if len(cur) > 0 {
			needed = usedWidth + blockGap + w
		}
		if needed > maxWidth && len(cur) > 0 {
			rows = append(rows, cur)
			cur = []Block{b}
			usedWidth = w
			continue
		}
		cur = append(cur, b)
		usedWidth = needed
	}
	rows = append(rows, cur)

	gap := strings.Repeat(" ", blockGap)
	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row)*2-1)
		for i, b := range row {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, b.String())
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	sep := strings.Repeat("\n", rowGap+1)
	return strings.Join(rendered, sep)
}
