// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chordbook/internal/chord"
)

const (
	fingerMark = "●"
	openMark   = "O"
	mutedMark  = "X"
)

// Block is one rendered chord diagram: a fixed-size grid of characters with
// the chord name as the first line. Blocks are ephemeral, produced fresh on
// every render pass.
type Block struct {
	Lines []string
}

// Width is the display width of the widest line.
func (b Block) Width() int {
	w := 0
	for _, line := range b.Lines {
		if lw := lipgloss.Width(line); lw > w {
			w = lw
		}
	}
	return w
}

// Height is the number of lines in the block.
func (b Block) Height() int {
	return len(b.Lines)
}

// String joins the block's lines with newlines.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n")
}

// Render draws one chord's fretboard into a character block. Strings are
// rows, highest pitch (A) on top; the window's frets are columns labelled
// with their absolute numbers, so a shape at fret 5 reads "5" on the ruler.
// Open strings mark O at the nut, muted strings X. The output depends only
// on the arguments.
func Render(name string, fg chord.Fingering, window FretWindow) Block {
	lines := make([]string, 0, chord.NumStrings+2)
	lines = append(lines, name)

	// Fret-number ruler, aligned over the fret cells.
	var ruler strings.Builder
	ruler.WriteString("     ")
	for n := window.Low; n <= window.High; n++ {
		fmt.Fprintf(&ruler, "%2d  ", n)
	}
	lines = append(lines, strings.TrimRight(ruler.String(), " "))

	// One row per string, highest pitch first.
	for i := chord.NumStrings - 1; i >= 0; i-- {
		f := fg[i]
		nut := " "
		switch f {
		case chord.Open:
			nut = openMark
		case chord.Muted:
			nut = mutedMark
		}
		var row strings.Builder
		fmt.Fprintf(&row, "%2s %s|", chord.StringNames[i], nut)
		for n := window.Low; n <= window.High; n++ {
			if f.Fretted() && int(f) == n {
				row.WriteString("-" + fingerMark + "-|")
			} else {
				row.WriteString("---|")
			}
		}
		lines = append(lines, row.String())
	}

	return Block{Lines: lines}
}

// RenderChord renders a chord's canonical fingering with its computed
// window. Convenience wrapper for the common lookup → window → render path.
func RenderChord(c chord.Chord) Block {
	fg := c.Fingering()
	return Render(c.Name, fg, Window(fg))
}
