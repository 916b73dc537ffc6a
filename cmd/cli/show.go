// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chordbook/internal/chord"
	"chordbook/internal/diagram"
	"chordbook/internal/logger"
)

const defaultLayoutWidth = 80

var (
	showAllVariants bool
	showWidth       int
)

var showCmd = &cobra.Command{
	Use:               "show <chord>...",
	Short:             "Render fretboard diagrams for the given chords",
	Long:              `Renders ASCII fretboard diagrams for one or more chords, wrapped to the terminal width. Chords can be given as separate arguments or as a single comma-separated string.`,
	Example:           "  cb show C Am7 F G7\n  cb show \"C, Ebm, G#m7\"\n  cb show --all Am",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: chordCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := chord.Split(strings.Join(args, ","))

		var blocks []diagram.Block
		var unknown []string
		for _, token := range tokens {
			c, err := chordTable.Lookup(token)
			if err != nil {
				if errors.Is(err, chord.ErrUnknownChord) {
					unknown = append(unknown, token)
					errorColor.Fprintf(cmd.ErrOrStderr(), "Chord not found: %s\n", token)
					continue
				}
				return err
			}
			blocks = append(blocks, renderVariants(c)...)
		}

		if len(blocks) == 0 {
			return errors.New("no known chords to render")
		}

		logger.Info("rendering chords", "requested", len(tokens), "unknown", len(unknown))
		fmt.Fprintln(cmd.OutOrStdout(), diagram.Arrange(blocks, layoutWidth()))
		return nil
	},
}

// renderVariants produces one block per requested voicing: just the
// canonical fingering normally, every voicing with --all. Alternates are
// labelled with their voicing index so identical names stay tellable apart.
func renderVariants(c chord.Chord) []diagram.Block {
	if !showAllVariants {
		return []diagram.Block{diagram.RenderChord(c)}
	}
	blocks := make([]diagram.Block, 0, len(c.Fingerings))
	for i, fg := range c.Fingerings {
		name := c.Name
		if i > 0 {
			name = fmt.Sprintf("%s (%d)", c.Name, i+1)
		}
		blocks = append(blocks, diagram.Render(name, fg, diagram.Window(fg)))
	}
	return blocks
}

// layoutWidth resolves the grid width: the --width flag wins, then the
// terminal width, then the configured default for non-terminal output.
func layoutWidth() int {
	if showWidth > 0 {
		return showWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if appConfig.Width > 0 {
		return appConfig.Width
	}
	return defaultLayoutWidth
}

func init() {
	showCmd.Flags().BoolVarP(&showAllVariants, "all", "a", false, "render every voicing of each chord")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "layout width (default: terminal width)")
}
