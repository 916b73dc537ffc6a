// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known chord vocabulary, grouped by root note",
	Run: func(cmd *cobra.Command, args []string) {
		names := chordTable.Names()

		// Names() sorts, so grouping by first letter keeps groups contiguous.
		var root byte
		var group []string
		flush := func() {
			if len(group) == 0 {
				return
			}
			headerColor.Printf("%c\n", root)
			fmt.Printf("  %s\n", strings.Join(group, ", "))
			group = group[:0]
		}
		for _, name := range names {
			if name[0] != root {
				flush()
				root = name[0]
			}
			group = append(group, name)
		}
		flush()

		fmt.Println()
		identifierColor.Printf("%d chords\n", chordTable.Len())
	},
}
