// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordbook/internal/chord"
	"chordbook/internal/config"
)

func TestParse(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		data := []byte(`
width: 100
chords:
  - name: Cmagic
    frets: ["1 2 3 4"]
  - name: C
    frets: ["5 4 3 3"]
`)
		cfg, err := config.Parse(data)

		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		require.Len(t, cfg.Chords, 2)
		assert.Equal(t, "Cmagic", cfg.Chords[0].Name)
		assert.Equal(t, []string{"5 4 3 3"}, cfg.Chords[1].Frets)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.Parse(nil)

		require.NoError(t, err)
		assert.Zero(t, cfg.Width)
		assert.Empty(t, cfg.Chords)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("chords: [what"))

		assert.Error(t, err)
	})
}

func TestCustomChordsMergeIntoTable(t *testing.T) {
	cfg, err := config.Parse([]byte(`
chords:
  - name: C
    frets: ["5 4 3 3"]
  - name: Gspecial
    frets: ["x 2 3 2"]
`))
	require.NoError(t, err)

	table, err := chord.Load()
	require.NoError(t, err)
	require.NoError(t, table.Add(cfg.Chords))

	c, err := table.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, chord.Fingering{5, 4, 3, 3}, c.Fingering(), "user fingering wins over embedded")

	g, err := table.Lookup("Gspecial")
	require.NoError(t, err)
	assert.Equal(t, chord.Fingering{chord.Muted, 2, 3, 2}, g.Fingering())
}
