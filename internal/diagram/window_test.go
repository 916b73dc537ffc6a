// SPDX-License-Identifier: Apache-2.0

package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chordbook/internal/chord"
	"chordbook/internal/diagram"
)

type windowTest struct {
	name     string
	frets    chord.Fingering
	expected diagram.FretWindow
}

func TestWindow(t *testing.T) {
	testCases := []windowTest{
		{
			"all open gets the base window",
			chord.Fingering{0, 0, 0, 0},
			diagram.FretWindow{Low: 1, High: 5},
		},
		{
			"all muted gets the base window",
			chord.Fingering{chord.Muted, chord.Muted, chord.Muted, chord.Muted},
			diagram.FretWindow{Low: 1, High: 5},
		},
		{
			"narrow shape extends high only",
			chord.Fingering{2, 2, 3, 0},
			diagram.FretWindow{Low: 2, High: 6},
		},
		{
			"open position shape",
			chord.Fingering{0, 0, 0, 3},
			diagram.FretWindow{Low: 3, High: 7},
		},
		{
			"shape up the neck keeps absolute position",
			chord.Fingering{5, 7, 5, 6},
			diagram.FretWindow{Low: 5, High: 9},
		},
		{
			"shape already spanning the minimum",
			chord.Fingering{1, 3, 0, 5},
			diagram.FretWindow{Low: 1, High: 5},
		},
		{
			"wide shape is not shrunk",
			chord.Fingering{1, 0, 0, 7},
			diagram.FretWindow{Low: 1, High: 7},
		},
	}

	for _, item := range testCases {
		t.Run(item.name, func(t *testing.T) {
			w := diagram.Window(item.frets)

			assert.Equal(t, item.expected, w)
			assert.GreaterOrEqual(t, w.Span(), diagram.MinWindow)
			assert.GreaterOrEqual(t, w.Low, 1)
		})
	}
}

func TestFretWindowContains(t *testing.T) {
	w := diagram.FretWindow{Low: 2, High: 6}

	assert.True(t, w.Contains(2))
	assert.True(t, w.Contains(6))
	assert.False(t, w.Contains(1))
	assert.False(t, w.Contains(7))
}
