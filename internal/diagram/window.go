// SPDX-License-Identifier: Apache-2.0

// Package diagram turns chord fingerings into ASCII fretboard diagrams and
// arranges them into a wrapped grid.
package diagram

import "chordbook/internal/chord"

// MinWindow is the minimum number of frets a diagram shows. Narrower shapes
// get their window extended so the grid stays legible.
const MinWindow = 5

// FretWindow is the contiguous range of frets a diagram displays, in
// absolute fret numbers. Low is always >= 1.
type FretWindow struct {
	Low  int
	High int
}

// Span is the number of frets the window covers.
func (w FretWindow) Span() int {
	return w.High - w.Low + 1
}

// Contains reports whether the given fret falls inside the window.
func (w FretWindow) Contains(fret int) bool {
	return fret >= w.Low && fret <= w.High
}

// Window computes the fret window for a fingering: the smallest range
// covering every fretted note, widened to MinWindow frets. A shape with no
// fretted notes (all open or muted) gets the base window starting at fret 1.
// When widening is needed the window is extended upward only, so Low stays
// at the lowest fretted note.
func Window(fg chord.Fingering) FretWindow {
	low, high := 0, 0
	for _, f := range fg {
		if !f.Fretted() {
			continue
		}
		n := int(f)
		if low == 0 || n < low {
			low = n
		}
		if n > high {
			high = n
		}
	}
	if low == 0 {
		return FretWindow{Low: 1, High: MinWindow}
	}
	if high-low+1 < MinWindow {
		high = low + MinWindow - 1
	}
	return FretWindow{Low: low, High: high}
}
