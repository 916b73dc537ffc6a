// SPDX-License-Identifier: Apache-2.0

// Package chord defines the chord data model and the embedded chord table.
// A ukulele chord is a name plus one or more fingerings; a fingering holds
// exactly one fret value per string in G C E A order.
package chord

import (
	"fmt"
	"strconv"
	"strings"
)

// NumStrings is the number of strings on a ukulele.
const NumStrings = 4

// MaxFret is the highest fret value a fingering may carry. No ukulele neck
// goes further; anything beyond it is a typo in a chord definition.
const MaxFret = 24

// StringNames lists the open-string names in fingering order
// (lowest pitch first in the re-entrant GCEA tuning).
var StringNames = [NumStrings]string{"G", "C", "E", "A"}

// Fret is a single string's value within a fingering.
// Muted means the string is not played, Open means it rings unfretted,
// and any value >= 1 is the fret the string is pressed at.
type Fret int

const (
	Muted Fret = -1
	Open  Fret = 0
)

// Fretted reports whether the fret is an actual pressed position.
func (f Fret) Fretted() bool {
	return f > 0
}

// Fingering is one playable shape for a chord, one value per string.
type Fingering [NumStrings]Fret

// ParseFingering parses a space-separated fret spec such as "0 2 3 2" or
// "x 0 1 0". "x"/"X" marks a muted string. The spec must contain exactly
// one value per string, each between 0 and MaxFret.
func ParseFingering(spec string) (Fingering, error) {
	var fg Fingering
	fields := strings.Fields(spec)
	if len(fields) != NumStrings {
		return fg, fmt.Errorf("fingering %q has %d values, want %d", spec, len(fields), NumStrings)
	}
	for i, field := range fields {
		if strings.EqualFold(field, "x") {
			fg[i] = Muted
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return fg, fmt.Errorf("fingering %q: bad fret value %q", spec, field)
		}
		if n > MaxFret {
			return fg, fmt.Errorf("fingering %q: fret %d is beyond fret %d", spec, n, MaxFret)
		}
		fg[i] = Fret(n)
	}
	return fg, nil
}

// String renders the fingering back in the dataset's spec form.
func (fg Fingering) String() string {
	parts := make([]string, NumStrings)
	for i, f := range fg {
		if f == Muted {
			parts[i] = "x"
		} else {
			parts[i] = strconv.Itoa(int(f))
		}
	}
	return strings.Join(parts, " ")
}

// Chord is a named chord with at least one fingering. The first fingering
// is the canonical one; any further entries are alternate voicings.
type Chord struct {
	Name       string
	Fingerings []Fingering
}

// Fingering returns the canonical (first) fingering.
func (c Chord) Fingering() Fingering {
	return c.Fingerings[0]
}
