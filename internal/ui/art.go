// SPDX-License-Identifier: Apache-2.0

package ui

// splashArt is the ASCII ukulele shown on the splash screen.
var splashArt = []string{
	`      _____`,
	`     /     \`,
	`    |  (o)  |============================@=====@`,
	`    |       |--o-----o--------o----------@     @`,
	`    |  (o)  |-----o------o-------o-------@     @`,
	`     \_____/ ============================@=====@`,
	``,
	`    c h o r d b o o k`,
	``,
	`    Type comma-separated chords to begin`,
	`    Press ? for help`,
}

// splashArtCompact is a shorter splash for small terminals.
var splashArtCompact = []string{
	`chordbook`,
	``,
	`Type comma-separated chords to begin`,
	`Press ? for help`,
}

// artFor picks the splash variant that fits the given terminal size.
func artFor(width, height int) []string {
	if width < 52 || height < 14 {
		return splashArtCompact
	}
	return splashArt
}
