// SPDX-License-Identifier: Apache-2.0

package chord

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed chords.yaml
var embeddedDataset []byte

// ErrUnknownChord is returned by Table.Lookup for names not present in the
// table. Unknown chords are an expected outcome of user input, not a fault.
var ErrUnknownChord = errors.New("unknown chord")

// Definition is the serialized form of a chord, as it appears in the
// embedded dataset and in user config files.
type Definition struct {
	Name  string   `yaml:"name"`
	Frets []string `yaml:"frets"`
}

// Table is the process-wide chord lookup table. It is built once at startup
// and read-only afterwards.
type Table struct {
	chords map[string]Chord
}

type datasetFile struct {
	Chords []Definition `yaml:"chords"`
}

// Load builds the table from the embedded dataset. A malformed dataset is a
// startup-time configuration error; callers should treat a non-nil error as
// fatal.
func Load() (*Table, error) {
	var file datasetFile
	if err := yaml.Unmarshal(embeddedDataset, &file); err != nil {
		return nil, fmt.Errorf("failed to parse embedded chord dataset: %w", err)
	}
	t := &Table{chords: make(map[string]Chord, len(file.Chords))}
	if err := t.Add(file.Chords); err != nil {
		return nil, fmt.Errorf("embedded chord dataset: %w", err)
	}
	return t, nil
}

// Add merges chord definitions into the table, replacing existing entries
// of the same name. User definitions are added after the embedded dataset
// so they win on collision. The table must not be mutated once lookups
// begin; Add is a startup-time operation.
func (t *Table) Add(defs []Definition) error {
	for _, def := range defs {
		if def.Name == "" {
			return errors.New("chord entry with empty name")
		}
		if len(def.Frets) == 0 {
			return fmt.Errorf("chord %q has no fingerings", def.Name)
		}
		fingerings := make([]Fingering, 0, len(def.Frets))
		for _, spec := range def.Frets {
			fg, err := ParseFingering(spec)
			if err != nil {
				return fmt.Errorf("chord %q: %w", def.Name, err)
			}
			fingerings = append(fingerings, fg)
		}
		t.chords[def.Name] = Chord{Name: def.Name, Fingerings: fingerings}
	}
	return nil
}

// Lookup finds a chord by exact, case-sensitive name.
func (t *Table) Lookup(name string) (Chord, error) {
	c, ok := t.chords[name]
	if !ok {
		return Chord{}, fmt.Errorf("%w: %s", ErrUnknownChord, name)
	}
	return c, nil
}

// Names returns all chord names in the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.chords))
	for name := range t.chords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many chords the table holds.
func (t *Table) Len() int {
	return len(t.chords)
}
