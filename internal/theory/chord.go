// Package theory derives chords and the notes played over them.
//
// Notes are semitone offsets from pitch 0. A chord tone only becomes a
// playable key once it is moved into a register.
package theory

import (
	"fmt"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// Rand is the draw used by every generator: a value in [0, limit).
type Rand interface {
	Next(limit int) int
}

// Note is a semitone offset from pitch 0.
type Note int

// Chord is a triad of raw semitone offsets: root, third, fifth.
type Chord [3]Note

// GenerateChord draws a root in [0, 12), a minor or major third and a perfect fifth.
// Tones are not folded, so third and fifth may exceed 11.
func GenerateChord(r Rand) Chord {
	root := Note(r.Next(contracts.Octave))
	third := root + 3 + Note(r.Next(2))
	return Chord{root, third, root + 7}
}

func (c Chord) Root() Note  { return c[0] }
func (c Chord) Third() Note { return c[1] }
func (c Chord) Fifth() Note { return c[2] }

// IsMinor reports whether the third is three semitones above the root.
func (c Chord) IsMinor() bool {
	return c.Third()-c.Root() == 3
}

var pitchNames = [contracts.Octave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name spells the chord as its root pitch class, with an "m" suffix when minor.
func (c Chord) Name() string {
	name := pitchNames[((int(c.Root())%contracts.Octave)+contracts.Octave)%contracts.Octave]
	if c.IsMinor() {
		name += "m"
	}
	return name
}

func (c Chord) String() string {
	return fmt.Sprintf("%s(%d %d %d)", c.Name(), c[0], c[1], c[2])
}
