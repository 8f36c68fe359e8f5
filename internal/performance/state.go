package performance

import (
	"sort"

	"github.com/leandrodaf/moonlight/internal/theory"
)

// State is the material of the bar being played.
type State struct {
	Bar            int
	Chord          theory.Chord
	Voicing        theory.Voicing
	Melody         theory.Note
	MelodyVelocity int
	Bass           theory.Note
	BassVelocity   int

	sounding map[theory.Note]int
}

func (s *State) hold(n theory.Note) {
	if s.sounding == nil {
		s.sounding = make(map[theory.Note]int)
	}
	s.sounding[n]++
}

func (s *State) release(n theory.Note) {
	if s.sounding[n] <= 1 {
		delete(s.sounding, n)
		return
	}
	s.sounding[n]--
}

// Sounding returns the notes switched on and not yet off, ascending.
func (s State) Sounding() []theory.Note {
	notes := make([]theory.Note, 0, len(s.sounding))
	for n := range s.sounding {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
	return notes
}
