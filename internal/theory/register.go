package theory

import (
	"sort"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// Register moves chord tones into a band of the keyboard.
type Register struct {
	Offset  Note
	Ceiling Note
}

// RegisterFrom converts a configured register.
func RegisterFrom(r contracts.RegisterRange) Register {
	return Register{Offset: Note(r.Offset), Ceiling: Note(r.Ceiling)}
}

// Fold transposes n by the register offset and drops it one octave when it
// lands above the ceiling. A single octave is subtracted at most.
func (r Register) Fold(n Note) Note {
	n += r.Offset
	if n > r.Ceiling {
		n -= contracts.Octave
	}
	return n
}

// Voicing is a chord folded into a register, lowest note first.
type Voicing [3]Note

// Voice folds every tone of c into reg and sorts the result ascending.
func Voice(c Chord, reg Register) Voicing {
	v := Voicing{reg.Fold(c[0]), reg.Fold(c[1]), reg.Fold(c[2])}
	sort.Slice(v[:], func(i, j int) bool { return v[i] < v[j] })
	return v
}

// Keys returns the voicing as ints.
func (v Voicing) Keys() []int {
	return []int{int(v[0]), int(v[1]), int(v[2])}
}

// PickMelody draws one chord tone and folds it into reg.
func PickMelody(r Rand, c Chord, reg Register) Note {
	return reg.Fold(c[r.Next(len(c))])
}

// Bass transposes the chord root by offset. The bass is never folded.
func Bass(c Chord, offset Note) Note {
	return c.Root() + offset
}
