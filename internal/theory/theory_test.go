package theory

import (
	"sort"
	"testing"

	"github.com/leandrodaf/moonlight/internal/random"
	"github.com/leandrodaf/moonlight/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand answers every draw with the same function of the limit.
type fixedRand func(limit int) int

func (f fixedRand) Next(limit int) int { return f(limit) }

var (
	lowest  = fixedRand(func(int) int { return 0 })
	highest = fixedRand(func(limit int) int { return limit - 1 })
)

var (
	melodyRegister  = RegisterFrom(contracts.DefaultConfig().Melody)
	voicingRegister = RegisterFrom(contracts.DefaultConfig().Voicing)
)

func TestGenerateChordExtremes(t *testing.T) {
	assert.Equal(t, Chord{0, 3, 7}, GenerateChord(lowest))
	assert.Equal(t, Chord{11, 15, 18}, GenerateChord(highest))
}

func TestGenerateChordSeedZero(t *testing.T) {
	c := GenerateChord(random.New(0))

	assert.Equal(t, Chord{2, 6, 9}, c)
	assert.Equal(t, "D", c.Name())
}

func TestGenerateChordInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		r := random.New(seed)
		for i := 0; i < 100; i++ {
			c := GenerateChord(r)
			require.GreaterOrEqual(t, c.Root(), Note(0))
			require.Less(t, c.Root(), Note(12))
			require.Contains(t, []Note{3, 4}, c.Third()-c.Root())
			require.Equal(t, Note(7), c.Fifth()-c.Root())
		}
	}
}

func TestChordName(t *testing.T) {
	assert.Equal(t, "Cm", Chord{0, 3, 7}.Name())
	assert.Equal(t, "B", Chord{11, 15, 18}.Name())
	assert.Equal(t, "Cm(0 3 7)", Chord{0, 3, 7}.String())
}

func TestVoiceFoldsAndSorts(t *testing.T) {
	cases := []struct {
		chord Chord
		want  Voicing
	}{
		{Chord{0, 3, 7}, Voicing{48, 51, 55}},
		{Chord{2, 6, 9}, Voicing{50, 54, 57}},
		{Chord{11, 15, 18}, Voicing{51, 54, 59}},
		{Chord{5, 9, 12}, Voicing{53, 57, 60}},
		{Chord{6, 10, 13}, Voicing{49, 54, 58}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Voice(tc.chord, voicingRegister), tc.chord.String())
	}
}

func TestVoiceInvariants(t *testing.T) {
	r := random.New(11)
	for i := 0; i < 2000; i++ {
		c := GenerateChord(r)
		v := Voice(c, voicingRegister)

		keys := v.Keys()
		require.Len(t, keys, 3)
		require.True(t, sort.IntsAreSorted(keys))
		for _, k := range keys {
			require.LessOrEqual(t, k, 60)
			require.GreaterOrEqual(t, k, 60-contracts.Octave)
		}
		require.Equal(t, v, Voice(c, voicingRegister))
	}
}

func TestPickMelody(t *testing.T) {
	assert.Equal(t, Note(72), PickMelody(lowest, Chord{0, 3, 7}, melodyRegister))
	// 18 + 72 = 90 is above 84 and drops an octave.
	assert.Equal(t, Note(78), PickMelody(highest, Chord{11, 15, 18}, melodyRegister))
}

func TestPickMelodyNeverExceedsCeiling(t *testing.T) {
	r := random.New(5)
	for i := 0; i < 2000; i++ {
		c := GenerateChord(r)
		m := PickMelody(r, c, melodyRegister)
		require.LessOrEqual(t, m, melodyRegister.Ceiling)
		require.Contains(t, []Note{
			melodyRegister.Fold(c[0]),
			melodyRegister.Fold(c[1]),
			melodyRegister.Fold(c[2]),
		}, m)
	}
}

func TestBassIsNotFolded(t *testing.T) {
	assert.Equal(t, Note(36), Bass(Chord{0, 3, 7}, 36))
	assert.Equal(t, Note(47), Bass(Chord{11, 15, 18}, 36))
	assert.Equal(t, Note(110), Bass(Chord{11, 15, 18}, 99))
}
