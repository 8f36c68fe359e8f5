package contracts

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Semitones in an octave; also the fold distance of every register.
const Octave = 12

// VelocityRange samples velocities in [Base, Base+Range).
type VelocityRange struct {
	Base  int // Lowest velocity.
	Range int // Number of distinct velocities above Base. Must be >= 1.
}

// RegisterRange transposes chord tones into a register.
type RegisterRange struct {
	Offset  int // Semitones added to each chord tone.
	Ceiling int // Tones above this are played an octave lower.
}

// fold mirrors the register rule: transpose, then drop one octave above the ceiling.
func (r RegisterRange) fold(tone int) int {
	key := tone + r.Offset
	if key > r.Ceiling {
		key -= Octave
	}
	return key
}

// Config holds the tunable constants of the performance.
type Config struct {
	Seed  int64         // Seed of the random source.
	Tempo time.Duration // Nominal length of one triplet subdivision.

	SetupDelay time.Duration // Wait after opening the port before the first bar.

	MelodyVelocity  VelocityRange
	BassVelocity    VelocityRange
	VoicingVelocity VelocityRange

	// Velocity penalties applied to a melody note changed mid-bar.
	MelodyChangePenalty     int // third beat
	MelodyLateChangePenalty int // last triplet of the fourth beat

	SwingMaxPercent int // Swing draws Next(SwingMaxPercent) percent of stretch.

	BassOffset int // Added to the chord root, never folded.
	Melody     RegisterRange
	Voicing    RegisterRange

	PedalOnValue int // Sustain value sent after every voicing note.

	ClientName string // Name of the MIDI client registered with the host.
	PortName   string // Name of the virtual output port.
}

// DefaultConfig returns the constants of the original Moonlight performance.
func DefaultConfig() Config {
	return Config{
		Seed:                    0,
		Tempo:                   20 * time.Second / 60,
		SetupDelay:              time.Second,
		MelodyVelocity:          VelocityRange{Base: 40, Range: 20},
		BassVelocity:            VelocityRange{Base: 20, Range: 20},
		VoicingVelocity:         VelocityRange{Base: 20, Range: 20},
		MelodyChangePenalty:     5,
		MelodyLateChangePenalty: 10,
		SwingMaxPercent:         5,
		BassOffset:              3 * Octave,
		Melody:                  RegisterRange{Offset: 6 * Octave, Ceiling: 7 * Octave},
		Voicing:                 RegisterRange{Offset: 4 * Octave, Ceiling: 5 * Octave},
		PedalOnValue:            127,
		ClientName:              "GenerativeMusic",
		PortName:                "Moonlight",
	}
}

// Highest raw chord tone: root 11 plus a fifth.
const maxChordTone = 11 + 7

// Validate checks that every random draw has a positive limit, that the
// tempo can drive the scheduler, that no note-on can be sent at velocity 0
// and that every key lands in 0..127.
func (c Config) Validate() error {
	if c.Tempo <= 0 {
		return fmt.Errorf("%w: tempo must be positive, got %s", ErrInvalidConfig, c.Tempo)
	}
	if c.SetupDelay < 0 {
		return fmt.Errorf("%w: setup delay must not be negative", ErrInvalidConfig)
	}
	if c.SwingMaxPercent < 1 {
		return fmt.Errorf("%w: swing max percent must be >= 1, got %d", ErrInvalidConfig, c.SwingMaxPercent)
	}
	for name, v := range map[string]VelocityRange{
		"melody":  c.MelodyVelocity,
		"bass":    c.BassVelocity,
		"voicing": c.VoicingVelocity,
	} {
		if v.Range < 1 {
			return fmt.Errorf("%w: %s velocity range must be >= 1, got %d", ErrInvalidConfig, name, v.Range)
		}
		if v.Base < 1 || v.Base+v.Range-1 > 127 {
			return fmt.Errorf("%w: %s velocity [%d, %d) outside 1..127", ErrInvalidConfig, name, v.Base, v.Base+v.Range)
		}
	}
	if c.MelodyChangePenalty < 0 || c.MelodyLateChangePenalty < 0 {
		return fmt.Errorf("%w: melody change penalties must not be negative", ErrInvalidConfig)
	}
	if low := c.MelodyVelocity.Base - max(c.MelodyChangePenalty, c.MelodyLateChangePenalty); low < 1 {
		return fmt.Errorf("%w: a changed melody note could be played at velocity %d", ErrInvalidConfig, low)
	}
	if c.PedalOnValue < 1 || c.PedalOnValue > 127 {
		return fmt.Errorf("%w: pedal on value %d outside 1..127", ErrInvalidConfig, c.PedalOnValue)
	}
	if c.BassOffset < 0 || c.BassOffset+Octave-1 > 127 {
		return fmt.Errorf("%w: bass offset %d puts keys outside 0..127", ErrInvalidConfig, c.BassOffset)
	}
	for name, r := range map[string]RegisterRange{
		"melody":  c.Melody,
		"voicing": c.Voicing,
	} {
		for tone := 0; tone <= maxChordTone; tone++ {
			if key := r.fold(tone); key < 0 || key > 127 {
				return fmt.Errorf("%w: %s register puts tone %d on key %d", ErrInvalidConfig, name, tone, key)
			}
		}
	}
	if c.PortName == "" {
		return fmt.Errorf("%w: port name is empty", ErrInvalidConfig)
	}
	return nil
}
