// Package performance schedules the endless chord-and-melody performance.
//
// One bar is played per chord: four beats of three triplets. Every triplet
// sounds one voicing note, holds it for a swung subdivision, presses the
// sustain pedal and releases the note. The melody may change on the third
// beat and on the last triplet of the fourth beat.
package performance

import (
	"context"
	"errors"
	"fmt"

	"github.com/leandrodaf/moonlight/internal/theory"
	"github.com/leandrodaf/moonlight/sdk/contracts"
)

const (
	BeatsPerBar     = 4 // BeatsPerBar is the number of beats played over one chord.
	TripletsPerBeat = 3 // TripletsPerBeat is the number of voicing notes per beat.
)

// ErrSink wraps every failure reported by the output.
var ErrSink = errors.New("midi sink failure")

// Performer owns the performance state and drives the sink.
type Performer struct {
	cfg   contracts.Config
	rnd   theory.Rand
	sink  contracts.Sink
	clock contracts.Clock
	log   contracts.Logger

	melodyRegister  theory.Register
	voicingRegister theory.Register

	state State
}

// New creates a Performer drawing from rnd and sending to sink. A nil clock means real time.
func New(cfg contracts.Config, rnd theory.Rand, sink contracts.Sink, clock contracts.Clock, log contracts.Logger) *Performer {
	if clock == nil {
		clock = RealClock{}
	}
	return &Performer{
		cfg:             cfg,
		rnd:             rnd,
		sink:            sink,
		clock:           clock,
		log:             log,
		melodyRegister:  theory.RegisterFrom(cfg.Melody),
		voicingRegister: theory.RegisterFrom(cfg.Voicing),
	}
}

// State returns a copy of the current bar's material.
func (p *Performer) State() State {
	s := p.state
	s.sounding = make(map[theory.Note]int, len(p.state.sounding))
	for n, c := range p.state.sounding {
		s.sounding[n] = c
	}
	return s
}

// Run plays bars until ctx is cancelled or the sink fails. On cancellation
// every sounding note is released and ctx.Err() is returned.
func (p *Performer) Run(ctx context.Context) error {
	p.log.Info("Performance started",
		p.log.Field().Int64("seed", p.cfg.Seed),
		p.log.Field().Duration("tempo", p.cfg.Tempo))

	for {
		if err := p.PlayBar(ctx); err != nil {
			return err
		}
	}
}

// PlayBar plays one complete bar over a freshly generated chord.
func (p *Performer) PlayBar(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := &p.state
	s.Bar++
	s.Chord = theory.GenerateChord(p.rnd)
	s.Voicing = theory.Voice(s.Chord, p.voicingRegister)

	s.Melody = theory.PickMelody(p.rnd, s.Chord, p.melodyRegister)
	s.MelodyVelocity = p.velocity(p.cfg.MelodyVelocity)
	if err := p.noteOn(s.Melody, s.MelodyVelocity); err != nil {
		return err
	}

	s.Bass = theory.Bass(s.Chord, theory.Note(p.cfg.BassOffset))
	s.BassVelocity = p.velocity(p.cfg.BassVelocity)
	if err := p.noteOn(s.Bass, s.BassVelocity); err != nil {
		return err
	}

	p.log.Debug("Bar started",
		p.log.Field().Int("bar", s.Bar),
		p.log.Field().String("chord", s.Chord.String()),
		p.log.Field().Ints("voicing", s.Voicing.Keys()),
		p.log.Field().Int("melody", int(s.Melody)),
		p.log.Field().Int("bass", int(s.Bass)))

	for beat := 1; beat <= BeatsPerBar; beat++ {
		if err := ctx.Err(); err != nil {
			return p.stop(err)
		}

		if beat == 3 && p.rnd.Next(2) == 0 {
			if err := p.changeMelody(s.MelodyVelocity - p.cfg.MelodyChangePenalty); err != nil {
				return err
			}
		}

		for triplet := 1; triplet <= TripletsPerBeat; triplet++ {
			if beat == BeatsPerBar && triplet == TripletsPerBeat && p.rnd.Next(3) == 0 {
				if err := p.changeMelody(s.MelodyVelocity - p.cfg.MelodyLateChangePenalty); err != nil {
					return err
				}
			}
			if err := p.playTriplet(ctx, s.Voicing[triplet-1]); err != nil {
				return err
			}
		}
	}

	if err := p.noteOff(s.Melody); err != nil {
		return err
	}
	if err := p.noteOff(s.Bass); err != nil {
		return err
	}
	return p.pedal(0)
}

// playTriplet sounds one voicing note for a swung subdivision.
func (p *Performer) playTriplet(ctx context.Context, note theory.Note) error {
	if err := p.noteOn(note, p.velocity(p.cfg.VoicingVelocity)); err != nil {
		return err
	}

	hold := SwingDuration(p.cfg.Tempo, p.rnd.Next(p.cfg.SwingMaxPercent))
	if err := p.clock.Sleep(ctx, hold); err != nil {
		return p.stop(err)
	}

	if err := p.pedal(p.cfg.PedalOnValue); err != nil {
		return err
	}
	return p.noteOff(note)
}

// changeMelody replaces the melody note. The velocity is the bar's melody
// velocity less a penalty, not a fresh draw.
func (p *Performer) changeMelody(velocity int) error {
	s := &p.state
	if err := p.noteOff(s.Melody); err != nil {
		return err
	}
	s.Melody = theory.PickMelody(p.rnd, s.Chord, p.melodyRegister)

	p.log.Debug("Melody changed",
		p.log.Field().Int("bar", s.Bar),
		p.log.Field().Int("melody", int(s.Melody)),
		p.log.Field().Int("velocity", velocity))
	return p.noteOn(s.Melody, velocity)
}

// stop releases everything still sounding and returns cause.
func (p *Performer) stop(cause error) error {
	var errs []error
	for _, n := range p.state.Sounding() {
		if err := p.noteOff(n); err != nil {
			errs = append(errs, err)
		}
	}
	if err := p.pedal(0); err != nil {
		errs = append(errs, err)
	}

	p.log.Info("Performance stopped",
		p.log.Field().Int("bar", p.state.Bar),
		p.log.Field().Error("cause", cause))
	if len(errs) == 0 {
		return cause
	}
	return errors.Join(append([]error{cause}, errs...)...)
}

func (p *Performer) velocity(r contracts.VelocityRange) int {
	return r.Base + p.rnd.Next(r.Range)
}

func (p *Performer) noteOn(n theory.Note, velocity int) error {
	msg := contracts.NoteMessage(int(n), velocity)
	if err := p.send(msg); err != nil {
		return err
	}
	// A velocity clamped to 0 is a note-off on the wire.
	if msg.IsNoteOn() {
		p.state.hold(n)
	}
	return nil
}

func (p *Performer) noteOff(n theory.Note) error {
	if err := p.send(contracts.NoteMessage(int(n), 0)); err != nil {
		return err
	}
	p.state.release(n)
	return nil
}

func (p *Performer) pedal(value int) error {
	return p.send(contracts.PedalMessage(value))
}

func (p *Performer) send(msg contracts.Message) error {
	if err := p.sink.Send(msg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSink, msg, err)
	}
	return nil
}
