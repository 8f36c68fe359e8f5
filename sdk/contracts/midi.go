package contracts

import (
	"context"
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Status bytes used by the performance. Everything is sent on channel 1.
const (
	StatusNote          byte = 0x90 // 144
	StatusControlChange byte = 0xB0 // 176
)

// SustainPedal is the controller number of the damper pedal.
const SustainPedal byte = 64

// Message is an immutable three-byte channel-voice message.
// A velocity (or pedal value) of 0 releases the note (or pedal).
type Message [3]byte

// NoteMessage frames a note-on on channel 1. Velocity 0 is a note-off.
// Out of range values are clamped to 0..127.
func NoteMessage(key, velocity int) Message {
	return fromGomidi(gomidi.NoteOn(0, clamp7(key), clamp7(velocity)))
}

// PedalMessage frames a sustain pedal control change with the given value.
func PedalMessage(value int) Message {
	return fromGomidi(gomidi.ControlChange(0, SustainPedal, clamp7(value)))
}

func fromGomidi(raw gomidi.Message) Message {
	var m Message
	copy(m[:], raw)
	return m
}

func clamp7(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 127:
		return 127
	}
	return uint8(v)
}

// Status returns the status byte.
func (m Message) Status() byte { return m[0] }

// Data1 returns the note or controller number.
func (m Message) Data1() byte { return m[1] }

// Data2 returns the velocity or controller value.
func (m Message) Data2() byte { return m[2] }

// Bytes returns a fresh copy of the wire bytes.
func (m Message) Bytes() []byte {
	return []byte{m[0], m[1], m[2]}
}

// IsNoteOn reports whether m starts a note.
func (m Message) IsNoteOn() bool {
	return m[0]&0xF0 == StatusNote && m[2] > 0
}

// IsNoteOff reports whether m ends a note, either by zero velocity or by a 0x80 status.
func (m Message) IsNoteOff() bool {
	return (m[0]&0xF0 == StatusNote && m[2] == 0) || m[0]&0xF0 == 0x80
}

// IsPedal reports whether m is a sustain pedal change.
func (m Message) IsPedal() bool {
	return m[0]&0xF0 == StatusControlChange && m[1] == SustainPedal
}

func (m Message) String() string {
	switch {
	case m.IsNoteOn():
		return fmt.Sprintf("NoteOn key=%d vel=%d", m[1], m[2])
	case m.IsNoteOff():
		return fmt.Sprintf("NoteOff key=%d", m[1])
	case m.IsPedal():
		return fmt.Sprintf("Pedal value=%d", m[2])
	}
	return fmt.Sprintf("Message [%d %d %d]", m[0], m[1], m[2])
}

// Sink accepts messages in emission order. Delivery is fire-and-forget:
// there is no acknowledgement, retry or batching.
type Sink interface {
	Send(msg Message) error // Send delivers one message to the output.
	Close() error           // Close releases the output endpoint.
}

// Clock suspends the performance between a voicing note-on and its note-off.
type Clock interface {
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// Engine plays the generative performance.
type Engine interface {
	Run(ctx context.Context) error // Run plays bars until ctx is cancelled or the sink fails.
	Close() error                  // Close releases the sink.
}

// PortInfo describes a MIDI output port.
type PortInfo struct {
	Number int    // Driver port number.
	Name   string // Port name as reported by the driver.
}
