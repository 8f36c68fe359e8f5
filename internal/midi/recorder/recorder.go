// Package recorder keeps every message sent to it, in order.
package recorder

import (
	"errors"
	"sync"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("recorder closed")

// Recorder is an in-memory sink.
type Recorder struct {
	mu       sync.Mutex
	messages []contracts.Message
	failAt   int
	failErr  error
	closed   bool
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{failAt: -1}
}

// FailAfter makes the n-th following Send (0-based count of all sends) return err.
func (r *Recorder) FailAfter(n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failAt = n
	r.failErr = err
}

func (r *Recorder) Send(msg contracts.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.failAt >= 0 && len(r.messages) == r.failAt {
		return r.failErr
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []contracts.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]contracts.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Reset drops recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

// Sounding replays the recording and returns the keys still held, ascending.
func Sounding(msgs []contracts.Message) []int {
	held := make(map[int]int)
	for _, m := range msgs {
		switch {
		case m.IsNoteOn():
			held[int(m.Data1())]++
		case m.IsNoteOff():
			if held[int(m.Data1())] > 0 {
				held[int(m.Data1())]--
			}
		}
	}
	var keys []int
	for key := 0; key < 128; key++ {
		if held[key] > 0 {
			keys = append(keys, key)
		}
	}
	return keys
}
