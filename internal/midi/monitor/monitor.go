// Package monitor decorates a sink with logging and note accounting.
package monitor

import (
	"sync"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// Stats counts what went through the sink.
type Stats struct {
	NoteOns  uint64
	NoteOffs uint64
	Pedals   uint64
	Errors   uint64
}

// Monitor forwards every message to the wrapped sink and logs it at debug level.
type Monitor struct {
	next   contracts.Sink
	logger contracts.Logger
	mu     sync.Mutex
	stats  Stats
}

// New wraps next so every message is counted and logged through logger.
func New(next contracts.Sink, logger contracts.Logger) *Monitor {
	return &Monitor{next: next, logger: logger}
}

// Send forwards msg, then counts it by kind or as an error.
func (m *Monitor) Send(msg contracts.Message) error {
	err := m.next.Send(msg)

	m.mu.Lock()
	switch {
	case err != nil:
		m.stats.Errors++
	case msg.IsNoteOn():
		m.stats.NoteOns++
	case msg.IsNoteOff():
		m.stats.NoteOffs++
	case msg.IsPedal():
		m.stats.Pedals++
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Error("MIDI send failed",
			m.logger.Field().String("message", msg.String()),
			m.logger.Field().Error("error", err))
		return err
	}
	if m.logger.Enabled(contracts.DebugLevel) {
		m.logger.Debug("MIDI out",
			m.logger.Field().Uint8("status", msg.Status()),
			m.logger.Field().Uint8("data1", msg.Data1()),
			m.logger.Field().Uint8("data2", msg.Data2()))
	}
	return nil
}

// Close logs the totals and closes the wrapped sink.
func (m *Monitor) Close() error {
	s := m.Stats()
	m.logger.Info("MIDI output summary",
		m.logger.Field().Uint64("noteOns", s.NoteOns),
		m.logger.Field().Uint64("noteOffs", s.NoteOffs),
		m.logger.Field().Uint64("pedals", s.Pedals),
		m.logger.Field().Uint64("errors", s.Errors))
	return m.next.Close()
}

// Stats returns a snapshot of the counters.
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
