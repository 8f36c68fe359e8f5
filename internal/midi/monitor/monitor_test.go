package monitor

import (
	"errors"
	"testing"

	"github.com/leandrodaf/moonlight/internal/logger"
	"github.com/leandrodaf/moonlight/internal/midi/recorder"
	"github.com/leandrodaf/moonlight/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorForwardsAndCounts(t *testing.T) {
	rec := recorder.New()
	m := New(rec, logger.NewNopLogger())

	require.NoError(t, m.Send(contracts.NoteMessage(60, 30)))
	require.NoError(t, m.Send(contracts.PedalMessage(127)))
	require.NoError(t, m.Send(contracts.NoteMessage(60, 0)))

	assert.Len(t, rec.Messages(), 3)
	assert.Equal(t, Stats{NoteOns: 1, NoteOffs: 1, Pedals: 1}, m.Stats())

	require.NoError(t, m.Close())
	assert.True(t, rec.Closed())
}

func TestMonitorCountsErrors(t *testing.T) {
	boom := errors.New("boom")
	rec := recorder.New()
	rec.FailAfter(0, boom)
	m := New(rec, logger.NewNopLogger())

	assert.ErrorIs(t, m.Send(contracts.NoteMessage(60, 30)), boom)
	assert.Equal(t, Stats{Errors: 1}, m.Stats())
}
