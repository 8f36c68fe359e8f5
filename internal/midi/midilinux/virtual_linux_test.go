//go:build linux
// +build linux

package midilinux

import (
	"testing"

	"github.com/leandrodaf/moonlight/internal/logger"
	"github.com/leandrodaf/moonlight/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func TestVirtualOutSharesRegisteredDriver(t *testing.T) {
	registered, ok := drivers.Get().(*rtmididrv.Driver)
	require.True(t, ok)

	options := &contracts.EngineOptions{Config: contracts.DefaultConfig(), Logger: logger.NewNopLogger()}
	sink, err := NewVirtualOut(options)
	if err != nil {
		t.Skipf("ALSA sequencer unavailable: %v", err)
	}

	require.NoError(t, sink.Send(contracts.NoteMessage(60, 10)))
	require.NoError(t, sink.Send(contracts.NoteMessage(60, 0)))
	require.NoError(t, sink.Close())
	assert.ErrorIs(t, sink.Send(contracts.NoteMessage(60, 10)), ErrVirtualOutClosed)

	// Closing the port leaves the shared driver usable.
	assert.Same(t, registered, drivers.Get())
	_, err = registered.Outs()
	assert.NoError(t, err)
}
