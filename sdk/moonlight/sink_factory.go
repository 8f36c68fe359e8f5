package moonlight

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/moonlight/internal/midi/mididarwin"
	"github.com/leandrodaf/moonlight/internal/midi/midilinux"
	"github.com/leandrodaf/moonlight/internal/midi/midiwindows"
	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no MIDI output.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// sinkInitializers maps OS names to the output each platform offers.
var sinkInitializers = map[string]func(*contracts.EngineOptions) (contracts.Sink, error){
	"darwin":  mididarwin.NewVirtualSource, // CoreMIDI virtual source.
	"linux":   midilinux.NewVirtualOut,     // ALSA virtual port through RtMidi.
	"windows": midiwindows.NewOutput,       // First matching winmm output device.
}

// NewSink opens the MIDI output of the current operating system.
func NewSink(opts *contracts.EngineOptions) (contracts.Sink, error) {
	if initializer, exists := sinkInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
