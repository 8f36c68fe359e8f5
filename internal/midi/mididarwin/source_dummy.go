//go:build !darwin
// +build !darwin

package mididarwin

import (
	"fmt"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// NewVirtualSource is unavailable outside macOS.
func NewVirtualSource(options *contracts.EngineOptions) (contracts.Sink, error) {
	options.Logger.Warn("CoreMIDI virtual source requested on non-macOS system")
	return nil, fmt.Errorf("CoreMIDI is not available on this platform")
}
