//go:build !linux
// +build !linux

package midilinux

import (
	"fmt"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// NewVirtualOut is unavailable outside Linux.
func NewVirtualOut(options *contracts.EngineOptions) (contracts.Sink, error) {
	options.Logger.Warn("ALSA virtual output requested on non-Linux system")
	return nil, fmt.Errorf("ALSA virtual ports are not available on this platform")
}
