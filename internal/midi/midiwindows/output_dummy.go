//go:build !windows
// +build !windows

package midiwindows

import (
	"fmt"

	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// NewOutput is unavailable outside Windows.
func NewOutput(options *contracts.EngineOptions) (contracts.Sink, error) {
	options.Logger.Warn("winmm output requested on non-Windows system")
	return nil, fmt.Errorf("winmm is not available on this platform")
}
