//go:build linux
// +build linux

package midilinux

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/moonlight/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Error definitions for the ALSA virtual output.
var (
	ErrNoDriver         = errors.New("RtMidi driver not registered")
	ErrVirtualOutClosed = errors.New("virtual output closed")
)

// VirtualOut is an ALSA sequencer port opened through RtMidi.
//
// The port is opened on the driver rtmididrv registers at init, so the
// process holds a single ALSA client shared with port listing. RtMidi names
// that client itself; Config.ClientName only applies to CoreMIDI.
type VirtualOut struct {
	logger contracts.Logger
	out    drivers.Out
	send   func(gomidi.Message) error
	mu     sync.Mutex
}

// NewVirtualOut opens a virtual output port other clients can subscribe to.
func NewVirtualOut(options *contracts.EngineOptions) (contracts.Sink, error) {
	drv, ok := drivers.Get().(*rtmididrv.Driver)
	if !ok {
		return nil, ErrNoDriver
	}

	out, err := drv.OpenVirtualOut(options.Config.PortName)
	if err != nil {
		return nil, fmt.Errorf("failed to open virtual output %q: %w", options.Config.PortName, err)
	}

	send, err := gomidi.SendTo(out)
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("failed to attach sender: %w", err)
	}

	options.Logger.Info("ALSA virtual output created",
		options.Logger.Field().String("port", out.String()))

	return &VirtualOut{logger: options.Logger, out: out, send: send}, nil
}

// Send writes one message to the port.
func (v *VirtualOut) Send(msg contracts.Message) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.send == nil {
		return ErrVirtualOutClosed
	}
	return v.send(gomidi.Message(msg.Bytes()))
}

// Close closes the port. The shared driver stays registered.
func (v *VirtualOut) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.send == nil {
		return nil
	}
	v.send = nil
	err := v.out.Close()
	v.logger.Info("ALSA virtual output closed")
	return err
}
