//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/moonlight/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for CoreMIDI setup and delivery.
var (
	ErrCreateClient = errors.New("error creating CoreMIDI client")
	ErrCreateSource = errors.New("error creating virtual source")
	ErrSourceClosed = errors.New("virtual source closed")
)

// VirtualSource publishes messages on a CoreMIDI virtual source.
// DAWs and synths see it as an input named after the configured port.
type VirtualSource struct {
	logger contracts.Logger
	client coremidi.Client
	source coremidi.Source
	mu     sync.Mutex
	closed bool
}

// NewVirtualSource registers a CoreMIDI client and a virtual source owned by it.
func NewVirtualSource(options *contracts.EngineOptions) (contracts.Sink, error) {
	client, err := coremidi.NewClient(options.Config.ClientName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateClient, err)
	}

	source, err := coremidi.NewSource(client, options.Config.PortName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateSource, err)
	}

	options.Logger.Info("CoreMIDI virtual source created",
		options.Logger.Field().String("client", options.Config.ClientName),
		options.Logger.Field().String("source", source.Name()))

	return &VirtualSource{
		logger: options.Logger,
		client: client,
		source: source,
	}, nil
}

// Send hands one message to CoreMIDI as if the source had received it.
// The packet owns a copy of the bytes for the duration of the call.
func (s *VirtualSource) Send(msg contracts.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}

	packet := coremidi.NewPacket(msg.Bytes(), 0)
	if err := packet.Received(&s.source); err != nil {
		return fmt.Errorf("failed to deliver %s: %w", msg, err)
	}
	return nil
}

// Close stops delivery. CoreMIDI removes the source when the process exits.
func (s *VirtualSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Info("CoreMIDI virtual source closed")
	return nil
}
