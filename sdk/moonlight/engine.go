package moonlight

import (
	"context"
	"errors"

	"github.com/leandrodaf/moonlight/internal/midi/monitor"
	"github.com/leandrodaf/moonlight/internal/performance"
	"github.com/leandrodaf/moonlight/internal/random"
	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// engine wires the random source, the performer and the output.
type engine struct {
	options   contracts.EngineOptions
	sink      contracts.Sink
	performer *performance.Performer
}

// NewEngine creates a new engine with the specified options.
// It applies default options and opens the platform output unless a sink is given.
//
// opts ...contracts.Option: A variadic list of option functions to customize the engine.
//
// Returns:
//   - contracts.Engine: the engine, ready to Run.
//   - error: An error, if any occurred while validating options or opening the output.
func NewEngine(opts ...contracts.Option) (contracts.Engine, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	sink := options.Sink
	if sink == nil {
		if sink, err = NewSink(&options); err != nil {
			return nil, err
		}
	}
	if options.Monitor {
		sink = monitor.New(sink, options.Logger)
	}

	rnd := random.New(options.Config.Seed)
	return &engine{
		options:   options,
		sink:      sink,
		performer: performance.New(options.Config, rnd, sink, options.Clock, options.Logger),
	}, nil
}

// Run waits for the output to settle, then plays until ctx is done.
// A cancelled or expired context is a clean stop and returns nil.
func (e *engine) Run(ctx context.Context) error {
	log := e.options.Logger
	if err := e.options.Clock.Sleep(ctx, e.options.Config.SetupDelay); err != nil {
		return ignoreCancel(err)
	}

	err := e.performer.Run(ctx)
	if err = ignoreCancel(err); err != nil {
		log.Error("Performance failed", log.Field().Error("error", err))
	}
	return err
}

// Close releases the output.
func (e *engine) Close() error {
	return e.sink.Close()
}

func ignoreCancel(err error) error {
	if errors.Is(err, performance.ErrSink) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
