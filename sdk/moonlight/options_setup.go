package moonlight

import (
	"fmt"

	"github.com/leandrodaf/moonlight/internal/logger"
	"github.com/leandrodaf/moonlight/internal/performance"
	"github.com/leandrodaf/moonlight/sdk/contracts"
)

// applyDefaultOptions sets default values for EngineOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify EngineOptions.
//
// Returns:
//   - contracts.EngineOptions: the finalized options with defaults applied.
//   - error: the configuration is invalid or the log destination cannot be opened.
func applyDefaultOptions(opts ...contracts.Option) (contracts.EngineOptions, error) {
	options := &contracts.EngineOptions{Config: contracts.DefaultConfig()}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Clock == nil {
		options.Clock = performance.RealClock{}
	}
	if options.Config.ClientName == "" {
		options.Config.ClientName = contracts.DefaultConfig().ClientName
	}

	options.Logger.SetLevel(options.LogLevel)
	if options.LogFilePath != "" {
		if err := options.Logger.SetDestination(contracts.FileLog, options.LogFilePath); err != nil {
			return *options, err
		}
	}

	if err := options.Config.Validate(); err != nil {
		return *options, fmt.Errorf("engine options: %w", err)
	}
	return *options, nil
}
