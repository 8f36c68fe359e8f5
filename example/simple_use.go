package main

import (
	"context"
	"fmt"
	"time"

	"github.com/leandrodaf/moonlight/internal/logger"
	"github.com/leandrodaf/moonlight/sdk/contracts"
	"github.com/leandrodaf/moonlight/sdk/moonlight"
)

// Plays one minute of the performance with a different seed and a faster tempo.
func main() {
	log := logger.NewZapLogger()

	cfg := contracts.DefaultConfig()
	cfg.Seed = 1234
	cfg.Tempo = 250 * time.Millisecond

	engine, err := moonlight.NewEngine(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithConfig(cfg),
		contracts.WithMonitor(),
	)
	if err != nil {
		log.Error("Failed to initialize engine", log.Field().Error("error", err))
		return
	}
	defer engine.Close()

	fmt.Println("Available MIDI outputs:", moonlight.ListPorts())

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := engine.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("Performance failed", log.Field().Error("error", err))
	}
}
