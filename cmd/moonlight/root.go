package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/leandrodaf/moonlight/internal/logger"
	"github.com/leandrodaf/moonlight/sdk/contracts"
	"github.com/leandrodaf/moonlight/sdk/moonlight"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moonlight",
	Short: "Endless generative chord-and-melody performance",
	Long: `Moonlight opens a virtual MIDI output named "Moonlight" and plays an
endless pseudo-random performance on it: a new chord every bar, an
arpeggiated voicing in triplets, a held bass and a wandering melody.
Connect a synth or DAW to the port and stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.NewZapLogger()
		defer log.Sync()

		opts := []contracts.Option{contracts.WithLogger(log)}
		if os.Getenv("MOONLIGHT_DEBUG") != "" {
			opts = append(opts, contracts.WithLogLevel(contracts.DebugLevel), contracts.WithMonitor())
		}

		eng, err := moonlight.NewEngine(opts...)
		if err != nil {
			log.Fatal("Failed to initialize engine", log.Field().Error("error", err))
		}
		defer eng.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := eng.Run(ctx); err != nil {
			eng.Close()
			log.Fatal("Performance aborted", log.Field().Error("error", err))
		}
		log.Info("Performance finished")
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
