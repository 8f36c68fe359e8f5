package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesOriginalConstants(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 333333333*time.Nanosecond, cfg.Tempo)
	assert.Equal(t, 36, cfg.BassOffset)
	assert.Equal(t, RegisterRange{Offset: 72, Ceiling: 84}, cfg.Melody)
	assert.Equal(t, RegisterRange{Offset: 48, Ceiling: 60}, cfg.Voicing)
	assert.Equal(t, 5, cfg.SwingMaxPercent)
	assert.Equal(t, "Moonlight", cfg.PortName)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tempo":        func(c *Config) { c.Tempo = 0 },
		"negative delay":    func(c *Config) { c.SetupDelay = -time.Second },
		"zero swing":        func(c *Config) { c.SwingMaxPercent = 0 },
		"zero melody range": func(c *Config) { c.MelodyVelocity.Range = 0 },
		"bass above 127":    func(c *Config) { c.BassVelocity = VelocityRange{Base: 120, Range: 20} },
		"no port name":      func(c *Config) { c.PortName = "" },
		"silent melody":     func(c *Config) { c.MelodyVelocity = VelocityRange{Base: 0, Range: 1} },
		"silent bass":       func(c *Config) { c.BassVelocity.Base = 0 },
		"silent voicing":    func(c *Config) { c.VoicingVelocity.Base = 0 },
		"late change mutes": func(c *Config) { c.MelodyVelocity = VelocityRange{Base: 8, Range: 1} },
		"change mutes":      func(c *Config) { c.MelodyVelocity.Base = 5; c.MelodyLateChangePenalty = 0 },
		"negative penalty":  func(c *Config) { c.MelodyChangePenalty = -1 },
		"pedal value zero":  func(c *Config) { c.PedalOnValue = 0 },
		"bass too high":     func(c *Config) { c.BassOffset = 120 },
		"bass below zero":   func(c *Config) { c.BassOffset = -1 },
		"melody too high":   func(c *Config) { c.Melody = RegisterRange{Offset: 120, Ceiling: 130} },
		"voicing below 0":   func(c *Config) { c.Voicing = RegisterRange{Offset: 0, Ceiling: -1} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateAcceptsEdgeOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MelodyVelocity = VelocityRange{Base: 11, Range: 117}
	cfg.BassOffset = 116
	cfg.Voicing = RegisterRange{Offset: 109, Ceiling: 127}

	assert.NoError(t, cfg.Validate())
}
