// Package config loads engine tuning from PUPILPLAY_* environment
// variables and converts it into the component configs the wiring layer
// hands to each part of the engine.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/adaptive"
	"github.com/pupilplay/engine/internal/orchestrator"
	"github.com/pupilplay/engine/internal/tier"
)

// Config is the engine-level tuning surface. Every field has a default
// that matches the stock engine; environment variables override
// individual knobs.
type Config struct {
	// Orchestration.
	MaxActionRounds int `env:"PUPILPLAY_MAX_ACTION_ROUNDS" envDefault:"6"`

	// Action dispatch.
	MaxInFlightActions int           `env:"PUPILPLAY_MAX_INFLIGHT_ACTIONS" envDefault:"4"`
	ActionTimeout      time.Duration `env:"PUPILPLAY_ACTION_TIMEOUT"       envDefault:"10s"`

	// Tier routing. AdvancedThreshold is the complexity score at and
	// above which the advanced tier serves the decision.
	AdvancedThreshold float64 `env:"PUPILPLAY_ADVANCED_THRESHOLD" envDefault:"0.5"`
	StandardModel     string  `env:"PUPILPLAY_STANDARD_MODEL"`
	AdvancedModel     string  `env:"PUPILPLAY_ADVANCED_MODEL"`
	DegradedMessage   string  `env:"PUPILPLAY_DEGRADED_MESSAGE"`

	// Breaker tuning, shared by every tier.
	BreakerFailureThreshold int           `env:"PUPILPLAY_BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	BreakerWindow           time.Duration `env:"PUPILPLAY_BREAKER_WINDOW"            envDefault:"1m"`
	BreakerCoolDown         time.Duration `env:"PUPILPLAY_BREAKER_COOLDOWN"          envDefault:"30s"`

	// Adaptive difficulty targets.
	TargetAccuracy  float64 `env:"PUPILPLAY_TARGET_ACCURACY"   envDefault:"0.75"`
	TargetLatencyMs int     `env:"PUPILPLAY_TARGET_LATENCY_MS" envDefault:"10000"`
	MinDifficulty   float64 `env:"PUPILPLAY_MIN_DIFFICULTY"    envDefault:"0.2"`
	MaxDifficulty   float64 `env:"PUPILPLAY_MAX_DIFFICULTY"    envDefault:"2.0"`

	// Game master persona injected into the rendered context.
	Personality string `env:"PUPILPLAY_PERSONALITY"`
}

// Load parses the engine config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// OrchestratorConfig converts to the orchestrator's tuning.
func (c Config) OrchestratorConfig() orchestrator.Config {
	out := orchestrator.DefaultConfig()
	out.MaxActionRounds = c.MaxActionRounds
	out.Adaptive = c.AdaptiveConfig()
	return out
}

// DispatchConfig converts to the action dispatcher's tuning.
func (c Config) DispatchConfig() actions.DispatchConfig {
	return actions.DispatchConfig{
		DefaultTimeout: c.ActionTimeout,
		MaxInFlight:    c.MaxInFlightActions,
	}
}

// BreakerConfig converts to the per-tier breaker tuning.
func (c Config) BreakerConfig() tier.BreakerConfig {
	return tier.BreakerConfig{
		FailureThreshold: c.BreakerFailureThreshold,
		Window:           c.BreakerWindow,
		CoolDown:         c.BreakerCoolDown,
	}
}

// AdaptiveConfig converts to the difficulty engine tuning.
func (c Config) AdaptiveConfig() adaptive.Config {
	out := adaptive.DefaultConfig()
	out.TargetAccuracy = c.TargetAccuracy
	out.TargetLatencyMs = c.TargetLatencyMs
	out.MinDifficulty = c.MinDifficulty
	out.MaxDifficulty = c.MaxDifficulty
	return out
}
