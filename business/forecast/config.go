package forecast

import (
	"fmt"
	"streamPulse/domain"
)

// Per-scenario recovery-rate coefficients. Each is multiplied by the
// operational efficiency score before being applied.
type Config struct {
	ConservativeRate float64
	ModerateRate     float64
	AggressiveRate   float64
}

const (
	defaultConservativeRate = 0.3
	defaultModerateRate     = 0.5
	defaultAggressiveRate   = 0.7
)

func DefaultConfig() Config {
	return Config{
		ConservativeRate: defaultConservativeRate,
		ModerateRate:     defaultModerateRate,
		AggressiveRate:   defaultAggressiveRate,
	}
}

// RateFor resolves a scenario name to its coefficient.
func (c Config) RateFor(scenario string) (float64, error) {
	switch scenario {
	case domain.ScenarioConservative:
		return c.ConservativeRate, nil
	case domain.ScenarioModerate:
		return c.ModerateRate, nil
	case domain.ScenarioAggressive:
		return c.AggressiveRate, nil
	default:
		return 0, fmt.Errorf("scenario %q: %w", scenario, domain.ErrInvalidScenario)
	}
}

// Scenarios lists every known scenario in ascending aggressiveness.
func (c Config) Scenarios() []string {
	return []string{domain.ScenarioConservative, domain.ScenarioModerate, domain.ScenarioAggressive}
}
