package pareto

type Config struct {
	// fraction of items considered the "vital few"
	TopFraction float64

	// minimum contribution of the top fraction for the 80/20 rule to hold
	ValidityThreshold float64
}

const (
	defaultTopFraction       = 0.2
	defaultValidityThreshold = 0.8
)

func DefaultConfig() Config {
	return Config{
		TopFraction:       defaultTopFraction,
		ValidityThreshold: defaultValidityThreshold,
	}
}
