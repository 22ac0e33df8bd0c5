package correlation

type Config struct {
	// score at or above which a correlation counts as strong
	StrongThreshold float64

	// score at or above which a correlation counts as moderate;
	// anything lower is weak
	ModerateThreshold float64
}

const (
	defaultStrongThreshold   = 0.6
	defaultModerateThreshold = 0.3
)

func DefaultConfig() Config {
	return Config{
		StrongThreshold:   defaultStrongThreshold,
		ModerateThreshold: defaultModerateThreshold,
	}
}
