package rootcause

type Config struct {
	// estimated retention spend per cohort member, used to size the
	// investment_required on each recommendation
	InvestmentPerMember float64

	// flat multiplier from 30-day impact to annual impact; not seasonally
	// adjusted
	AnnualizationFactor float64

	// how many supporting entity ids to keep per dimension
	MaxEvidencePerDimension int
}

const (
	defaultInvestmentPerMember     = 2.5
	defaultAnnualizationFactor     = 12
	defaultMaxEvidencePerDimension = 5
)

func DefaultConfig() Config {
	return Config{
		InvestmentPerMember:     defaultInvestmentPerMember,
		AnnualizationFactor:     defaultAnnualizationFactor,
		MaxEvidencePerDimension: defaultMaxEvidencePerDimension,
	}
}
