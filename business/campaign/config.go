package campaign

import "streamPulse/business/forecast"

// Retention channels a campaign budget is split across.
const (
	ChannelEmail = "email"
	ChannelInApp = "in_app"
	ChannelPush  = "push"
	ChannelOffer = "offer"
)

type Config struct {
	// fraction of the cohort's 30-day impact used when no budget is given
	BudgetPct float64

	// base channel weighting; must sum to 1
	EmailWeight float64
	InAppWeight float64
	PushWeight  float64
	OfferWeight float64

	// extra weight shifted onto the offer channel for high-value cohorts
	OfferBoost float64

	// thresholds that mark a cohort as high-value
	HighRiskThreshold   float64
	HighImpactThreshold float64

	// budget/impact ratio bounds steering the recommended scenario
	AggressiveRatio   float64
	ConservativeRatio float64

	DefaultTimelineDays int

	// scenario coefficients shared with the forecast engine
	Scenarios forecast.Config
}

const (
	defaultBudgetPct           = 0.02
	defaultEmailWeight         = 0.30
	defaultInAppWeight         = 0.25
	defaultPushWeight          = 0.15
	defaultOfferWeight         = 0.30
	defaultOfferBoost          = 0.15
	defaultHighRiskThreshold   = 0.75
	defaultHighImpactThreshold = 10_000_000
	defaultAggressiveRatio     = 0.05
	defaultConservativeRatio   = 0.01
	defaultTimelineDays        = 45
)

func DefaultConfig() Config {
	return Config{
		BudgetPct:           defaultBudgetPct,
		EmailWeight:         defaultEmailWeight,
		InAppWeight:         defaultInAppWeight,
		PushWeight:          defaultPushWeight,
		OfferWeight:         defaultOfferWeight,
		OfferBoost:          defaultOfferBoost,
		HighRiskThreshold:   defaultHighRiskThreshold,
		HighImpactThreshold: defaultHighImpactThreshold,
		AggressiveRatio:     defaultAggressiveRatio,
		ConservativeRatio:   defaultConservativeRatio,
		DefaultTimelineDays: defaultTimelineDays,
		Scenarios:           forecast.DefaultConfig(),
	}
}
