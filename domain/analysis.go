package domain

import "time"

// Correlation strength buckets. Thresholds live in the correlation engine
// config; the bucket names are part of the external contract.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

const (
	ScenarioConservative = "conservative"
	ScenarioModerate     = "moderate"
	ScenarioAggressive   = "aggressive"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Analysis dimensions joined against a cohort.
const (
	DimensionComplaints = "complaint_themes"
	DimensionProduction = "production_issues"
	DimensionContent    = "content_shows"
)

// MetricItem is the generic input unit of the Pareto engine.
type MetricItem struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Magnitude float64 `json:"magnitude"`
	Category  string  `json:"category,omitempty"`
}

type ParetoResult struct {
	Dimension       string       `json:"dimension"`
	SortedItems     []MetricItem `json:"sorted_items"`
	CumulativeCurve []float64    `json:"cumulative_contribution_curve"`
	CutoffIndex     int          `json:"cutoff_index"`
	TopContribution float64      `json:"top_20_pct_contribution_pct"`
	TotalMagnitude  float64      `json:"total_magnitude"`
	IsValid         bool         `json:"is_valid"`
}

type ParetoValidation struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// CorrelationMatch links a cohort to one explanatory entity in a dimension.
type CorrelationMatch struct {
	EntityID         string   `json:"entity_id"`
	EntityName       string   `json:"entity_name"`
	Score            float64  `json:"score"`
	Strength         string   `json:"correlation_strength"`
	SharedAttributes []string `json:"shared_attributes"`
	Magnitude        float64  `json:"magnitude"`
}

type RootCause struct {
	CohortID            string              `json:"cohort_id"`
	CohortName          string              `json:"cohort_name"`
	PrimaryDriver       string              `json:"primary_driver"`
	CorrelationStrength string              `json:"correlation_strength"`
	SupportingEvidence  map[string][]string `json:"supporting_evidence"`
	FinancialImpact     float64             `json:"financial_impact"`
}

type ExpectedImpact struct {
	Value      float64 `json:"value"`
	Confidence string  `json:"confidence"`
}

type Recommendation struct {
	CohortID           string         `json:"cohort_id"`
	CohortName         string         `json:"cohort_name"`
	Action             string         `json:"action"`
	PrimaryDriver      string         `json:"primary_driver"`
	ExpectedImpact     ExpectedImpact `json:"expected_impact"`
	InvestmentRequired float64        `json:"investment_required"`
}

type RootCauseReport struct {
	ReportID          string                                   `json:"report_id"`
	GeneratedAt       time.Time                                `json:"generated_at"`
	Causes            []RootCause                              `json:"causes"`
	Correlations      map[string]map[string][]CorrelationMatch `json:"correlations,omitempty"`
	Pareto            map[string]ParetoResult                  `json:"pareto,omitempty"`
	ParetoVerdict     *ParetoValidation                        `json:"pareto_verdict,omitempty"`
	TotalImpact30d    float64                                  `json:"total_impact_30d"`
	TotalImpactAnnual float64                                  `json:"total_impact_annual"`
	AddressableHigh   float64                                  `json:"addressable_with_high_confidence"`
	Recommendations   []Recommendation                         `json:"recommendations,omitempty"`
}

type BaselineForecast struct {
	TimelineMonths int     `json:"timeline_months"`
	ProjectedLoss  float64 `json:"projected_loss"`
}

type GapAnalysis struct {
	Improvement    float64 `json:"improvement"`
	ImprovementPct float64 `json:"improvement_pct"`
	RemainingGap   float64 `json:"remaining_gap"`
}

type Forecast struct {
	Scenario            string           `json:"scenario"`
	RecoveryRate        float64          `json:"recovery_rate"`
	Baseline            BaselineForecast `json:"baseline_forecast"`
	InitiativesDeployed []Recommendation `json:"initiatives_deployed"`
	TotalInvestment     float64          `json:"total_investment"`
	PotentialRecovery   float64          `json:"potential_recovery"`
	NetLoss             float64          `json:"net_loss"`
	ROI                 *float64         `json:"roi"`
	ROIMessage          string           `json:"roi_message,omitempty"`
	Gap                 GapAnalysis      `json:"gap_analysis"`
}

type CampaignPhase struct {
	Name     string `json:"name"`
	StartDay int    `json:"start_day"`
	EndDay   int    `json:"end_day"`
	Focus    string `json:"focus"`
}

type CampaignOutcome struct {
	Scenario            string  `json:"scenario"`
	RecoveryRate        float64 `json:"recovery_rate"`
	SubscribersRetained int     `json:"subscribers_retained"`
	RevenueSaved        float64 `json:"revenue_saved"`
}

type Campaign struct {
	ID                  string             `json:"id"`
	CohortID            string             `json:"cohort_id"`
	Budget              float64            `json:"budget"`
	BudgetAllocation    map[string]float64 `json:"budget_allocation"`
	TimelineDays        int                `json:"timeline_days"`
	Phases              []CampaignPhase    `json:"timeline"`
	ProjectedOutcomes   []CampaignOutcome  `json:"projected_outcomes"`
	RecommendedScenario string             `json:"recommended_scenario"`
	GeneratedAt         time.Time          `json:"generated_at"`
}
