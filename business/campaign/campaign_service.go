package campaign

import (
	"context"
	"fmt"
	"math"
	"streamPulse/domain"
	"streamPulse/pkg/logger"
	"time"

	"github.com/google/uuid"
)

type CohortRepository interface {
	FindByID(ctx context.Context, id string) (domain.Cohort, error)
}

// Request enumerates every recognized option of a campaign generation call.
// A nil budget is auto-derived from the cohort's 30-day financial impact;
// a zero timeline falls back to the configured default.
type Request struct {
	CohortID     string
	Budget       *float64
	TimelineDays int
}

type CampaignService struct {
	cohortRepo CohortRepository
	cfg        Config
}

func NewCampaignService(cohortRepo CohortRepository, cfg Config) *CampaignService {
	if cfg.BudgetPct <= 0 || cfg.BudgetPct > 1 {
		cfg.BudgetPct = defaultBudgetPct
	}
	if cfg.EmailWeight+cfg.InAppWeight+cfg.PushWeight+cfg.OfferWeight <= 0 {
		cfg.EmailWeight = defaultEmailWeight
		cfg.InAppWeight = defaultInAppWeight
		cfg.PushWeight = defaultPushWeight
		cfg.OfferWeight = defaultOfferWeight
	}
	if cfg.OfferBoost < 0 {
		cfg.OfferBoost = defaultOfferBoost
	}
	if cfg.DefaultTimelineDays <= 0 {
		cfg.DefaultTimelineDays = defaultTimelineDays
	}

	return &CampaignService{
		cohortRepo: cohortRepo,
		cfg:        cfg,
	}
}

// Generate derives a tactical budget/channel plan plus scenario outcomes for
// one cohort.
func (s *CampaignService) Generate(ctx context.Context, req Request) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, fmt.Errorf("context error: %w", err)
	}

	if req.CohortID == "" {
		return domain.Campaign{}, fmt.Errorf("cohort id is required: %w", domain.ErrEmptyInput)
	}
	if req.TimelineDays < 0 {
		return domain.Campaign{}, fmt.Errorf("timeline_days %d: %w", req.TimelineDays, domain.ErrInvalidTimeline)
	}
	if req.Budget != nil && *req.Budget <= 0 {
		return domain.Campaign{}, fmt.Errorf("budget %v: %w", *req.Budget, domain.ErrInvalidBudget)
	}

	cohort, err := s.cohortRepo.FindByID(ctx, req.CohortID)
	if err != nil {
		logger.Error("failed to find cohort for campaign", "cohort_id", req.CohortID, "error", err)
		return domain.Campaign{}, err
	}

	timelineDays := req.TimelineDays
	if timelineDays == 0 {
		timelineDays = s.cfg.DefaultTimelineDays
	}

	budget := 0.0
	if req.Budget != nil {
		budget = *req.Budget
	} else {
		budget = cohort.FinancialImpact30d * s.cfg.BudgetPct
	}

	campaign := domain.Campaign{
		ID:                  uuid.NewString(),
		CohortID:            cohort.ID,
		Budget:              budget,
		BudgetAllocation:    s.allocateBudget(cohort, budget),
		TimelineDays:        timelineDays,
		Phases:              buildPhases(timelineDays),
		ProjectedOutcomes:   s.projectOutcomes(cohort),
		RecommendedScenario: s.recommendScenario(cohort, budget),
		GeneratedAt:         time.Now().UTC(),
	}

	return campaign, nil
}

// allocateBudget splits the budget across the fixed channel set. High-value
// cohorts get extra weight on the offer channel, taken proportionally from
// the other channels so the split still sums to the budget.
func (s *CampaignService) allocateBudget(cohort domain.Cohort, budget float64) map[string]float64 {
	weights := map[string]float64{
		ChannelEmail: s.cfg.EmailWeight,
		ChannelInApp: s.cfg.InAppWeight,
		ChannelPush:  s.cfg.PushWeight,
		ChannelOffer: s.cfg.OfferWeight,
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	for ch := range weights {
		weights[ch] /= total
	}

	highValue := cohort.RiskScore >= s.cfg.HighRiskThreshold ||
		cohort.FinancialImpact30d >= s.cfg.HighImpactThreshold
	if highValue && s.cfg.OfferBoost > 0 {
		shrink := 1 - s.cfg.OfferBoost/(1-weights[ChannelOffer])
		for ch := range weights {
			if ch == ChannelOffer {
				continue
			}
			weights[ch] *= shrink
		}
		weights[ChannelOffer] += s.cfg.OfferBoost
	}

	allocation := make(map[string]float64, len(weights))
	for ch, w := range weights {
		allocation[ch] = budget * w
	}

	return allocation
}

// buildPhases splits the timeline into three ordered phases: outreach,
// offer activation, win-back.
func buildPhases(timelineDays int) []domain.CampaignPhase {
	outreachEnd := timelineDays / 5
	if outreachEnd < 1 {
		outreachEnd = 1
	}
	activationEnd := timelineDays * 3 / 5
	if activationEnd <= outreachEnd {
		activationEnd = outreachEnd + 1
	}
	if activationEnd > timelineDays {
		activationEnd = timelineDays
	}

	phases := []domain.CampaignPhase{
		{Name: "Immediate outreach", StartDay: 1, EndDay: outreachEnd, Focus: "personalized email and in-app messaging to at-risk members"},
	}
	if activationEnd > outreachEnd {
		phases = append(phases, domain.CampaignPhase{
			Name: "Offer activation", StartDay: outreachEnd + 1, EndDay: activationEnd,
			Focus: "targeted discount and content offers on the preferred channel",
		})
	}
	if timelineDays > activationEnd {
		phases = append(phases, domain.CampaignPhase{
			Name: "Win-back and measurement", StartDay: activationEnd + 1, EndDay: timelineDays,
			Focus: "push reminders, final offers and retention measurement",
		})
	}

	return phases
}

// projectOutcomes applies the shared scenario coefficients to the cohort's
// projected churners and financial impact.
func (s *CampaignService) projectOutcomes(cohort domain.Cohort) []domain.CampaignOutcome {
	scenarios := s.cfg.Scenarios.Scenarios()
	outcomes := make([]domain.CampaignOutcome, 0, len(scenarios))

	for _, scenario := range scenarios {
		rate, err := s.cfg.Scenarios.RateFor(scenario)
		if err != nil {
			continue
		}

		outcomes = append(outcomes, domain.CampaignOutcome{
			Scenario:            scenario,
			RecoveryRate:        rate,
			SubscribersRetained: int(math.Round(float64(cohort.ProjectedChurners30d) * rate)),
			RevenueSaved:        cohort.FinancialImpact30d * rate,
		})
	}

	return outcomes
}

// recommendScenario steers by how much budget is available relative to the
// revenue at stake.
func (s *CampaignService) recommendScenario(cohort domain.Cohort, budget float64) string {
	if cohort.FinancialImpact30d <= 0 {
		return domain.ScenarioModerate
	}

	ratio := budget / cohort.FinancialImpact30d
	switch {
	case ratio > s.cfg.AggressiveRatio:
		return domain.ScenarioAggressive
	case ratio < s.cfg.ConservativeRatio:
		return domain.ScenarioConservative
	default:
		return domain.ScenarioModerate
	}
}
