package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"
	"streamPulse/domain"
	"streamPulse/pkg/logger"
)

// Analyzer supplies the ranked recommendations a forecast allocates over.
type Analyzer interface {
	AnalyzeAll(ctx context.Context) (domain.RootCauseReport, error)
}

// EfficiencyRepository supplies the operational efficiency score in [0, 1].
type EfficiencyRepository interface {
	GetOperationalEfficiencyScore(ctx context.Context) (float64, error)
}

// Request enumerates every recognized forecast option. A nil budget means
// every initiative is deployed.
type Request struct {
	BudgetConstraint *float64
	TimelineMonths   int
	Scenario         string
}

type ForecastService struct {
	analyzer       Analyzer
	efficiencyRepo EfficiencyRepository
	cfg            Config
}

func NewForecastService(analyzer Analyzer, efficiencyRepo EfficiencyRepository, cfg Config) *ForecastService {
	if cfg.ConservativeRate <= 0 {
		cfg.ConservativeRate = defaultConservativeRate
	}
	if cfg.ModerateRate <= 0 {
		cfg.ModerateRate = defaultModerateRate
	}
	if cfg.AggressiveRate <= 0 {
		cfg.AggressiveRate = defaultAggressiveRate
	}

	return &ForecastService{
		analyzer:       analyzer,
		efficiencyRepo: efficiencyRepo,
		cfg:            cfg,
	}
}

// Forecast projects revenue recovery under a scenario and optional budget.
// Loss scales linearly with the horizon; recovery never exceeds the
// projected loss.
func (s *ForecastService) Forecast(ctx context.Context, req Request) (domain.Forecast, error) {
	if err := ctx.Err(); err != nil {
		return domain.Forecast{}, fmt.Errorf("context error: %w", err)
	}

	if req.TimelineMonths <= 0 {
		return domain.Forecast{}, fmt.Errorf("timeline_months %d: %w", req.TimelineMonths, domain.ErrInvalidTimeline)
	}
	if req.BudgetConstraint != nil && *req.BudgetConstraint < 0 {
		return domain.Forecast{}, fmt.Errorf("budget_constraint %v: %w", *req.BudgetConstraint, domain.ErrInvalidBudget)
	}

	scenarioRate, err := s.cfg.RateFor(req.Scenario)
	if err != nil {
		return domain.Forecast{}, err
	}

	efficiency, err := s.efficiencyRepo.GetOperationalEfficiencyScore(ctx)
	if err != nil {
		logger.Error("failed to fetch operational efficiency score", err)
		return domain.Forecast{}, fmt.Errorf("failed to fetch operational efficiency score: %w", err)
	}
	efficiency = clamp01(efficiency)

	report, err := s.analyzer.AnalyzeAll(ctx)
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("root-cause analysis failed: %w", err)
	}

	recoveryRate := scenarioRate * efficiency
	projectedLoss := report.TotalImpact30d * float64(req.TimelineMonths)

	selected, totalInvestment := allocate(report.Recommendations, req.BudgetConstraint)

	recovered30d := 0.0
	for _, rec := range selected {
		recovered30d += rec.ExpectedImpact.Value
	}

	potentialRecovery := recovered30d * recoveryRate * float64(req.TimelineMonths)
	if potentialRecovery > projectedLoss {
		potentialRecovery = projectedLoss
	}

	netLoss := projectedLoss - potentialRecovery

	forecast := domain.Forecast{
		Scenario:     req.Scenario,
		RecoveryRate: recoveryRate,
		Baseline: domain.BaselineForecast{
			TimelineMonths: req.TimelineMonths,
			ProjectedLoss:  projectedLoss,
		},
		InitiativesDeployed: selected,
		TotalInvestment:     totalInvestment,
		PotentialRecovery:   potentialRecovery,
		NetLoss:             netLoss,
		Gap: domain.GapAnalysis{
			Improvement:  potentialRecovery,
			RemainingGap: netLoss,
		},
	}

	if projectedLoss > 0 {
		forecast.Gap.ImprovementPct = potentialRecovery / projectedLoss
	}

	// zero cost is reportable, not fatal: ROI stays null with a message
	if totalInvestment > 0 {
		roi := potentialRecovery / totalInvestment
		forecast.ROI = &roi
	} else {
		forecast.ROIMessage = "no investment cost recorded for selected initiatives; ROI is undefined"
	}

	return forecast, nil
}

// allocate greedily deploys initiatives in descending ROI order until the
// next one would exceed the budget. Greedy, not globally optimal.
func allocate(recs []domain.Recommendation, budget *float64) ([]domain.Recommendation, float64) {
	ranked := make([]domain.Recommendation, len(recs))
	copy(ranked, recs)

	sort.Slice(ranked, func(i, j int) bool {
		ri, rj := initiativeROI(ranked[i]), initiativeROI(ranked[j])
		if ri != rj {
			return ri > rj
		}
		return ranked[i].CohortID < ranked[j].CohortID
	})

	selected := make([]domain.Recommendation, 0, len(ranked))
	totalInvestment := 0.0
	for _, rec := range ranked {
		if budget != nil && totalInvestment+rec.InvestmentRequired > *budget {
			continue
		}
		selected = append(selected, rec)
		totalInvestment += rec.InvestmentRequired
	}

	return selected, totalInvestment
}

// initiativeROI ranks zero-cost initiatives first; free revenue always wins.
func initiativeROI(rec domain.Recommendation) float64 {
	if rec.InvestmentRequired <= 0 {
		return math.Inf(1)
	}
	return rec.ExpectedImpact.Value / rec.InvestmentRequired
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
