package forecast

import (
	"context"
	"errors"
	"math"
	"streamPulse/domain"
	"testing"
)

type fakeAnalyzer struct{ report domain.RootCauseReport }

func (f *fakeAnalyzer) AnalyzeAll(ctx context.Context) (domain.RootCauseReport, error) {
	return f.report, nil
}

type fakeEfficiencyRepo struct{ score float64 }

func (f *fakeEfficiencyRepo) GetOperationalEfficiencyScore(ctx context.Context) (float64, error) {
	return f.score, nil
}

func fixtureReport() domain.RootCauseReport {
	return domain.RootCauseReport{
		TotalImpact30d: 66_000_000,
		Recommendations: []domain.Recommendation{
			{
				CohortID:           "cohort-latam",
				ExpectedImpact:     domain.ExpectedImpact{Value: 51_000_000, Confidence: domain.ConfidenceHigh},
				InvestmentRequired: 1_000_000,
			},
			{
				CohortID:           "cohort-emea",
				ExpectedImpact:     domain.ExpectedImpact{Value: 7_500_000, Confidence: domain.ConfidenceLow},
				InvestmentRequired: 375_000,
			},
			{
				CohortID:           "cohort-apac",
				ExpectedImpact:     domain.ExpectedImpact{Value: 7_500_000, Confidence: domain.ConfidenceMedium},
				InvestmentRequired: 550_000,
			},
		},
	}
}

func testService(report domain.RootCauseReport, efficiency float64) *ForecastService {
	return NewForecastService(&fakeAnalyzer{report: report}, &fakeEfficiencyRepo{score: efficiency}, DefaultConfig())
}

func TestForecast_NilBudgetSelectsEverything(t *testing.T) {
	svc := testService(fixtureReport(), 1.0)

	forecast, err := svc.Forecast(context.Background(), Request{
		TimelineMonths: 6,
		Scenario:       domain.ScenarioModerate,
	})
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}

	if len(forecast.InitiativesDeployed) != 3 {
		t.Errorf("deployed %d initiatives, want 3", len(forecast.InitiativesDeployed))
	}
	if forecast.NetLoss > forecast.Baseline.ProjectedLoss {
		t.Errorf("net loss %v exceeds projected loss %v", forecast.NetLoss, forecast.Baseline.ProjectedLoss)
	}
	if forecast.Baseline.ProjectedLoss != 66_000_000*6 {
		t.Errorf("projected loss = %v, want %v", forecast.Baseline.ProjectedLoss, 66_000_000.0*6)
	}
}

func TestForecast_GreedyBudgetAllocation(t *testing.T) {
	svc := testService(fixtureReport(), 1.0)

	// ROIs: latam 51.0, emea 20.0, apac ~13.6; budget fits latam + emea only
	budget := 1_500_000.0
	forecast, err := svc.Forecast(context.Background(), Request{
		BudgetConstraint: &budget,
		TimelineMonths:   3,
		Scenario:         domain.ScenarioConservative,
	})
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}

	if len(forecast.InitiativesDeployed) != 2 {
		t.Fatalf("deployed %d initiatives, want 2", len(forecast.InitiativesDeployed))
	}
	if forecast.InitiativesDeployed[0].CohortID != "cohort-latam" {
		t.Errorf("first initiative = %s, want cohort-latam", forecast.InitiativesDeployed[0].CohortID)
	}
	if forecast.InitiativesDeployed[1].CohortID != "cohort-emea" {
		t.Errorf("second initiative = %s, want cohort-emea", forecast.InitiativesDeployed[1].CohortID)
	}
	if forecast.TotalInvestment > budget {
		t.Errorf("total investment %v exceeds budget %v", forecast.TotalInvestment, budget)
	}
}

func TestForecast_RecoveryRateAndCap(t *testing.T) {
	svc := testService(fixtureReport(), 0.8)

	forecast, err := svc.Forecast(context.Background(), Request{
		TimelineMonths: 12,
		Scenario:       domain.ScenarioAggressive,
	})
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}

	wantRate := 0.7 * 0.8
	if math.Abs(forecast.RecoveryRate-wantRate) > 1e-9 {
		t.Errorf("recovery rate = %v, want %v", forecast.RecoveryRate, wantRate)
	}

	if forecast.PotentialRecovery > forecast.Baseline.ProjectedLoss {
		t.Errorf("recovery %v exceeds projected loss %v", forecast.PotentialRecovery, forecast.Baseline.ProjectedLoss)
	}

	wantRecovery := 66_000_000 * wantRate * 12
	if math.Abs(forecast.PotentialRecovery-wantRecovery) > 1e-6 {
		t.Errorf("recovery = %v, want %v", forecast.PotentialRecovery, wantRecovery)
	}

	if forecast.NetLoss != forecast.Baseline.ProjectedLoss-forecast.PotentialRecovery {
		t.Error("net loss must equal projected loss minus recovery")
	}
	if forecast.Gap.RemainingGap != forecast.NetLoss {
		t.Error("gap analysis remaining gap must equal net loss")
	}
	if math.Abs(forecast.Gap.ImprovementPct-forecast.PotentialRecovery/forecast.Baseline.ProjectedLoss) > 1e-12 {
		t.Error("improvement pct must be recovery over projected loss")
	}
}

func TestForecast_ZeroCostNullROI(t *testing.T) {
	report := domain.RootCauseReport{
		TotalImpact30d: 1_000_000,
		Recommendations: []domain.Recommendation{
			{CohortID: "c1", ExpectedImpact: domain.ExpectedImpact{Value: 1_000_000}, InvestmentRequired: 0},
		},
	}
	svc := testService(report, 1.0)

	forecast, err := svc.Forecast(context.Background(), Request{
		TimelineMonths: 1,
		Scenario:       domain.ScenarioModerate,
	})
	if err != nil {
		t.Fatalf("zero cost must not be fatal: %v", err)
	}

	if forecast.ROI != nil {
		t.Errorf("ROI = %v, want null", *forecast.ROI)
	}
	if forecast.ROIMessage == "" {
		t.Error("null ROI must carry an explanatory message")
	}
}

func TestForecast_ROIWhenCostPositive(t *testing.T) {
	svc := testService(fixtureReport(), 1.0)

	forecast, err := svc.Forecast(context.Background(), Request{
		TimelineMonths: 1,
		Scenario:       domain.ScenarioModerate,
	})
	if err != nil {
		t.Fatal(err)
	}

	if forecast.ROI == nil {
		t.Fatal("ROI should be set when cost > 0")
	}
	want := forecast.PotentialRecovery / forecast.TotalInvestment
	if math.Abs(*forecast.ROI-want) > 1e-12 {
		t.Errorf("ROI = %v, want %v", *forecast.ROI, want)
	}
}

func TestForecast_InputValidation(t *testing.T) {
	svc := testService(fixtureReport(), 1.0)

	_, err := svc.Forecast(context.Background(), Request{TimelineMonths: 0, Scenario: domain.ScenarioModerate})
	if !errors.Is(err, domain.ErrInvalidTimeline) {
		t.Errorf("timeline error = %v, want ErrInvalidTimeline", err)
	}

	_, err = svc.Forecast(context.Background(), Request{TimelineMonths: 3, Scenario: "reckless"})
	if !errors.Is(err, domain.ErrInvalidScenario) {
		t.Errorf("scenario error = %v, want ErrInvalidScenario", err)
	}

	negative := -5.0
	_, err = svc.Forecast(context.Background(), Request{BudgetConstraint: &negative, TimelineMonths: 3, Scenario: domain.ScenarioModerate})
	if !errors.Is(err, domain.ErrInvalidBudget) {
		t.Errorf("budget error = %v, want ErrInvalidBudget", err)
	}
}
