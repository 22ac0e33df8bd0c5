package campaign

import (
	"context"
	"errors"
	"fmt"
	"math"
	"streamPulse/domain"
	"testing"
)

type fakeCohortRepo struct{ cohorts map[string]domain.Cohort }

func (f *fakeCohortRepo) FindByID(ctx context.Context, id string) (domain.Cohort, error) {
	cohort, ok := f.cohorts[id]
	if !ok {
		return domain.Cohort{}, fmt.Errorf("cohort %q: %w", id, domain.ErrNotFound)
	}
	return cohort, nil
}

func testRepo() *fakeCohortRepo {
	return &fakeCohortRepo{cohorts: map[string]domain.Cohort{
		"cohort-latam": {
			ID: "cohort-latam", Name: "LATAM drama watchers", Size: 400_000,
			RiskScore: 0.82, ProjectedChurners30d: 60_000, FinancialImpact30d: 51_000_000,
		},
		"cohort-small": {
			ID: "cohort-small", Name: "Small cohort", Size: 10_000,
			RiskScore: 0.2, ProjectedChurners30d: 500, FinancialImpact30d: 400_000,
		},
	}}
}

func TestGenerate_UnknownCohort(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	_, err := svc.Generate(context.Background(), Request{CohortID: "cohort-nope"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGenerate_AutoDerivedBudget(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	campaign, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := 51_000_000 * 0.02
	if math.Abs(campaign.Budget-want) > 1e-6 {
		t.Errorf("budget = %v, want %v", campaign.Budget, want)
	}
	if campaign.TimelineDays != 45 {
		t.Errorf("timeline = %d, want default 45", campaign.TimelineDays)
	}
}

func TestGenerate_AllocationNeverExceedsBudget(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	budget := 500_000.0
	campaign, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam", Budget: &budget})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	sum := 0.0
	for ch, amount := range campaign.BudgetAllocation {
		if amount < 0 {
			t.Errorf("channel %s has negative allocation %v", ch, amount)
		}
		if amount > budget {
			t.Errorf("channel %s allocation %v exceeds budget", ch, amount)
		}
		sum += amount
	}
	if sum > budget+1e-6 {
		t.Errorf("allocation sum %v exceeds budget %v", sum, budget)
	}

	for _, ch := range []string{ChannelEmail, ChannelInApp, ChannelPush, ChannelOffer} {
		if _, ok := campaign.BudgetAllocation[ch]; !ok {
			t.Errorf("missing channel %s", ch)
		}
	}
}

func TestGenerate_OfferBoostForHighValueCohort(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	budget := 1_000_000.0

	// high risk and high impact
	hot, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam", Budget: &budget})
	if err != nil {
		t.Fatal(err)
	}
	// neither threshold crossed
	cold, err := svc.Generate(context.Background(), Request{CohortID: "cohort-small", Budget: &budget})
	if err != nil {
		t.Fatal(err)
	}

	if hot.BudgetAllocation[ChannelOffer] <= cold.BudgetAllocation[ChannelOffer] {
		t.Errorf("high-value cohort offer share %v should exceed base %v",
			hot.BudgetAllocation[ChannelOffer], cold.BudgetAllocation[ChannelOffer])
	}

	// boosted split still sums to the budget
	sum := 0.0
	for _, amount := range hot.BudgetAllocation {
		sum += amount
	}
	if math.Abs(sum-budget) > 1e-6 {
		t.Errorf("boosted allocation sums to %v, want %v", sum, budget)
	}
}

func TestGenerate_PhasesCoverTimeline(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	for _, days := range []int{5, 30, 45, 90} {
		campaign, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam", TimelineDays: days})
		if err != nil {
			t.Fatalf("days=%d: %v", days, err)
		}

		phases := campaign.Phases
		if len(phases) == 0 {
			t.Fatalf("days=%d: no phases", days)
		}
		if phases[0].StartDay != 1 {
			t.Errorf("days=%d: first phase starts at %d", days, phases[0].StartDay)
		}
		if phases[len(phases)-1].EndDay != days {
			t.Errorf("days=%d: last phase ends at %d", days, phases[len(phases)-1].EndDay)
		}
		for i := 1; i < len(phases); i++ {
			if phases[i].StartDay != phases[i-1].EndDay+1 {
				t.Errorf("days=%d: phase %d not contiguous", days, i)
			}
		}
	}
}

func TestGenerate_OutcomesUseScenarioCoefficients(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	campaign, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam"})
	if err != nil {
		t.Fatal(err)
	}

	if len(campaign.ProjectedOutcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(campaign.ProjectedOutcomes))
	}

	wantRates := map[string]float64{
		domain.ScenarioConservative: 0.3,
		domain.ScenarioModerate:     0.5,
		domain.ScenarioAggressive:   0.7,
	}

	for _, outcome := range campaign.ProjectedOutcomes {
		rate, ok := wantRates[outcome.Scenario]
		if !ok {
			t.Fatalf("unexpected scenario %s", outcome.Scenario)
		}
		if outcome.RecoveryRate != rate {
			t.Errorf("%s rate = %v, want %v", outcome.Scenario, outcome.RecoveryRate, rate)
		}
		if want := int(math.Round(60_000 * rate)); outcome.SubscribersRetained != want {
			t.Errorf("%s retained = %d, want %d", outcome.Scenario, outcome.SubscribersRetained, want)
		}
		if want := 51_000_000 * rate; math.Abs(outcome.RevenueSaved-want) > 1e-6 {
			t.Errorf("%s revenue = %v, want %v", outcome.Scenario, outcome.RevenueSaved, want)
		}
	}
}

func TestGenerate_RecommendedScenarioThresholds(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	// ratio > 0.05 => aggressive
	big := 51_000_000 * 0.06
	campaign, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam", Budget: &big})
	if err != nil {
		t.Fatal(err)
	}
	if campaign.RecommendedScenario != domain.ScenarioAggressive {
		t.Errorf("scenario = %s, want aggressive", campaign.RecommendedScenario)
	}

	// ratio < 0.01 => conservative
	small := 51_000_000 * 0.005
	campaign, err = svc.Generate(context.Background(), Request{CohortID: "cohort-latam", Budget: &small})
	if err != nil {
		t.Fatal(err)
	}
	if campaign.RecommendedScenario != domain.ScenarioConservative {
		t.Errorf("scenario = %s, want conservative", campaign.RecommendedScenario)
	}

	// default budget (2%) sits between bounds => moderate
	campaign, err = svc.Generate(context.Background(), Request{CohortID: "cohort-latam"})
	if err != nil {
		t.Fatal(err)
	}
	if campaign.RecommendedScenario != domain.ScenarioModerate {
		t.Errorf("scenario = %s, want moderate", campaign.RecommendedScenario)
	}
}

func TestGenerate_InputValidation(t *testing.T) {
	svc := NewCampaignService(testRepo(), DefaultConfig())

	if _, err := svc.Generate(context.Background(), Request{}); !errors.Is(err, domain.ErrEmptyInput) {
		t.Errorf("missing cohort id error = %v, want ErrEmptyInput", err)
	}

	zero := 0.0
	if _, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam", Budget: &zero}); !errors.Is(err, domain.ErrInvalidBudget) {
		t.Errorf("zero budget error = %v, want ErrInvalidBudget", err)
	}

	if _, err := svc.Generate(context.Background(), Request{CohortID: "cohort-latam", TimelineDays: -1}); !errors.Is(err, domain.ErrInvalidTimeline) {
		t.Errorf("negative timeline error = %v, want ErrInvalidTimeline", err)
	}
}
