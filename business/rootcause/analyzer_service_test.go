package rootcause

import (
	"context"
	"errors"
	"streamPulse/business/correlation"
	"streamPulse/business/pareto"
	"streamPulse/domain"
	"testing"

	"gorm.io/datatypes"
)

// in-package fakes backed by fixed snapshots

type fakeCohortRepo struct{ cohorts []domain.Cohort }

func (f *fakeCohortRepo) FindAll(ctx context.Context) ([]domain.Cohort, error) {
	return f.cohorts, nil
}

type fakeThemeRepo struct{ themes []domain.ComplaintTheme }

func (f *fakeThemeRepo) FindAll(ctx context.Context) ([]domain.ComplaintTheme, error) {
	return f.themes, nil
}

type fakeIssueRepo struct{ issues []domain.ProductionIssue }

func (f *fakeIssueRepo) FindAll(ctx context.Context) ([]domain.ProductionIssue, error) {
	return f.issues, nil
}

type fakeShowRepo struct{ shows []domain.ContentShow }

func (f *fakeShowRepo) FindAll(ctx context.Context) ([]domain.ContentShow, error) {
	return f.shows, nil
}

type fakeCache struct {
	store map[string]domain.RootCauseReport
	hits  int
	sets  int
}

func (f *fakeCache) Get(ctx context.Context, key string) (*domain.RootCauseReport, error) {
	if report, ok := f.store[key]; ok {
		f.hits++
		return &report, nil
	}
	return nil, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, report domain.RootCauseReport) error {
	f.sets++
	f.store[key] = report
	return nil
}

func testAnalyzer(cache ReportCache) *AnalyzerService {
	cohorts := []domain.Cohort{
		{
			ID: "cohort-latam", Name: "LATAM drama watchers", Size: 400_000,
			RiskScore: 0.82, ProjectedChurners30d: 60_000, FinancialImpact30d: 51_000_000,
			Attributes: datatypes.JSONMap{"genre": "drama", "region": "latam"},
		},
		{
			ID: "cohort-emea", Name: "EMEA casual viewers", Size: 150_000,
			RiskScore: 0.35, ProjectedChurners30d: 9_000, FinancialImpact30d: 7_500_000,
			Attributes: datatypes.JSONMap{"genre": "comedy", "region": "emea"},
		},
		{
			ID: "cohort-apac", Name: "APAC anime fans", Size: 220_000,
			RiskScore: 0.55, ProjectedChurners30d: 20_000, FinancialImpact30d: 7_500_000,
			Attributes: datatypes.JSONMap{"genre": "anime", "region": "apac"},
		},
	}

	themes := []domain.ComplaintTheme{
		{
			ID: "theme-clg", Name: "Content Library Gaps", Volume: 12000,
			SentimentScore: -0.7, Complexity: domain.ComplexityHigh, RevenueImpact: 75_000_000,
			Attributes: datatypes.JSONMap{"genre": "drama", "region": "latam", "topic": "catalog"},
		},
		{
			ID: "theme-crash", Name: "App crashes", Volume: 4000,
			SentimentScore: -0.9, Complexity: domain.ComplexityMedium, RevenueImpact: 6_000_000,
			Attributes: datatypes.JSONMap{"region": "emea"},
		},
	}

	issues := []domain.ProductionIssue{
		{ID: "issue-1", Severity: domain.SeverityHigh, DelayDays: 30, CostOverrun: 4_000_000, ShowID: "show-drama", Status: domain.IssueStatusOpen},
	}

	shows := []domain.ContentShow{
		{ID: "show-drama", Title: "Telenovela Nights", Genre: "drama", Region: "latam", ViewingHours: 9_000_000, Rating: 4.4},
		{ID: "show-comedy", Title: "Laugh Track", Genre: "comedy", Region: "emea", ViewingHours: 2_000_000, Rating: 3.9},
	}

	return NewAnalyzerService(
		&fakeCohortRepo{cohorts: cohorts},
		&fakeThemeRepo{themes: themes},
		&fakeIssueRepo{issues: issues},
		&fakeShowRepo{shows: shows},
		pareto.NewParetoService(pareto.DefaultConfig()),
		correlation.NewCorrelationService(correlation.DefaultConfig()),
		cache,
		DefaultConfig(),
	)
}

func TestAnalyze_UnknownCohortFailsWhole(t *testing.T) {
	svc := testAnalyzer(nil)

	_, err := svc.Analyze(context.Background(), AnalyzeOptions{
		CohortIDs: []string{"cohort-latam", "cohort-nope"},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAnalyze_PrimaryDriverExample(t *testing.T) {
	svc := testAnalyzer(nil)

	report, err := svc.Analyze(context.Background(), AnalyzeOptions{
		CohortIDs: []string{"cohort-latam"},
	})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(report.Causes) != 1 {
		t.Fatalf("got %d causes, want 1", len(report.Causes))
	}

	cause := report.Causes[0]
	if cause.PrimaryDriver != "Content Library Gaps" {
		t.Errorf("primary driver = %q, want Content Library Gaps", cause.PrimaryDriver)
	}
	if cause.CorrelationStrength != domain.StrengthStrong {
		t.Errorf("strength = %s, want strong", cause.CorrelationStrength)
	}
	if cause.FinancialImpact != 51_000_000 {
		t.Errorf("financial impact = %v, want 51000000", cause.FinancialImpact)
	}
	if len(cause.SupportingEvidence[domain.DimensionComplaints]) == 0 {
		t.Error("expected complaint-theme evidence")
	}
}

func TestAnalyze_TotalsAndAddressable(t *testing.T) {
	svc := testAnalyzer(nil)

	report, err := svc.Analyze(context.Background(), AnalyzeOptions{})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	wantTotal := 51_000_000.0 + 7_500_000 + 7_500_000
	if report.TotalImpact30d != wantTotal {
		t.Errorf("total 30d = %v, want %v", report.TotalImpact30d, wantTotal)
	}
	if report.TotalImpactAnnual != wantTotal*12 {
		t.Errorf("annual = %v, want %v", report.TotalImpactAnnual, wantTotal*12)
	}

	// only strong causes count toward addressable
	for _, cause := range report.Causes {
		if cause.CorrelationStrength == domain.StrengthStrong && cause.CohortID != "cohort-latam" {
			t.Errorf("unexpected strong cause for %s", cause.CohortID)
		}
	}
	if report.AddressableHigh != 51_000_000 {
		t.Errorf("addressable = %v, want 51000000", report.AddressableHigh)
	}
}

func TestAnalyze_RecommendationOrdering(t *testing.T) {
	svc := testAnalyzer(nil)

	report, err := svc.Analyze(context.Background(), AnalyzeOptions{IncludeRecommendations: true})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(report.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(report.Recommendations))
	}

	for i := 1; i < len(report.Recommendations); i++ {
		prev, cur := report.Recommendations[i-1], report.Recommendations[i]
		if cur.ExpectedImpact.Value > prev.ExpectedImpact.Value {
			t.Errorf("recommendations not sorted by impact at %d", i)
		}
		if cur.ExpectedImpact.Value == prev.ExpectedImpact.Value && cur.CohortID < prev.CohortID {
			t.Errorf("impact tie not broken by cohort id at %d", i)
		}
	}

	top := report.Recommendations[0]
	if top.CohortID != "cohort-latam" {
		t.Errorf("top recommendation = %s, want cohort-latam", top.CohortID)
	}
	if top.ExpectedImpact.Confidence != domain.ConfidenceHigh {
		t.Errorf("top confidence = %s, want high", top.ExpectedImpact.Confidence)
	}
	if top.InvestmentRequired != 2.5*400_000 {
		t.Errorf("investment = %v, want %v", top.InvestmentRequired, 2.5*400_000)
	}
}

func TestAnalyze_EmptyUniverseSucceeds(t *testing.T) {
	svc := NewAnalyzerService(
		&fakeCohortRepo{},
		&fakeThemeRepo{},
		&fakeIssueRepo{},
		&fakeShowRepo{},
		pareto.NewParetoService(pareto.DefaultConfig()),
		correlation.NewCorrelationService(correlation.DefaultConfig()),
		nil,
		DefaultConfig(),
	)

	report, err := svc.Analyze(context.Background(), DefaultAnalyzeOptions())
	if err != nil {
		t.Fatalf("empty universe should succeed, got %v", err)
	}
	if len(report.Causes) != 0 || report.TotalImpact30d != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestAnalyze_IncludePareto(t *testing.T) {
	svc := testAnalyzer(nil)

	report, err := svc.Analyze(context.Background(), AnalyzeOptions{IncludePareto: true})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	for _, dimension := range []string{"cohorts", domain.DimensionComplaints, domain.DimensionProduction, domain.DimensionContent} {
		if _, ok := report.Pareto[dimension]; !ok {
			t.Errorf("missing pareto decomposition for %s", dimension)
		}
	}
	if report.ParetoVerdict == nil {
		t.Error("missing cross-dimensional pareto verdict")
	}
}

func TestAnalyze_CacheRoundTrip(t *testing.T) {
	cache := &fakeCache{store: make(map[string]domain.RootCauseReport)}
	svc := testAnalyzer(cache)

	opts := AnalyzeOptions{CohortIDs: []string{"cohort-latam"}, IncludeRecommendations: true}

	first, err := svc.Analyze(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := svc.Analyze(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if cache.hits != 1 {
		t.Errorf("cache hits = %d, want 1", cache.hits)
	}
	if second.ReportID != first.ReportID {
		t.Error("cached report should be returned verbatim")
	}

	// a different id ordering must hit the same key
	if optionsDigest(AnalyzeOptions{CohortIDs: []string{"b", "a"}}) != optionsDigest(AnalyzeOptions{CohortIDs: []string{"a", "b"}}) {
		t.Error("cache key should be order-insensitive")
	}
}
