package rootcause

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"streamPulse/business/correlation"
	"streamPulse/business/pareto"
	"streamPulse/domain"
	"streamPulse/pkg/logger"
	"streamPulse/pkg/metrics"

	"github.com/google/uuid"
)

// driver name reported when no candidate shares a single attribute with the cohort
const driverUnidentified = "unidentified"

// ---- Repository interfaces ----

type CohortRepository interface {
	FindAll(ctx context.Context) ([]domain.Cohort, error)
}

type ComplaintThemeRepository interface {
	FindAll(ctx context.Context) ([]domain.ComplaintTheme, error)
}

type ProductionIssueRepository interface {
	FindAll(ctx context.Context) ([]domain.ProductionIssue, error)
}

type ContentShowRepository interface {
	FindAll(ctx context.Context) ([]domain.ContentShow, error)
}

// ReportCache is optional; a nil cache disables caching entirely.
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.RootCauseReport, error)
	Set(ctx context.Context, key string, report domain.RootCauseReport) error
}

// AnalyzeOptions enumerates every recognized option of an analysis call.
// An empty CohortIDs slice means "analyze the whole cohort universe".
type AnalyzeOptions struct {
	CohortIDs              []string
	IncludeRecommendations bool
	IncludePareto          bool
}

func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{
		IncludeRecommendations: true,
		IncludePareto:          true,
	}
}

// ---- Usecase / Service ----

type AnalyzerService struct {
	cohortRepo CohortRepository
	themeRepo  ComplaintThemeRepository
	issueRepo  ProductionIssueRepository
	showRepo   ContentShowRepository

	paretoSvc *pareto.ParetoService
	corrSvc   *correlation.CorrelationService

	cache ReportCache
	cfg   Config
}

func NewAnalyzerService(
	cohortRepo CohortRepository,
	themeRepo ComplaintThemeRepository,
	issueRepo ProductionIssueRepository,
	showRepo ContentShowRepository,
	paretoSvc *pareto.ParetoService,
	corrSvc *correlation.CorrelationService,
	cache ReportCache,
	cfg Config,
) *AnalyzerService {
	if cfg.InvestmentPerMember <= 0 {
		cfg.InvestmentPerMember = defaultInvestmentPerMember
	}
	if cfg.AnnualizationFactor <= 0 {
		cfg.AnnualizationFactor = defaultAnnualizationFactor
	}
	if cfg.MaxEvidencePerDimension <= 0 {
		cfg.MaxEvidencePerDimension = defaultMaxEvidencePerDimension
	}

	return &AnalyzerService{
		cohortRepo: cohortRepo,
		themeRepo:  themeRepo,
		issueRepo:  issueRepo,
		showRepo:   showRepo,
		paretoSvc:  paretoSvc,
		corrSvc:    corrSvc,
		cache:      cache,
		cfg:        cfg,
	}
}

// Analyze joins every cohort against the explanatory dimensions and produces
// ranked causes and recommendations. Unknown explicit cohort ids fail the
// whole call; no partial results.
func (s *AnalyzerService) Analyze(ctx context.Context, opts AnalyzeOptions) (domain.RootCauseReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.RootCauseReport{}, fmt.Errorf("context error: %w", err)
	}

	cacheKey := optionsDigest(opts)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			metrics.ReportCacheHits.Inc()
			return *cached, nil
		}
		metrics.ReportCacheMisses.Inc()
	}

	universe, err := s.cohortRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch cohorts", err)
		return domain.RootCauseReport{}, fmt.Errorf("failed to fetch cohorts: %w", err)
	}

	targets, err := selectTargets(universe, opts.CohortIDs)
	if err != nil {
		return domain.RootCauseReport{}, err
	}

	themes, err := s.themeRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch complaint themes", err)
		return domain.RootCauseReport{}, fmt.Errorf("failed to fetch complaint themes: %w", err)
	}

	issues, err := s.issueRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch production issues", err)
		return domain.RootCauseReport{}, fmt.Errorf("failed to fetch production issues: %w", err)
	}

	shows, err := s.showRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch content shows", err)
		return domain.RootCauseReport{}, fmt.Errorf("failed to fetch content shows: %w", err)
	}

	showsByID := make(map[string]domain.ContentShow, len(shows))
	for _, show := range shows {
		showsByID[show.ID] = show
	}

	candidates := map[string][]correlation.Candidate{
		domain.DimensionComplaints: correlation.ThemeCandidates(themes),
		domain.DimensionProduction: correlation.IssueCandidates(issues, showsByID),
		domain.DimensionContent:    correlation.ShowCandidates(shows),
	}

	report := domain.RootCauseReport{
		ReportID:     uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Causes:       make([]domain.RootCause, 0, len(targets)),
		Correlations: make(map[string]map[string][]domain.CorrelationMatch, len(targets)),
	}

	for _, cohort := range targets {
		matches := s.corrSvc.Correlate(cohort, candidates)
		report.Correlations[cohort.ID] = matches

		cause := s.buildCause(cohort, matches)
		report.Causes = append(report.Causes, cause)

		report.TotalImpact30d += cause.FinancialImpact
		if cause.CorrelationStrength == domain.StrengthStrong {
			report.AddressableHigh += cause.FinancialImpact
		}
	}

	report.TotalImpactAnnual = report.TotalImpact30d * s.cfg.AnnualizationFactor

	if opts.IncludeRecommendations {
		report.Recommendations = s.buildRecommendations(targets, report.Causes)
	}

	if opts.IncludePareto {
		report.Pareto = s.buildParetoResults(universe, themes, issues, shows)
		if len(report.Pareto) > 0 {
			verdict := s.paretoSvc.ValidatePrinciple(report.Pareto)
			report.ParetoVerdict = &verdict
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, report); err != nil {
			logger.Warn("failed to cache root-cause report", "error", err)
		}
	}

	return report, nil
}

// AnalyzeAll is the collaborator entry point used by the forecast engine.
func (s *AnalyzerService) AnalyzeAll(ctx context.Context) (domain.RootCauseReport, error) {
	return s.Analyze(ctx, AnalyzeOptions{IncludeRecommendations: true})
}

// selectTargets resolves explicit cohort ids against the universe, failing on
// the first unknown id. The result is ordered by id ascending so analysis is
// deterministic.
func selectTargets(universe []domain.Cohort, ids []string) ([]domain.Cohort, error) {
	byID := make(map[string]domain.Cohort, len(universe))
	for _, cohort := range universe {
		byID[cohort.ID] = cohort
	}

	var targets []domain.Cohort
	if len(ids) == 0 {
		targets = append(targets, universe...)
	} else {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			cohort, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("cohort %q: %w", id, domain.ErrNotFound)
			}
			targets = append(targets, cohort)
		}
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].ID < targets[j].ID })

	return targets, nil
}

// buildCause picks the primary driver: the match with the greatest
// (strength rank, magnitude) tuple across all dimensions, ties broken by
// entity id ascending.
func (s *AnalyzerService) buildCause(cohort domain.Cohort, matches map[string][]domain.CorrelationMatch) domain.RootCause {
	cause := domain.RootCause{
		CohortID:            cohort.ID,
		CohortName:          cohort.Name,
		PrimaryDriver:       driverUnidentified,
		CorrelationStrength: domain.StrengthWeak,
		SupportingEvidence:  make(map[string][]string, len(matches)),
		FinancialImpact:     cohort.FinancialImpact30d,
	}

	var best *domain.CorrelationMatch
	for _, dimension := range []string{domain.DimensionComplaints, domain.DimensionProduction, domain.DimensionContent} {
		dimMatches := matches[dimension]
		if len(dimMatches) == 0 {
			continue
		}

		limit := len(dimMatches)
		if limit > s.cfg.MaxEvidencePerDimension {
			limit = s.cfg.MaxEvidencePerDimension
		}
		ids := make([]string, 0, limit)
		for _, m := range dimMatches[:limit] {
			ids = append(ids, m.EntityID)
		}
		cause.SupportingEvidence[dimension] = ids

		for i := range dimMatches {
			m := dimMatches[i]
			if best == nil || stronger(m, *best) {
				best = &m
			}
		}
	}

	if best != nil {
		cause.PrimaryDriver = best.EntityName
		cause.CorrelationStrength = best.Strength
	}

	return cause
}

func stronger(a, b domain.CorrelationMatch) bool {
	ra, rb := strengthRank(a.Strength), strengthRank(b.Strength)
	if ra != rb {
		return ra > rb
	}
	if a.Magnitude != b.Magnitude {
		return a.Magnitude > b.Magnitude
	}
	return a.EntityID < b.EntityID
}

func strengthRank(strength string) int {
	switch strength {
	case domain.StrengthStrong:
		return 3
	case domain.StrengthModerate:
		return 2
	default:
		return 1
	}
}

func confidenceFor(strength string) string {
	switch strength {
	case domain.StrengthStrong:
		return domain.ConfidenceHigh
	case domain.StrengthModerate:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// buildRecommendations produces one recommendation per analyzed cohort,
// ranked by financial impact descending, ties by cohort id ascending.
func (s *AnalyzerService) buildRecommendations(targets []domain.Cohort, causes []domain.RootCause) []domain.Recommendation {
	sizeByID := make(map[string]int, len(targets))
	for _, cohort := range targets {
		sizeByID[cohort.ID] = cohort.Size
	}

	recs := make([]domain.Recommendation, 0, len(causes))
	for _, cause := range causes {
		recs = append(recs, domain.Recommendation{
			CohortID:      cause.CohortID,
			CohortName:    cause.CohortName,
			Action:        fmt.Sprintf("Launch retention program for %s targeting %q", cause.CohortName, cause.PrimaryDriver),
			PrimaryDriver: cause.PrimaryDriver,
			ExpectedImpact: domain.ExpectedImpact{
				Value:      cause.FinancialImpact,
				Confidence: confidenceFor(cause.CorrelationStrength),
			},
			InvestmentRequired: s.cfg.InvestmentPerMember * float64(sizeByID[cause.CohortID]),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].ExpectedImpact.Value != recs[j].ExpectedImpact.Value {
			return recs[i].ExpectedImpact.Value > recs[j].ExpectedImpact.Value
		}
		return recs[i].CohortID < recs[j].CohortID
	})

	return recs
}

// buildParetoResults decomposes each dimension on its financial lever.
// Dimensions without data are skipped rather than failing the analysis.
func (s *AnalyzerService) buildParetoResults(
	cohorts []domain.Cohort,
	themes []domain.ComplaintTheme,
	issues []domain.ProductionIssue,
	shows []domain.ContentShow,
) map[string]domain.ParetoResult {
	out := make(map[string]domain.ParetoResult, 4)

	addResult := func(dimension string, items []domain.MetricItem) {
		if len(items) == 0 {
			return
		}
		result, err := s.paretoSvc.Compute(dimension, items)
		if err != nil {
			logger.Warn("pareto decomposition skipped", "dimension", dimension, "error", err)
			return
		}
		out[dimension] = result
	}

	cohortItems := make([]domain.MetricItem, 0, len(cohorts))
	for _, c := range cohorts {
		cohortItems = append(cohortItems, domain.MetricItem{
			ID: c.ID, Label: c.Name, Magnitude: c.FinancialImpact30d, Category: "cohort",
		})
	}
	addResult("cohorts", cohortItems)

	themeItems := make([]domain.MetricItem, 0, len(themes))
	for _, th := range themes {
		themeItems = append(themeItems, domain.MetricItem{
			ID: th.ID, Label: th.Name, Magnitude: th.RevenueImpact, Category: "complaint_theme",
		})
	}
	addResult(domain.DimensionComplaints, themeItems)

	issueItems := make([]domain.MetricItem, 0, len(issues))
	for _, issue := range issues {
		issueItems = append(issueItems, domain.MetricItem{
			ID: issue.ID, Label: issue.ShowID, Magnitude: issue.CostOverrun, Category: "production_issue",
		})
	}
	addResult(domain.DimensionProduction, issueItems)

	showItems := make([]domain.MetricItem, 0, len(shows))
	for _, show := range shows {
		showItems = append(showItems, domain.MetricItem{
			ID: show.ID, Label: show.Title, Magnitude: show.ViewingHours, Category: "content_show",
		})
	}
	addResult(domain.DimensionContent, showItems)

	return out
}

// optionsDigest hashes the normalized options into a stable cache key.
func optionsDigest(opts AnalyzeOptions) string {
	ids := make([]string, len(opts.CohortIDs))
	copy(ids, opts.CohortIDs)
	sort.Strings(ids)

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(ids, ",")))
	_, _ = h.Write([]byte(fmt.Sprintf("|rec=%t|pareto=%t", opts.IncludeRecommendations, opts.IncludePareto)))

	return fmt.Sprintf("rootcause:report:%x", h.Sum64())
}
