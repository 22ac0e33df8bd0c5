package memory

import (
	"context"
	"fmt"
	"streamPulse/domain"
	"sync"
)

// Snapshot-backed repositories used when DATA_MODE=memory. The snapshot is
// chosen at construction time, never read from ambient state, so tests and
// local runs can supply fixed data.

type SnapshotStore struct {
	mu      sync.RWMutex
	cohorts []domain.Cohort
	themes  []domain.ComplaintTheme
	issues  []domain.ProductionIssue
	shows   []domain.ContentShow

	efficiencyScore float64
}

type Snapshot struct {
	Cohorts         []domain.Cohort
	Themes          []domain.ComplaintTheme
	Issues          []domain.ProductionIssue
	Shows           []domain.ContentShow
	EfficiencyScore float64
}

func NewSnapshotStore(snapshot Snapshot) *SnapshotStore {
	score := snapshot.EfficiencyScore
	if score <= 0 || score > 1 {
		score = 1.0
	}

	return &SnapshotStore{
		cohorts:         snapshot.Cohorts,
		themes:          snapshot.Themes,
		issues:          snapshot.Issues,
		shows:           snapshot.Shows,
		efficiencyScore: score,
	}
}

func (s *SnapshotStore) FindAllCohorts(ctx context.Context) ([]domain.Cohort, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Cohort, len(s.cohorts))
	copy(out, s.cohorts)
	return out, nil
}

func (s *SnapshotStore) FindCohortByID(ctx context.Context, id string) (domain.Cohort, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cohort{}, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cohort := range s.cohorts {
		if cohort.ID == id {
			return cohort, nil
		}
	}

	return domain.Cohort{}, fmt.Errorf("cohort %q: %w", id, domain.ErrNotFound)
}

func (s *SnapshotStore) AddCohort(ctx context.Context, cohort *domain.Cohort) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cohorts = append(s.cohorts, *cohort)
	return nil
}

func (s *SnapshotStore) FindAllThemes(ctx context.Context) ([]domain.ComplaintTheme, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ComplaintTheme, len(s.themes))
	copy(out, s.themes)
	return out, nil
}

func (s *SnapshotStore) AddTheme(ctx context.Context, theme *domain.ComplaintTheme) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes = append(s.themes, *theme)
	return nil
}

func (s *SnapshotStore) FindAllIssues(ctx context.Context) ([]domain.ProductionIssue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ProductionIssue, len(s.issues))
	copy(out, s.issues)
	return out, nil
}

func (s *SnapshotStore) AddIssue(ctx context.Context, issue *domain.ProductionIssue) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append(s.issues, *issue)
	return nil
}

func (s *SnapshotStore) FindAllShows(ctx context.Context) ([]domain.ContentShow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ContentShow, len(s.shows))
	copy(out, s.shows)
	return out, nil
}

func (s *SnapshotStore) AddShow(ctx context.Context, show *domain.ContentShow) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows = append(s.shows, *show)
	return nil
}

func (s *SnapshotStore) GetOperationalEfficiencyScore(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.efficiencyScore, nil
}

// Cohort/theme/issue/show views satisfying the per-consumer repository
// interfaces with stable receiver types.

type CohortView struct{ store *SnapshotStore }

func (s *SnapshotStore) Cohorts() *CohortView { return &CohortView{store: s} }

func (v *CohortView) FindAll(ctx context.Context) ([]domain.Cohort, error) {
	return v.store.FindAllCohorts(ctx)
}

func (v *CohortView) FindByID(ctx context.Context, id string) (domain.Cohort, error) {
	return v.store.FindCohortByID(ctx, id)
}

func (v *CohortView) Create(ctx context.Context, cohort *domain.Cohort) error {
	return v.store.AddCohort(ctx, cohort)
}

type ThemeView struct{ store *SnapshotStore }

func (s *SnapshotStore) Themes() *ThemeView { return &ThemeView{store: s} }

func (v *ThemeView) FindAll(ctx context.Context) ([]domain.ComplaintTheme, error) {
	return v.store.FindAllThemes(ctx)
}

func (v *ThemeView) Create(ctx context.Context, theme *domain.ComplaintTheme) error {
	return v.store.AddTheme(ctx, theme)
}

type IssueView struct{ store *SnapshotStore }

func (s *SnapshotStore) Issues() *IssueView { return &IssueView{store: s} }

func (v *IssueView) FindAll(ctx context.Context) ([]domain.ProductionIssue, error) {
	return v.store.FindAllIssues(ctx)
}

func (v *IssueView) Create(ctx context.Context, issue *domain.ProductionIssue) error {
	return v.store.AddIssue(ctx, issue)
}

type ShowView struct{ store *SnapshotStore }

func (s *SnapshotStore) Shows() *ShowView { return &ShowView{store: s} }

func (v *ShowView) FindAll(ctx context.Context) ([]domain.ContentShow, error) {
	return v.store.FindAllShows(ctx)
}

func (v *ShowView) Create(ctx context.Context, show *domain.ContentShow) error {
	return v.store.AddShow(ctx, show)
}
