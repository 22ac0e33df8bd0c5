package pareto

import (
	"fmt"
	"math"
	"sort"
	"streamPulse/domain"
)

type ParetoService struct {
	cfg Config
}

func NewParetoService(cfg Config) *ParetoService {
	if cfg.TopFraction <= 0 || cfg.TopFraction > 1 {
		cfg.TopFraction = defaultTopFraction
	}
	if cfg.ValidityThreshold <= 0 || cfg.ValidityThreshold > 1 {
		cfg.ValidityThreshold = defaultValidityThreshold
	}

	return &ParetoService{cfg: cfg}
}

// Compute decomposes one metric series into its top-fraction split.
// Items are sorted by magnitude descending, ties by id ascending so the
// output is stable; tie order never changes the contribution percentages.
func (s *ParetoService) Compute(dimension string, items []domain.MetricItem) (domain.ParetoResult, error) {
	if len(items) == 0 {
		return domain.ParetoResult{}, fmt.Errorf("pareto dimension %q: %w", dimension, domain.ErrEmptyInput)
	}

	total := 0.0
	for _, item := range items {
		if item.Magnitude < 0 {
			return domain.ParetoResult{}, fmt.Errorf("pareto item %q: %w", item.ID, domain.ErrInvalidMagnitude)
		}
		total += item.Magnitude
	}

	sorted := make([]domain.MetricItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Magnitude != sorted[j].Magnitude {
			return sorted[i].Magnitude > sorted[j].Magnitude
		}
		return sorted[i].ID < sorted[j].ID
	})

	curve := make([]float64, len(sorted))
	if total > 0 {
		running := 0.0
		for i, item := range sorted {
			running += item.Magnitude
			curve[i] = running / total
		}
	}

	cutoff := int(math.Ceil(s.cfg.TopFraction * float64(len(sorted))))
	if cutoff < 1 {
		cutoff = 1
	}

	topContribution := curve[cutoff-1]

	return domain.ParetoResult{
		Dimension:       dimension,
		SortedItems:     sorted,
		CumulativeCurve: curve,
		CutoffIndex:     cutoff,
		TopContribution: topContribution,
		TotalMagnitude:  total,
		IsValid:         total > 0 && topContribution >= s.cfg.ValidityThreshold,
	}, nil
}

// ValidatePrinciple aggregates per-dimension results into one cross-dimensional
// verdict. The average is weighted by each dimension's total magnitude so a
// tiny dimension cannot skew the outcome.
func (s *ParetoService) ValidatePrinciple(results map[string]domain.ParetoResult) domain.ParetoValidation {
	if len(results) == 0 {
		return domain.ParetoValidation{
			IsValid: false,
			Message: "no dimensions to validate",
		}
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, result := range results {
		weightedSum += result.TopContribution * result.TotalMagnitude
		totalWeight += result.TotalMagnitude
	}

	if totalWeight == 0 {
		return domain.ParetoValidation{
			IsValid: false,
			Message: "all dimensions have zero total magnitude",
		}
	}

	weightedAvg := weightedSum / totalWeight

	return domain.ParetoValidation{
		IsValid: weightedAvg >= s.cfg.ValidityThreshold,
		Message: fmt.Sprintf(
			"weighted average top-%.0f%% contribution is %.1f%% across %d dimensions (threshold %.0f%%)",
			s.cfg.TopFraction*100, weightedAvg*100, len(results), s.cfg.ValidityThreshold*100,
		),
	}
}
