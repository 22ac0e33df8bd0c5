package correlation

import (
	"sort"
	"streamPulse/domain"
)

// Candidate is one explanatory entity inside a dimension, reduced to the
// attributes it can be matched on and the financial magnitude that weights it.
type Candidate struct {
	ID         string
	Name       string
	Attributes map[string]struct{}
	Magnitude  float64
}

type CorrelationService struct {
	cfg Config
}

func NewCorrelationService(cfg Config) *CorrelationService {
	if cfg.StrongThreshold <= 0 || cfg.StrongThreshold > 1 {
		cfg.StrongThreshold = defaultStrongThreshold
	}
	if cfg.ModerateThreshold <= 0 || cfg.ModerateThreshold >= cfg.StrongThreshold {
		cfg.ModerateThreshold = defaultModerateThreshold
	}

	return &CorrelationService{cfg: cfg}
}

// Correlate scores every candidate against the cohort, per dimension.
// Score is Jaccard similarity of attribute sets scaled by the candidate's
// magnitude normalized against the dimension maximum, so a high-impact but
// loosely related entity can outrank a perfectly matched negligible one.
// Zero attribute overlap always scores 0 regardless of magnitude.
func (s *CorrelationService) Correlate(cohort domain.Cohort, candidates map[string][]Candidate) map[string][]domain.CorrelationMatch {
	cohortAttrs := cohort.AttributeSet()

	out := make(map[string][]domain.CorrelationMatch, len(candidates))
	for dimension, dimCandidates := range candidates {
		maxMagnitude := 0.0
		for _, cand := range dimCandidates {
			if cand.Magnitude > maxMagnitude {
				maxMagnitude = cand.Magnitude
			}
		}

		matches := make([]domain.CorrelationMatch, 0, len(dimCandidates))
		for _, cand := range dimCandidates {
			similarity, shared := jaccard(cohortAttrs, cand.Attributes)
			if similarity == 0 {
				continue
			}

			weight := 1.0
			if maxMagnitude > 0 {
				weight = cand.Magnitude / maxMagnitude
			}
			score := similarity * weight

			matches = append(matches, domain.CorrelationMatch{
				EntityID:         cand.ID,
				EntityName:       cand.Name,
				Score:            score,
				Strength:         s.Bucket(score),
				SharedAttributes: shared,
				Magnitude:        cand.Magnitude,
			})
		}

		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Score != matches[j].Score {
				return matches[i].Score > matches[j].Score
			}
			return matches[i].EntityID < matches[j].EntityID
		})

		out[dimension] = matches
	}

	return out
}

// Bucket maps a score onto the strong/moderate/weak contract.
func (s *CorrelationService) Bucket(score float64) string {
	switch {
	case score >= s.cfg.StrongThreshold:
		return domain.StrengthStrong
	case score >= s.cfg.ModerateThreshold:
		return domain.StrengthModerate
	default:
		return domain.StrengthWeak
	}
}

func jaccard(a, b map[string]struct{}) (float64, []string) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil
	}

	var shared []string
	for attr := range a {
		if _, ok := b[attr]; ok {
			shared = append(shared, attr)
		}
	}
	if len(shared) == 0 {
		return 0, nil
	}
	sort.Strings(shared)

	union := len(a) + len(b) - len(shared)

	return float64(len(shared)) / float64(union), shared
}
