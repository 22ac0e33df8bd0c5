package correlation

import "streamPulse/domain"

// Dimension adapters. Each reduces one snapshot type to matchable candidates;
// the magnitude chosen per dimension is the financial lever that dimension
// exposes (revenue impact, cost overrun, viewing hours).

func ThemeCandidates(themes []domain.ComplaintTheme) []Candidate {
	out := make([]Candidate, 0, len(themes))
	for _, theme := range themes {
		out = append(out, Candidate{
			ID:         theme.ID,
			Name:       theme.Name,
			Attributes: theme.AttributeSet(),
			Magnitude:  theme.RevenueImpact,
		})
	}
	return out
}

// IssueCandidates resolves each issue's attributes through its linked show,
// since production issues carry no catalog attributes of their own.
func IssueCandidates(issues []domain.ProductionIssue, showsByID map[string]domain.ContentShow) []Candidate {
	out := make([]Candidate, 0, len(issues))
	for _, issue := range issues {
		attrs := map[string]struct{}{}
		name := issue.ID
		if show, ok := showsByID[issue.ShowID]; ok {
			attrs = show.AttributeSet()
			if show.Title != "" {
				name = "Production delay: " + show.Title
			}
		}

		out = append(out, Candidate{
			ID:         issue.ID,
			Name:       name,
			Attributes: attrs,
			Magnitude:  issue.CostOverrun,
		})
	}
	return out
}

func ShowCandidates(shows []domain.ContentShow) []Candidate {
	out := make([]Candidate, 0, len(shows))
	for _, show := range shows {
		out = append(out, Candidate{
			ID:         show.ID,
			Name:       show.Title,
			Attributes: show.AttributeSet(),
			Magnitude:  show.ViewingHours,
		})
	}
	return out
}
