package memory

import (
	"streamPulse/domain"
	"time"

	"gorm.io/datatypes"
)

// DemoSnapshot is the snapshot served in memory data mode. Values are in the
// same scale as the live connectors (subscribers, USD).
func DemoSnapshot() Snapshot {
	now := time.Now().UTC()

	return Snapshot{
		EfficiencyScore: 0.85,
		Cohorts: []domain.Cohort{
			{
				ID: "cohort-latam-drama", Name: "LATAM drama watchers", Size: 420_000,
				RiskScore: 0.82, ProjectedChurners30d: 63_000, FinancialImpact30d: 51_000_000,
				Attributes: datatypes.JSONMap{"genre": "drama", "region": "latam", "plan": "standard"},
				CreatedAt:  now,
			},
			{
				ID: "cohort-na-sports", Name: "NA sports subscribers", Size: 280_000,
				RiskScore: 0.64, ProjectedChurners30d: 25_000, FinancialImpact30d: 22_400_000,
				Attributes: datatypes.JSONMap{"genre": "sports", "region": "na", "plan": "premium"},
				CreatedAt:  now,
			},
			{
				ID: "cohort-emea-casual", Name: "EMEA casual viewers", Size: 150_000,
				RiskScore: 0.38, ProjectedChurners30d: 9_000, FinancialImpact30d: 7_500_000,
				Attributes: datatypes.JSONMap{"genre": "comedy", "region": "emea", "plan": "basic"},
				CreatedAt:  now,
			},
			{
				ID: "cohort-apac-anime", Name: "APAC anime fans", Size: 210_000,
				RiskScore: 0.57, ProjectedChurners30d: 19_000, FinancialImpact30d: 14_700_000,
				Attributes: datatypes.JSONMap{"genre": "anime", "region": "apac", "plan": "standard"},
				CreatedAt:  now,
			},
		},
		Themes: []domain.ComplaintTheme{
			{
				ID: "theme-library-gaps", Name: "Content Library Gaps", Volume: 12_400,
				SentimentScore: -0.72, Complexity: domain.ComplexityHigh, RevenueImpact: 75_000_000,
				Attributes: datatypes.JSONMap{"genre": "drama", "region": "latam", "topic": "catalog"},
				CreatedAt:  now,
			},
			{
				ID: "theme-stream-quality", Name: "Streaming quality", Volume: 8_900,
				SentimentScore: -0.61, Complexity: domain.ComplexityMedium, RevenueImpact: 18_000_000,
				Attributes: datatypes.JSONMap{"genre": "sports", "region": "na", "topic": "playback"},
				CreatedAt:  now,
			},
			{
				ID: "theme-price-increase", Name: "Price increase pushback", Volume: 15_200,
				SentimentScore: -0.58, Complexity: domain.ComplexityLow, RevenueImpact: 9_500_000,
				Attributes: datatypes.JSONMap{"region": "emea", "topic": "billing"},
				CreatedAt:  now,
			},
		},
		Issues: []domain.ProductionIssue{
			{
				ID: "issue-telenovela-s3", Severity: domain.SeverityCritical, DelayDays: 45,
				CostOverrun: 6_800_000, ShowID: "show-telenovela", Status: domain.IssueStatusOpen,
				CreatedAt: now,
			},
			{
				ID: "issue-anime-dub", Severity: domain.SeverityMedium, DelayDays: 21,
				CostOverrun: 1_200_000, ShowID: "show-mecha", Status: domain.IssueStatusInProgress,
				CreatedAt: now,
			},
		},
		Shows: []domain.ContentShow{
			{ID: "show-telenovela", Title: "Telenovela Nights", Genre: "drama", Region: "latam", ViewingHours: 9_400_000, Rating: 4.4, CreatedAt: now},
			{ID: "show-gridiron", Title: "Gridiron Sundays", Genre: "sports", Region: "na", ViewingHours: 7_100_000, Rating: 4.1, CreatedAt: now},
			{ID: "show-mecha", Title: "Mecha Horizon", Genre: "anime", Region: "apac", ViewingHours: 5_600_000, Rating: 4.6, CreatedAt: now},
			{ID: "show-panel", Title: "Panel Show Live", Genre: "comedy", Region: "emea", ViewingHours: 1_900_000, Rating: 3.8, CreatedAt: now},
		},
	}
}
