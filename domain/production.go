package domain

import "time"

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

const (
	IssueStatusOpen       = "open"
	IssueStatusInProgress = "in_progress"
	IssueStatusResolved   = "resolved"
)

type ProductionIssue struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	Severity    string    `json:"severity" gorm:"column:severity;type:text"`
	DelayDays   int       `json:"delay_days" gorm:"column:delay_days"`
	CostOverrun float64   `json:"cost_overrun" gorm:"column:cost_overrun;type:numeric"`
	ShowID      string    `json:"show_id" gorm:"column:show_id;type:text"`
	Status      string    `json:"status" gorm:"column:status;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ProductionIssue) TableName() string {
	return "production_issues"
}
