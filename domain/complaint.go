package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

type ComplaintTheme struct {
	ID             string            `json:"id" gorm:"primaryKey;type:text"`
	Name           string            `json:"name" gorm:"column:name;type:text"`
	Volume         int               `json:"volume" gorm:"column:volume"`
	SentimentScore float64           `json:"sentiment_score" gorm:"column:sentiment_score;type:numeric"`
	Complexity     string            `json:"complexity" gorm:"column:complexity;type:text"`
	RevenueImpact  float64           `json:"revenue_impact" gorm:"column:revenue_impact;type:numeric"`
	Attributes     datatypes.JSONMap `json:"attributes" gorm:"column:attributes;type:jsonb"`
	CreatedAt      time.Time         `json:"created_at" gorm:"column:created_at"`
}

func (ComplaintTheme) TableName() string {
	return "complaint_themes"
}

func (t ComplaintTheme) AttributeSet() map[string]struct{} {
	return attributeSet(t.Attributes)
}
