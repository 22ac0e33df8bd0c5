package domain

import "time"

// Name of the metric the forecast engine reads.
const MetricOperationalEfficiency = "operational_efficiency_score"

type OperationalMetric struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"column:name;type:text"`
	Value      float64   `json:"value" gorm:"column:value;type:numeric"`
	RecordedAt time.Time `json:"recorded_at" gorm:"column:recorded_at"`
}

func (OperationalMetric) TableName() string {
	return "operational_metrics"
}
