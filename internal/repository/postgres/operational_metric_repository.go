package postgres

import (
	"context"
	"errors"
	"fmt"
	"streamPulse/domain"

	"gorm.io/gorm"
)

type OperationalMetricRepository struct {
	DB *gorm.DB
}

func NewOperationalMetricRepository(db *gorm.DB) *OperationalMetricRepository {
	return &OperationalMetricRepository{
		DB: db,
	}
}

func (r *OperationalMetricRepository) Record(ctx context.Context, metric *domain.OperationalMetric) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(metric).Error; err != nil {
		return fmt.Errorf("failed to record operational metric: %w", err)
	}

	return nil
}

// GetOperationalEfficiencyScore reads the latest recorded efficiency score.
// A missing row falls back to 1.0 so forecasts degrade to raw scenario
// coefficients instead of failing.
func (r *OperationalMetricRepository) GetOperationalEfficiencyScore(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var metric domain.OperationalMetric
	err := r.DB.WithContext(ctx).
		Where("name = ?", domain.MetricOperationalEfficiency).
		Order("recorded_at desc").
		First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1.0, nil
		}
		return 0, fmt.Errorf("failed to read efficiency score: %w", err)
	}

	return metric.Value, nil
}
