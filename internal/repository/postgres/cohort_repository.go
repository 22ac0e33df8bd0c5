package postgres

import (
	"context"
	"errors"
	"fmt"
	"streamPulse/domain"

	"gorm.io/gorm"
)

type CohortRepository struct {
	DB *gorm.DB
}

func NewCohortRepository(db *gorm.DB) *CohortRepository {
	return &CohortRepository{
		DB: db,
	}
}

func (r *CohortRepository) Create(ctx context.Context, cohort *domain.Cohort) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(cohort).Error; err != nil {
		return fmt.Errorf("failed to create cohort: %w", err)
	}

	return nil
}

func (r *CohortRepository) FindByID(ctx context.Context, id string) (domain.Cohort, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cohort{}, fmt.Errorf("context error: %w", err)
	}

	var cohort domain.Cohort

	err := r.DB.WithContext(ctx).First(&cohort, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cohort{}, fmt.Errorf("cohort %q: %w", id, domain.ErrNotFound)
		}
		return domain.Cohort{}, fmt.Errorf("failed to find cohort: %w", err)
	}

	return cohort, nil
}

func (r *CohortRepository) FindAll(ctx context.Context) ([]domain.Cohort, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cohorts []domain.Cohort
	err := r.DB.WithContext(ctx).Order("id asc").Find(&cohorts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cohorts: %w", err)
	}

	return cohorts, nil
}
