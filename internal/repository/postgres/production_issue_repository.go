package postgres

import (
	"context"
	"fmt"
	"streamPulse/domain"

	"gorm.io/gorm"
)

type ProductionIssueRepository struct {
	DB *gorm.DB
}

func NewProductionIssueRepository(db *gorm.DB) *ProductionIssueRepository {
	return &ProductionIssueRepository{
		DB: db,
	}
}

func (r *ProductionIssueRepository) Create(ctx context.Context, issue *domain.ProductionIssue) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(issue).Error; err != nil {
		return fmt.Errorf("failed to create production issue: %w", err)
	}

	return nil
}

func (r *ProductionIssueRepository) FindAll(ctx context.Context) ([]domain.ProductionIssue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var issues []domain.ProductionIssue
	err := r.DB.WithContext(ctx).Order("id asc").Find(&issues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find production issues: %w", err)
	}

	return issues, nil
}

func (r *ProductionIssueRepository) FindBySeverity(ctx context.Context, severity string) ([]domain.ProductionIssue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var issues []domain.ProductionIssue
	err := r.DB.WithContext(ctx).Where("severity = ?", severity).Order("id asc").Find(&issues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find production issues: %w", err)
	}

	return issues, nil
}
