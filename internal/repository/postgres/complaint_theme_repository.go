package postgres

import (
	"context"
	"fmt"
	"streamPulse/domain"

	"gorm.io/gorm"
)

type ComplaintThemeRepository struct {
	DB *gorm.DB
}

func NewComplaintThemeRepository(db *gorm.DB) *ComplaintThemeRepository {
	return &ComplaintThemeRepository{
		DB: db,
	}
}

func (r *ComplaintThemeRepository) Create(ctx context.Context, theme *domain.ComplaintTheme) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(theme).Error; err != nil {
		return fmt.Errorf("failed to create complaint theme: %w", err)
	}

	return nil
}

func (r *ComplaintThemeRepository) FindAll(ctx context.Context) ([]domain.ComplaintTheme, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var themes []domain.ComplaintTheme
	err := r.DB.WithContext(ctx).Order("id asc").Find(&themes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find complaint themes: %w", err)
	}

	return themes, nil
}

// FindSince keeps the days_back contract of the complaint connector.
func (r *ComplaintThemeRepository) FindSince(ctx context.Context, daysBack int) ([]domain.ComplaintTheme, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var themes []domain.ComplaintTheme
	err := r.DB.WithContext(ctx).
		Where("created_at >= NOW() - (? * INTERVAL '1 day')", daysBack).
		Order("id asc").
		Find(&themes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find complaint themes: %w", err)
	}

	return themes, nil
}
