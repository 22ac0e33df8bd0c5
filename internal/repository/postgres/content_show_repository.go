package postgres

import (
	"context"
	"fmt"
	"streamPulse/domain"

	"gorm.io/gorm"
)

type ContentShowRepository struct {
	DB *gorm.DB
}

func NewContentShowRepository(db *gorm.DB) *ContentShowRepository {
	return &ContentShowRepository{
		DB: db,
	}
}

func (r *ContentShowRepository) Create(ctx context.Context, show *domain.ContentShow) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create content show: %w", err)
	}

	return nil
}

func (r *ContentShowRepository) FindAll(ctx context.Context) ([]domain.ContentShow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var shows []domain.ContentShow
	err := r.DB.WithContext(ctx).Order("id asc").Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find content shows: %w", err)
	}

	return shows, nil
}

func (r *ContentShowRepository) FindByGenreAndRegion(ctx context.Context, genre, region string) ([]domain.ContentShow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx)
	if genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if region != "" {
		query = query.Where("region = ?", region)
	}

	var shows []domain.ContentShow
	err := query.Order("id asc").Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find content shows: %w", err)
	}

	return shows, nil
}
