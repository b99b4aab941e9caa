package repository

import (
	"context"
	"fmt"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"gorm.io/gorm"
)

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

func (r *SearchRepository) Save(ctx context.Context, search models.Search) error {
	s := fromDomainSearch(search)

	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return fmt.Errorf("failed to create search %s: %w", search.ID, err)
	}

	return nil
}

// List returns the latest searches, newest first.
func (r *SearchRepository) List(ctx context.Context, limit int) ([]models.Search, error) {
	var searches []Search

	result := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&searches)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list searches: %w", result.Error)
	}

	return toDomainSearches(searches), nil
}
