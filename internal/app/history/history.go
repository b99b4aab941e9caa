package history

import (
	"context"
	"fmt"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
)

type HistoryService struct {
	config           config.History
	searchRepository SearchRepository
	logger           Logger
}

func NewHistoryService(config config.History, searchRepository SearchRepository, logger Logger) *HistoryService {
	return &HistoryService{
		config:           config,
		searchRepository: searchRepository,
		logger:           logger,
	}
}

// List returns recent searches, newest first. A limit outside of (0, HISTORY_LIST_LIMIT] falls
// back to the configured limit.
func (s *HistoryService) List(ctx context.Context, limit int) ([]models.Search, error) {
	if limit <= 0 || limit > s.config.ListLimit {
		limit = s.config.ListLimit
	}

	searches, err := s.searchRepository.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}

	s.logger.Debug().Int("limit", limit).Int("count", len(searches)).Msg("searches listed")

	return searches, nil
}
