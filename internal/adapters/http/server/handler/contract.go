package handler

import (
	"context"

	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/app/lookup"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/rs/zerolog"
)

type LookupService interface {
	RunLookup(ctx context.Context, name string, presenter lookup.Presenter) *models.LookupOutcome
}

type HistoryService interface {
	List(ctx context.Context, limit int) ([]models.Search, error)
}

type Board interface {
	lookup.Presenter
	Snapshot() presenter.Snapshot
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
