package lookup

import (
	"context"
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/rs/zerolog"
)

type SportsDBClient interface {
	SearchTeams(ctx context.Context, name string) ([]models.TeamRef, error)
	NextEvents(ctx context.Context, teamID string) ([]models.EventSummary, error)
	LastEvents(ctx context.Context, teamID string) ([]models.EventSummary, error)
	Players(ctx context.Context, teamID string) ([]models.RosterEntry, error)
}

// Presenter receives list state transitions. Begin issues the token of a new lookup; a Present
// call returns false when its token is no longer the latest one and the update was discarded.
type Presenter interface {
	Begin() uint64
	PresentUpcoming(token uint64, result models.LookupResult[models.EventSummary]) bool
	PresentPast(token uint64, result models.LookupResult[models.EventSummary]) bool
	PresentRoster(token uint64, result models.LookupResult[models.RosterEntry]) bool
}

type SearchRepository interface {
	Save(ctx context.Context, search models.Search) error
}

type Metrics interface {
	ObserveStage(stage models.Stage, status models.ResultStatus)
	ObserveLookup(duration time.Duration)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
