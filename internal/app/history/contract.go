package history

import (
	"context"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/rs/zerolog"
)

type SearchRepository interface {
	List(ctx context.Context, limit int) ([]models.Search, error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
