package testutils

import (
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/adapters/repository"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

func FakeRepositorySearch(options ...Option[repository.Search]) repository.Search {
	statuses := []models.ResultStatus{
		models.StatusItems,
		models.StatusEmpty,
		models.StatusNotFound,
		models.StatusFailed,
	}

	teamID := gofakeit.DigitN(6)
	teamName := gofakeit.Company()

	search := repository.Search{
		ID:             uuid.New(),
		Query:          gofakeit.Company(),
		TeamID:         &teamID,
		TeamName:       &teamName,
		UpcomingStatus: string(statuses[gofakeit.IntRange(0, len(statuses)-1)]),
		UpcomingCount:  gofakeit.IntRange(0, 15),
		PastStatus:     string(statuses[gofakeit.IntRange(0, len(statuses)-1)]),
		PastCount:      gofakeit.IntRange(0, 15),
		RosterStatus:   string(statuses[gofakeit.IntRange(0, len(statuses)-1)]),
		RosterCount:    gofakeit.IntRange(0, 40),
		DurationMs:     int64(gofakeit.IntRange(50, 5000)),
		CreatedAt:      gofakeit.Date().UTC().Truncate(time.Microsecond),
	}

	applyOptions(&search, options...)

	return search
}
