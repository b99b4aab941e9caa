package testutils

import (
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

type Option[T any] func(*T)

func applyOptions[T any](item *T, updates ...Option[T]) {
	for _, update := range updates {
		update(item)
	}
}

func FakeTeamRef(options ...Option[models.TeamRef]) models.TeamRef {
	team := models.TeamRef{
		ID:   gofakeit.DigitN(6),
		Name: gofakeit.Company(),
	}

	applyOptions(&team, options...)

	return team
}

func FakeEventSummary(options ...Option[models.EventSummary]) models.EventSummary {
	event := models.EventSummary{
		Name:  gofakeit.Company() + " vs " + gofakeit.Company(),
		Date:  gofakeit.Date().Format("2006-01-02"),
		Time:  gofakeit.Date().Format("15:04:05"),
		Thumb: gofakeit.URL(),
	}

	applyOptions(&event, options...)

	return event
}

func FakePastEventSummary(options ...Option[models.EventSummary]) models.EventSummary {
	home := gofakeit.IntRange(0, 9)
	away := gofakeit.IntRange(0, 9)

	event := FakeEventSummary(func(e *models.EventSummary) {
		e.HomeScore = &home
		e.AwayScore = &away
	})

	applyOptions(&event, options...)

	return event
}

func FakeRosterEntry(options ...Option[models.RosterEntry]) models.RosterEntry {
	player := models.RosterEntry{
		Name:        gofakeit.Name(),
		Thumb:       gofakeit.URL(),
		Position:    gofakeit.RandomString([]string{"Goalkeeper", "Defender", "Midfielder", "Forward"}),
		Nationality: gofakeit.Country(),
	}

	applyOptions(&player, options...)

	return player
}

func FakeSearch(options ...Option[models.Search]) models.Search {
	statuses := []models.ResultStatus{
		models.StatusItems,
		models.StatusEmpty,
		models.StatusNotFound,
		models.StatusFailed,
	}

	teamID := gofakeit.DigitN(6)
	teamName := gofakeit.Company()

	search := models.Search{
		ID:             uuid.New(),
		Query:          gofakeit.Company(),
		TeamID:         &teamID,
		TeamName:       &teamName,
		UpcomingStatus: statuses[gofakeit.IntRange(0, len(statuses)-1)],
		UpcomingCount:  gofakeit.IntRange(0, 15),
		PastStatus:     statuses[gofakeit.IntRange(0, len(statuses)-1)],
		PastCount:      gofakeit.IntRange(0, 15),
		RosterStatus:   statuses[gofakeit.IntRange(0, len(statuses)-1)],
		RosterCount:    gofakeit.IntRange(0, 30),
		Duration:       time.Duration(gofakeit.IntRange(10, 2000)) * time.Millisecond,
		CreatedAt:      gofakeit.Date().UTC().Truncate(time.Microsecond),
	}

	applyOptions(&search, options...)

	return search
}
