package testutils

import (
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/client/sportsdb"
	"github.com/brianvoe/gofakeit/v6"
)

func FakeClientTeam(options ...Option[sportsdb.Team]) sportsdb.Team {
	team := sportsdb.Team{
		IDTeam:  gofakeit.DigitN(6),
		StrTeam: gofakeit.Company(),
	}

	applyOptions(&team, options...)

	return team
}

func FakeClientEvent(options ...Option[sportsdb.Event]) sportsdb.Event {
	event := sportsdb.Event{
		StrEvent:  gofakeit.Company() + " vs " + gofakeit.Company(),
		DateEvent: gofakeit.Date().Format("2006-01-02"),
		StrTime:   gofakeit.Date().Format("15:04:05"),
		StrThumb:  gofakeit.URL(),
	}

	applyOptions(&event, options...)

	return event
}

func FakeClientPlayer(options ...Option[sportsdb.Player]) sportsdb.Player {
	player := sportsdb.Player{
		StrPlayer:      gofakeit.Name(),
		StrThumb:       gofakeit.URL(),
		StrPosition:    gofakeit.RandomString([]string{"Goalkeeper", "Defender", "Midfielder", "Forward"}),
		StrNationality: gofakeit.Country(),
	}

	applyOptions(&player, options...)

	return player
}
