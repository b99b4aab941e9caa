package sportsdb

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
)

type TeamsResponse struct {
	Teams []Team `json:"teams"`
}

type Team struct {
	IDTeam  string `json:"idTeam"`
	StrTeam string `json:"strTeam"`
}

type NextEventsResponse struct {
	Events []Event `json:"events"`
}

type LastEventsResponse struct {
	Results []Event `json:"results"`
}

type Event struct {
	StrEvent     string `json:"strEvent"`
	DateEvent    string `json:"dateEvent"`
	StrTime      string `json:"strTime"`
	StrThumb     string `json:"strThumb"`
	IntHomeScore Score  `json:"intHomeScore"`
	IntAwayScore Score  `json:"intAwayScore"`
}

type PlayersResponse struct {
	Player []Player `json:"player"`
}

type Player struct {
	StrPlayer      string `json:"strPlayer"`
	StrThumb       string `json:"strThumb"`
	StrPosition    string `json:"strPosition"`
	StrNationality string `json:"strNationality"`
}

// Score is a nullable score. The api sends scores as quoted numbers, bare numbers or null.
// Fractional values are truncated. A value that is not a number decodes as nil.
type Score struct {
	Value *int
}

func NewScore(value int) Score {
	return Score{Value: &value}
}

func (s *Score) UnmarshalJSON(data []byte) error {
	s.Value = nil

	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return nil
		}
		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	score := int(value)
	s.Value = &score

	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if s.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(strconv.Itoa(*s.Value))
}

func toDomainTeams(response TeamsResponse) []models.TeamRef {
	teams := make([]models.TeamRef, 0, len(response.Teams))
	for _, team := range response.Teams {
		teams = append(teams, models.TeamRef{ID: team.IDTeam, Name: team.StrTeam})
	}

	return teams
}

func toDomainEvents(events []Event, placeholderThumb string) []models.EventSummary {
	if len(events) == 0 {
		return nil
	}

	summaries := make([]models.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, models.EventSummary{
			Name:      event.StrEvent,
			Date:      event.DateEvent,
			Time:      event.StrTime,
			Thumb:     orPlaceholder(event.StrThumb, placeholderThumb),
			HomeScore: event.IntHomeScore.Value,
			AwayScore: event.IntAwayScore.Value,
		})
	}

	return summaries
}

func toDomainRoster(players []Player, placeholderThumb string) []models.RosterEntry {
	if len(players) == 0 {
		return nil
	}

	roster := make([]models.RosterEntry, 0, len(players))
	for _, player := range players {
		roster = append(roster, models.RosterEntry{
			Name:        player.StrPlayer,
			Thumb:       orPlaceholder(player.StrThumb, placeholderThumb),
			Position:    player.StrPosition,
			Nationality: player.StrNationality,
		})
	}

	return roster
}

func orPlaceholder(thumb, placeholder string) string {
	if thumb == "" {
		return placeholder
	}

	return thumb
}
