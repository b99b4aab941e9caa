package handler

import (
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
)

type LookupRequest struct {
	Name string `form:"name" binding:"required"`
}

type BoardSearchRequest struct {
	Name string `json:"name" binding:"required"`
}

type ListSearchesRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventResponse struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Thumb     string `json:"thumb"`
	HomeScore *int   `json:"home_score,omitempty"`
	AwayScore *int   `json:"away_score,omitempty"`
}

type PlayerResponse struct {
	Name        string `json:"name"`
	Thumb       string `json:"thumb"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
}

type ListResponse[T any] struct {
	Status string `json:"status"`
	Items  []T    `json:"items"`
}

type LookupResponse struct {
	ID         string                       `json:"id"`
	Query      string                       `json:"query"`
	Team       *TeamResponse                `json:"team"`
	Upcoming   ListResponse[EventResponse]  `json:"upcoming"`
	Past       ListResponse[EventResponse]  `json:"past"`
	Roster     ListResponse[PlayerResponse] `json:"roster"`
	DurationMs int64                        `json:"duration_ms"`
}

type BoardResponse struct {
	Token    uint64                       `json:"token"`
	Upcoming ListResponse[EventResponse]  `json:"upcoming"`
	Past     ListResponse[EventResponse]  `json:"past"`
	Roster   ListResponse[PlayerResponse] `json:"roster"`
}

type SearchResponse struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	TeamID     *string   `json:"team_id"`
	TeamName   *string   `json:"team_name"`
	Upcoming   Summary   `json:"upcoming"`
	Past       Summary   `json:"past"`
	Roster     Summary   `json:"roster"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type Summary struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func toLookupResponse(outcome models.LookupOutcome, snapshot presenter.Snapshot) LookupResponse {
	response := LookupResponse{
		ID:         outcome.ID.String(),
		Query:      outcome.Query,
		Upcoming:   toEventList(snapshot.Upcoming),
		Past:       toEventList(snapshot.Past),
		Roster:     toPlayerList(snapshot.Roster),
		DurationMs: outcome.Duration.Milliseconds(),
	}

	if outcome.Team != nil {
		response.Team = &TeamResponse{ID: outcome.Team.ID, Name: outcome.Team.Name}
	}

	return response
}

func toBoardResponse(snapshot presenter.Snapshot) BoardResponse {
	return BoardResponse{
		Token:    snapshot.Token,
		Upcoming: toEventList(snapshot.Upcoming),
		Past:     toEventList(snapshot.Past),
		Roster:   toPlayerList(snapshot.Roster),
	}
}

func toEventList(result models.LookupResult[models.EventSummary]) ListResponse[EventResponse] {
	items := make([]EventResponse, 0, len(result.Items))
	for _, e := range result.Items {
		items = append(items, EventResponse{
			Name:      e.Name,
			Date:      e.Date,
			Time:      e.Time,
			Thumb:     e.Thumb,
			HomeScore: e.HomeScore,
			AwayScore: e.AwayScore,
		})
	}

	return ListResponse[EventResponse]{Status: string(result.Status), Items: items}
}

func toPlayerList(result models.LookupResult[models.RosterEntry]) ListResponse[PlayerResponse] {
	items := make([]PlayerResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, PlayerResponse{
			Name:        p.Name,
			Thumb:       p.Thumb,
			Position:    p.Position,
			Nationality: p.Nationality,
		})
	}

	return ListResponse[PlayerResponse]{Status: string(result.Status), Items: items}
}

func toSearchesResponse(searches []models.Search) []SearchResponse {
	response := make([]SearchResponse, 0, len(searches))
	for _, s := range searches {
		response = append(response, SearchResponse{
			ID:         s.ID.String(),
			Query:      s.Query,
			TeamID:     s.TeamID,
			TeamName:   s.TeamName,
			Upcoming:   Summary{Status: string(s.UpcomingStatus), Count: s.UpcomingCount},
			Past:       Summary{Status: string(s.PastStatus), Count: s.PastCount},
			Roster:     Summary{Status: string(s.RosterStatus), Count: s.RosterCount},
			DurationMs: s.Duration.Milliseconds(),
			CreatedAt:  s.CreatedAt,
		})
	}

	return response
}
