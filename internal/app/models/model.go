package models

import (
	"time"

	"github.com/google/uuid"
)

type ResultStatus string

const (
	StatusIdle     ResultStatus = "idle"
	StatusLoading  ResultStatus = "loading"
	StatusItems    ResultStatus = "items"
	StatusEmpty    ResultStatus = "empty"
	StatusNotFound ResultStatus = "not_found"
	StatusFailed   ResultStatus = "failed"
)

type Stage string

const (
	StageResolve  Stage = "resolve"
	StageUpcoming Stage = "upcoming"
	StagePast     Stage = "past"
	StageRoster   Stage = "roster"
)

type TeamRef struct {
	ID   string
	Name string
}

type EventSummary struct {
	Name      string
	Date      string
	Time      string
	Thumb     string
	HomeScore *int
	AwayScore *int
}

type RosterEntry struct {
	Name        string
	Thumb       string
	Position    string
	Nationality string
}

// LookupResult is the state of one output list. Items is set only for StatusItems.
type LookupResult[T any] struct {
	Status ResultStatus
	Items  []T
}

func Loading[T any]() LookupResult[T] {
	return LookupResult[T]{Status: StatusLoading}
}

func Empty[T any]() LookupResult[T] {
	return LookupResult[T]{Status: StatusEmpty}
}

func NotFound[T any]() LookupResult[T] {
	return LookupResult[T]{Status: StatusNotFound}
}

func Failed[T any]() LookupResult[T] {
	return LookupResult[T]{Status: StatusFailed}
}

// Items returns an Empty result when items is empty.
func Items[T any](items []T) LookupResult[T] {
	if len(items) == 0 {
		return Empty[T]()
	}

	return LookupResult[T]{Status: StatusItems, Items: items}
}

type LookupOutcome struct {
	ID       uuid.UUID
	Query    string
	Team     *TeamRef
	Upcoming LookupResult[EventSummary]
	Past     LookupResult[EventSummary]
	Roster   LookupResult[RosterEntry]
	Duration time.Duration
}

type Search struct {
	ID             uuid.UUID
	Query          string
	TeamID         *string
	TeamName       *string
	UpcomingStatus ResultStatus
	UpcomingCount  int
	PastStatus     ResultStatus
	PastCount      int
	RosterStatus   ResultStatus
	RosterCount    int
	Duration       time.Duration
	CreatedAt      time.Time
}

func (o *LookupOutcome) ToSearch() Search {
	search := Search{
		ID:             o.ID,
		Query:          o.Query,
		UpcomingStatus: o.Upcoming.Status,
		UpcomingCount:  len(o.Upcoming.Items),
		PastStatus:     o.Past.Status,
		PastCount:      len(o.Past.Items),
		RosterStatus:   o.Roster.Status,
		RosterCount:    len(o.Roster.Items),
		Duration:       o.Duration,
	}

	if o.Team != nil {
		search.TeamID = &o.Team.ID
		search.TeamName = &o.Team.Name
	}

	return search
}
