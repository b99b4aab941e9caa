package repository

import (
	"time"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/google/uuid"
)

type Search struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey"`
	Query          string    `gorm:"column:query"`
	TeamID         *string   `gorm:"column:team_id"`
	TeamName       *string   `gorm:"column:team_name"`
	UpcomingStatus string    `gorm:"column:upcoming_status"`
	UpcomingCount  int       `gorm:"column:upcoming_count"`
	PastStatus     string    `gorm:"column:past_status"`
	PastCount      int       `gorm:"column:past_count"`
	RosterStatus   string    `gorm:"column:roster_status"`
	RosterCount    int       `gorm:"column:roster_count"`
	DurationMs     int64     `gorm:"column:duration_ms"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (Search) TableName() string {
	return "searches"
}

func fromDomainSearch(s models.Search) Search {
	return Search{
		ID:             s.ID,
		Query:          s.Query,
		TeamID:         s.TeamID,
		TeamName:       s.TeamName,
		UpcomingStatus: string(s.UpcomingStatus),
		UpcomingCount:  s.UpcomingCount,
		PastStatus:     string(s.PastStatus),
		PastCount:      s.PastCount,
		RosterStatus:   string(s.RosterStatus),
		RosterCount:    s.RosterCount,
		DurationMs:     s.Duration.Milliseconds(),
		CreatedAt:      s.CreatedAt,
	}
}

func toDomainSearch(s Search) models.Search {
	return models.Search{
		ID:             s.ID,
		Query:          s.Query,
		TeamID:         s.TeamID,
		TeamName:       s.TeamName,
		UpcomingStatus: models.ResultStatus(s.UpcomingStatus),
		UpcomingCount:  s.UpcomingCount,
		PastStatus:     models.ResultStatus(s.PastStatus),
		PastCount:      s.PastCount,
		RosterStatus:   models.ResultStatus(s.RosterStatus),
		RosterCount:    s.RosterCount,
		Duration:       time.Duration(s.DurationMs) * time.Millisecond,
		CreatedAt:      s.CreatedAt,
	}
}

func toDomainSearches(searches []Search) []models.Search {
	domain := make([]models.Search, 0, len(searches))
	for _, s := range searches {
		domain = append(domain, toDomainSearch(s))
	}

	return domain
}
