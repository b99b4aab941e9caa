package presenter_test

import (
	"testing"

	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func TestText_Render(t *testing.T) {
	two, one := 2, 1

	tests := []struct {
		name     string
		present  func(p *presenter.Text)
		contains []string
		excludes []string
	}{
		{
			name: "it renders loading texts",
			present: func(p *presenter.Text) {
				token := p.Begin()
				p.PresentUpcoming(token, models.Loading[models.EventSummary]())
				p.PresentPast(token, models.Loading[models.EventSummary]())
				p.PresentRoster(token, models.Loading[models.RosterEntry]())
			},
			contains: []string{"Loading upcoming games...", "Loading past games...", "Loading roster..."},
		},
		{
			name: "it renders team not found in every list",
			present: func(p *presenter.Text) {
				token := p.Begin()
				p.PresentUpcoming(token, models.NotFound[models.EventSummary]())
				p.PresentPast(token, models.NotFound[models.EventSummary]())
				p.PresentRoster(token, models.NotFound[models.RosterEntry]())
			},
			contains: []string{"Team not found"},
			excludes: []string{"Loading"},
		},
		{
			name: "it renders empty and failed lists",
			present: func(p *presenter.Text) {
				token := p.Begin()
				p.PresentUpcoming(token, models.Empty[models.EventSummary]())
				p.PresentPast(token, models.Empty[models.EventSummary]())
				p.PresentRoster(token, models.Failed[models.RosterEntry]())
			},
			contains: []string{"No upcoming events found", "No past events found", "Error fetching data"},
		},
		{
			name: "it renders items",
			present: func(p *presenter.Text) {
				token := p.Begin()
				p.PresentUpcoming(token, models.Items([]models.EventSummary{
					{Name: "Arsenal vs Chelsea", Date: "2025-01-02", Time: "15:00:00", Thumb: "thumb-1"},
				}))
				p.PresentPast(token, models.Items([]models.EventSummary{
					{Name: "Arsenal vs Spurs", Date: "2024-12-01", Thumb: "thumb-2", HomeScore: &two, AwayScore: &one},
					{Name: "Arsenal vs Leeds", Date: "2024-11-01", Thumb: "thumb-3"},
				}))
				p.PresentRoster(token, models.Items([]models.RosterEntry{
					{Name: "Bukayo Saka", Position: "Right Winger", Nationality: "England", Thumb: "thumb-4"},
				}))
			},
			contains: []string{
				"Arsenal vs Chelsea | 2025-01-02 at 15:00:00 | thumb-1",
				"Arsenal vs Spurs | 2024-12-01 | Score: 2 - 1 | thumb-2",
				"Arsenal vs Leeds | 2024-11-01 | Score: ? - ? | thumb-3",
				"Bukayo Saka | Right Winger, England | thumb-4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := presenter.NewText()
			tt.present(p)

			rendered := p.Render()

			for _, text := range tt.contains {
				assert.Contains(t, rendered, text)
			}
			for _, text := range tt.excludes {
				assert.NotContains(t, rendered, text)
			}
		})
	}
}
