package presenter

import (
	"sync"

	"github.com/andrewshostak/team-lookup-service/internal/app/models"
)

// Board holds the three output lists of a lookup. Only updates carrying the token of the most
// recently begun lookup are applied, so a slow stale lookup cannot overwrite a newer one.
type Board struct {
	mu       sync.RWMutex
	latest   uint64
	upcoming models.LookupResult[models.EventSummary]
	past     models.LookupResult[models.EventSummary]
	roster   models.LookupResult[models.RosterEntry]
}

type Snapshot struct {
	Token    uint64
	Upcoming models.LookupResult[models.EventSummary]
	Past     models.LookupResult[models.EventSummary]
	Roster   models.LookupResult[models.RosterEntry]
}

func NewBoard() *Board {
	return &Board{
		upcoming: models.LookupResult[models.EventSummary]{Status: models.StatusIdle},
		past:     models.LookupResult[models.EventSummary]{Status: models.StatusIdle},
		roster:   models.LookupResult[models.RosterEntry]{Status: models.StatusIdle},
	}
}

func (b *Board) Begin() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest++

	return b.latest
}

func (b *Board) PresentUpcoming(token uint64, result models.LookupResult[models.EventSummary]) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if token != b.latest {
		return false
	}

	b.upcoming = result

	return true
}

func (b *Board) PresentPast(token uint64, result models.LookupResult[models.EventSummary]) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if token != b.latest {
		return false
	}

	b.past = result

	return true
}

func (b *Board) PresentRoster(token uint64, result models.LookupResult[models.RosterEntry]) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if token != b.latest {
		return false
	}

	b.roster = result

	return true
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Snapshot{
		Token:    b.latest,
		Upcoming: b.upcoming,
		Past:     b.past,
		Roster:   b.roster,
	}
}
