package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type LookupService struct {
	config           config.Lookup
	sportsDBClient   SportsDBClient
	searchRepository SearchRepository
	metrics          Metrics
	logger           Logger
}

// NewLookupService creates the team lookup pipeline. searchRepository may be nil when search
// history is disabled.
func NewLookupService(
	config config.Lookup,
	sportsDBClient SportsDBClient,
	searchRepository SearchRepository,
	metrics Metrics,
	logger Logger,
) *LookupService {
	return &LookupService{
		config:           config,
		sportsDBClient:   sportsDBClient,
		searchRepository: searchRepository,
		metrics:          metrics,
		logger:           logger,
	}
}

// ResolveTeam returns the first team the search yields. Other matches are discarded.
func (s *LookupService) ResolveTeam(ctx context.Context, name string) (*models.TeamRef, error) {
	teams, err := s.sportsDBClient.SearchTeams(ctx, name)
	if err != nil {
		s.observeStageError(ctx, models.StageResolve, err)
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	if len(teams) == 0 {
		s.metrics.ObserveStage(models.StageResolve, models.StatusNotFound)
		return nil, errs.NewResourceNotFoundError(fmt.Errorf("team %s not found", name))
	}

	s.metrics.ObserveStage(models.StageResolve, models.StatusItems)

	return &teams[0], nil
}

func (s *LookupService) FetchUpcoming(ctx context.Context, team models.TeamRef) (models.LookupResult[models.EventSummary], error) {
	events, err := s.sportsDBClient.NextEvents(ctx, team.ID)
	if err != nil {
		s.observeStageError(ctx, models.StageUpcoming, err)
		return models.Failed[models.EventSummary](), fmt.Errorf("failed to get upcoming events of team %s: %w", team.ID, err)
	}

	result := models.Items(events)
	s.metrics.ObserveStage(models.StageUpcoming, result.Status)

	return result, nil
}

func (s *LookupService) FetchPast(ctx context.Context, team models.TeamRef) (models.LookupResult[models.EventSummary], error) {
	events, err := s.sportsDBClient.LastEvents(ctx, team.ID)
	if err != nil {
		s.observeStageError(ctx, models.StagePast, err)
		return models.Failed[models.EventSummary](), fmt.Errorf("failed to get past events of team %s: %w", team.ID, err)
	}

	result := models.Items(events)
	s.metrics.ObserveStage(models.StagePast, result.Status)

	return result, nil
}

func (s *LookupService) FetchRoster(ctx context.Context, team models.TeamRef) (models.LookupResult[models.RosterEntry], error) {
	players, err := s.sportsDBClient.Players(ctx, team.ID)
	if err != nil {
		s.observeStageError(ctx, models.StageRoster, err)
		return models.Failed[models.RosterEntry](), fmt.Errorf("failed to get roster of team %s: %w", team.ID, err)
	}

	result := models.Items(players)
	s.metrics.ObserveStage(models.StageRoster, result.Status)

	return result, nil
}

// RunLookup resolves name and publishes upcoming events, past events and roster to presenter.
// It returns nil without touching presenter when name is blank. Errors never escape: a failure
// after the lookup started marks all three lists as failed, including lists that already
// received their results.
func (s *LookupService) RunLookup(ctx context.Context, name string, presenter Presenter) *models.LookupOutcome {
	query := strings.TrimSpace(name)
	if query == "" {
		return nil
	}

	startedAt := time.Now()
	outcome := &models.LookupOutcome{ID: uuid.New(), Query: query}
	p := publisher{presenter: presenter, token: presenter.Begin(), logger: s.logger, lookupID: outcome.ID.String()}

	p.upcoming(models.Loading[models.EventSummary]())
	p.past(models.Loading[models.EventSummary]())
	p.roster(models.Loading[models.RosterEntry]())

	err := s.run(ctx, query, outcome, p)

	var notFoundErr errs.ResourceNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		s.logger.Debug().Str("lookup_id", p.lookupID).Str("query", query).Msg(notFoundErr.Error())
		s.settleAll(outcome, p, models.StatusNotFound)
	case err != nil:
		s.logger.Error().Err(err).Str("lookup_id", p.lookupID).Str("query", query).Msg("team lookup failed")
		s.settleAll(outcome, p, models.StatusFailed)
	}

	outcome.Duration = time.Since(startedAt)
	s.metrics.ObserveLookup(outcome.Duration)
	s.saveSearch(ctx, *outcome)

	s.logger.Debug().
		Str("lookup_id", p.lookupID).
		Str("upcoming", string(outcome.Upcoming.Status)).
		Str("past", string(outcome.Past.Status)).
		Str("roster", string(outcome.Roster.Status)).
		Dur("duration", outcome.Duration).
		Msg("team lookup finished")

	return outcome
}

func (s *LookupService) run(ctx context.Context, query string, outcome *models.LookupOutcome, p publisher) error {
	team, err := s.ResolveTeam(ctx, query)
	if err != nil {
		return err
	}

	outcome.Team = team

	if s.config.ConcurrentFetch {
		return s.fetchConcurrently(ctx, *team, outcome, p)
	}

	return s.fetchSequentially(ctx, *team, outcome, p)
}

func (s *LookupService) fetchSequentially(ctx context.Context, team models.TeamRef, outcome *models.LookupOutcome, p publisher) error {
	upcoming, err := s.FetchUpcoming(ctx, team)
	if err != nil {
		return err
	}
	outcome.Upcoming = upcoming
	p.upcoming(upcoming)

	past, err := s.FetchPast(ctx, team)
	if err != nil {
		return err
	}
	outcome.Past = past
	p.past(past)

	roster, err := s.FetchRoster(ctx, team)
	if err != nil {
		return err
	}
	outcome.Roster = roster
	p.roster(roster)

	return nil
}

// fetchConcurrently runs the three stages as independent tasks. The first failure cancels the
// stages still in flight.
func (s *LookupService) fetchConcurrently(ctx context.Context, team models.TeamRef, outcome *models.LookupOutcome, p publisher) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		upcoming, err := s.FetchUpcoming(gctx, team)
		if err != nil {
			return err
		}
		outcome.Upcoming = upcoming
		p.upcoming(upcoming)
		return nil
	})

	g.Go(func() error {
		past, err := s.FetchPast(gctx, team)
		if err != nil {
			return err
		}
		outcome.Past = past
		p.past(past)
		return nil
	})

	g.Go(func() error {
		roster, err := s.FetchRoster(gctx, team)
		if err != nil {
			return err
		}
		outcome.Roster = roster
		p.roster(roster)
		return nil
	})

	return g.Wait()
}

// observeStageError skips stages cancelled after a sibling stage already failed.
func (s *LookupService) observeStageError(ctx context.Context, stage models.Stage, err error) {
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return
	}

	s.metrics.ObserveStage(stage, models.StatusFailed)
}

func (s *LookupService) settleAll(outcome *models.LookupOutcome, p publisher, status models.ResultStatus) {
	outcome.Upcoming = models.LookupResult[models.EventSummary]{Status: status}
	outcome.Past = models.LookupResult[models.EventSummary]{Status: status}
	outcome.Roster = models.LookupResult[models.RosterEntry]{Status: status}

	p.upcoming(outcome.Upcoming)
	p.past(outcome.Past)
	p.roster(outcome.Roster)
}

func (s *LookupService) saveSearch(ctx context.Context, outcome models.LookupOutcome) {
	if s.searchRepository == nil {
		return
	}

	if err := s.searchRepository.Save(ctx, outcome.ToSearch()); err != nil {
		s.logger.Error().Err(err).Str("lookup_id", outcome.ID.String()).Msg("failed to save search")
	}
}

type publisher struct {
	presenter Presenter
	token     uint64
	logger    Logger
	lookupID  string
}

func (p publisher) upcoming(result models.LookupResult[models.EventSummary]) {
	p.applied(models.StageUpcoming, result.Status, p.presenter.PresentUpcoming(p.token, result))
}

func (p publisher) past(result models.LookupResult[models.EventSummary]) {
	p.applied(models.StagePast, result.Status, p.presenter.PresentPast(p.token, result))
}

func (p publisher) roster(result models.LookupResult[models.RosterEntry]) {
	p.applied(models.StageRoster, result.Status, p.presenter.PresentRoster(p.token, result))
}

func (p publisher) applied(stage models.Stage, status models.ResultStatus, ok bool) {
	if !ok {
		p.logger.Debug().
			Str("lookup_id", p.lookupID).
			Uint64("token", p.token).
			Str("stage", string(stage)).
			Str("status", string(status)).
			Msg("stale lookup update discarded")
	}
}
