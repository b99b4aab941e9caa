package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
)

const (
	apiPrefix       = "/api/v1/json/"
	searchTeamsPath = "/searchteams.php"
	eventsNextPath  = "/eventsnext.php"
	eventsLastPath  = "/eventslast.php"
	teamPlayersPath = "/lookup_all_players.php"
	teamNameParam   = "t"
	teamIDParam     = "id"
)

type SportsDBClient struct {
	httpManager HTTPManager
	logger      Logger
	config      config.SportsDB
}

func NewSportsDBClient(httpManager HTTPManager, logger Logger, config config.SportsDB) *SportsDBClient {
	return &SportsDBClient{httpManager: httpManager, logger: logger, config: config}
}

// SearchTeams returns teams matching name in the order the api ranks them.
func (c *SportsDBClient) SearchTeams(ctx context.Context, name string) ([]models.TeamRef, error) {
	var body TeamsResponse
	if err := c.get(ctx, searchTeamsPath, teamNameParam, name, "search teams", &body); err != nil {
		return nil, err
	}

	return toDomainTeams(body), nil
}

func (c *SportsDBClient) NextEvents(ctx context.Context, teamID string) ([]models.EventSummary, error) {
	var body NextEventsResponse
	if err := c.get(ctx, eventsNextPath, teamIDParam, teamID, "get next events", &body); err != nil {
		return nil, err
	}

	return toDomainEvents(body.Events, c.config.EventPlaceholderThumb), nil
}

func (c *SportsDBClient) LastEvents(ctx context.Context, teamID string) ([]models.EventSummary, error) {
	var body LastEventsResponse
	if err := c.get(ctx, eventsLastPath, teamIDParam, teamID, "get last events", &body); err != nil {
		return nil, err
	}

	return toDomainEvents(body.Results, c.config.EventPlaceholderThumb), nil
}

func (c *SportsDBClient) Players(ctx context.Context, teamID string) ([]models.RosterEntry, error) {
	var body PlayersResponse
	if err := c.get(ctx, teamPlayersPath, teamIDParam, teamID, "get team players", &body); err != nil {
		return nil, err
	}

	return toDomainRoster(body.Player, c.config.PlayerPlaceholderThumb), nil
}

func (c *SportsDBClient) get(ctx context.Context, path, param, value, operation string, target any) error {
	url := strings.TrimSuffix(c.config.BaseURL, "/") + apiPrefix + c.config.APIKey + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request to %s: %w", operation, err)
	}

	q := req.URL.Query()
	q.Add(param, value)
	req.URL.RawQuery = q.Encode()

	res, err := c.httpManager.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", operation, err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to %s, status code %d: %w", operation, res.StatusCode, errs.ErrUnexpectedSportsDBStatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s response body: %w", operation, err)
	}

	return nil
}
