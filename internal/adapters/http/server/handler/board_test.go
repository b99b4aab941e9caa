package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/server/handler"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/server/handler/mocks"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/app/lookup"
	"github.com/andrewshostak/team-lookup-service/internal/app/models"
	loggerinternal "github.com/andrewshostak/team-lookup-service/internal/infra/logger"
	"github.com/andrewshostak/team-lookup-service/testutils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBoardHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		lookupService  func(t *testing.T, board *presenter.Board, done chan struct{}) *mocks.LookupService
		expectedStatus int
		expectedCode   string
		expectLookup   bool
	}{
		{
			name: "it returns bad request when body is invalid",
			body: `{"team":"Arsenal"}`,
			lookupService: func(t *testing.T, _ *presenter.Board, _ chan struct{}) *mocks.LookupService {
				t.Helper()
				return mocks.NewLookupService(t)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.CodeInvalidRequest,
		},
		{
			name: "it returns unprocessable entity when name is blank",
			body: `{"name":"   "}`,
			lookupService: func(t *testing.T, _ *presenter.Board, _ chan struct{}) *mocks.LookupService {
				t.Helper()
				return mocks.NewLookupService(t)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   errs.CodeUnprocessableContent,
		},
		{
			name: "it starts a lookup against the shared board with the trimmed name",
			body: `{"name":"  Arsenal "}`,
			lookupService: func(t *testing.T, board *presenter.Board, done chan struct{}) *mocks.LookupService {
				t.Helper()
				m := mocks.NewLookupService(t)
				m.On("RunLookup", mock.Anything, "Arsenal", board).
					Return(&models.LookupOutcome{ID: uuid.New(), Query: "Arsenal"}).
					Run(func(_ mock.Arguments) { close(done) }).
					Once()
				return m
			},
			expectedStatus: http.StatusAccepted,
			expectLookup:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := presenter.NewBoard()
			done := make(chan struct{})

			h := handler.NewBoardHandler(tt.lookupService(t, board, done), board, loggerinternal.SetupLogger())

			r := gin.New()
			r.POST("/v1/board/searches", h.Search)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/board/searches", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if !tt.expectLookup {
				assertErrorCode(t, w, tt.expectedCode)
				return
			}

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("lookup was not started")
			}
		})
	}
}

func TestBoardHandler_Search_RunsDetachedFromRequest(t *testing.T) {
	board := presenter.NewBoard()
	ctxErr := make(chan error, 1)

	lookupService := mocks.NewLookupService(t)
	lookupService.On("RunLookup", mock.Anything, "Arsenal", board).
		Return(func(ctx context.Context, _ string, _ lookup.Presenter) *models.LookupOutcome {
			time.Sleep(10 * time.Millisecond)
			ctxErr <- ctx.Err()
			return nil
		}).Once()

	h := handler.NewBoardHandler(lookupService, board, loggerinternal.SetupLogger())

	r := gin.New()
	r.POST("/v1/board/searches", h.Search)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/v1/board/searches", strings.NewReader(`{"name":"Arsenal"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	cancel()

	assert.Equal(t, http.StatusAccepted, w.Code)

	select {
	case err := <-ctxErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("lookup was not started")
	}
}

func TestBoardHandler_Get(t *testing.T) {
	board := presenter.NewBoard()
	player := testutils.FakeRosterEntry()

	stale := board.Begin()
	token := board.Begin()
	board.PresentUpcoming(token, models.Empty[models.EventSummary]())
	board.PresentPast(token, models.Failed[models.EventSummary]())
	board.PresentRoster(token, models.Items([]models.RosterEntry{player}))
	board.PresentRoster(stale, models.Empty[models.RosterEntry]())

	h := handler.NewBoardHandler(mocks.NewLookupService(t), board, loggerinternal.SetupLogger())

	r := gin.New()
	r.GET("/v1/board", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/board", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var actual handler.BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actual))

	assert.Equal(t, handler.BoardResponse{
		Token: token,
		Upcoming: handler.ListResponse[handler.EventResponse]{
			Status: string(models.StatusEmpty),
			Items:  []handler.EventResponse{},
		},
		Past: handler.ListResponse[handler.EventResponse]{
			Status: string(models.StatusFailed),
			Items:  []handler.EventResponse{},
		},
		Roster: handler.ListResponse[handler.PlayerResponse]{
			Status: string(models.StatusItems),
			Items: []handler.PlayerResponse{
				{Name: player.Name, Thumb: player.Thumb, Position: player.Position, Nationality: player.Nationality},
			},
		},
	}, actual)
}
