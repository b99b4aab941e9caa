package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/server/handler"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/server/handler/mocks"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/andrewshostak/team-lookup-service/internal/infra/http/server"
	"github.com/andrewshostak/team-lookup-service/internal/infra/http/server/middleware"
	loggerinternal "github.com/andrewshostak/team-lookup-service/internal/infra/logger"
	"github.com/andrewshostak/team-lookup-service/internal/infra/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	secret := "secret"

	tests := []struct {
		name           string
		cfg            config.App
		path           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "it serves the board without api keys configured",
			cfg:            config.App{Timeout: time.Second},
			path:           "/v1/board",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "it protects v1 routes when api keys are configured",
			cfg:            config.App{Timeout: time.Second, HashedAPIKeys: []string{middleware.HashAPIKey("key", secret)}, SecretKey: secret},
			path:           "/v1/board",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "it accepts a valid api key",
			cfg:            config.App{Timeout: time.Second, HashedAPIKeys: []string{middleware.HashAPIKey("key", secret)}, SecretKey: secret},
			path:           "/v1/board",
			apiKey:         "key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "it keeps metrics outside of api key protection",
			cfg:            config.App{Timeout: time.Second, HashedAPIKeys: []string{middleware.HashAPIKey("key", secret)}, SecretKey: secret},
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "it reports disabled search history",
			cfg:            config.App{Timeout: time.Second},
			path:           "/v1/searches",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookupService := mocks.NewLookupService(t)
			logger := loggerinternal.SetupLogger()

			r, err := server.NewServer(tt.cfg, server.Handlers{
				LookupHandler:  handler.NewLookupHandler(lookupService),
				BoardHandler:   handler.NewBoardHandler(lookupService, presenter.NewBoard(), logger),
				HistoryHandler: handler.NewHistoryHandler(nil),
				MetricsHandler: metrics.NewRecorder(prometheus.NewRegistry()).Handler(),
			})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("Authorization", tt.apiKey)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
