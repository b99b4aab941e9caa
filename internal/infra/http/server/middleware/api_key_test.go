package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/andrewshostak/team-lookup-service/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	secret := "secret"
	hashedAPIKeys := []string{middleware.HashAPIKey("first-key", secret), middleware.HashAPIKey("second-key", secret)}

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "it rejects a request without api key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "it rejects an unknown api key",
			apiKey:         "third-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "it accepts a known api key",
			apiKey:         "second-key",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", middleware.APIKeyAuth(hashedAPIKeys, secret), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.apiKey != "" {
				req.Header.Set("Authorization", tt.apiKey)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusUnauthorized {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, errs.CodeUnauthorized, body["code"])
			}
		})
	}
}
