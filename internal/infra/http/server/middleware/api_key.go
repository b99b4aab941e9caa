package middleware

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"

	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/gin-gonic/gin"
)

const authorization = "Authorization"

// APIKeyAuth accepts requests whose Authorization header hashes, with HMAC-SHA512 under secret,
// to one of hashedAPIKeys.
func APIKeyAuth(hashedAPIKeys []string, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(authorization)

		if apiKey == "" || !isValidAPIKey(apiKey, hashedAPIKeys, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key", "code": errs.CodeUnauthorized})
			return
		}

		c.Next()
	}
}

func HashAPIKey(apiKey string, secret string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(apiKey))

	return hex.EncodeToString(h.Sum(nil))
}

func isValidAPIKey(apiKey string, hashedAPIKeys []string, secret string) bool {
	sha := HashAPIKey(apiKey, secret)

	for _, hashedAPIKey := range hashedAPIKeys {
		if hmac.Equal([]byte(sha), []byte(hashedAPIKey)) {
			return true
		}
	}

	return false
}
