package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentumhq/momentum-api/internal/adapters/handler/http/middleware"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

func setupProtectedRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens))
	r.GET("/me", func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("test-secret", "momentum-api", time.Hour)

	t.Run("valid bearer token passes and exposes the user id", func(t *testing.T) {
		router := setupProtectedRouter(tokens)

		token, _, err := tokens.Generate("user-42")
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"user-42"`)
	})

	t.Run("missing header", func(t *testing.T) {
		router := setupProtectedRouter(tokens)

		req, _ := http.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		router := setupProtectedRouter(tokens)

		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Token abc123")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		router := setupProtectedRouter(tokens)

		other := services.NewTokenService("other-secret", "momentum-api", time.Hour)
		token, _, err := other.Generate("user-42")
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
