package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/momentumhq/momentum-api/internal/adapters/handler/http"
	"github.com/momentumhq/momentum-api/internal/adapters/handler/http/middleware"
	"github.com/momentumhq/momentum-api/internal/adapters/repository"
	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

// headerAuth substitutes the JWT middleware in handler tests: the user id
// comes straight from the X-User-ID header.
func headerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-ID")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(middleware.ContextUserIDKey, id)
		c.Next()
	}
}

func setupHabitRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	habitSvc := services.NewHabitService(store.Habits(), store.Completions())
	trackerSvc := services.NewTrackerService(store.Habits(), store.Completions())
	handler := adapterHTTP.NewHabitHandler(habitSvc, trackerSvc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(headerAuth())
	handler.RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createHabit(t *testing.T, router *gin.Engine, userID, title string) *domain.HabitSummary {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/v1/habits", userID, fmt.Sprintf(`{"title": %q}`, title))
	require.Equal(t, http.StatusCreated, w.Code)

	var summary domain.HabitSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	return &summary
}

func TestCreateHabit(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		router := setupHabitRouter()

		w := doJSON(t, router, "POST", "/api/v1/habits", "user-1", `{"title": "Gym"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Gym"`)
		assert.Contains(t, w.Body.String(), `"current_streak":0`)
	})

	t.Run("Fail: 401 Unauthorized", func(t *testing.T) {
		router := setupHabitRouter()

		w := doJSON(t, router, "POST", "/api/v1/habits", "", `{"title": "Gym"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: 400 Bad Request on empty title", func(t *testing.T) {
		router := setupHabitRouter()

		w := doJSON(t, router, "POST", "/api/v1/habits", "user-1", `{"title": ""}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListHabits(t *testing.T) {
	router := setupHabitRouter()
	createHabit(t, router, "user-1", "Run")

	t.Run("Success: 200 OK with list", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/habits", "user-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Run")
	})

	t.Run("Other user sees an empty list", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/habits", "user-2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Fail: 400 on bad active filter", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/habits?active=maybe", "user-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompleteHabit(t *testing.T) {
	t.Run("Success: 200 with refreshed summary", func(t *testing.T) {
		router := setupHabitRouter()
		h := createHabit(t, router, "user-1", "Gym")

		w := doJSON(t, router, "POST", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_completed_today":true`)
		assert.Contains(t, w.Body.String(), `"current_streak":1`)
	})

	t.Run("Fail: 409 on duplicate completion", func(t *testing.T) {
		router := setupHabitRouter()
		h := createHabit(t, router, "user-1", "Gym")

		w := doJSON(t, router, "POST", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, "POST", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Fail: 404 on foreign habit (IDOR protection)", func(t *testing.T) {
		router := setupHabitRouter()
		h := createHabit(t, router, "user-1", "Secret")

		w := doJSON(t, router, "POST", "/api/v1/habits/"+h.ID+"/complete", "user-2", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUncompleteHabit(t *testing.T) {
	t.Run("Success: undo returns the clean summary", func(t *testing.T) {
		router := setupHabitRouter()
		h := createHabit(t, router, "user-1", "Gym")

		w := doJSON(t, router, "POST", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, "DELETE", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_completed_today":false`)
	})

	t.Run("Fail: 409 when nothing to undo", func(t *testing.T) {
		router := setupHabitRouter()
		h := createHabit(t, router, "user-1", "Gym")

		w := doJSON(t, router, "DELETE", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHabitStats(t *testing.T) {
	router := setupHabitRouter()
	h := createHabit(t, router, "user-1", "Gym")

	w := doJSON(t, router, "POST", "/api/v1/habits/"+h.ID+"/complete", "user-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("Success: 200 with dense history", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/habits/"+h.ID+"/stats?days=7", "user-1", "")

		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.HabitStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, h.ID, stats.HabitID)
		assert.Len(t, stats.CompletionHistory, 8)
		assert.Equal(t, 1, stats.CurrentStreak)
		assert.Equal(t, 1, stats.LongestStreak)
	})

	t.Run("Fail: 400 on malformed days", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/habits/"+h.ID+"/stats?days=week", "user-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 404 for another user", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/habits/"+h.ID+"/stats", "user-2", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReorderHabits(t *testing.T) {
	router := setupHabitRouter()
	a := createHabit(t, router, "user-1", "A")
	b := createHabit(t, router, "user-1", "B")

	t.Run("Success: list comes back in the new order", func(t *testing.T) {
		body := fmt.Sprintf(`{"habit_ids": [%q, %q]}`, b.ID, a.ID)
		w := doJSON(t, router, "PUT", "/api/v1/habits/reorder", "user-1", body)

		require.Equal(t, http.StatusOK, w.Code)

		var list []*domain.HabitSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "B", list[0].Title)
		assert.Equal(t, "A", list[1].Title)
	})

	t.Run("Fail: 404 when the batch contains a foreign id", func(t *testing.T) {
		body := fmt.Sprintf(`{"habit_ids": [%q, "ghost"]}`, a.ID)
		w := doJSON(t, router, "PUT", "/api/v1/habits/reorder", "user-1", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteHabit(t *testing.T) {
	router := setupHabitRouter()
	h := createHabit(t, router, "user-1", "To Delete")

	t.Run("Fail: 404 for another user (IDOR protection)", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/api/v1/habits/"+h.ID, "user-2", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success: 204 No Content", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/api/v1/habits/"+h.ID, "user-1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
