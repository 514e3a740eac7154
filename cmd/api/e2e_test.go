package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/momentumhq/momentum-api/internal/adapters/handler/http"
	"github.com/momentumhq/momentum-api/internal/adapters/repository"
	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

// The end-to-end suite runs the real router against the embedded SQLite store,
// so it covers the same wiring main sets up in local mode without external
// services.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.OpenSQLiteStore(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	tokenService := services.NewTokenService("e2e-secret", "momentum-api", time.Hour)
	authService := services.NewAuthService(store.Users(), tokenService)
	habitService := services.NewHabitService(store.Habits(), store.Completions())
	trackerService := services.NewTrackerService(store.Habits(), store.Completions())
	taskService := services.NewTaskService(store.Tasks())
	accountabilityService := services.NewAccountabilityService(store.Accountability(), store.Habits(), store.Completions())

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:           adapterHTTP.NewAuthHandler(authService),
		HabitHandler:          adapterHTTP.NewHabitHandler(habitService, trackerService),
		TaskHandler:           adapterHTTP.NewTaskHandler(taskService),
		AccountabilityHandler: adapterHTTP.NewAccountabilityHandler(accountabilityService),
		TokenService:          tokenService,
		DB:                    store,
		StartTime:             time.Now(),
	})
}

func request(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := request(t, router, "POST", "/api/v1/auth/register", "",
		`{"email": "`+email+`", "password": "supersecret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var result services.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := setupServer(t)

	w := request(t, router, "GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

func TestHabitLifecycleEndToEnd(t *testing.T) {
	router := setupServer(t)
	token := registerAndLogin(t, router, "habits@example.com")

	w := request(t, router, "POST", "/api/v1/habits", token, `{"title": "Meditate"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var habit domain.HabitSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habit))

	// complete today
	w = request(t, router, "POST", "/api/v1/habits/"+habit.ID+"/complete", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.HabitSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.IsCompletedToday)
	assert.Equal(t, 1, summary.CurrentStreak)

	// same day again is rejected
	w = request(t, router, "POST", "/api/v1/habits/"+habit.ID+"/complete", token, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// stats reflect the completion
	w = request(t, router, "GET", "/api/v1/habits/"+habit.ID+"/stats?days=7", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.HabitStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
	assert.Len(t, stats.CompletionHistory, 8)
	assert.True(t, stats.CompletionHistory[7].Completed)

	// undo
	w = request(t, router, "DELETE", "/api/v1/habits/"+habit.ID+"/complete", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.False(t, summary.IsCompletedToday)

	// delete cascades
	w = request(t, router, "DELETE", "/api/v1/habits/"+habit.ID, token, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(t, router, "GET", "/api/v1/habits/"+habit.ID, token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskLifecycleEndToEnd(t *testing.T) {
	router := setupServer(t)
	token := registerAndLogin(t, router, "tasks@example.com")

	w := request(t, router, "POST", "/api/v1/tasks", token,
		`{"title": "Buy milk", "priority": "high"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var task domain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, domain.PriorityHigh, task.Priority)

	w = request(t, router, "POST", "/api/v1/tasks/"+task.ID+"/toggle", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.True(t, task.IsCompleted)

	w = request(t, router, "GET", "/api/v1/tasks?completed=true", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Buy milk")

	w = request(t, router, "DELETE", "/api/v1/tasks/"+task.ID, token, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAccountabilityEndToEnd(t *testing.T) {
	router := setupServer(t)
	token := registerAndLogin(t, router, "acc@example.com")

	// one habit, completed: today's rate is 100
	w := request(t, router, "POST", "/api/v1/habits", token, `{"title": "Gym"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var habit domain.HabitSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habit))

	w = request(t, router, "POST", "/api/v1/habits/"+habit.ID+"/complete", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = request(t, router, "POST", "/api/v1/accountability/log/today", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var log domain.AccountabilityLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	assert.Equal(t, 100.0, log.CompletionRate)
	assert.True(t, log.GoalMet)

	// reward claim against today's log
	w = request(t, router, "POST", "/api/v1/accountability/rewards", token,
		`{"description": "Movie night"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var reward domain.Reward
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reward))

	w = request(t, router, "POST", "/api/v1/accountability/log/reward/"+reward.ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	assert.True(t, log.RewardClaimed)
}

func TestCrossUserIsolationEndToEnd(t *testing.T) {
	router := setupServer(t)
	alice := registerAndLogin(t, router, "alice@example.com")
	mallory := registerAndLogin(t, router, "mallory@example.com")

	w := request(t, router, "POST", "/api/v1/habits", alice, `{"title": "Secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var habit domain.HabitSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &habit))

	w = request(t, router, "GET", "/api/v1/habits/"+habit.ID, mallory, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, router, "POST", "/api/v1/habits/"+habit.ID+"/complete", mallory, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, router, "GET", "/api/v1/habits", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
