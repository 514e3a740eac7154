package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/momentumhq/momentum-api/internal/adapters/handler/http/middleware"
	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

// HabitHandler exposes habit definitions plus the completion endpoints that
// drive streaks and statistics. Every route resolves "today" from the optional
// local_date query parameter so clients in any timezone record against their
// own calendar day.
type HabitHandler struct {
	habits  *services.HabitService
	tracker *services.TrackerService
}

func NewHabitHandler(habits *services.HabitService, tracker *services.TrackerService) *HabitHandler {
	return &HabitHandler{
		habits:  habits,
		tracker: tracker,
	}
}

type createHabitRequest struct {
	Title string `json:"title" binding:"required"`
}

type updateHabitRequest struct {
	Title    string `json:"title" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type reorderRequest struct {
	HabitIDs []string `json:"habit_ids" binding:"required"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.PUT("/reorder", h.Reorder)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)

		habits.POST("/:id/complete", h.Complete)
		habits.DELETE("/:id/complete", h.Uncomplete)
		habits.GET("/:id/completions", h.Completions)
		habits.GET("/:id/stats", h.Stats)
	}
}

func (h *HabitHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.habits.Create(c.Request.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, domain.ErrHabitTitleEmpty) || errors.Is(err, domain.ErrHabitTitleTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *HabitHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var activeOnly *bool
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active filter"})
			return
		}
		activeOnly = &active
	}

	list, err := h.habits.List(c.Request.Context(), userID, activeOnly, c.Query("local_date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	summary, err := h.habits.Get(c.Request.Context(), c.Param("id"), userID, c.Query("local_date"))
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *HabitHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	input := services.UpdateHabitInput{
		Title:    req.Title,
		IsActive: isActive,
	}

	summary, err := h.habits.Update(c.Request.Context(), c.Param("id"), userID, input, c.Query("local_date"))
	if err != nil {
		if errors.Is(err, domain.ErrHabitTitleEmpty) || errors.Is(err, domain.ErrHabitTitleTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.habits.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondHabitError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HabitHandler) Reorder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.habits.Reorder(c.Request.Context(), userID, req.HabitIDs, c.Query("local_date"))
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	summary, err := h.tracker.Complete(c.Request.Context(), c.Param("id"), userID, c.Query("local_date"))
	if err != nil {
		if errors.Is(err, domain.ErrCompletionExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "habit already completed for this date"})
			return
		}
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *HabitHandler) Uncomplete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	summary, err := h.tracker.Uncomplete(c.Request.Context(), c.Param("id"), userID, c.Query("local_date"))
	if err != nil {
		if errors.Is(err, domain.ErrCompletionNotFound) {
			c.JSON(http.StatusConflict, gin.H{"error": "habit not completed for this date"})
			return
		}
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *HabitHandler) Completions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	days, err := queryInt(c, "days", services.DefaultStatsWindowDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
		return
	}

	events, err := h.tracker.Completions(c.Request.Context(), c.Param("id"), userID, days, c.Query("local_date"))
	if err != nil {
		respondHabitError(c, err)
		return
	}

	if events == nil {
		events = []*domain.CompletionEvent{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *HabitHandler) Stats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	days, err := queryInt(c, "days", services.DefaultStatsWindowDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
		return
	}

	stats, err := h.tracker.Stats(c.Request.Context(), c.Param("id"), userID, days, c.Query("local_date"))
	if err != nil {
		respondHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func respondHabitError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrHabitNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
