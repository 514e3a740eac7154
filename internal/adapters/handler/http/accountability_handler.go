package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momentumhq/momentum-api/internal/adapters/handler/http/middleware"
	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

// AccountabilityHandler exposes the goal/penalty/reward surface. The daily log
// endpoints resolve "today" from local_date the same way the habit routes do.
type AccountabilityHandler struct {
	service *services.AccountabilityService
}

func NewAccountabilityHandler(service *services.AccountabilityService) *AccountabilityHandler {
	return &AccountabilityHandler{
		service: service,
	}
}

type updateGoalRequest struct {
	GoalPercentage int `json:"goal_percentage" binding:"min=0,max=100"`
}

type descriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

func (h *AccountabilityHandler) RegisterRoutes(router *gin.RouterGroup) {
	acc := router.Group("/accountability")
	{
		acc.GET("/settings", h.Settings)
		acc.PUT("/goal", h.UpdateGoal)

		acc.POST("/penalties", h.AddPenalty)
		acc.DELETE("/penalties/:id", h.RemovePenalty)
		acc.POST("/rewards", h.AddReward)
		acc.DELETE("/rewards/:id", h.RemoveReward)

		acc.GET("/log", h.Logs)
		acc.GET("/log/today", h.TodayLog)
		acc.POST("/log/today", h.UpsertTodayLog)
		acc.POST("/log/penalty/:id", h.ApplyPenalty)
		acc.DELETE("/log/penalty", h.CancelPenalty)
		acc.POST("/log/reward/:id", h.ClaimReward)
		acc.DELETE("/log/reward", h.CancelReward)
	}
}

func (h *AccountabilityHandler) Settings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	settings, err := h.service.Settings(c.Request.Context(), userID)
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *AccountabilityHandler) UpdateGoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.service.UpdateGoal(c.Request.Context(), userID, req.GoalPercentage)
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *AccountabilityHandler) AddPenalty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	penalty, err := h.service.AddPenalty(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, penalty)
}

func (h *AccountabilityHandler) RemovePenalty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.service.RemovePenalty(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AccountabilityHandler) AddReward(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, err := h.service.AddReward(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reward)
}

func (h *AccountabilityHandler) RemoveReward(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.service.RemoveReward(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AccountabilityHandler) Logs(c *gin.Context) {
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

	logs, err := h.service.Logs(c.Request.Context(), userID, days, c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	if logs == nil {
		logs = []*domain.AccountabilityLog{}
	}
	c.JSON(http.StatusOK, logs)
}

func (h *AccountabilityHandler) TodayLog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	log, err := h.service.TodayLog(c.Request.Context(), userID, c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// UpsertTodayLog recomputes today's completion percentage against the current
// goal and records the verdict.
func (h *AccountabilityHandler) UpsertTodayLog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	log, err := h.service.UpsertTodayLog(c.Request.Context(), userID, c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *AccountabilityHandler) ApplyPenalty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	log, err := h.service.ApplyPenalty(c.Request.Context(), userID, c.Param("id"), c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *AccountabilityHandler) CancelPenalty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	log, err := h.service.CancelPenalty(c.Request.Context(), userID, c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *AccountabilityHandler) ClaimReward(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	log, err := h.service.ClaimReward(c.Request.Context(), userID, c.Param("id"), c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *AccountabilityHandler) CancelReward(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	log, err := h.service.CancelReward(c.Request.Context(), userID, c.Query("local_date"))
	if err != nil {
		respondAccountabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func respondAccountabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrLogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no log for this date"})
	case errors.Is(err, domain.ErrPenaltyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "penalty not found"})
	case errors.Is(err, domain.ErrRewardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reward not found"})
	case errors.Is(err, domain.ErrDescriptionEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
