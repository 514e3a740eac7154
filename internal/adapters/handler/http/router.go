package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/momentumhq/momentum-api/internal/adapters/handler/http/middleware"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

// Pinger is the slice of the database handle the health check needs. Both
// sqlx.DB (Postgres) and sql.DB (SQLite) satisfy it.
type Pinger interface {
	Ping() error
}

type RouterDependencies struct {
	AuthHandler           *AuthHandler
	HabitHandler          *HabitHandler
	TaskHandler           *TaskHandler
	AccountabilityHandler *AccountabilityHandler
	TokenService          *services.TokenService
	DB                    Pinger
	Redis                 *redis.Client
	StartTime             time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if err := deps.DB.Ping(); err != nil {
			dbStatus = "unreachable"
		}

		statusCode := 200
		if dbStatus == "unreachable" {
			statusCode = 503
		}

		payload := gin.H{
			"database": dbStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		}

		if deps.Redis != nil {
			redisStatus := "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
				statusCode = 503
			}
			payload["redis"] = redisStatus
		}

		if statusCode == 200 {
			payload["status"] = "ok"
		} else {
			payload["status"] = "degraded"
		}

		c.JSON(statusCode, payload)
	})

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.HabitHandler.RegisterRoutes(protected)
		deps.TaskHandler.RegisterRoutes(protected)
		deps.AccountabilityHandler.RegisterRoutes(protected)
	}

	return router
}
