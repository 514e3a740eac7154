package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/momentumhq/momentum-api/internal/adapters/cache"
	adapterHTTP "github.com/momentumhq/momentum-api/internal/adapters/handler/http"
	"github.com/momentumhq/momentum-api/internal/adapters/repository"
	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/services"
)

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	serverPort := envOr("PORT", "8080")

	var (
		habitRepo          domain.HabitRepository
		completionRepo     domain.CompletionRepository
		taskRepo           domain.TaskRepository
		userRepo           domain.UserRepository
		accountabilityRepo domain.AccountabilityRepository
		db                 adapterHTTP.Pinger
	)

	switch envOr("DB_DRIVER", "postgres") {
	case "sqlite":
		path := envOr("SQLITE_PATH", "momentum.db")
		log.Printf("Opening local database at %s...", path)

		store, err := repository.OpenSQLiteStore(path)
		if err != nil {
			log.Fatalf("Critical: Failed to open local database: %v", err)
		}
		defer store.Close()

		habitRepo = store.Habits()
		completionRepo = store.Completions()
		taskRepo = store.Tasks()
		userRepo = store.Users()
		accountabilityRepo = store.Accountability()
		db = store

	default:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			envOr("DB_HOST", "localhost"), envOr("DB_PORT", "5432"),
			os.Getenv("DB_NAME"))

		log.Println("Connecting to database...")

		pg, err := sqlx.Connect("pgx", dsn)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to database: %v", err)
		}
		defer pg.Close()

		pg.SetMaxOpenConns(25)
		pg.SetMaxIdleConns(25)
		pg.SetConnMaxLifetime(5 * time.Minute)

		log.Println("Database connected successfully.")

		habitRepo = repository.NewPostgresHabitRepository(pg)
		completionRepo = repository.NewPostgresCompletionRepository(pg)
		taskRepo = repository.NewPostgresTaskRepository(pg)
		userRepo = repository.NewPostgresUserRepository(pg)
		accountabilityRepo = repository.NewPostgresAccountabilityRepository(pg)
		db = pg
	}

	redisClient, err := cache.NewRedisClient(
		envOr("REDIS_HOST", "localhost"), envOr("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		log.Printf("Redis unavailable, running without cache and rate limiting: %v", err)
		redisClient = nil
	} else {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, redisClient)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET must be set")
	}

	tokenService := services.NewTokenService(jwtSecret, "momentum-api", 24*time.Hour)
	authService := services.NewAuthService(userRepo, tokenService)
	habitService := services.NewHabitService(habitRepo, completionRepo)
	trackerService := services.NewTrackerService(habitRepo, completionRepo)
	taskService := services.NewTaskService(taskRepo)
	accountabilityService := services.NewAccountabilityService(accountabilityRepo, habitRepo, completionRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:           adapterHTTP.NewAuthHandler(authService),
		HabitHandler:          adapterHTTP.NewHabitHandler(habitService, trackerService),
		TaskHandler:           adapterHTTP.NewTaskHandler(taskService),
		AccountabilityHandler: adapterHTTP.NewAccountabilityHandler(accountabilityService),
		TokenService:          tokenService,
		DB:                    db,
		Redis:                 redisClient,
		StartTime:             startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Momentum API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
