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

	"github.com/matteoruffino/progress-engine/internal/adapters/cache"
	adapterHTTP "github.com/matteoruffino/progress-engine/internal/adapters/handler/http"
	"github.com/matteoruffino/progress-engine/internal/adapters/repository"
	"github.com/matteoruffino/progress-engine/internal/core/domain"
	"github.com/matteoruffino/progress-engine/internal/core/services"
	"github.com/matteoruffino/progress-engine/internal/core/workers"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	serverPort := envOr("PORT", "8080")
	jwtSecret := os.Getenv("JWT_SECRET")
	jwtIssuer := envOr("JWT_ISSUER", "progress-engine")

	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	redisClient, err := cache.NewRedisClient(
		envOr("REDIS_HOST", "localhost"),
		envOr("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		0,
	)
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		redisClient = nil
	}

	foodRepo := repository.NewPostgresFoodLogRepository(db)
	activityRepo := repository.NewPostgresActivityLogRepository(db)
	weightRepo := repository.NewPostgresWeightLogRepository(db)
	settingsRepo := repository.NewPostgresSettingsRepository(db)

	var dayRepo domain.HabitDayRepository = repository.NewPostgresHabitDayRepository(db)
	if redisClient != nil {
		dayRepo = repository.NewCachedHabitDayRepository(dayRepo, redisClient)
	}

	weightService := services.NewWeightService(foodRepo, activityRepo, weightRepo, settingsRepo)
	ledgerService := services.NewLedgerService(dayRepo)
	backfillService := services.NewBackfillService(foodRepo, weightRepo, dayRepo)
	tokenService := services.NewTokenService(jwtSecret, jwtIssuer, 24*time.Hour)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	backfillWorker := workers.NewBackfillWorker(backfillService)
	backfillWorker.Start(workerCtx)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		WeightHandler: adapterHTTP.NewWeightHandler(weightService),
		HabitHandler:  adapterHTTP.NewHabitHandler(ledgerService, backfillService, backfillWorker),
		TokenService:  tokenService,
		DB:            db,
		Redis:         redisClient,
		StartTime:     startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Progress Analytics Engine running on http://localhost:%s", serverPort)
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
