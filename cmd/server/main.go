package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jdramirez/giftmatch/internal/common/clock"
	"github.com/jdramirez/giftmatch/internal/export"
	"github.com/jdramirez/giftmatch/internal/handlers/web"
	assignmentRepo "github.com/jdramirez/giftmatch/internal/repositories/assignment"
	rosterRepo "github.com/jdramirez/giftmatch/internal/repositories/roster"
	"github.com/jdramirez/giftmatch/internal/roulette"
	exchangeService "github.com/jdramirez/giftmatch/internal/services/exchange"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	dataDir := getEnv("DATA_DIR", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logger.Fatal("Failed to create data directory", zap.Error(err))
	}

	// Roster always comes from the participants file
	roster, err := rosterRepo.NewFile(&rosterRepo.Config{
		Path: filepath.Join(dataDir, "participants.json"),
	})
	if err != nil {
		logger.Fatal("Failed to create roster repository", zap.Error(err))
	}

	// History store backend is selectable
	assignments, err := newAssignmentRepo(dataDir)
	if err != nil {
		logger.Fatal("Failed to create assignment repository", zap.Error(err))
	}

	exporter, err := export.New(&export.Config{
		Path: filepath.Join(dataDir, "assignments.xlsx"),
	})
	if err != nil {
		logger.Fatal("Failed to create exporter", zap.Error(err))
	}

	svc, err := exchangeService.New(&exchangeService.Config{
		RosterRepo:     roster,
		AssignmentRepo: assignments,
		Picker:         roulette.New(&roulette.Config{}),
		Clock:          &clock.DefaultClock{},
	})
	if err != nil {
		logger.Fatal("Failed to create exchange service", zap.Error(err))
	}

	handler, err := web.New(&web.Config{
		Service:       svc,
		Exporter:      exporter,
		AdminPassword: getEnv("ADMIN_PASSWORD", "12345679"),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("Failed to create web handler", zap.Error(err))
	}

	addr := getEnv("ADDR", ":5000")
	server := &http.Server{
		Addr:    addr,
		Handler: web.Routes(handler),
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down server", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

// newAssignmentRepo builds the history store named by STORE_BACKEND
func newAssignmentRepo(dataDir string) (assignmentRepo.Repository, error) {
	switch backend := getEnv("STORE_BACKEND", "file"); backend {
	case "file":
		return assignmentRepo.NewFile(&assignmentRepo.Config{
			Path: filepath.Join(dataDir, "assignments.json"),
		})
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		return assignmentRepo.NewRedis(&assignmentRepo.RedisConfig{
			RedisClient: client,
		})
	default:
		return nil, errors.New("unknown STORE_BACKEND: " + backend)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
