// cmd/finbot/main.go
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"finbot/internal/chatbot"
	"finbot/internal/common/config"
	"finbot/internal/common/database"
	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/common/metrics"
	"finbot/internal/common/observability"
	"finbot/internal/dataset"
	avgrevenue "finbot/internal/handlers/avg-revenue"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting financial chatbot...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("finbot")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load Dataset ---
	var data *dataset.Dataset
	switch cfg.Dataset.Source {
	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			// Test the connection with context
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(cerrors.NewDatabaseConnectionFailedError(err)))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")

		data, err = dataset.LoadPostgres(ctx, pg.DB, cfg.Dataset.Table)
	default:
		data, err = dataset.LoadCSV(cfg.Dataset.CSVPath)
	}
	if err != nil {
		zapLog.Fatal("dataset load failed", zap.Error(err))
	}
	metrics.DatasetRecords.Set(float64(data.Len()))
	zapLog.Info("Dataset loaded",
		zap.Int("records", data.Len()),
		zap.Int("companies", len(data.Companies())),
		zap.Int("latestYear", data.MaxYear()),
	)

	// --- Init Redis with retry (answer cache, optional) ---
	var redis *database.RedisClient
	if cfg.Cache.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			// Test the connection with context
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Build Engine ---
	engine := chatbot.NewEngine(&chatbot.Config{
		CacheEnabled:   cfg.Cache.Enabled,
		CacheTTL:       config.GetDuration(cfg.Cache.TTL),
		AverageRevenue: cfg.Handlers[avgrevenue.HandlerName].Enabled,
	}, data, redis, obs, log)

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			var req struct {
				Query string `json:"query"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
				return
			}
			reply := engine.Respond(r.Context(), req.Query)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(reply)
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := http.ListenAndServe(cfg.Server.Address, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Interactive Loop ---
	done := make(chan struct{})
	go func() {
		defer close(done)
		fmt.Println(" Hi This is the Financial Analysis Chatbot\nType 'exit' to quit")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nYou: ")
			if !scanner.Scan() {
				return
			}
			reply := engine.Respond(ctx, scanner.Text())
			fmt.Printf("Bot: %s\n", reply.Text)
			if reply.Exit {
				return
			}
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		zapLog.Info("Shutdown signal received, stopping...")
	case <-done:
	}

	zapLog.Info("Financial chatbot stopped gracefully")
}
