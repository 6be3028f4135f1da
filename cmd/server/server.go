package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pokeview/pokedex-api/internal/clients/pokeapi"
	v1 "github.com/pokeview/pokedex-api/internal/handlers/catalog/v1"
	"github.com/pokeview/pokedex-api/internal/metrics"
	catalogorc "github.com/pokeview/pokedex-api/internal/orchestrators/catalog"
	prefsorc "github.com/pokeview/pokedex-api/internal/orchestrators/preferences"
	"github.com/pokeview/pokedex-api/internal/redis"
	prefsrepo "github.com/pokeview/pokedex-api/internal/repositories/preferences"
)

var (
	httpPort   int
	redisAddr  string
	pokeapiURL string
	cacheTTL   time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the Pokedex API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	serverCmd.Flags().IntVar(&httpPort, "port", envInt("PORT", 8080), "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address for preference storage")
	serverCmd.Flags().StringVar(&pokeapiURL, "pokeapi-url", envOr("POKEAPI_URL", ""), "Upstream API base URL (default https://pokeapi.co/api/v2)")
	serverCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 0, "Gateway cache staleness window (default 1h)")
}

func runServer(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			slog.Warn("failed to close redis client", "error", closeErr)
		}
	}()

	prefsRepository, err := prefsrepo.NewRedis(&prefsrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create preference repository: %w", err)
	}

	pokeapiClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:  pokeapiURL,
		CacheTTL: cacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create upstream client: %w", err)
	}

	catalogService, err := catalogorc.NewOrchestrator(&catalogorc.Config{Client: pokeapiClient})
	if err != nil {
		return fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}

	prefsService, err := prefsorc.NewOrchestrator(&prefsorc.Config{Repository: prefsRepository})
	if err != nil {
		return fmt.Errorf("failed to create preferences orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.Config{
		CatalogService:     catalogService,
		PreferencesService: prefsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", serveErr)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", shutdownErr)
			_ = srv.Close()
		} else {
			slog.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}
