package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarium/arcana/internal/api"
	"github.com/lunarium/arcana/internal/api/handlers"
	"github.com/lunarium/arcana/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                 - Health check
  POST /api/users              - Register a user
  POST /api/profile            - Calculate a natal profile
  GET  /api/profile            - Fetch a stored profile
  POST /api/readings/daily     - Daily reading (get-or-create)
  POST /api/readings/decision  - Three-card decision reading
  GET  /api/readings           - Reading history
  GET  /api/cards              - Card catalog
  GET  /api/cards/random       - Random cards

Example:
  go run ./cmd/arcana api
  go run ./cmd/arcana api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Arcana API Server ===")

	a, err := initApp()
	if err != nil {
		return err
	}
	defer a.close()

	if apiPort != "" {
		a.cfg.Port = apiPort
	}

	log := a.logger
	log.WithFields(map[string]interface{}{
		"port": a.cfg.Port,
		"env":  a.cfg.Env,
	}).Info("Initializing API server")

	var rateLimiter *redis.RateLimiter
	if a.redis.Enabled() {
		rateLimiter = redis.NewRateLimiter(a.redis, "arcana")
	}

	readingHandler := handlers.NewReadingHandler(a.service, rateLimiter, log)
	profileHandler := handlers.NewProfileHandler(a.userRepo, a.geo, a.cache, log)
	cardHandler := handlers.NewCardHandler(a.catalog, log)
	userHandler := handlers.NewUserHandler(a.userRepo, log)

	router := api.NewRouter(readingHandler, profileHandler, cardHandler, userHandler, log)
	server := api.New(a.cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
