package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lunarium/arcana/internal/api/handlers"
	"github.com/lunarium/arcana/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	readingHandler *handlers.ReadingHandler,
	profileHandler *handlers.ProfileHandler,
	cardHandler *handlers.CardHandler,
	userHandler *handlers.UserHandler,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// API v1
	api := r.PathPrefix("/api").Subrouter()

	// Users
	api.HandleFunc("/users", userHandler.Create).Methods("POST")

	// Profile
	api.HandleFunc("/profile", profileHandler.Calculate).Methods("POST")
	api.HandleFunc("/profile", profileHandler.Get).Methods("GET")

	// Readings
	api.HandleFunc("/readings/daily", readingHandler.GenerateDaily).Methods("POST")
	api.HandleFunc("/readings/decision", readingHandler.GenerateDecision).Methods("POST")
	api.HandleFunc("/readings", readingHandler.History).Methods("GET")

	// Cards
	api.HandleFunc("/cards", cardHandler.List).Methods("GET")
	api.HandleFunc("/cards/random", cardHandler.Random).Methods("GET")

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "arcana-api",
	})
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
