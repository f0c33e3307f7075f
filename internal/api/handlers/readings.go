package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/reading"
	"github.com/lunarium/arcana/pkg/logger"
	"github.com/lunarium/arcana/pkg/redis"
)

// ReadingHandler handles reading generation and history endpoints.
type ReadingHandler struct {
	service     *reading.Service
	rateLimiter *redis.RateLimiter
	logger      *logger.Logger
}

// NewReadingHandler creates a new reading handler. rateLimiter may be
// nil when Redis is disabled.
func NewReadingHandler(service *reading.Service, rateLimiter *redis.RateLimiter, log *logger.Logger) *ReadingHandler {
	return &ReadingHandler{
		service:     service,
		rateLimiter: rateLimiter,
		logger:      log,
	}
}

// DailyRequest is the body for POST /api/readings/daily.
type DailyRequest struct {
	UserID string `json:"user_id"`
	Mood   string `json:"mood,omitempty"`
}

// DecisionRequest is the body for POST /api/readings/decision.
type DecisionRequest struct {
	UserID   string `json:"user_id"`
	Question string `json:"question,omitempty"`
	Mood     string `json:"mood,omitempty"`
}

// GenerateDaily returns today's reading for a user, creating it when it
// does not exist yet.
// POST /api/readings/daily -> 201 on create, 200 on existing
func (h *ReadingHandler) GenerateDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if !h.allow(r, req.UserID) {
		respondError(w, http.StatusTooManyRequests, "Too many reading requests")
		return
	}

	result, err := h.service.GenerateDaily(ctx, req.UserID, contracts.Mood(req.Mood))
	if err != nil {
		h.respondServiceError(w, req.UserID, err, "Failed to generate daily reading")
		return
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	respondJSON(w, status, result)
}

// GenerateDecision creates a three-card decision reading.
// POST /api/readings/decision -> 201
func (h *ReadingHandler) GenerateDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if !h.allow(r, req.UserID) {
		respondError(w, http.StatusTooManyRequests, "Too many reading requests")
		return
	}

	result, err := h.service.GenerateDecision(ctx, req.UserID, req.Question, contracts.Mood(req.Mood))
	if err != nil {
		h.respondServiceError(w, req.UserID, err, "Failed to generate decision reading")
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// History returns the user's recent readings.
// GET /api/readings?user_id=&limit=
func (h *ReadingHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 100 {
			respondError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	readings, err := h.service.History(ctx, userID, limit)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to load reading history")
		respondError(w, http.StatusInternalServerError, "Failed to load readings")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"readings": readings,
		"count":    len(readings),
	})
}

// allow applies the per-user rate limit when Redis is available.
func (h *ReadingHandler) allow(r *http.Request, userID string) bool {
	if h.rateLimiter == nil {
		return true
	}
	allowed, _, err := h.rateLimiter.Allow(r.Context(), redis.ReadingRateLimit(userID))
	if err != nil {
		// A broken limiter must not take down reading generation.
		h.logger.WithError(err).Warn("Rate limiter unavailable, allowing request")
		return true
	}
	return allowed
}

func (h *ReadingHandler) respondServiceError(w http.ResponseWriter, userID string, err error, msg string) {
	switch {
	case errors.Is(err, contracts.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, contracts.ErrEmptyCatalog):
		h.logger.WithError(err).Error("Card catalog unavailable")
		respondError(w, http.StatusServiceUnavailable, "Card catalog unavailable")
	default:
		h.logger.WithError(err).WithField("user_id", userID).Error(msg)
		respondError(w, http.StatusInternalServerError, msg)
	}
}
