package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lunarium/arcana/internal/astro"
	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/external/geo"
	"github.com/lunarium/arcana/pkg/logger"
	"github.com/lunarium/arcana/pkg/redis"
)

// ProfileHandler computes and serves natal profiles.
type ProfileHandler struct {
	users  contracts.UserRepository
	geo    *geo.Client
	cache  *redis.Cache
	logger *logger.Logger
}

// NewProfileHandler creates a profile handler. geo and cache may be nil.
func NewProfileHandler(users contracts.UserRepository, geoClient *geo.Client, cache *redis.Cache, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		users:  users,
		geo:    geoClient,
		cache:  cache,
		logger: log,
	}
}

// CalculateRequest is the body for POST /api/profile.
type CalculateRequest struct {
	UserID string              `json:"user_id"`
	Birth  contracts.BirthData `json:"birth"`
}

// ProfileResponse wraps a computed profile with the resolved birth place
// when geocoding found one.
type ProfileResponse struct {
	UserID   string                  `json:"user_id"`
	Profile  *contracts.NatalProfile `json:"profile"`
	Location *geo.Location           `json:"location,omitempty"`
}

// Calculate builds a natal profile from birth data and stores it on the
// user. Recalculation overwrites the previous profile.
// POST /api/profile -> 201
func (h *ProfileHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	loc := h.resolveCity(ctx, &req.Birth)

	profile, err := astro.BuildProfile(req.Birth)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrInvalidBirthDate):
			respondError(w, http.StatusBadRequest, "birth_date must be an ISO date (YYYY-MM-DD)")
		case errors.Is(err, contracts.ErrInvalidBirthTime):
			respondError(w, http.StatusBadRequest, "birth_time must be HH:MM")
		default:
			h.logger.WithError(err).Error("Failed to build profile")
			respondError(w, http.StatusInternalServerError, "Failed to build profile")
		}
		return
	}

	if err := h.users.SaveProfile(ctx, req.UserID, profile); err != nil {
		if errors.Is(err, contracts.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.WithError(err).WithField("user_id", req.UserID).Error("Failed to save profile")
		respondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	if h.cache != nil {
		// Drop any stale cached copy; next GET reloads from the store.
		if err := h.cache.Delete(ctx, redis.ProfileKey(req.UserID)); err != nil {
			h.logger.WithError(err).Debug("Failed to invalidate profile cache")
		}
	}

	respondJSON(w, http.StatusCreated, ProfileResponse{
		UserID:   req.UserID,
		Profile:  profile,
		Location: loc,
	})
}

// Get returns a user's stored profile.
// GET /api/profile?user_id=
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if h.cache != nil {
		var cached ProfileResponse
		if found, _ := h.cache.Get(ctx, redis.ProfileKey(userID), &cached); found {
			respondJSON(w, http.StatusOK, cached)
			return
		}
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contracts.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to load user")
		respondError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if user.Profile == nil {
		respondError(w, http.StatusNotFound, "Profile not calculated yet")
		return
	}

	resp := ProfileResponse{UserID: userID, Profile: user.Profile}
	if h.cache != nil {
		if err := h.cache.Set(ctx, redis.ProfileKey(userID), resp, redis.TTLMedium); err != nil {
			h.logger.WithError(err).Debug("Failed to cache profile")
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// resolveCity fills missing coordinates and timezone from the geocoding
// service. Failures are logged and ignored; the chart formulas only need
// the birth date and time.
func (h *ProfileHandler) resolveCity(ctx context.Context, birth *contracts.BirthData) *geo.Location {
	if h.geo == nil || birth.BirthCity == "" {
		return nil
	}

	loc, err := h.geo.Resolve(ctx, birth.BirthCity)
	if err != nil {
		h.logger.WithError(err).WithField("city", birth.BirthCity).Warn("Geocoding failed")
		return nil
	}
	if loc == nil {
		return nil
	}

	if birth.Latitude == nil {
		birth.Latitude = &loc.Latitude
	}
	if birth.Longitude == nil {
		birth.Longitude = &loc.Longitude
	}
	if birth.Timezone == "" {
		birth.Timezone = loc.Timezone
	}
	return loc
}
