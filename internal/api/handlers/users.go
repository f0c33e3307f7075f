package handlers

import (
	"net/http"

	"github.com/lunarium/arcana/internal/users"
	"github.com/lunarium/arcana/pkg/logger"
)

// UserHandler manages user registration.
type UserHandler struct {
	users  *users.Repository
	logger *logger.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(repo *users.Repository, log *logger.Logger) *UserHandler {
	return &UserHandler{users: repo, logger: log}
}

// Create registers a new anonymous user and returns its ID. Clients are
// expected to store the ID and attach a profile afterwards.
// POST /api/users -> 201
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Create(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create user")
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}
