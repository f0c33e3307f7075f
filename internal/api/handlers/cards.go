package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/tarot"
	"github.com/lunarium/arcana/pkg/logger"
)

// CardHandler serves the card catalog.
type CardHandler struct {
	catalog *tarot.Catalog
	logger  *logger.Logger
}

// NewCardHandler creates a card handler.
func NewCardHandler(catalog *tarot.Catalog, log *logger.Logger) *CardHandler {
	return &CardHandler{catalog: catalog, logger: log}
}

// List returns the full catalog, optionally filtered by arcana.
// GET /api/cards?arcana=major|minor
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.catalog.ListAll(r.Context())
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}

	if arcana := r.URL.Query().Get("arcana"); arcana != "" {
		if arcana != string(contracts.ArcanaMajor) && arcana != string(contracts.ArcanaMinor) {
			respondError(w, http.StatusBadRequest, "arcana must be major or minor")
			return
		}
		filtered := make([]contracts.Card, 0, len(cards))
		for _, c := range cards {
			if string(c.Arcana) == arcana {
				filtered = append(filtered, c)
			}
		}
		cards = filtered
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"cards": cards,
		"count": len(cards),
	})
}

// Random returns one or more random cards.
// GET /api/cards/random?count=&allow_duplicates=
func (h *CardHandler) Random(w http.ResponseWriter, r *http.Request) {
	count := 1
	if v := r.URL.Query().Get("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 78 {
			respondError(w, http.StatusBadRequest, "count must be between 1 and 78")
			return
		}
		count = parsed
	}
	allowDuplicates := r.URL.Query().Get("allow_duplicates") == "true"

	cards, err := h.catalog.GetRandomMany(r.Context(), count, allowDuplicates)
	if err != nil {
		h.respondCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"cards": cards,
		"count": len(cards),
	})
}

func (h *CardHandler) respondCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contracts.ErrEmptyCatalog):
		h.logger.WithError(err).Error("Card catalog is empty")
		respondError(w, http.StatusServiceUnavailable, "Card catalog unavailable")
	case errors.Is(err, contracts.ErrDrawExceedsCatalog):
		respondError(w, http.StatusBadRequest, "count exceeds catalog size")
	default:
		h.logger.WithError(err).Error("Failed to load cards")
		respondError(w, http.StatusInternalServerError, "Failed to load cards")
	}
}
