package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridforge/tictactoe-backend/internal/repository"
)

type handlers struct {
	logger *slog.Logger
	stats  StatsProvider
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) playerStats(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "playerStats")

	playerID := chi.URLParam(r, "playerID")

	stats, err := that.stats.GetPlayerStats(r.Context(), playerID)
	if errors.Is(err, repository.ErrStatsNotFound) {
		http.Error(w, "player stats not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get player stats", "playerID", playerID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		log.Error("failed to encode stats", "error", err)
	}
}
