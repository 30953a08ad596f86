package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gridforge/tictactoe-backend/internal/repository"
)

// StatsProvider serves the aggregates the recorder derives from
// sealed game records.
type StatsProvider interface {
	GetPlayerStats(ctx context.Context, playerID string) (*repository.PlayerStats, error)
}

func NewRouter(logger *slog.Logger, stats StatsProvider) http.Handler {
	router := chi.NewRouter()
	h := &handlers{logger: logger, stats: stats}

	router.Get("/ping", h.ping)
	router.Get("/stats/{playerID}", h.playerStats)

	return router
}

func Start(ctx context.Context, logger *slog.Logger, port string, stats StatsProvider) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, stats),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
