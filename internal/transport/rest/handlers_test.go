package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tictactoe-backend/internal/repository"
)

type fakeStatsProvider struct {
	stats map[string]*repository.PlayerStats
	err   error
}

func (that *fakeStatsProvider) GetPlayerStats(_ context.Context, playerID string) (*repository.PlayerStats, error) {
	if that.err != nil {
		return nil, that.err
	}

	stats, ok := that.stats[playerID]
	if !ok {
		return nil, repository.ErrStatsNotFound
	}

	return stats, nil
}

func newTestRouter(stats *fakeStatsProvider) http.Handler {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return NewRouter(logger, stats)
}

func TestPing(t *testing.T) {
	// Given: the REST router
	router := newTestRouter(&fakeStatsProvider{})

	// When: GET /ping
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: the server answers pong
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestPlayerStats(t *testing.T) {
	t.Run("Known player gets their aggregates", func(t *testing.T) {
		// Given: a player with recorded matches
		provider := &fakeStatsProvider{stats: map[string]*repository.PlayerStats{
			"alice": {PlayerID: "alice", Played: 4, Won: 3, Lost: 1, WinRate: 0.75},
		}}
		router := newTestRouter(provider)

		// When: GET /stats/alice
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/alice", nil))

		// Then: the aggregates come back as JSON
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var stats repository.PlayerStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, "alice", stats.PlayerID)
		assert.Equal(t, 4, stats.Played)
		assert.InDelta(t, 0.75, stats.WinRate, 1e-9)
	})

	t.Run("Unknown player is a 404", func(t *testing.T) {
		// Given: a provider with no stats at all
		router := newTestRouter(&fakeStatsProvider{})

		// When: GET /stats/nobody
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/nobody", nil))

		// Then: not found
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Storage failure is a 500", func(t *testing.T) {
		// Given: a provider that fails
		router := newTestRouter(&fakeStatsProvider{err: errors.New("disk on fire")})

		// When: GET /stats/alice
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/alice", nil))

		// Then: internal server error
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
