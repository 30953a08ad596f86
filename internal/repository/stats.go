package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gridforge/tictactoe-backend/internal/entity"
)

var ErrStatsNotFound = errors.New("player stats not found")

// PlayerStats are the aggregates derived from sealed game records.
type PlayerStats struct {
	PlayerID string  `json:"player_id"`
	Played   int     `json:"played"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Drawn    int     `json:"drawn"`
	WinRate  float64 `json:"win_rate"`
}

type StatsRepository interface {
	SaveMatch(ctx context.Context, record entity.GameRecord) error
	GetByPlayerID(ctx context.Context, playerID string) (*PlayerStats, error)
}

type dbStats struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &dbStats{
		conn: conn,
	}
}

// SaveMatch stores the match row and folds the outcome into every
// human participant's aggregates in one transaction.
func (that *dbStats) SaveMatch(ctx context.Context, record entity.GameRecord) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	matchQuery := `INSERT INTO matches (game_id, mode, difficulty, winner, moves, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, matchQuery,
		record.GameID, record.Mode, record.Difficulty, record.Winner,
		len(record.Moves), record.StartedAt, record.FinishedAt)
	if err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	statsQuery := `INSERT INTO player_stats (player_id, played, won, lost, drawn) VALUES (?, 1, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			played = played + 1,
			won = won + excluded.won,
			lost = lost + excluded.lost,
			drawn = drawn + excluded.drawn`

	for _, player := range record.Players {
		if player.Bot {
			continue
		}

		var won, lost, drawn int
		switch {
		case record.IsDraw():
			drawn = 1
		case record.Winner == player.Mark:
			won = 1
		default:
			lost = 1
		}

		if _, err = tx.ExecContext(ctx, statsQuery, player.ID, won, lost, drawn); err != nil {
			return fmt.Errorf("can't update stats for player %s: %w", player.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit match: %w", err)
	}

	return nil
}

func (that *dbStats) GetByPlayerID(ctx context.Context, playerID string) (*PlayerStats, error) {
	query := `SELECT player_id, played, won, lost, drawn FROM player_stats WHERE player_id = ?`

	stats := PlayerStats{}

	err := that.conn.QueryRowContext(ctx, query, playerID).
		Scan(&stats.PlayerID, &stats.Played, &stats.Won, &stats.Lost, &stats.Drawn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find stats: %w", err)
	}

	if stats.Played > 0 {
		stats.WinRate = float64(stats.Won) / float64(stats.Played)
	}

	return &stats, nil
}
