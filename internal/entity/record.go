package entity

import (
	"errors"
	"time"

	"github.com/gridforge/tictactoe-backend/internal/tictactoe"
)

var ErrGameNotFinished = errors.New("game is not finished")

// RecordedMove is one accepted move with the time it took: elapsed is
// measured from the previous accepted move, or from game start for the
// first move.
type RecordedMove struct {
	Player   string        `json:"player"`
	Cell     int           `json:"cell"`
	Elapsed  time.Duration `json:"elapsed"`
	PlayedAt time.Time     `json:"played_at"`
}

// RecordedPlayer identifies a participant in a sealed record.
type RecordedPlayer struct {
	ID   string `json:"id"`
	Mark string `json:"mark"`
	Bot  bool   `json:"bot,omitempty"`
}

// GameRecord is the finalized package of one finished match, handed by
// value to the match recorder. The game keeps no reference to it.
type GameRecord struct {
	GameID     string           `json:"game_id"`
	Mode       string           `json:"mode"`
	Difficulty string           `json:"difficulty,omitempty"`
	Players    []RecordedPlayer `json:"players"`
	Moves      []RecordedMove   `json:"moves"`
	FinalBoard tictactoe.Board  `json:"final_board"`
	Winner     string           `json:"winner"`
	WinLine    *[3]int          `json:"win_line,omitempty"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

// IsDraw reports whether the match ended without a winner.
func (that GameRecord) IsDraw() bool {
	return that.Winner == PlayerTie
}

// Seal packages the finished game into an immutable record. The moves
// and win line are copied so later mutation of the game cannot leak
// into a record already handed off.
func (that *Game) Seal() (GameRecord, error) {
	if !that.IsFinished() {
		return GameRecord{}, ErrGameNotFinished
	}

	record := GameRecord{
		GameID:     that.ID,
		Mode:       that.Type,
		Difficulty: that.Difficulty,
		Players:    make([]RecordedPlayer, 0, len(that.Players)),
		Moves:      make([]RecordedMove, len(that.Moves)),
		FinalBoard: that.Board,
		Winner:     that.Winner,
		StartedAt:  that.StartedAt,
		FinishedAt: that.LastMoveAt,
	}

	copy(record.Moves, that.Moves)

	for _, player := range that.Players {
		record.Players = append(record.Players, RecordedPlayer{
			ID:   player.ID,
			Mark: player.Mark,
			Bot:  player.Bot,
		})
	}

	if that.WinLine != nil {
		line := *that.WinLine
		record.WinLine = &line
	}

	return record, nil
}
