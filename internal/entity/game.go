package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/gridforge/tictactoe-backend/internal/apperror"
	"github.com/gridforge/tictactoe-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = tictactoe.PlayerX
	PlayerO   = tictactoe.PlayerO
	PlayerTie = "-"

	EmptyCell = tictactoe.EmptyCell
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the persisted aggregate for one match. The board serializes
// as the nine cells in row-major order, each "X", "O" or empty.
type Game struct {
	ID         string          `json:"id"`
	Board      tictactoe.Board `json:"board"`
	Turn       string          `json:"player_turn,omitempty"`
	Winner     string          `json:"winner,omitempty"`
	WinLine    *[3]int         `json:"win_line,omitempty"`
	Status     string          `json:"status"`
	Type       string          `json:"type,omitempty"`
	Difficulty string          `json:"difficulty,omitempty"`
	Players    []*Player       `json:"players,omitempty"`
	Moves      []RecordedMove  `json:"moves,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	LastMoveAt time.Time       `json:"last_move_at,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:        id,
		Turn:      PlayerX,
		Status:    StatusWaiting,
		Type:      gameType,
		StartedAt: time.Now(),
	}
}

// State returns the current position as an immutable value.
func (that *Game) State() tictactoe.State {
	return tictactoe.State{Board: that.Board, Turn: that.Turn}
}

// MakeTurn applies one move. Rejected moves leave the game untouched;
// an accepted move is appended to the history with the elapsed time
// since the previous accepted move (game start for the first).
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	next, outcome, err := that.State().Apply(tictactoe.Move{Player: playerMark, Cell: cell})
	if err != nil {
		return err
	}

	now := time.Now()
	since := that.StartedAt
	if !that.LastMoveAt.IsZero() {
		since = that.LastMoveAt
	}

	that.Board = next.Board
	that.Turn = next.Turn
	that.Moves = append(that.Moves, RecordedMove{
		Player:   playerMark,
		Cell:     cell,
		Elapsed:  now.Sub(since),
		PlayedAt: now,
	})
	that.LastMoveAt = now

	if outcome.Terminal() {
		that.Status = StatusFinished
		that.Turn = EmptyCell

		if outcome.Draw {
			that.Winner = PlayerTie
		} else {
			that.Winner = outcome.Winner
			line := outcome.Line
			that.WinLine = &line
		}
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer returns the computer player, or nil for human-vs-human games.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}
