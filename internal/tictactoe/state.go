package tictactoe

import (
	"fmt"

	"github.com/gridforge/tictactoe-backend/internal/apperror"
)

// State is the immutable per-turn view of a game: the nine cells plus
// whose turn it is. Transitions go through Apply, which returns a new
// value and never touches its receiver, so a caller can always keep
// the previous state around.
type State struct {
	Board Board  `json:"board"`
	Turn  string `json:"turn"`
}

// Move is one player's attempt to claim a cell.
type Move struct {
	Player string `json:"player"`
	Cell   int    `json:"cell"`
}

// NewState returns the initial position: empty board, X to move.
func NewState() State {
	return State{Turn: PlayerX}
}

// Apply validates the move against the current state and returns the
// next state together with its classification. On any failure the
// returned state equals the input state and the error identifies the
// rejected check; no partial mutation is ever observable.
func (that State) Apply(move Move) (State, Outcome, error) {
	if outcome := Classify(that.Board); outcome.Terminal() {
		return that, outcome, apperror.ErrGameFinished
	}

	if move.Cell < 0 || move.Cell >= len(that.Board) {
		return that, Outcome{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move.Cell)
	}

	if move.Player != that.Turn {
		return that, Outcome{}, apperror.ErrNotYourTurn
	}

	if that.Board[move.Cell] != EmptyCell {
		return that, Outcome{}, apperror.ErrCellOccupied
	}

	next := that
	next.Board[move.Cell] = move.Player

	outcome := Classify(next.Board)
	if !outcome.Terminal() {
		next.Turn = ToggleMark(move.Player)
	}

	return next, outcome, nil
}
