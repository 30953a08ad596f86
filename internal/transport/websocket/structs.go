package websocket

import (
	"encoding/json"

	"github.com/gridforge/tictactoe-backend/internal/entity"
)

// Message is the wire envelope: an action tag plus its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the request and response fields of every action;
// unused fields stay empty on the wire.
type Payload struct {
	Player     *entity.Player `json:"player,omitempty"`
	Game       *entity.Game   `json:"game,omitempty"`
	GameID     string         `json:"game_id,omitempty"`
	Type       string         `json:"type,omitempty"`
	Difficulty string         `json:"difficulty,omitempty"`
	Cell       *int           `json:"cell,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// publicView strips the move history from a game before it goes on
// the wire: clients only need board, turn, status and outcome.
func publicView(game *entity.Game) *entity.Game {
	view := *game
	view.Moves = nil

	return &view
}
