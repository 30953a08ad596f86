package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gridforge/tictactoe-backend/internal/apperror"
	"github.com/gridforge/tictactoe-backend/internal/entity"
)

func decodePayload(message *Message) (*Payload, error) {
	payload := &Payload{}

	if len(message.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(message.Payload, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// handleConnect resolves or creates the player and binds this
// connection to it. A player already seated in a game gets the game
// state back immediately.
func (that *Server) handleConnect(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(message)
	if err != nil {
		return err
	}

	playerID := ""
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(conn, message.Action, "failed to create a new player")
	}

	that.registerConnection(player.ID, conn)

	response := Payload{Player: player}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(conn, message.Action, "failed to get the game")
		}

		response.Game = publicView(game)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return that.sendMessage(conn, message.Action, response)
}

// handleNewGame creates a game of the requested type. The difficulty
// tag is required for games against the computer.
func (that *Server) handleNewGame(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleNewGame")

	payload, err := decodePayload(message)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(conn, message.Action, "player is required")
	}

	that.registerConnection(payload.Player.ID, conn)

	game, err := that.gameUseCase.GetOrCreateGame(ctx, payload.Player.ID, payload.Type, payload.Difficulty)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(conn, message.Action, "failed to create a new game")
	}

	log.Info("game created", "gameID", game.ID, "type", game.Type)

	that.broadcastGame(game, message.Action)

	return nil
}

// handleJoinGame seats the player as O: into the identified private
// game, or into any waiting public game when no id is given.
func (that *Server) handleJoinGame(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleJoinGame")

	payload, err := decodePayload(message)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(conn, message.Action, "player is required")
	}

	that.registerConnection(payload.Player.ID, conn)

	var game *entity.Game
	if payload.GameID != "" {
		game, err = that.gameUseCase.JoinGame(ctx, payload.GameID, payload.Player.ID)
	} else {
		game, err = that.gameUseCase.JoinPublicGame(ctx, payload.Player.ID)
	}

	if errors.Is(err, apperror.ErrNoActiveGames) {
		return that.sendErrorResponse(conn, message.Action, "no games waiting for players")
	}

	if err != nil {
		log.Error("failed to join game", "gameID", payload.GameID, "error", err)
		return that.sendErrorResponse(conn, message.Action, "failed to join the game")
	}

	log.Info("player joined game", "gameID", game.ID, "playerID", payload.Player.ID)

	that.broadcastGame(game, message.Action)

	return nil
}

// handleTurn applies one move. Rejected moves answer only the caller,
// with the untouched game state attached; accepted moves are pushed to
// both players.
func (that *Server) handleTurn(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleTurn")

	payload, err := decodePayload(message)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(conn, message.Action, "player is required")
	}

	if payload.Cell == nil {
		log.Error("cell is missing in payload")
		return that.sendErrorResponse(conn, message.Action, "cell is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payload.Player.ID, *payload.Cell)
	if err != nil {
		log.Error("failed to make turn", "playerID", payload.Player.ID, "error", err)

		response := Payload{Error: turnErrorMessage(err)}
		if game != nil {
			response.Game = publicView(game)
		}

		return that.sendMessage(conn, message.Action, response)
	}

	that.broadcastGame(game, message.Action)

	return nil
}

// handleState returns the caller's current game view without mutation.
func (that *Server) handleState(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleState")

	payload, err := decodePayload(message)
	if err != nil {
		return err
	}

	if payload.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(conn, message.Action, "player is required")
	}

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, payload.Player.ID)
	if err != nil {
		log.Error("failed to get game", "playerID", payload.Player.ID, "error", err)
		return that.sendErrorResponse(conn, message.Action, "failed to get the game")
	}

	return that.sendMessage(conn, message.Action, Payload{Game: publicView(game)})
}

// turnErrorMessage maps rejection sentinels onto client-facing text.
func turnErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell is already occupied"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "it's not your turn"
	case errors.Is(err, apperror.ErrInvalidCell):
		return "cell must be between 0 and 8"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game is already finished"
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return "game has not started yet"
	default:
		return "failed to make turn"
	}
}
