package service

import (
	"errors"
	"fmt"

	"github.com/gridforge/tictactoe-backend/internal/bot"
	"github.com/gridforge/tictactoe-backend/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	engine *bot.Engine
}

func NewBotService(engine *bot.Engine) BotService {
	return &botService{
		engine: engine,
	}
}

// MakeTurn plays the computer's reply at the game's difficulty tier,
// through the same transition path human moves take.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	tier, err := bot.ParseTier(game.Difficulty)
	if err != nil {
		return fmt.Errorf("bot can't play this game: %w", err)
	}

	cell, err := that.engine.SelectMove(game.State(), botPlayer.Mark, tier)
	if err != nil {
		return fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
