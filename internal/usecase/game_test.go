package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tictactoe-backend/internal/entity"
)

var errSomeError = errors.New("some error")

type stubPlayerService struct {
	created *entity.Player
	known   map[string]*entity.Player
	err     error
}

func (that *stubPlayerService) CreatePlayer(context.Context) (*entity.Player, error) {
	if that.err != nil {
		return nil, that.err
	}
	return that.created, nil
}

func (that *stubPlayerService) GetPlayerByID(_ context.Context, id string) (*entity.Player, error) {
	if that.err != nil {
		return nil, that.err
	}

	player, ok := that.known[id]
	if !ok {
		return nil, errSomeError
	}
	return player, nil
}

type stubGameService struct {
	games map[string]*entity.Game
}

func (that *stubGameService) GetGameByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, errSomeError
	}
	return game, nil
}

type stubGamePlayService struct {
	game    *entity.Game
	turnErr error

	cleanedUp []*entity.Game
}

func (that *stubGamePlayService) GetOrCreateGame(context.Context, *entity.Player, string, string) (*entity.Game, error) {
	return that.game, nil
}

func (that *stubGamePlayService) JoinGameByID(context.Context, string, string) (*entity.Game, error) {
	return that.game, nil
}

func (that *stubGamePlayService) JoinWaitingPublicGame(context.Context, string) (*entity.Game, error) {
	return that.game, nil
}

func (that *stubGamePlayService) MakeTurn(context.Context, string, int) (*entity.Game, error) {
	return that.game, that.turnErr
}

func (that *stubGamePlayService) CleanupGame(_ context.Context, game *entity.Game) {
	that.cleanedUp = append(that.cleanedUp, game)
}

func TestGameUseCase_GetOrCreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new player when playerID is empty", func(t *testing.T) {
		// Given: a player service that can mint players
		players := &stubPlayerService{created: &entity.Player{ID: "fresh"}}
		useCase := NewGameUseCase(players, &stubGameService{}, &stubGamePlayService{})

		// When: calling GetOrCreatePlayer with an empty playerID
		player, err := useCase.GetOrCreatePlayer(ctx, "")

		// Then: a new player comes back
		require.NoError(t, err)
		assert.Equal(t, "fresh", player.ID)
	})

	t.Run("Returns existing player when playerID is not empty", func(t *testing.T) {
		// Given: a known player
		existing := &entity.Player{ID: "player123"}
		players := &stubPlayerService{known: map[string]*entity.Player{"player123": existing}}
		useCase := NewGameUseCase(players, &stubGameService{}, &stubGamePlayService{})

		// When: calling GetOrCreatePlayer with a known playerID
		player, err := useCase.GetOrCreatePlayer(ctx, "player123")

		// Then: the existing player is returned
		require.NoError(t, err)
		assert.Equal(t, existing, player)
	})

	t.Run("Returns error when the player service fails", func(t *testing.T) {
		// Given: a player service that is down
		players := &stubPlayerService{err: errSomeError}
		useCase := NewGameUseCase(players, &stubGameService{}, &stubGamePlayService{})

		// When: calling GetOrCreatePlayer either way
		_, err := useCase.GetOrCreatePlayer(ctx, "")

		// Then: the error surfaces
		require.ErrorIs(t, err, errSomeError)
	})
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Finished game is cleaned up after the turn", func(t *testing.T) {
		// Given: a gameplay service whose turn finishes the game
		finished := &entity.Game{ID: "game-1", Status: entity.StatusFinished}
		gamePlay := &stubGamePlayService{game: finished}
		useCase := NewGameUseCase(&stubPlayerService{}, &stubGameService{}, gamePlay)

		// When: making the final turn
		game, err := useCase.MakeTurn(ctx, "player123", 8)

		// Then: the finished game comes back and cleanup ran once
		require.NoError(t, err)
		assert.Equal(t, finished, game)
		require.Len(t, gamePlay.cleanedUp, 1)
		assert.Equal(t, finished, gamePlay.cleanedUp[0])
	})

	t.Run("Ongoing game is left alone", func(t *testing.T) {
		// Given: a turn that keeps the game going
		ongoing := &entity.Game{ID: "game-1", Status: entity.StatusOngoing}
		gamePlay := &stubGamePlayService{game: ongoing}
		useCase := NewGameUseCase(&stubPlayerService{}, &stubGameService{}, gamePlay)

		// When: making a mid-game turn
		game, err := useCase.MakeTurn(ctx, "player123", 4)

		// Then: no cleanup happened
		require.NoError(t, err)
		assert.Equal(t, ongoing, game)
		assert.Empty(t, gamePlay.cleanedUp)
	})

	t.Run("Rejected turn keeps the game attached to the error", func(t *testing.T) {
		// Given: a gameplay service that rejects the move
		rejected := &entity.Game{ID: "game-1", Status: entity.StatusOngoing}
		gamePlay := &stubGamePlayService{game: rejected, turnErr: errSomeError}
		useCase := NewGameUseCase(&stubPlayerService{}, &stubGameService{}, gamePlay)

		// When: making the bad turn
		game, err := useCase.MakeTurn(ctx, "player123", 0)

		// Then: the error and the current game both come back
		require.ErrorIs(t, err, errSomeError)
		assert.Equal(t, rejected, game)
		assert.Empty(t, gamePlay.cleanedUp)
	})
}

func TestGameUseCase_GetGameByPlayerID(t *testing.T) {
	ctx := context.Background()

	seatedPlayer := func(game *entity.Game) (*stubPlayerService, *stubGameService) {
		players := &stubPlayerService{known: map[string]*entity.Player{
			"player123": {ID: "player123", GameID: game.ID},
		}}
		games := &stubGameService{games: map[string]*entity.Game{game.ID: game}}
		return players, games
	}

	t.Run("Returns the seated player's stored game", func(t *testing.T) {
		// Given: a seated player and their stored game
		game := &entity.Game{ID: "game-1", Status: entity.StatusOngoing}
		players, games := seatedPlayer(game)
		useCase := NewGameUseCase(players, games, &stubGamePlayService{})

		// When: looking the game up through the player
		found, err := useCase.GetGameByPlayerID(ctx, "player123")

		// Then: the stored game is returned
		require.NoError(t, err)
		assert.Equal(t, game, found)
	})

	t.Run("Repeated queries return identical views without mutating the game", func(t *testing.T) {
		// Given: a mid-game position with marks on the board
		game := &entity.Game{ID: "game-1", Status: entity.StatusOngoing, Turn: entity.PlayerX}
		game.Board[0] = entity.PlayerX
		game.Board[4] = entity.PlayerO
		players, games := seatedPlayer(game)
		useCase := NewGameUseCase(players, games, &stubGamePlayService{})

		snapshot := *game

		first, err := useCase.GetGameByPlayerID(ctx, "player123")
		require.NoError(t, err)

		// When: querying again and again with no move in between
		for i := 0; i < 3; i++ {
			again, err := useCase.GetGameByPlayerID(ctx, "player123")
			require.NoError(t, err)

			// Then: every view is identical to the first
			assert.Equal(t, first, again)
			assert.Equal(t, first.State(), again.State())
		}

		// Then: the stored game itself is untouched
		assert.Equal(t, snapshot, *game)
	})
}
