package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/tictactoe-backend/internal/tictactoe"
)

// plainMinimax is the unpruned reference search. The pruned engine
// must agree with it on every reachable position.
func plainMinimax(board tictactoe.Board, turn, mark string, depth int) int {
	if winner, _, won := tictactoe.CheckWin(board); won {
		if winner == mark {
			return winScore - depth
		}
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if turn == mark {
		best := -infiniteScore
		for _, cell := range board.AvailableCells() {
			next := board
			next[cell] = turn
			if score := plainMinimax(next, tictactoe.ToggleMark(turn), mark, depth+1); score > best {
				best = score
			}
		}
		return best
	}

	best := infiniteScore
	for _, cell := range board.AvailableCells() {
		next := board
		next[cell] = turn
		if score := plainMinimax(next, tictactoe.ToggleMark(turn), mark, depth+1); score < best {
			best = score
		}
	}
	return best
}

func plainBestMove(board tictactoe.Board, mark string) (int, int) {
	bestScore := -infiniteScore
	best := -1

	for _, cell := range board.AvailableCells() {
		next := board
		next[cell] = mark

		if score := plainMinimax(next, tictactoe.ToggleMark(mark), mark, 1); score > bestScore {
			bestScore = score
			best = cell
		}
	}

	return best, bestScore
}

// reachablePositions enumerates every non-terminal position reachable
// by legal play from the empty board, deduplicated by board contents.
func reachablePositions() []tictactoe.State {
	seen := map[tictactoe.Board]bool{}
	positions := []tictactoe.State{}

	var walk func(state tictactoe.State)
	walk = func(state tictactoe.State) {
		if tictactoe.Classify(state.Board).Terminal() {
			return
		}

		if !seen[state.Board] {
			seen[state.Board] = true
			positions = append(positions, state)
		}

		for _, cell := range state.Board.AvailableCells() {
			next, _, err := state.Apply(tictactoe.Move{Player: state.Turn, Cell: cell})
			if err != nil {
				continue
			}
			walk(next)
		}
	}

	walk(tictactoe.NewState())

	return positions
}

func TestBestMove_PruningIsExact(t *testing.T) {
	// Given: every reachable non-terminal position
	positions := reachablePositions()
	require.NotEmpty(t, positions)

	for _, state := range positions {
		// When: searching with and without pruning for the side to move
		prunedMove := bestMove(state.Board, state.Turn)
		plainMove, plainScore := plainBestMove(state.Board, state.Turn)

		// Then: the selected move is identical
		require.Equal(t, plainMove, prunedMove, "board %v turn %s", state.Board, state.Turn)

		// Then: the pruned move's exact score matches the unpruned best
		next := state.Board
		next[prunedMove] = state.Turn
		score := plainMinimax(next, tictactoe.ToggleMark(state.Turn), state.Turn, 1)
		require.Equal(t, plainScore, score, "board %v turn %s", state.Board, state.Turn)
	}
}

func TestBestMove_NeverLosesPlayingSecond(t *testing.T) {
	// Given: the engine holds O and replies optimally to every
	// possible sequence of X moves
	var explore func(board tictactoe.Board, turn string)
	explore = func(board tictactoe.Board, turn string) {
		outcome := tictactoe.Classify(board)
		if outcome.Terminal() {
			// Then: X never wins
			assert.NotEqual(t, tictactoe.PlayerX, outcome.Winner, "board %v", board)
			return
		}

		if turn == tictactoe.PlayerO {
			next := board
			next[bestMove(board, tictactoe.PlayerO)] = tictactoe.PlayerO
			explore(next, tictactoe.PlayerX)
			return
		}

		for _, cell := range board.AvailableCells() {
			next := board
			next[cell] = tictactoe.PlayerX
			explore(next, tictactoe.PlayerO)
		}
	}

	explore(tictactoe.Board{}, tictactoe.PlayerX)
}
