package bot

import "github.com/gridforge/tictactoe-backend/internal/tictactoe"

// Terminal scores are offset by search depth so the engine prefers the
// fastest win and the slowest loss.
const (
	winScore      = 10
	infiniteScore = 1000
)

// bestMove runs a full-depth alpha-beta search from the current board
// and returns the highest-scoring cell for mark. Ties go to the lowest
// index because only a strictly better score replaces the choice. The
// root window stays open above (beta is never exceeded there), so
// pruning below cannot change the selected move or its score.
func bestMove(board tictactoe.Board, mark string) int {
	bestScore := -infiniteScore
	best := -1

	for _, cell := range board.AvailableCells() {
		next := board
		next[cell] = mark

		score := alphabeta(next, tictactoe.ToggleMark(mark), mark, 1, bestScore, infiniteScore)
		if score > bestScore {
			bestScore = score
			best = cell
		}
	}

	return best
}

// alphabeta explores every continuation from board with turn to move,
// scoring terminals relative to mark: winScore-depth for mark's win,
// depth-winScore for the opponent's, zero for a draw. Fail-soft: the
// returned value is exact whenever it falls inside (alpha, beta).
func alphabeta(board tictactoe.Board, turn, mark string, depth, alpha, beta int) int {
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

			score := alphabeta(next, tictactoe.ToggleMark(turn), mark, depth+1, alpha, beta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := infiniteScore
	for _, cell := range board.AvailableCells() {
		next := board
		next[cell] = turn

		score := alphabeta(next, tictactoe.ToggleMark(turn), mark, depth+1, alpha, beta)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
