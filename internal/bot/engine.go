package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gridforge/tictactoe-backend/internal/apperror"
	"github.com/gridforge/tictactoe-backend/internal/tictactoe"
)

// Tier names a computer-opponent strength configuration.
type Tier string

const (
	TierWeak   Tier = "weak"
	TierMedium Tier = "medium"
	TierStrong Tier = "strong"
)

// strongBias is how often the medium tier plays the optimal line
// instead of a random one. A tunable, not derived from search.
const strongBias = 0.7

var (
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrUnknownTier     = errors.New("unknown difficulty tier")
)

// ParseTier validates a difficulty tag coming off the wire.
func ParseTier(raw string) (Tier, error) {
	switch tier := Tier(raw); tier {
	case TierWeak, TierMedium, TierStrong:
		return tier, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, raw)
	}
}

// Engine selects replies for the computer opponent. All randomness
// flows through the injected source so tests can seed it.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine backed by the given random source, or a
// time-seeded one when rng is nil.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{rng: rng}
}

// SelectMove picks a cell for mark at the given tier. It must be
// mark's turn and the game must still be in progress.
func (that *Engine) SelectMove(state tictactoe.State, mark string, tier Tier) (int, error) {
	if tictactoe.Classify(state.Board).Terminal() {
		return 0, ErrGameAlreadyOver
	}

	if state.Turn != mark {
		return 0, apperror.ErrNotYourTurn
	}

	if len(state.Board.AvailableCells()) == 0 {
		return 0, ErrNoLegalMoves
	}

	switch tier {
	case TierWeak:
		return that.randomMove(state.Board), nil
	case TierMedium:
		if that.rng.Float64() < strongBias {
			return bestMove(state.Board, mark), nil
		}
		return that.randomMove(state.Board), nil
	case TierStrong:
		return bestMove(state.Board, mark), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
}

// randomMove picks uniformly among the empty cells.
func (that *Engine) randomMove(board tictactoe.Board) int {
	cells := board.AvailableCells()
	return cells[that.rng.Intn(len(cells))]
}
