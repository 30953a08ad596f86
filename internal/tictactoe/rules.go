package tictactoe

// Outcome classifies a board position. The zero value means the game
// is still in progress.
type Outcome struct {
	Winner string // PlayerX or PlayerO when a line is complete
	Line   [3]int // the completed line, valid only when Winner is set
	Draw   bool
}

// Terminal reports whether no further moves are legal.
func (that Outcome) Terminal() bool {
	return that.Draw || that.Winner != EmptyCell
}

// CheckWin scans the win lines and returns the winning mark and line
// of the first complete one.
func CheckWin(board Board) (string, [3]int, bool) {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a, line, true
		}
	}

	return EmptyCell, [3]int{}, false
}

// CheckDraw reports whether the board is full with no complete line.
func CheckDraw(board Board) bool {
	if _, _, won := CheckWin(board); won {
		return false
	}

	return board.IsFull()
}

// Classify maps a board onto exactly one of in-progress, win or draw.
// A full board that also completes a line is a win.
func Classify(board Board) Outcome {
	if winner, line, won := CheckWin(board); won {
		return Outcome{Winner: winner, Line: line}
	}

	if board.IsFull() {
		return Outcome{Draw: true}
	}

	return Outcome{}
}
