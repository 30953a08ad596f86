package tictactoe

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Board holds the nine cells in row-major order: 0,1,2 is the top row.
type Board [9]string

// WinLines are scanned in this exact order: rows, then columns, then
// diagonals. The first complete line wins, which is observable when a
// crafted board completes more than one line.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// AvailableCells returns the indices of all empty cells in ascending order.
func (that Board) AvailableCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// IsFull reports whether no empty cell remains.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// ToggleMark returns the opposing mark.
func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
