package strategy

import "github.com/mcoot/connectgame-go/internal/model"

// axes are checked in order: vertical, horizontal, diagonal, anti-diagonal.
// Each is walked in both its direction and the negated one.
var axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// ConnectStrategy wins when the latest marker completes a straight line of at
// least WinCount markers of the same value.
type ConnectStrategy struct {
	winCount int
}

// NewConnectStrategy creates a strategy for connect-n games
func NewConnectStrategy(winCount int) (*ConnectStrategy, error) {
	if winCount < 1 {
		return nil, model.ErrInvalidWinCount
	}
	return &ConnectStrategy{winCount: winCount}, nil
}

// IsWin checks the lines through the single cell a connect step changed
func (s *ConnectStrategy) IsWin(board Board, step model.Step) bool {
	change, ok := step.First()
	if !ok {
		return false
	}
	origin, ok := board.Cell(change.Cell.X, change.Cell.Y)
	if !ok || origin.IsEmpty() {
		return false
	}

	for _, axis := range axes {
		count := 1 + s.run(board, origin, axis[0], axis[1]) + s.run(board, origin, -axis[0], -axis[1])
		if count >= s.winCount {
			return true
		}
	}
	return false
}

// IsDraw returns true once the board is full. It does not look for a winner.
func (s *ConnectStrategy) IsDraw(board Board) bool {
	return board.IsFull()
}

// run counts consecutive same-valued cells walking from origin by (dx, dy)
func (s *ConnectStrategy) run(board Board, origin model.CellView, dx, dy int) int {
	count := 0
	cell := origin
	for {
		next, ok := board.NeighborSameValue(cell, dx, dy)
		if !ok {
			return count
		}
		count++
		cell = next
	}
}

var _ WinStrategy = (*ConnectStrategy)(nil)
