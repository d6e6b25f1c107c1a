package strategy

import "github.com/mcoot/connectgame-go/internal/model"

// Board is the read-only view of a grid that a strategy evaluates
type Board interface {
	NeighborSameValue(from model.CellView, dx, dy int) (model.CellView, bool)
	Cell(x, y int) (model.CellView, bool)
	IsFull() bool
}

// WinStrategy decides whether the latest step ended the game.
// Callers check IsWin before IsDraw: a full grid with a winning line is a win.
type WinStrategy interface {
	IsWin(board Board, step model.Step) bool
	IsDraw(board Board) bool
}
