package model

import (
	"github.com/pkg/errors"
)

const emptyColumn = -1

// ColumnDropGrid is a grid where a marker dropped into a column falls to the
// lowest open row, stacking on earlier markers.
type ColumnDropGrid struct {
	*Grid

	// heights[c] is the row of the topmost marker in column c, or emptyColumn
	heights []int
}

// NewColumnDropGrid creates an empty column-drop grid
func NewColumnDropGrid(width, height int) (*ColumnDropGrid, error) {
	base, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	g := &ColumnDropGrid{
		Grid:    base,
		heights: make([]int, width),
	}
	g.resetHeights()
	base.SetStepBackHook(g.undoRepair)
	return g, nil
}

// Put drops a marker into a column, numbered from 1, and records the step
func (g *ColumnDropGrid) Put(column int, marker Marker) error {
	if marker.IsEmpty() {
		return errors.Wrapf(ErrInvalidState, "dropping an empty marker into column [%d]", column)
	}
	if column < 1 || column > g.width {
		return errors.Wrapf(ErrInvalidMove, "column [%d] is out of scope", column)
	}
	col := column - 1
	if g.heights[col] == g.height-1 {
		return errors.Wrapf(ErrInvalidMove, "column [%d] is full", column)
	}
	g.heights[col]++
	change := g.set(Position{X: col, Y: g.heights[col]}, marker)
	g.PushStep(NewStep(change))
	return nil
}

// ColumnHeight returns the number of markers in a column numbered from 1
func (g *ColumnDropGrid) ColumnHeight(column int) int {
	if column < 1 || column > g.width {
		return 0
	}
	return g.heights[column-1] + 1
}

// ValidColumns returns the 1-based columns that can still take a marker
func (g *ColumnDropGrid) ValidColumns() []int {
	var cols []int
	for c, h := range g.heights {
		if h < g.height-1 {
			cols = append(cols, c+1)
		}
	}
	return cols
}

// IsFull checks the column heights instead of scanning every cell
func (g *ColumnDropGrid) IsFull() bool {
	for _, h := range g.heights {
		if h < g.height-1 {
			return false
		}
	}
	return true
}

// Reset empties the grid, the undo log, and the column heights
func (g *ColumnDropGrid) Reset() {
	g.Grid.Reset()
	g.resetHeights()
}

func (g *ColumnDropGrid) resetHeights() {
	for c := range g.heights {
		g.heights[c] = emptyColumn
	}
}

// undoRepair lowers the height of every column a reverted step dropped into
func (g *ColumnDropGrid) undoRepair(changes []CellChange) {
	for _, change := range changes {
		col := change.Cell.X
		if g.heights[col] != change.Cell.Y {
			panic(errors.Wrapf(ErrInvalidState, "undoing row %d of column %d with height %d", change.Cell.Y, col+1, g.heights[col]))
		}
		g.heights[col]--
	}
}
