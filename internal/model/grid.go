package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Border is drawn between cells when rendering a grid
const Border = "|"

// StepBackHook repairs variant-specific state after the grid reverted a step's changes
type StepBackHook func(changes []CellChange)

// Grid is a width x height panel of cells with an undo log. A 2x3 grid is
// addressed as:
//
//	2  |*|*|
//	1  |*|*|
//	0  |*|*|
//	    0 1
type Grid struct {
	width  int
	height int
	cells  [][]*Cell // cells[x][y]

	history       undoStack
	afterStepBack StepBackHook
}

// NewGrid creates an empty grid of the given size
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", width, height)
	}
	cells := make([][]*Cell, width)
	for x := range cells {
		cells[x] = make([]*Cell, height)
		for y := range cells[x] {
			cells[x][y] = newCell(x, y)
		}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// SetStepBackHook registers the function PopStep calls after reverting cell values
func (g *Grid) SetStepBackHook(hook StepBackHook) {
	g.afterStepBack = hook
}

// Cell returns a snapshot of the cell at (x, y), or false if out of bounds
func (g *Grid) Cell(x, y int) (CellView, bool) {
	if !g.inBounds(x, y) {
		return CellView{}, false
	}
	return g.cells[x][y].View(), true
}

// Reset empties every cell and discards the undo log
func (g *Grid) Reset() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.cells[x][y].value = Marker{}
		}
	}
	g.history.clear()
}

// Rows renders the grid one line per row, highest row first
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	for y := g.height - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < g.width; x++ {
			sb.WriteString(Border)
			sb.WriteString(g.cells[x][y].value.Short())
		}
		sb.WriteString(Border)
		rows = append(rows, sb.String())
	}
	return rows
}

// Render returns the rendered rows joined by newlines
func (g *Grid) Render() string {
	return strings.Join(g.Rows(), "\n")
}

// IsFull returns true if every cell holds a marker
func (g *Grid) IsFull() bool {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[x][y].value.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// NeighborSameValue looks at the cell offset by (dx, dy) from the given cell and
// returns it if both cells hold the same non-empty marker. Values are read from the
// live grid, not from the view passed in.
func (g *Grid) NeighborSameValue(from CellView, dx, dy int) (CellView, bool) {
	g.checkPosition(from.Position)
	x, y := from.X+dx, from.Y+dy
	if !g.inBounds(x, y) {
		return CellView{}, false
	}
	source := g.cells[from.X][from.Y]
	target := g.cells[x][y]
	if !source.HasSameValue(target) {
		return CellView{}, false
	}
	return target.View(), true
}

// LatestStep returns the most recent step, or false before any move
func (g *Grid) LatestStep() (Step, bool) {
	return g.history.peek()
}

// StepCount returns the number of steps that can be undone
func (g *Grid) StepCount() int {
	return g.history.len()
}

// PushStep records an applied step
func (g *Grid) PushStep(step Step) {
	g.history.push(step)
}

// PopStep reverts the most recent step and returns it
func (g *Grid) PopStep() (Step, error) {
	step, ok := g.history.pop()
	if !ok {
		return Step{}, ErrNothingToUndo
	}
	for i := len(step.Changes) - 1; i >= 0; i-- {
		change := step.Changes[i]
		g.checkPosition(change.Cell)
		g.cells[change.Cell.X][change.Cell.Y].value = change.Previous
	}
	if g.afterStepBack != nil {
		g.afterStepBack(step.Changes)
	}
	return step, nil
}

// set writes a marker into a cell and returns the change for the undo log
func (g *Grid) set(pos Position, value Marker) CellChange {
	g.checkPosition(pos)
	cell := g.cells[pos.X][pos.Y]
	change := CellChange{Cell: pos, Previous: cell.value, Current: value}
	cell.value = value
	return change
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// checkPosition panics on coordinates outside the grid. Positions only come from
// the grid itself, so this is always a bug in the caller.
func (g *Grid) checkPosition(pos Position) {
	if pos.Y < 0 || pos.Y >= g.height {
		panic(fmt.Sprintf("%v: cell Y position [%d] outside grid of height %d", ErrInvalidState, pos.Y, g.height))
	}
	if pos.X < 0 || pos.X >= g.width {
		panic(fmt.Sprintf("%v: cell X position [%d] outside grid of width %d", ErrInvalidState, pos.X, g.width))
	}
}
