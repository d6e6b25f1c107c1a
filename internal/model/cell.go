package model

// Position identifies a cell on the grid
type Position struct {
	X int // column, 0-indexed from the left
	Y int // row, 0-indexed from the bottom
}

// Cell is a single grid position holding an optional marker.
// Cells are owned by their Grid and never handed out directly.
type Cell struct {
	pos   Position
	value Marker
}

func newCell(x, y int) *Cell {
	return &Cell{pos: Position{X: x, Y: y}}
}

// Position returns the cell's fixed coordinates
func (c *Cell) Position() Position {
	return c.pos
}

// Value returns the marker in the cell, the zero Marker if empty
func (c *Cell) Value() Marker {
	return c.value
}

// HasSameValue returns true if both cells hold the same non-empty marker.
// Two empty cells never have the same value.
func (c *Cell) HasSameValue(other *Cell) bool {
	if other == nil || c.value.IsEmpty() || other.value.IsEmpty() {
		return false
	}
	return c.value == other.value
}

// View returns a read-only snapshot of the cell
func (c *Cell) View() CellView {
	return CellView{Position: c.pos, Value: c.value}
}

// CellView is a read-only copy of a cell's position and value at lookup time
type CellView struct {
	Position
	Value Marker
}

// IsEmpty returns true if the cell held no marker when the view was taken
func (v CellView) IsEmpty() bool {
	return v.Value.IsEmpty()
}
