package model

// CellChange is a reversible change to one cell. Cell refers to a position in the
// grid that recorded it and must not be applied to any other grid.
type CellChange struct {
	Cell     Position
	Previous Marker
	Current  Marker
}

// Step is the ordered list of cell changes making up one player action.
// A column drop changes exactly one cell.
type Step struct {
	Changes []CellChange
}

// NewStep creates a step from the given changes
func NewStep(changes ...CellChange) Step {
	return Step{Changes: changes}
}

// First returns the first change, or false for an empty step
func (s Step) First() (CellChange, bool) {
	if len(s.Changes) == 0 {
		return CellChange{}, false
	}
	return s.Changes[0], true
}

// undoStack is the LIFO log of steps applied to a grid
type undoStack struct {
	steps []Step
}

func (u *undoStack) push(step Step) {
	u.steps = append(u.steps, step)
}

func (u *undoStack) pop() (Step, bool) {
	if len(u.steps) == 0 {
		return Step{}, false
	}
	step := u.steps[len(u.steps)-1]
	u.steps = u.steps[:len(u.steps)-1]
	return step, true
}

func (u *undoStack) peek() (Step, bool) {
	if len(u.steps) == 0 {
		return Step{}, false
	}
	return u.steps[len(u.steps)-1], true
}

func (u *undoStack) clear() {
	u.steps = nil
}

func (u *undoStack) len() int {
	return len(u.steps)
}
