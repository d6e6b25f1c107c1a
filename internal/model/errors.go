package model

import "errors"

// Common errors used across the application
var (
	// Move errors, caused by player input and recoverable by retrying the turn
	ErrInvalidMove   = errors.New("invalid move")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrGameComplete  = errors.New("game is already complete")
	ErrGameAbandoned = errors.New("game has been abandoned")

	// Construction and configuration errors
	ErrInvalidDimension    = errors.New("invalid grid dimension")
	ErrInvalidWinCount     = errors.New("invalid win count")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrDuplicateMarker     = errors.New("marker is used by more than one player")
	ErrMissingMarker       = errors.New("player has no marker")
	ErrDuplicatePlayer     = errors.New("player name is used more than once")

	// ErrInvalidState means the calling code broke an engine invariant
	ErrInvalidState = errors.New("invalid engine state")

	// Storage errors
	ErrGameNotFound = errors.New("game not found")
)

// IsUserError reports whether err came from a move the player can retry.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidMove) ||
		errors.Is(err, ErrNothingToUndo)
}
