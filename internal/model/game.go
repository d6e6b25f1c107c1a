package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateAwaitingMove GameState = "awaiting_move" // Waiting for the current player's move
	GameStateMoveApplied  GameState = "move_applied"  // A drop landed, outcome not yet decided
	GameStateWon          GameState = "won"           // A player connected enough markers
	GameStateDraw         GameState = "draw"          // Grid filled with no winner
)

// IsOver returns true for the terminal states
func (s GameState) IsOver() bool {
	return s == GameStateWon || s == GameStateDraw
}

// MoveKind distinguishes drops from undo requests
type MoveKind string

const (
	MoveDrop MoveKind = "drop"
	MoveUndo MoveKind = "undo"
)

// Move is a well-formed request from the move-input provider
type Move struct {
	Kind   MoveKind
	Column int // 1-based, only set for drops
}

// DropMove creates a drop request for a 1-based column
func DropMove(column int) Move {
	return Move{Kind: MoveDrop, Column: column}
}

// UndoMove creates an undo request
func UndoMove() Move {
	return Move{Kind: MoveUndo}
}

// Game is the record of a single game session
type Game struct {
	ID     GameID
	Config GameConfig
	State  GameState

	// Turn management
	CurrentIdx int // Index into Config.Players for the player to move
	MoveCount  int // Drops currently on the grid
	UndoCount  int

	// Set once State is GameStateWon
	Winner *Player

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() Player {
	return g.Config.Players[g.CurrentIdx]
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	State       GameState
	Winner      string // Empty if draw
	Moves       int
	CompletedAt time.Time
}

// Summary builds the summary record for a finished game
func (g *Game) Summary() GameSummary {
	s := GameSummary{
		ID:          g.ID,
		State:       g.State,
		Moves:       g.MoveCount,
		CompletedAt: g.UpdatedAt,
	}
	if g.Winner != nil {
		s.Winner = g.Winner.Name
	}
	return s
}
