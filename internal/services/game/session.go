package game

import (
	"fmt"

	"github.com/mcoot/connectgame-go/internal/model"
	"github.com/mcoot/connectgame-go/internal/services/strategy"
)

// Prompt describes the move being asked for
type Prompt struct {
	Player    model.Player
	MinColumn int
	MaxColumn int
}

// String renders the prompt, e.g. "Player 1 [RED] - choose column (1-7): "
func (p Prompt) String() string {
	return fmt.Sprintf("%s - choose column (%d-%d): ", p.Player, p.MinColumn, p.MaxColumn)
}

// Session is one game in progress: its record, its grid, and the rules deciding it
type Session struct {
	game     *model.Game
	grid     *model.ColumnDropGrid
	strategy strategy.WinStrategy
}

// ID returns the game ID
func (s *Session) ID() model.GameID {
	return s.game.ID
}

// Game returns the game record
func (s *Session) Game() *model.Game {
	return s.game
}

// State returns the current phase of the game
func (s *Session) State() model.GameState {
	return s.game.State
}

// CurrentPlayer returns the player to move
func (s *Session) CurrentPlayer() model.Player {
	return s.game.CurrentPlayer()
}

// Winner returns the winning player once the game is won
func (s *Session) Winner() (model.Player, bool) {
	if s.game.Winner == nil {
		return model.Player{}, false
	}
	return *s.game.Winner, true
}

// Rows returns the rendered grid, top row first
func (s *Session) Rows() []string {
	return s.grid.Rows()
}

// Prompt returns the prompt for the current player
func (s *Session) Prompt() Prompt {
	return Prompt{
		Player:    s.CurrentPlayer(),
		MinColumn: 1,
		MaxColumn: s.grid.Width(),
	}
}

// Announcement returns the text shown when the game ends, or "" while it is running
func (s *Session) Announcement() string {
	switch s.game.State {
	case model.GameStateWon:
		return fmt.Sprintf("%s wins!", *s.game.Winner)
	case model.GameStateDraw:
		return "It is a draw game!"
	default:
		return ""
	}
}
