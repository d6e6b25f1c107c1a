package game

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/mcoot/connectgame-go/internal/dependencies/clock"
	"github.com/mcoot/connectgame-go/internal/dependencies/random"
	"github.com/mcoot/connectgame-go/internal/model"
	"github.com/mcoot/connectgame-go/internal/services/board"
	"github.com/mcoot/connectgame-go/internal/services/strategy"
	"github.com/mcoot/connectgame-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// MoveProvider asks a player for their next move. It blocks until it has a
// well-formed drop or undo request, rejecting malformed input itself.
type MoveProvider interface {
	NextMove(ctx context.Context, prompt Prompt) (model.Move, error)
}

// Display shows the grid and plain status lines to the players
type Display interface {
	ShowGrid(rows []string)
	ShowStatus(line string)
}

// Controller manages the turn state machine and game flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateGame starts a new session with the player at firstIdx to move
func (c *Controller) CreateGame(ctx context.Context, cfg model.GameConfig, firstIdx int) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if firstIdx < 0 || firstIdx >= len(cfg.Players) {
		return nil, errors.Wrapf(model.ErrInvalidState, "first player index %d", firstIdx)
	}

	grid, err := c.boardService.CreateGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	rules, err := strategy.NewConnectStrategy(cfg.WinCount)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		Config:     cfg,
		State:      model.GameStateAwaitingMove,
		CurrentIdx: firstIdx,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("win_count", cfg.WinCount),
		slog.Int("player_count", len(cfg.Players)),
	)

	return &Session{game: game, grid: grid, strategy: rules}, nil
}

// GetGame retrieves a game record by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// Submit applies one move for the current player. Move errors leave the turn
// with the same player.
func (c *Controller) Submit(ctx context.Context, session *Session, move model.Move) error {
	game := session.game
	if game.State.IsOver() {
		return model.ErrGameComplete
	}

	switch move.Kind {
	case model.MoveDrop:
		return c.drop(ctx, session, move.Column)
	case model.MoveUndo:
		return c.undo(ctx, session)
	default:
		return errors.Wrapf(model.ErrInvalidState, "unknown move kind %q", move.Kind)
	}
}

func (c *Controller) drop(ctx context.Context, session *Session, column int) error {
	game := session.game
	player := game.CurrentPlayer()

	step, err := c.boardService.Drop(session.grid, player, column)
	if err != nil {
		return err
	}
	game.State = model.GameStateMoveApplied
	game.MoveCount++

	switch {
	case session.strategy.IsWin(session.grid, step):
		game.State = model.GameStateWon
		game.Winner = &player
	case session.strategy.IsDraw(session.grid):
		game.State = model.GameStateDraw
	default:
		game.CurrentIdx = (game.CurrentIdx + 1) % len(game.Config.Players)
		game.State = model.GameStateAwaitingMove
	}
	game.UpdatedAt = c.clock.Now()

	if game.State.IsOver() {
		c.logger.Info("game completed",
			slog.String("game_id", string(game.ID)),
			slog.String("state", string(game.State)),
			slog.String("winner", game.Summary().Winner),
			slog.Int("moves", game.MoveCount),
		)
	}

	return c.storage.SaveGame(ctx, game)
}

func (c *Controller) undo(ctx context.Context, session *Session) error {
	game := session.game
	if _, err := c.boardService.Undo(session.grid); err != nil {
		return err
	}

	n := len(game.Config.Players)
	game.CurrentIdx = (game.CurrentIdx + n - 1) % n
	game.MoveCount--
	game.UndoCount++
	game.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, game)
}

// Run plays the session to the end, asking moves for the current player and
// showing the grid before every turn. It returns nil once the game is won or
// drawn, and any error that is not a retryable move error.
func (c *Controller) Run(ctx context.Context, session *Session, moves MoveProvider, display Display) error {
	for !session.State().IsOver() {
		display.ShowGrid(session.Rows())

		move, err := moves.NextMove(ctx, session.Prompt())
		if err != nil {
			return err
		}

		err = c.Submit(ctx, session, move)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrNothingToUndo):
			display.ShowStatus("Nothing to undo.")
		case model.IsUserError(err):
			display.ShowStatus(fmt.Sprintf("%s, please select a valid column.", userMessage(err)))
		default:
			c.logger.Error("game aborted",
				slog.String("game_id", string(session.ID())),
				slog.String("error", err.Error()),
			)
			return err
		}
	}

	display.ShowGrid(session.Rows())
	display.ShowStatus(session.Announcement())
	return nil
}

// userMessage strips the sentinel from a wrapped move error, leaving the reason
func userMessage(err error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+errors.Cause(err).Error())
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// Standings tallies the finished games kept in storage
type Standings struct {
	Games int
	Draws int
	Wins  map[string]int
}

// Names returns the players with at least one win, sorted by name
func (s Standings) Names() []string {
	names := make([]string, 0, len(s.Wins))
	for name := range s.Wins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Standings returns the tally of all finished games
func (c *Controller) Standings(ctx context.Context) (Standings, error) {
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return Standings{}, err
	}

	result := Standings{Wins: make(map[string]int)}
	for _, g := range games {
		if !g.State.IsOver() {
			continue
		}
		summary := g.Summary()
		result.Games++
		if summary.Winner == "" {
			result.Draws++
		} else {
			result.Wins[summary.Winner]++
		}
	}
	return result, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, cfg model.GameConfig, firstIdx int) (*Session, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	Submit(ctx context.Context, session *Session, move model.Move) error
	Run(ctx context.Context, session *Session, moves MoveProvider, display Display) error
	Standings(ctx context.Context) (Standings, error)
}

var _ ControllerInterface = (*Controller)(nil)
