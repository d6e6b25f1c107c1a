package board

import (
	"log/slog"

	"github.com/mcoot/connectgame-go/internal/model"
)

// Service provides grid operations for a game session
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CreateGrid initializes an empty column-drop grid
func (s *Service) CreateGrid(width, height int) (*model.ColumnDropGrid, error) {
	return model.NewColumnDropGrid(width, height)
}

// Drop puts the player's marker into a 1-based column and returns the recorded step
func (s *Service) Drop(grid *model.ColumnDropGrid, player model.Player, column int) (model.Step, error) {
	if err := grid.Put(column, player.Marker); err != nil {
		return model.Step{}, err
	}

	step, _ := grid.LatestStep()
	change, _ := step.First()
	s.logger.Debug("marker dropped",
		slog.String("player", player.Name),
		slog.Int("column", column),
		slog.Int("row", change.Cell.Y),
	)
	return step, nil
}

// Undo reverts the latest step on the grid
func (s *Service) Undo(grid *model.ColumnDropGrid) (model.Step, error) {
	step, err := grid.PopStep()
	if err != nil {
		return model.Step{}, err
	}

	s.logger.Debug("step undone",
		slog.Int("changes", len(step.Changes)),
		slog.Int("remaining", grid.StepCount()),
	)
	return step, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateGrid(width, height int) (*model.ColumnDropGrid, error)
	Drop(grid *model.ColumnDropGrid, player model.Player, column int) (model.Step, error)
	Undo(grid *model.ColumnDropGrid) (model.Step, error)
}

var _ ServiceInterface = (*Service)(nil)
