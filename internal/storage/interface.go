package storage

import (
	"context"

	"github.com/mcoot/connectgame-go/internal/model"
)

// Storage defines the interface for game records kept by the process
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
}
