package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/connectgame-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:     "game-1",
		Config: model.DefaultGameConfig(),
		State:  model.GameStateAwaitingMove,
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.State, retrieved.State)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveGameOverwrites() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", State: model.GameStateAwaitingMove})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", State: model.GameStateDraw})

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.GameStateDraw, retrieved.State)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 1)
}

func (s *StorageSuite) TestListGamesOldestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "c", CreatedAt: base.Add(2 * time.Minute)})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "a", CreatedAt: base})
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "b", CreatedAt: base})

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal(model.GameID("a"), games[0].ID)
	s.Equal(model.GameID("b"), games[1].ID)
	s.Equal(model.GameID("c"), games[2].ID)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

