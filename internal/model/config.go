package model

import "github.com/pkg/errors"

// Defaults for the reference Connect-Four game
const (
	DefaultWidth    = 7
	DefaultHeight   = 6
	DefaultWinCount = 4
)

// GameConfig holds the settings a game session is created with
type GameConfig struct {
	Width    int
	Height   int
	WinCount int
	Players  []Player
}

// DefaultGameConfig returns the 7x6 connect-four configuration with two players
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		WinCount: DefaultWinCount,
		Players: []Player{
			{Name: "Player 1", Marker: NewMarker("RED")},
			{Name: "Player 2", Marker: NewMarker("GREEN")},
		},
	}
}

// Validate checks the configuration can start a game
func (c GameConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidDimension
	}
	if c.WinCount < 1 {
		return ErrInvalidWinCount
	}
	if len(c.Players) < 2 {
		return ErrInsufficientPlayers
	}

	// the grid draws markers by their short label, so those must differ too
	labels := make(map[string]string, len(c.Players))
	names := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Marker.IsEmpty() {
			return errors.Wrapf(ErrMissingMarker, "player %q", p.Name)
		}
		if other, ok := labels[p.Marker.Short()]; ok {
			return errors.Wrapf(ErrDuplicateMarker, "%s and %s are both drawn as %s", other, p.Marker.Full(), p.Marker.Short())
		}
		labels[p.Marker.Short()] = p.Marker.Full()
		if names[p.Name] {
			return errors.Wrapf(ErrDuplicatePlayer, "%q", p.Name)
		}
		names[p.Name] = true
	}
	return nil
}
