package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectgame-go/internal/model"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	for _, key := range []string{"WIDTH", "HEIGHT", "WIN_COUNT", "PLAYERS", "OUTPUT", "LOG_LEVEL", "CONFIG"} {
		s.T().Setenv(envPrefix+key, "")
	}
	s.dir = s.T().TempDir()
}

func (s *ConfigSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func noneChanged(string) bool { return false }

func (s *ConfigSuite) TestDefaults() {
	cfg := DefaultConfig()

	gameCfg, err := cfg.GameConfig()
	s.Require().NoError(err)
	s.Equal(model.DefaultGameConfig(), gameCfg)
	s.Equal(OutputText, cfg.Output)
	s.Equal("warn", cfg.LogLevel)
	s.Equal(1, cfg.Rounds)
}

func (s *ConfigSuite) TestEnvironmentOverridesDefaults() {
	s.T().Setenv("CONNECTGAME_WIDTH", "9")
	s.T().Setenv("CONNECTGAME_WIN_COUNT", "5")
	s.T().Setenv("CONNECTGAME_PLAYERS", "Alice:red, Bob:yellow")

	cfg := DefaultConfig()
	gameCfg, err := cfg.GameConfig()
	s.Require().NoError(err)

	s.Equal(9, gameCfg.Width)
	s.Equal(model.DefaultHeight, gameCfg.Height)
	s.Equal(5, gameCfg.WinCount)
	s.Equal([]model.Player{
		{Name: "Alice", Marker: model.NewMarker("RED")},
		{Name: "Bob", Marker: model.NewMarker("YELLOW")},
	}, gameCfg.Players)
}

func (s *ConfigSuite) TestInvalidEnvironmentIntFallsBack() {
	s.T().Setenv("CONNECTGAME_HEIGHT", "tall")
	s.Equal(model.DefaultHeight, DefaultConfig().Height)
}

func (s *ConfigSuite) TestLoadEnvFile() {
	s.T().Setenv("CONNECTGAME_HEIGHT", "")
	s.Require().NoError(os.Unsetenv("CONNECTGAME_HEIGHT"))
	path := s.writeFile(".env", "CONNECTGAME_HEIGHT=8\n")

	s.Require().NoError(LoadEnvFile(path))
	s.Equal(8, DefaultConfig().Height)
}

func (s *ConfigSuite) TestLoadEnvFileMissingIsIgnored() {
	s.NoError(LoadEnvFile(filepath.Join(s.dir, "missing.env")))
}

func (s *ConfigSuite) TestApplyFile() {
	cfg := DefaultConfig()
	cfg.ConfigFile = s.writeFile("game.yaml", `
width: 5
height: 4
win_count: 3
rounds: 2
players:
  - name: Alice
    marker: red
  - name: Bob
    marker: blue
  - name: Carol
    marker: green
`)

	s.Require().NoError(cfg.ApplyFile(noneChanged))
	gameCfg, err := cfg.GameConfig()
	s.Require().NoError(err)

	s.Equal(5, gameCfg.Width)
	s.Equal(4, gameCfg.Height)
	s.Equal(3, gameCfg.WinCount)
	s.Equal(2, cfg.Rounds)
	s.Require().Len(gameCfg.Players, 3)
	s.Equal("Carol", gameCfg.Players[2].Name)
	s.Equal("BLUE", gameCfg.Players[1].Marker.Full())
}

func (s *ConfigSuite) TestFlagsOverrideFile() {
	cfg := DefaultConfig()
	cfg.ConfigFile = s.writeFile("game.yaml", "width: 5\nplayers:\n  - name: Alice\n    marker: red\n")
	cfg.Width = 11
	cfg.Players = "Xavier:X,Olive:O"

	changed := func(flag string) bool { return flag == "width" || flag == "players" }
	s.Require().NoError(cfg.ApplyFile(changed))

	gameCfg, err := cfg.GameConfig()
	s.Require().NoError(err)
	s.Equal(11, gameCfg.Width)
	s.Equal("Xavier", gameCfg.Players[0].Name)
}

func (s *ConfigSuite) TestApplyFileErrors() {
	cfg := DefaultConfig()
	cfg.ConfigFile = filepath.Join(s.dir, "missing.yaml")
	s.Error(cfg.ApplyFile(noneChanged))

	cfg.ConfigFile = s.writeFile("bad.yaml", "width: [")
	s.Error(cfg.ApplyFile(noneChanged))
}

func (s *ConfigSuite) TestGameConfigValidation() {
	cfg := DefaultConfig()
	cfg.Players = "Solo:RED"
	_, err := cfg.GameConfig()
	s.ErrorIs(err, model.ErrInsufficientPlayers)

	cfg = DefaultConfig()
	cfg.Players = "A:RED,B:red"
	_, err = cfg.GameConfig()
	s.ErrorIs(err, model.ErrDuplicateMarker)

	cfg = DefaultConfig()
	cfg.Rounds = 0
	_, err = cfg.GameConfig()
	s.Error(err)

	cfg = DefaultConfig()
	cfg.Output = "yaml"
	_, err = cfg.GameConfig()
	s.Error(err)
}

func (s *ConfigSuite) TestParsePlayers() {
	players, err := ParsePlayers("Team: Blue:BLUE, Red:RED,")
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Team: Blue", players[0].Name)
	s.Equal("BLUE", players[0].Marker.Full())

	_, err = ParsePlayers("Alice")
	s.Error(err)
}
