package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/connectgame-go/internal/model"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	envPrefix = "CONNECTGAME_"
)

// Config holds CLI configuration
type Config struct {
	Width       int
	Height      int
	WinCount    int
	Players     string
	Rounds      int
	RandomStart bool
	Seed        uint64
	ConfigFile  string
	Output      string
	LogLevel    string

	// players read from a YAML config file, used unless --players was given
	filePlayers []model.Player
}

// DefaultConfig returns a Config with default values, overridden by the environment
func DefaultConfig() *Config {
	return &Config{
		Width:      getEnvIntOrDefault("WIDTH", model.DefaultWidth),
		Height:     getEnvIntOrDefault("HEIGHT", model.DefaultHeight),
		WinCount:   getEnvIntOrDefault("WIN_COUNT", model.DefaultWinCount),
		Players:    getEnvOrDefault("PLAYERS", "Player 1:RED,Player 2:GREEN"),
		Rounds:     1,
		ConfigFile: os.Getenv(envPrefix + "CONFIG"),
		Output:     getEnvOrDefault("OUTPUT", OutputText),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "warn"),
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// existing environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}
		return errors.Wrapf(err, "failed to load env file %s", path)
	}
	return nil
}

type filePlayer struct {
	Name   string `yaml:"name"`
	Marker string `yaml:"marker"`
}

type fileConfig struct {
	Width       *int         `yaml:"width"`
	Height      *int         `yaml:"height"`
	WinCount    *int         `yaml:"win_count"`
	Players     []filePlayer `yaml:"players"`
	Rounds      *int         `yaml:"rounds"`
	RandomStart *bool        `yaml:"random_start"`
	Output      *string      `yaml:"output"`
	LogLevel    *string      `yaml:"log_level"`
}

// ApplyFile reads the YAML config file, if one is set, and applies every
// value whose flag was not explicitly given on the command line.
func (c *Config) ApplyFile(changed func(flag string) bool) error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", c.ConfigFile)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", c.ConfigFile)
	}

	applyInt(&c.Width, fc.Width, changed("width"))
	applyInt(&c.Height, fc.Height, changed("height"))
	applyInt(&c.WinCount, fc.WinCount, changed("win-count"))
	applyInt(&c.Rounds, fc.Rounds, changed("rounds"))
	if fc.RandomStart != nil && !changed("random-start") {
		c.RandomStart = *fc.RandomStart
	}
	if fc.Output != nil && !changed("output") {
		c.Output = *fc.Output
	}
	if fc.LogLevel != nil && !changed("log-level") {
		c.LogLevel = *fc.LogLevel
	}

	if len(fc.Players) > 0 && !changed("players") {
		c.filePlayers = make([]model.Player, 0, len(fc.Players))
		for _, p := range fc.Players {
			c.filePlayers = append(c.filePlayers, model.Player{
				Name:   strings.TrimSpace(p.Name),
				Marker: model.NewMarker(p.Marker),
			})
		}
	}

	return nil
}

// GameConfig builds and validates the game configuration
func (c *Config) GameConfig() (model.GameConfig, error) {
	players := c.filePlayers
	if players == nil {
		parsed, err := ParsePlayers(c.Players)
		if err != nil {
			return model.GameConfig{}, err
		}
		players = parsed
	}

	gameCfg := model.GameConfig{
		Width:    c.Width,
		Height:   c.Height,
		WinCount: c.WinCount,
		Players:  players,
	}
	if err := gameCfg.Validate(); err != nil {
		return model.GameConfig{}, err
	}
	if c.Rounds < 1 {
		return model.GameConfig{}, fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return model.GameConfig{}, fmt.Errorf("unknown output format %q", c.Output)
	}
	return gameCfg, nil
}

// ParsePlayers parses a comma separated list of Name:MARKER pairs
func ParsePlayers(s string) ([]model.Player, error) {
	var players []model.Player
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idx := strings.LastIndex(entry, ":")
		if idx < 0 {
			return nil, fmt.Errorf("player %q must be given as Name:MARKER", entry)
		}
		players = append(players, model.Player{
			Name:   strings.TrimSpace(entry[:idx]),
			Marker: model.NewMarker(entry[idx+1:]),
		})
	}
	return players, nil
}

func applyInt(dst *int, val *int, flagChanged bool) {
	if val != nil && !flagChanged {
		*dst = *val
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(envPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(envPrefix + key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
