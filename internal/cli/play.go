package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mcoot/connectgame-go/internal/factory"
	"github.com/mcoot/connectgame-go/internal/model"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one or more games in the terminal",
		Long: `Play games on a shared terminal, each player entering a column in turn.

Enter a column number to drop a marker, "u" or "undo" to take back the
last move, or "q" or "quit" to abandon the game.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}

	cmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "Grid width (env: CONNECTGAME_WIDTH)")
	cmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "Grid height (env: CONNECTGAME_HEIGHT)")
	cmd.Flags().IntVar(&cfg.WinCount, "win-count", cfg.WinCount, "Markers in a row needed to win (env: CONNECTGAME_WIN_COUNT)")
	cmd.Flags().StringVar(&cfg.Players, "players", cfg.Players, "Players as Name:MARKER,... (env: CONNECTGAME_PLAYERS)")
	cmd.Flags().IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Number of games to play, rotating the first player")
	cmd.Flags().BoolVar(&cfg.RandomStart, "random-start", cfg.RandomStart, "Pick the first player of the first round at random")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for game IDs and the random start (0 picks a fresh seed)")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	factoryCfg := factory.Config{Logger: logger}
	if cfg.Seed != 0 {
		seed := cfg.Seed
		factoryCfg.Seed = &seed
	}
	app := factory.New(factoryCfg)

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	input := NewConsoleInput(cmd.InOrStdin(), out)

	return recoverGame(logger, func() error {
		return playRounds(cmd.Context(), app, gameCfg, out, input)
	})
}

// playRounds plays the configured number of games, rotating the first player
func playRounds(ctx context.Context, app *factory.App, gameCfg model.GameConfig, out *Output, input *ConsoleInput) error {
	playerCount := len(gameCfg.Players)
	first := 0
	if cfg.RandomStart {
		first = app.Random.Intn(playerCount)
	}

	for round := 0; round < cfg.Rounds; round++ {
		if cfg.Rounds > 1 {
			out.ShowStatus(fmt.Sprintf("Round %d of %d", round+1, cfg.Rounds))
		}

		session, err := app.GameController.CreateGame(ctx, gameCfg, (first+round)%playerCount)
		if err != nil {
			return err
		}

		err = app.GameController.Run(ctx, session, input, out)
		if errors.Is(err, model.ErrGameAbandoned) {
			out.ShowStatus("Game abandoned.")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return errors.New("input ended before the game finished")
		}
		if err != nil {
			return err
		}
	}

	if cfg.Rounds > 1 {
		standings, err := app.GameController.Standings(ctx)
		if err != nil {
			return err
		}
		out.PrintStandings(standings, gameCfg.Players)
	}

	return nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
