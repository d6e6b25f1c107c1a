package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connectgame",
		Short: "Play connect-four style games in the terminal",
		Long: `connectgame is a terminal game where players take turns dropping markers
into the columns of a grid. The first player to line up enough markers
horizontally, vertically or diagonally wins.

Settings are read from a .env file, CONNECTGAME_* environment variables,
an optional YAML config file and command line flags, later sources taking
precedence.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.ApplyFile(cmd.Flags().Changed)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file (env: CONNECTGAME_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: CONNECTGAME_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: CONNECTGAME_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "connectgame %s\n", Version)
		},
	}
}

// Run executes cmd and reports a failure in the configured output format
func Run(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		NewOutput(cfg.Output, cmd.ErrOrStderr()).PrintError(err)
	}
	return err
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if err := Run(ctx, NewRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
