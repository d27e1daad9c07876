// Package main provides the entry point for the student portfolio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/student-portfolio/internal/board"
	"github.com/jonathan/student-portfolio/internal/config"
)

var (
	configPath string
	boardPath  string
	verbose    bool

	// settings is the merged configuration for the running command
	settings = config.Default()

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Student portfolio ingestion toolkit",
	Long: `portfolio turns spreadsheet exports and JSON uploads into student portfolios.

Download the CSV template, fill one row per student, then import it (or full JSON
profiles) into the students board. Configuration can be loaded from a JSON file
using --config. Command-line arguments override config file values.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		resolved, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		settings = resolved

		zapCfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(settings.LogLevel)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if settings.Verbose {
			level = zapcore.DebugLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&boardPath, "board", "", "Path to the students board file (overrides $"+config.BoardEnvVar+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveSettings layers defaults, the config file, the environment and flags
func resolveSettings(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg, err := cfg.MergeWithDefaults(config.Default())
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("board") {
		cfg.BoardPath = boardPath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	return cfg, nil
}

func openBoard() (*board.Board, error) {
	b, err := board.Open(settings.BoardPath, board.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	return b, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
