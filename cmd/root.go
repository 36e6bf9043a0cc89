package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/logging"
	"github.com/abhisek/adaptiq/internal/profile"
	"github.com/abhisek/adaptiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adaptiq",
	Short: "Adaptive mastery tracking and quiz composition",
	Long:  "Adaptiq tracks per-topic mastery with a Bayesian estimator and composes quizzes matched to each child's current state.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIQ_DB env var)")
	rootCmd.PersistentFlags().String("child", "", "Child identifier")
	rootCmd.PersistentFlags().Int("grade", 0, "Grade level (overrides ADAPTIQ_GRADE env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(probesCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles the dependencies every subcommand needs.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	store   *store.Store
	service *profile.Service
}

// newEnv loads config, opens the store, and wires the profile service.
// Callers must Close.
func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if g, _ := cmd.Flags().GetInt("grade"); g > 0 {
		cfg.Grade = g
	}

	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &env{
		cfg:     cfg,
		log:     logger,
		store:   st,
		service: profile.NewService(st, logger, cfg.Grade),
	}, nil
}

func (e *env) Close() {
	e.store.Close()
	_ = e.log.Sync()
}

// childID resolves the --child flag, required by most subcommands.
func childID(cmd *cobra.Command) (string, error) {
	id, _ := cmd.Flags().GetString("child")
	if id == "" {
		return "", fmt.Errorf("--child is required")
	}
	return id, nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADAPTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
