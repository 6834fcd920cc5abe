// Package root contains the root command for the application.
package root

import (
	"fmt"

	"fjacquet/budget-planner/internal/classifier"
	"fjacquet/budget-planner/internal/config"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands, configured from the
	// loaded configuration before any subcommand runs.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "budget-planner",
		Short: "A CLI tool to track transactions, budgets, and monthly summaries.",
		Long: `budget-planner records income and expense transactions in a local SQLite
database, suggests categories for free-text descriptions by keyword matching,
tracks per-category monthly budget limits, and produces summaries, trend
reports, and CSV/JSON exports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-planner!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
		SilenceUsage: true,
	}
)

// OpenStore opens the configured SQLite database. Callers own the returned
// store and must Close it.
func OpenStore() (*store.Store, error) {
	if Cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return store.New(Cfg.DatabasePath(), Log)
}

// NewClassifier builds a classifier over the configured keyword tables,
// falling back to the built-in tables when no override file exists.
func NewClassifier() (*classifier.Classifier, error) {
	file := ""
	if Cfg != nil {
		file = Cfg.Categories.File
	}
	tables, err := classifier.LoadTables(file)
	if err != nil {
		return nil, fmt.Errorf("load keyword tables: %w", err)
	}
	return classifier.NewWithTables(tables, Log), nil
}
