package cmd

import (
	"fmt"

	"register-reconciler/core/config"
	"register-reconciler/core/logger"
	"register-reconciler/feature/merge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runConfigPath string

// mergeCmd runs the full merge-and-reconcile pipeline for a run config.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge register spreadsheets and reconcile revisions",
	Long: `Merge two or three drawing-register spreadsheets on their reference
columns, run the configured metadata checks and the revision reconciler,
and write a styled output workbook.

Example:
  register-reconciler merge --config run.yaml`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&runConfigPath, "config", "run.yaml", "Path to the run configuration file")
	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	runCfg, err := merge.LoadRunConfig(runConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load run config: %w", err)
	}

	l.Info("Starting register reconciliation", zap.String("config", runConfigPath))

	service := merge.NewService(l)
	report, err := service.Run(runCfg)
	if err != nil {
		return err
	}

	l.Info("Reconciliation complete",
		zap.String("run_id", report.RunID),
		zap.Int("rows", report.Rows),
		zap.Int("flagged", report.Flagged),
		zap.String("output", report.OutputPath),
	)
	return nil
}
