package cmd

import (
	"context"
	"fmt"
	"time"

	"mini-reconcile/core/config"
	"mini-reconcile/core/database"
	"mini-reconcile/core/logger"
	"mini-reconcile/core/reconcile"
	"mini-reconcile/core/storage"
	"mini-reconcile/feature/recon"
	"mini-reconcile/feature/statements"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the reconcile command
	rulesPath    string
	ledgerTable  string
	exportDir    string
	exportPrefix string
	maxSample    int
)

// reconcileCmd runs a one-shot reconciliation from the command line.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [internal.csv] provider.csv",
	Short: "Reconcile an internal export against a provider statement",
	Long: `Reconcile two transaction statements and report the outcome.

The internal side is either a CSV file or, with --ledger, a table read
from the ledger database. The provider side is always a CSV file.

Examples:
  # Reconcile two CSV files
  mini-reconcile reconcile internal.csv provider.csv

  # Use the ledger database as the internal side
  mini-reconcile reconcile --ledger transactions provider.csv

  # Write one CSV per category into ./out
  mini-reconcile reconcile internal.csv provider.csv --export-dir ./out

  # Upload the category CSVs to the configured bucket
  mini-reconcile reconcile internal.csv provider.csv --export-bucket reports/2026-08`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to the YAML rules file (default: RECONCILE_RULES env var, then rules.yaml)")
	reconcileCmd.Flags().StringVar(&ledgerTable, "ledger", "", "Read the internal side from this ledger database table instead of a file")
	reconcileCmd.Flags().StringVar(&exportDir, "export-dir", "", "Write one CSV per category into this directory")
	reconcileCmd.Flags().StringVar(&exportPrefix, "export-bucket", "", "Upload one CSV per category under this object prefix")
	reconcileCmd.Flags().IntVar(&maxSample, "sample", 5, "Maximum mismatched rows shown in the report")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	// Load rules: flag first, then the configured path, then the
	// engine's own resolution order.
	path := rulesPath
	if path == "" {
		path = cfg.Recon.RulesPath
	}
	rules, err := reconcile.LoadRules(path)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}

	// Connect to the ledger database only when it is the internal side.
	var db *gorm.DB
	if ledgerTable != "" {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to ledger database: %w", err)
		}
	}

	// Connect to storage only when the report is uploaded.
	var client storage.Client
	if exportPrefix != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	st := statements.NewService(client, cfg.Storage.Bucket, db, l,
		time.Duration(cfg.Recon.CacheTTLSeconds)*time.Second)
	svc := recon.NewService(st, rules, l)

	var report *reconcile.Report
	switch {
	case ledgerTable != "":
		if len(args) != 1 {
			return fmt.Errorf("with --ledger exactly one provider file is expected, got %d arguments", len(args))
		}
		report, err = svc.RunLedgerFile(ctx, ledgerTable, args[0])
	default:
		if len(args) != 2 {
			return fmt.Errorf("expected internal and provider files, got %d arguments", len(args))
		}
		report, err = svc.RunFiles(args[0], args[1])
	}
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printReport(l, report, rules)

	if exportDir != "" {
		if err := recon.ExportDir(report, exportDir); err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		l.Info("Report exported", zap.String("dir", exportDir))
	}
	if exportPrefix != "" {
		if err := recon.ExportBucket(ctx, client, cfg.Storage.Bucket, exportPrefix, report); err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
		l.Info("Report uploaded",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", exportPrefix),
		)
	}

	return nil
}

// printReport prints a formatted reconciliation report using logger.
func printReport(l *zap.Logger, report *reconcile.Report, rules *reconcile.Rules) {
	s := report.Summary

	l.Info("Reconciliation report",
		zap.Int("total", s.Total),
		zap.Int("matched", s.Matched),
		zap.Int("only_internal", s.OnlyInternal),
		zap.Int("only_provider", s.OnlyProvider),
		zap.Int("mismatched", s.Mismatched),
	)

	mismatched := report.Groups[reconcile.CategoryMismatched]
	if mismatched.Empty() {
		return
	}

	// Show a sample of mismatched rows, keyed by the merge column.
	show := maxSample
	if mismatched.Len() < show {
		show = mismatched.Len()
	}
	key := rules.MergeKey
	if renamed, ok := rules.RenameColumns[key]; ok {
		key = renamed
	}
	for i := 0; i < show; i++ {
		l.Info("Sample mismatch", zap.Any(key, mismatched.Rows[i][key]))
	}
	if mismatched.Len() > show {
		l.Info("Additional mismatches not shown", zap.Int("count", mismatched.Len()-show))
	}
}
