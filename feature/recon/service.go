package recon

import (
	"context"

	"mini-reconcile/core/reconcile"
	"mini-reconcile/core/table"
	"mini-reconcile/feature/statements"

	"go.uber.org/zap"
)

// Service orchestrates reconciliation runs: it resolves the two input
// datasets through the statements service, runs the engine and logs the
// outcome. The engine itself stays pure; all I/O lives here.
type Service struct {
	statements *statements.Service
	rules      *reconcile.Rules
	logger     *zap.Logger
}

// NewService creates a reconciliation service bound to a fixed rule set.
func NewService(st *statements.Service, rules *reconcile.Rules, logger *zap.Logger) *Service {
	return &Service{statements: st, rules: rules, logger: logger}
}

// Rules returns the active rule set.
func (s *Service) Rules() *reconcile.Rules {
	return s.rules
}

// Run reconciles two already-loaded datasets.
func (s *Service) Run(internal, provider *table.Dataset) (*reconcile.Report, error) {
	report, err := reconcile.Reconcile(internal, provider, s.rules)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation complete",
		zap.Int("total", report.Summary.Total),
		zap.Int("matched", report.Summary.Matched),
		zap.Int("only_internal", report.Summary.OnlyInternal),
		zap.Int("only_provider", report.Summary.OnlyProvider),
		zap.Int("mismatched", report.Summary.Mismatched),
	)
	return report, nil
}

// RunFiles reconciles two statement CSV files from disk.
func (s *Service) RunFiles(internalPath, providerPath string) (*reconcile.Report, error) {
	internal, err := s.statements.FromFile(internalPath, statements.LabelInternal)
	if err != nil {
		return nil, err
	}
	provider, err := s.statements.FromFile(providerPath, statements.LabelProvider)
	if err != nil {
		return nil, err
	}
	return s.Run(internal, provider)
}

// RunObjects reconciles two statement CSVs stored in the configured bucket.
func (s *Service) RunObjects(ctx context.Context, internalObject, providerObject string) (*reconcile.Report, error) {
	internal, err := s.statements.FromObject(ctx, internalObject, statements.LabelInternal)
	if err != nil {
		return nil, err
	}
	provider, err := s.statements.FromObject(ctx, providerObject, statements.LabelProvider)
	if err != nil {
		return nil, err
	}
	return s.Run(internal, provider)
}

// RunLedgerFile reconciles the ledger database table (internal side)
// against a provider statement CSV from disk.
func (s *Service) RunLedgerFile(ctx context.Context, tableName, providerPath string) (*reconcile.Report, error) {
	required := []string{s.rules.MergeKey}
	for _, pair := range s.rules.ComparisonPairs {
		required = append(required, pair.Base)
	}

	internal, err := s.statements.FromLedger(ctx, tableName, required...)
	if err != nil {
		return nil, err
	}
	provider, err := s.statements.FromFile(providerPath, statements.LabelProvider)
	if err != nil {
		return nil, err
	}
	return s.Run(internal, provider)
}
