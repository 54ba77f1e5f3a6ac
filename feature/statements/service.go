package statements

import (
	"context"
	"time"

	"mini-reconcile/core/storage"
	"mini-reconcile/core/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Canonical dataset labels used in error messages and logs.
const (
	LabelInternal = "Internal System Export"
	LabelProvider = "Provider Statement"
)

// Service loads statement datasets from the supported sources: uploaded or
// on-disk CSV files, storage objects, and the ledger database.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
	cache  *DatasetCache
}

// NewService creates a statement loading service. client and db may be nil
// when the corresponding source is not configured.
func NewService(client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
		cache:  NewDatasetCache(cacheTTL),
	}
}

// FromFile loads a statement CSV from disk.
func (s *Service) FromFile(path, label string) (*table.Dataset, error) {
	dataset, err := LoadCSVFile(path, label)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Statement loaded",
		zap.String("label", label),
		zap.String("path", path),
		zap.Int("rows", dataset.Len()),
	)
	return dataset, nil
}

// FromObject loads a statement CSV from the configured bucket, using the
// dataset cache when enabled.
func (s *Service) FromObject(ctx context.Context, objectName, label string) (*table.Dataset, error) {
	dataset, err := s.cache.Load(ctx, s.client, s.bucket, objectName, label)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Statement loaded",
		zap.String("label", label),
		zap.String("object", objectName),
		zap.Int("rows", dataset.Len()),
	)
	return dataset, nil
}

// FromLedger loads the internal dataset from the ledger database table.
// When required columns are given, the table schema is verified first.
func (s *Service) FromLedger(ctx context.Context, tableName string, required ...string) (*table.Dataset, error) {
	if s.db != nil && len(required) > 0 {
		if err := VerifyLedgerColumns(s.db, tableName, required); err != nil {
			return nil, err
		}
	}

	dataset, err := LoadLedgerTable(ctx, s.db, tableName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Statement loaded",
		zap.String("label", LabelInternal),
		zap.String("table", tableName),
		zap.Int("rows", dataset.Len()),
	)
	return dataset, nil
}
