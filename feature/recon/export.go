package recon

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"mini-reconcile/core/reconcile"
	"mini-reconcile/core/storage"
	"mini-reconcile/core/table"
	"mini-reconcile/core/utils"

	"github.com/minio/minio-go/v7"
)

// exportFilenames maps categories to their export file names.
var exportFilenames = map[reconcile.Category]string{
	reconcile.CategoryMatched:      "matched.csv",
	reconcile.CategoryOnlyInternal: "only_internal.csv",
	reconcile.CategoryOnlyProvider: "only_provider.csv",
	reconcile.CategoryMismatched:   "mismatched.csv",
}

// EncodeCSV renders a dataset as CSV with the schema order preserved.
func EncodeCSV(dataset *table.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(dataset.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(dataset.Columns))
	for _, row := range dataset.Rows {
		for i, col := range dataset.Columns {
			record[i] = utils.FormatScalar(row[col])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportDir writes one CSV per category into the given directory,
// creating it if needed.
func ExportDir(report *reconcile.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir %s: %w", dir, err)
	}

	for cat, name := range exportFilenames {
		data, err := EncodeCSV(report.Groups[cat])
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// ExportBucket uploads one CSV per category under the given object prefix.
func ExportBucket(ctx context.Context, client storage.Client, bucket, prefix string, report *reconcile.Report) error {
	for cat, name := range exportFilenames {
		data, err := EncodeCSV(report.Groups[cat])
		if err != nil {
			return err
		}

		objectName := prefix + "/" + name
		_, err = client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "text/csv"})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", objectName, err)
		}
	}
	return nil
}
