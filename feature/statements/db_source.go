package statements

import (
	"context"
	"fmt"
	"strings"

	"mini-reconcile/core/database"
	"mini-reconcile/core/table"
	"mini-reconcile/core/utils"

	"gorm.io/gorm"
)

// VerifyLedgerColumns checks that the ledger table contains every required
// column before the full read, so a misconfigured merge key fails with a
// clear error instead of a dataset-level one. Names compare
// case-insensitively, matching MySQL identifier behavior.
func VerifyLedgerColumns(db *gorm.DB, tableName string, required []string) error {
	columns, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return err
	}

	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Field] = true
	}
	for _, name := range required {
		if !have[strings.ToLower(name)] {
			return fmt.Errorf("ledger table %s has no column %s", tableName, name)
		}
	}
	return nil
}

// LoadLedgerTable reads an entire ledger table into a dataset. The column
// set is taken from the query result, so any ledger schema containing the
// configured merge key and comparison columns works without mapping code.
func LoadLedgerTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Dataset, error) {
	if db == nil {
		return nil, fmt.Errorf("ledger database is not configured")
	}

	query := fmt.Sprintf("SELECT * FROM `%s`", tableName)
	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for %s: %w", tableName, err)
	}

	dataset := table.New(columns...)

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", tableName, err)
		}

		row := make(table.Row, len(columns))
		for i, name := range columns {
			row[name] = utils.NormalizeScalar(values[i])
		}
		dataset.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", tableName, err)
	}

	return dataset, nil
}
