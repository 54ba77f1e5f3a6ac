package statements

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestLoadLedgerTable(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"transaction_reference", "amount", "status"})
	rows.AddRow("T1", int64(100), "OK")
	rows.AddRow("T2", int64(50), []byte("PENDING"))

	mock.ExpectQuery("SELECT \\* FROM `transactions`").WillReturnRows(rows)

	dataset, err := LoadLedgerTable(context.Background(), db, "transactions")
	require.NoError(t, err)

	assert.Equal(t, []string{"transaction_reference", "amount", "status"}, dataset.Columns)
	require.Equal(t, 2, dataset.Len())
	assert.Equal(t, "T1", dataset.Rows[0]["transaction_reference"])
	assert.Equal(t, int64(100), dataset.Rows[0]["amount"])
	// Driver []byte values are normalized to strings.
	assert.Equal(t, "PENDING", dataset.Rows[1]["status"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadLedgerTable_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `missing_table`").WillReturnError(assert.AnError)

	_, err := LoadLedgerTable(context.Background(), db, "missing_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_table")
}

func TestLoadLedgerTable_NilDB(t *testing.T) {
	_, err := LoadLedgerTable(context.Background(), nil, "transactions")
	assert.Error(t, err)
}

func showColumnsRows(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "varchar(64)", "YES", "", nil, "")
	}
	return rows
}

func TestVerifyLedgerColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `transactions`").
		WillReturnRows(showColumnsRows("transaction_reference", "amount", "status"))

	err := VerifyLedgerColumns(db, "transactions", []string{"transaction_reference", "amount"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyLedgerColumns_Missing(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `transactions`").
		WillReturnRows(showColumnsRows("transaction_reference", "status"))

	err := VerifyLedgerColumns(db, "transactions", []string{"transaction_reference", "amount"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestVerifyLedgerColumns_CaseInsensitive(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `transactions`").
		WillReturnRows(showColumnsRows("Transaction_Reference"))

	err := VerifyLedgerColumns(db, "transactions", []string{"TRANSACTION_REFERENCE"})
	require.NoError(t, err)
}
