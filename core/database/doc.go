// Package database handles the connection to the internal ledger database.
//
// It wraps GORM to configure MySQL connections from the application
// configuration. The database is strictly an input boundary: the statement
// loader reads ledger rows into a dataset and nothing is ever written back.
//
// # Schema Inspection
//
// GetTableColumns retrieves a table's column definitions so the loader can
// verify that the configured merge key and comparison columns exist before
// reading the table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "transactions")
package database
