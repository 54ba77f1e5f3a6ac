// Package table defines the in-memory tabular data model shared by the
// dataset loaders and the reconciliation engine.
//
// A Dataset is an ordered list of rows under a declared column schema.
// Rows map column names to tagged scalar values (nil, string, int64,
// float64, bool), which keeps field access configuration-driven: the
// engine resolves comparison columns by computed name instead of relying
// on fixed structs.
//
// Datasets are inputs only. The engine never mutates them; derived tables
// are built from cloned rows.
package table
