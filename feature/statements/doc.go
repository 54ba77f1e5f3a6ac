// Package statements loads transaction statement datasets from the sources
// the reconciliation service supports:
//
//   - CSV files (uploads and local paths), parsed with light scalar
//     inference so amounts compare as numbers and references as strings
//   - objects in the configured storage bucket, optionally cached with a
//     TTL and singleflight stampede protection
//   - the internal ledger database, read column-driven so any table schema
//     containing the configured columns works unmapped
//
// For the engine the package is an input boundary: it produces immutable
// table.Dataset values for core/reconcile and never writes to the ledger.
// The bucket itself is managed here too; the HTTP feature lists, uploads
// and removes statement objects, validating each CSV before it is stored.
package statements
