// Package recon exposes the reconciliation engine to callers: the HTTP API
// replacing the interactive front end, the CSV exporters, and the service
// layer resolving statement datasets from their sources before handing them
// to core/reconcile.
//
// # Endpoints
//
//   - GET  /recon/rules    - the active rule set
//   - POST /recon/run      - multipart upload of the two statement CSVs
//   - POST /recon/objects  - reconcile two objects from the bucket
//
// Configuration and schema failures map to 422 so callers can tell a bad
// rule set or malformed statement apart from a server fault.
//
// # Export
//
// ExportDir and ExportBucket write one CSV per category (matched,
// only_internal, only_provider, mismatched) for download or archival.
package recon
