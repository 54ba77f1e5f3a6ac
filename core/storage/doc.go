// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client for the two storage concerns of the
// reconciliation service: fetching statement CSVs stored as objects and
// exporting per-category result CSVs. The abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to
// mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "statements")
package storage
