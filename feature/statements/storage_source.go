package statements

import (
	"context"
	"fmt"

	"mini-reconcile/core/storage"
	"mini-reconcile/core/table"

	"github.com/minio/minio-go/v7"
)

// LoadObject fetches a statement CSV stored as an object and parses it.
func LoadObject(ctx context.Context, client storage.Client, bucket, objectName, label string) (*table.Dataset, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to fetch object %s: %w", label, objectName, err)
	}
	defer obj.Close()

	dataset, err := ParseCSV(obj, label)
	if err != nil {
		return nil, err
	}

	return dataset, nil
}
