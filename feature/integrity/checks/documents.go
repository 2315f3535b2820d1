package checks

import (
	"context"
	"fmt"

	"asset-editor/core/storage"
)

// CheckDocuments returns the definition document keys absent from bucket.
func CheckDocuments(ctx context.Context, client storage.Client, bucket string, keys []string) ([]string, error) {
	var missing []string
	for _, key := range keys {
		ok, err := storage.ObjectExists(ctx, client, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", key, err)
		}
		if !ok {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
