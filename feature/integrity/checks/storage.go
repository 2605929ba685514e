package checks

import (
	"context"
	"fmt"

	"eox-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ArchivePrefix is the key prefix of archived response pages.
const ArchivePrefix = "eox/"

// StorageReport is the result of an archive bucket check.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	// HasPages reports whether at least one page was archived.
	HasPages bool `json:"has_pages"`
}

// CheckStorage reports whether the archive bucket exists and holds pages.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    ArchivePrefix,
		Recursive: true,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		report.HasPages = true
		break
	}

	return report, nil
}

// FixStorage creates the archive bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string) error {
	return storage.EnsureBucket(ctx, client, bucket, region)
}
