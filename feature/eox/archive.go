package eox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"time"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned when payload archiving is not configured.
var ErrArchiveDisabled = errors.New("payload archive is disabled")

const archivePrefix = "eox/"

// ArchivedPage describes one stored response page.
type ArchivedPage struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archiver writes raw EoX response pages to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchiver creates a new archiver writing to bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// ObjectKey returns the key of one page of a run.
func ObjectKey(query, runID string, page int) string {
	return fmt.Sprintf("%s%s/%s/page-%04d.json", archivePrefix, url.PathEscape(query), runID, page)
}

// Store uploads the raw body of page and returns its key.
func (a *Archiver) Store(ctx context.Context, runID string, page *ciscoapi.Page) (string, error) {
	key := ObjectKey(page.Query, runID, page.Index)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(page.Raw), int64(len(page.Raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return key, nil
}

// List returns the archived pages of a query, newest first. An empty
// query lists every archived page.
func (a *Archiver) List(ctx context.Context, query string) ([]ArchivedPage, error) {
	prefix := archivePrefix
	if query != "" {
		prefix += url.PathEscape(query) + "/"
	}

	out := []ArchivedPage{}
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		out = append(out, ArchivedPage{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastModified.Equal(out[j].LastModified) {
			return out[i].Key < out[j].Key
		}
		return out[i].LastModified.After(out[j].LastModified)
	})
	return out, nil
}

// Get returns the raw body of an archived page.
func (a *Archiver) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return body, nil
}
