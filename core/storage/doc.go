// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface used to
// archive the raw Cisco EoX response pages of every synchronization run.
// Both AWS S3 and self-hosted MinIO instances are supported.
//
// The Client interface keeps the archive mockable in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
