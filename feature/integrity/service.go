package integrity

import (
	"context"
	"fmt"

	"eox-sync/core/storage"
	"eox-sync/feature/integrity/checks"
	"eox-sync/feature/notifications"
	"eox-sync/feature/products"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	region string
	pinger checks.Pinger
	logger *zap.Logger
}

// NewService creates a new integrity service. client and pinger may be nil
// when storage or the vendor API are not configured.
func NewService(db *gorm.DB, client storage.Client, bucket, region string, pinger checks.Pinger, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		region: region,
		pinger: pinger,
		logger: logger,
	}
}

// RequiredSchema returns the columns the synchronization writes, per table.
func RequiredSchema() map[string][]string {
	required := make(map[string][]string, len(products.RequiredColumns)+1)
	for table, cols := range products.RequiredColumns {
		required[table] = cols
	}
	required[notifications.Message{}.TableName()] = notifications.RequiredColumns
	return required
}

// CheckDatabase verifies the schema of every synchronized table.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, RequiredSchema())
}

// CheckStorage verifies the archive bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the archive bucket if it is missing.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := checks.FixStorage(ctx, s.client, s.bucket, s.region); err != nil {
		s.logger.Error("Failed to create archive bucket", zap.String("bucket", s.bucket), zap.Error(err))
		return err
	}
	s.logger.Info("Archive bucket ready", zap.String("bucket", s.bucket))
	return nil
}

// CheckAPI verifies connectivity to the vendor API.
func (s *Service) CheckAPI(ctx context.Context) *checks.APIReport {
	return checks.CheckAPI(ctx, s.pinger)
}
