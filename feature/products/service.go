package products

import (
	"context"

	"go.uber.org/zap"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Service provides read access to the product catalog.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new product service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the product detail, or nil when the product is unknown.
func (s *Service) Get(ctx context.Context, productID string) (*ProductDetail, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil || p == nil {
		return nil, err
	}

	opts, err := s.repo.MigrationOptions(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: *p, MigrationOptions: opts}, nil
}

// List returns one page of products. Out-of-range bounds are clamped.
func (s *Service) List(ctx context.Context, offset, limit int) (*ProductPage, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &ProductPage{Items: items, Total: total, Offset: offset, Limit: limit}, nil
}
