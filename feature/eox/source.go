package eox

import (
	"context"
	"errors"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/reconcile"

	"go.uber.org/zap"
)

// PageIterator yields response pages one at a time.
type PageIterator interface {
	Next(ctx context.Context) (*ciscoapi.Page, error)
	// Done reports whether the last page has been returned.
	Done() bool
}

// pageSource adapts a PageIterator to a reconcile.Source, archiving every
// page before its records are reconciled.
type pageSource struct {
	pages   PageIterator
	archive *Archiver
	runID   string
	logger  *zap.Logger
}

func (s *pageSource) Next(ctx context.Context) (*reconcile.Batch, error) {
	page, err := s.pages.Next(ctx)
	if errors.Is(err, ciscoapi.ErrNoMorePages) {
		return &reconcile.Batch{Last: true}, nil
	}
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		key, err := s.archive.Store(ctx, s.runID, page)
		if err != nil {
			// The archive is auxiliary; losing a page copy must not fail the run
			s.logger.Warn("Failed to archive response page", zap.Int("page", page.Index), zap.Error(err))
		} else {
			s.logger.Debug("Archived response page", zap.String("key", key))
		}
	}

	items := make([]reconcile.SourceItem, len(page.Records))
	for i, rec := range page.Records {
		items[i] = rec
	}
	return &reconcile.Batch{Items: items, Last: s.pages.Done()}, nil
}
