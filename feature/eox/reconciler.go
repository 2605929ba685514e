package eox

import (
	"context"
	"time"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/metrics"
	"eox-sync/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// TokenSource supplies bearer tokens for the vendor API.
type TokenSource interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// PageLister opens a pager over the results of one query.
type PageLister interface {
	Pages(query string, token *oauth2.Token) *ciscoapi.Pager
}

// Request describes the reconciliation of one query.
type Request struct {
	RunID         string
	Query         string
	Blacklist     *Blacklist
	CreateMissing bool
	DryRun        bool
	Vendor        string
}

// Reconciler synchronizes the products matching one query pattern.
type Reconciler struct {
	tokens  TokenSource
	api     PageLister
	store   ProductStore
	archive *Archiver
	logger  *zap.Logger
}

// NewReconciler creates a new reconciler. archive may be nil.
func NewReconciler(tokens TokenSource, api PageLister, store ProductStore, archive *Archiver, logger *zap.Logger) *Reconciler {
	return &Reconciler{tokens: tokens, api: api, store: store, archive: archive, logger: logger}
}

// Reconcile fetches every page of the query and applies one action per
// returned product, in arrival order. A failed token request aborts before
// any page is fetched. Any later error stops the query and returns the
// actions applied so far; those mutations are kept.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*reconcile.Result, error) {
	log := r.logger.With(zap.String("query", req.Query))

	token, err := r.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	filter := req.Blacklist
	if filter == nil {
		filter = &Blacklist{}
	}

	spec := &reconcile.Spec{
		Adapter: NewProductAdapter(r.store, req.Vendor),
		Filter:  filter,
		Options: reconcile.Options{
			CreateMissing: req.CreateMissing,
			DryRun:        req.DryRun,
		},
	}

	source := &pageSource{
		pages:   r.api.Pages(req.Query, token),
		archive: r.archive,
		runID:   req.RunID,
		logger:  log,
	}

	start := time.Now()
	result, err := reconcile.Run(ctx, spec, source)
	if result != nil && !req.DryRun {
		for _, a := range result.Actions {
			metrics.SyncActions.WithLabelValues(string(a.Type)).Inc()
		}
	}
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if result != nil {
			fields = append(fields, zap.Int("applied", result.Summary.Created+result.Summary.Updated))
		}
		log.Error("Query reconciliation aborted", fields...)
		return result, err
	}

	log.Info("Query reconciled",
		zap.Int("created", result.Summary.Created),
		zap.Int("updated", result.Summary.Updated),
		zap.Int("unchanged", result.Summary.Unchanged),
		zap.Int("blacklisted", result.Summary.Blacklisted),
		zap.Int("missing", result.Summary.Missing),
		zap.Duration("duration", time.Since(start)))
	return result, nil
}
