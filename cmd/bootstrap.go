package cmd

import (
	"context"
	"fmt"
	"net/http"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/config"
	"eox-sync/core/database"
	"eox-sync/core/logger"
	"eox-sync/core/storage"
	"eox-sync/feature/eox"
	"eox-sync/feature/notifications"
	"eox-sync/feature/products"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the components shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB

	// store is nil when the storage client could not be created.
	store storage.Client
	// archive is nil unless payload archiving is enabled.
	archive *eox.Archiver

	products      *products.Repository
	notifications *notifications.Repository

	tokens *ciscoapi.TokenProvider
	client *ciscoapi.Client
}

// bootstrap loads the configuration and wires storage, database and the
// Cisco client.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.EoX.APIEnabled && !cfg.Cisco.HasCredentials() {
		logg.Warn("Cisco EoX API is enabled but no client credentials are configured")
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	rt := &runtime{
		cfg:           cfg,
		logger:        logg,
		db:            db,
		products:      products.NewRepository(db),
		notifications: notifications.NewRepository(db),
	}

	if cfg.Database.AutoMigrate {
		if err := rt.products.Migrate(ctx); err != nil {
			return nil, err
		}
		if err := rt.notifications.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	if store, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
	} else {
		rt.store = store
	}

	if cfg.EoX.ArchivePayloads {
		if rt.store == nil {
			return nil, fmt.Errorf("payload archiving requires a storage client")
		}
		if err := storage.EnsureBucket(ctx, rt.store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Archive bucket not ready", zap.Error(err))
		}
		rt.archive = eox.NewArchiver(rt.store, cfg.Storage.Bucket, logg)
	}

	httpClient := &http.Client{Timeout: cfg.Cisco.Timeout()}
	rt.tokens = ciscoapi.NewTokenProvider(cfg.Cisco, httpClient, logg)
	rt.client = ciscoapi.NewClient(cfg.Cisco, rt.tokens, httpClient, logg)

	return rt, nil
}

// orchestrator wires a synchronization orchestrator writing notifications.
func (rt *runtime) orchestrator() *eox.Orchestrator {
	reconciler := eox.NewReconciler(rt.tokens, rt.client, rt.products, rt.archive, rt.logger)
	return eox.NewOrchestrator(reconciler, rt.client, rt.notifications.Publisher(eox.NotificationTitle), rt.logger)
}

func (rt *runtime) close() {
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rt.logger.Sync()
}
