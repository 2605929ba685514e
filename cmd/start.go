package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"eox-sync/core/jobs"
	"eox-sync/core/loader"
	"eox-sync/core/logger"
	"eox-sync/core/metrics"
	"eox-sync/core/middleware/auth"
	"eox-sync/core/middleware/rayid"
	"eox-sync/feature/eox"
	"eox-sync/feature/integrity"
	"eox-sync/feature/integrity/checks"
	"eox-sync/feature/notifications"
	"eox-sync/feature/products"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "eox-sync/docs/swagger"
)

// @title EoX Sync API
// @version 1.0
// @description API for synchronizing product lifecycle data with the Cisco EoX API.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the synchronization server",
	Long:  `Starts the HTTP server, the periodic synchronization and all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.logger

		// 1. Background jobs and the synchronization service
		runner := jobs.NewRunner(logg, jobs.DefaultHistory)
		service := eox.NewService(rt.orchestrator(), runner, rt.cfg.EoX, rt.archive, logg)

		var pinger checks.Pinger
		if rt.cfg.EoX.APIEnabled {
			pinger = rt.client
		}

		// 2. Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(integrity.NewFeature(rt.db, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, pinger, logg))
		mgr.Register(products.NewFeature(rt.products, logg))
		mgr.Register(notifications.NewFeature(rt.notifications, logg))
		mgr.Register(eox.NewFeature(service))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("API key not set, authentication disabled")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 3. Periodic synchronization
		scheduler := eox.NewScheduler(service, rt.cfg.EoX.SyncInterval(), logg)
		if rt.cfg.EoX.APIEnabled {
			scheduler.Start()
		}

		// 4. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", rt.cfg.Server.Addr()))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		if rt.cfg.EoX.APIEnabled {
			scheduler.Stop()
		}

		timeout := rt.cfg.Server.ShutdownTimeout()
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := runner.Shutdown(ctx); err != nil {
			logg.Warn("Running jobs did not finish", zap.Error(err))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
