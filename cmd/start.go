package cmd

import (
	"context"
	"fmt"

	"school-admin/core/loader"
	"school-admin/core/logger"
	"school-admin/core/middleware/auth"
	"school-admin/core/middleware/rayid"
	"school-admin/core/storage"
	"school-admin/feature/files"
	"school-admin/feature/integrity"
	"school-admin/feature/translation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the admin API server",
	Long:  `Starts the HTTP admin API and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.logger)
		logg := rt.logger

		// The files feature stays disabled without a database.
		if err := rt.connectDatabase(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			logg.Info("Connected to database", zap.String("driver", rt.cfg.Database.Driver))
		}

		if err := rt.mountDisks(); err != nil {
			return err
		}

		translator, err := rt.translator()
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit,
		})

		// RayID must be first to trace everything.
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

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok", "database": rt.db != nil})
		})
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		if rt.cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not set, admin API is unauthenticated")
		}

		mgr := loader.NewManager(logg)

		var reconciler files.Reconciler
		if rt.db != nil {
			reconciler = rt.engine()
		}
		mgr.Register(files.NewFeature(reconciler, logg))
		mgr.Register(translation.NewFeature(translator, rt.cfg.Translation.DefaultTarget, logg))

		integritySvc := integrity.NewService(rt.disks, rt.cfg.Reconcile.Disks, rt.cfg.Reconcile.RootPrefix, rt.db, logg)
		if rt.cfg.Storage.ObjectDisk != "" {
			client, err := storage.NewClient(rt.cfg.Storage)
			if err != nil {
				return err
			}
			integritySvc.WithBucket(client, rt.cfg.Storage.Bucket)
		}
		mgr.Register(integrity.NewFeature(integritySvc))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port), zap.Strings("features", mgr.Loaded()))
			errCh <- app.Listen(rt.cfg.Server.Address())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(ctx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
