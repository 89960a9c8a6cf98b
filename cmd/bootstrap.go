package cmd

import (
	"fmt"

	"school-admin/core/cache"
	"school-admin/core/config"
	"school-admin/core/database"
	"school-admin/core/logger"
	"school-admin/core/reconcile"
	"school-admin/core/storage"
	"school-admin/core/translate"
	"school-admin/feature/files"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime carries the dependencies shared by the commands.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	disks  *storage.Manager
	cache  cache.Cache
}

// bootstrap loads the configuration and creates the logger.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &runtime{cfg: cfg, logger: l}, nil
}

// connectDatabase opens the database and migrates file_records when configured.
func (r *runtime) connectDatabase() error {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if r.cfg.Database.AutoMigrate {
		if err := files.Migrate(db); err != nil {
			_ = database.Close(db)
			return err
		}
		r.logger.Info("Database migrated")
	}

	r.db = db
	return nil
}

// mountDisks mounts the configured storage disks.
func (r *runtime) mountDisks() error {
	disks, err := storage.NewManagerFromConfig(r.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to mount storage disks: %w", err)
	}
	r.disks = disks
	return nil
}

// engine builds the reconcile engine. It requires the database and the disks.
func (r *runtime) engine() *reconcile.Engine {
	registry := files.NewRegistry(r.db, r.cfg.Reconcile.BatchSize)
	return reconcile.NewEngine(registry, r.disks, r.cfg.Reconcile, r.logger)
}

// translator builds the translator over the configured cache and backend.
func (r *runtime) translator() (*translate.Translator, error) {
	c, err := cache.New(r.cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	r.cache = c

	backend := translate.NewHTTPBackend(r.cfg.Translation)
	return translate.New(backend, c, r.cfg.Translation, r.logger), nil
}

// close releases the database and cache connections.
func (r *runtime) close() {
	if r.db != nil {
		if err := database.Close(r.db); err != nil {
			r.logger.Warn("Failed to close database", zap.Error(err))
		}
	}
	if closer, ok := r.cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			r.logger.Warn("Failed to close cache", zap.Error(err))
		}
	}
	_ = r.logger.Sync()
}
