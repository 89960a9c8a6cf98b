package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"school-admin/core/metrics"
	"school-admin/core/storage"

	"go.uber.org/zap"
)

// Engine reconciles the file registry against the storage disks.
type Engine struct {
	registry Registry
	disks    *storage.Manager
	cfg      Config
	logger   *zap.Logger

	// running guards against overlapping runs.
	running sync.Mutex
}

// NewEngine creates a reconciliation engine.
func NewEngine(registry Registry, disks *storage.Manager, cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RootPrefix == "" {
		cfg.RootPrefix = "uploads"
	}
	if cfg.ThumbnailSegment == "" {
		cfg.ThumbnailSegment = "/thumbnails/"
	}
	return &Engine{
		registry: registry,
		disks:    disks,
		cfg:      cfg,
		logger:   logger.With(zap.String("component", "reconcile")),
	}
}

// Reconcile runs the missing files pass, then the orphaned files pass.
// Finding divergences is not an error; disks that fail are listed in the report.
func (e *Engine) Reconcile(ctx context.Context, dryRun bool) (*Report, error) {
	if !e.running.TryLock() {
		return nil, ErrInProgress
	}
	defer e.running.Unlock()

	mode := "apply"
	if dryRun {
		mode = "dry_run"
	}

	report := &Report{DryRun: dryRun, StartedAt: time.Now()}
	e.logger.Info("Starting reconciliation", zap.Bool("dry_run", dryRun))

	missing, err := e.ReconcileMissingFiles(ctx, dryRun)
	report.Missing = missing
	if err != nil {
		metrics.ReconcileRunsTotal.WithLabelValues(mode, "error").Inc()
		return report, err
	}

	orphaned, err := e.ReconcileOrphanedFiles(ctx, dryRun)
	report.Orphaned = orphaned
	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		metrics.ReconcileRunsTotal.WithLabelValues(mode, "error").Inc()
		return report, err
	}

	result := "success"
	if report.Failed() {
		result = "error"
	}
	metrics.ReconcileRunsTotal.WithLabelValues(mode, result).Inc()
	metrics.ReconcileDuration.Observe(report.Duration.Seconds())

	e.logger.Info("Reconciliation finished",
		zap.Bool("dry_run", dryRun),
		zap.Int("missing", missing.Count),
		zap.Int("orphaned", orphaned.Count),
		zap.Int("failed_disks", len(missing.Failures)+len(orphaned.Failures)),
		zap.Duration("duration", report.Duration))

	return report, nil
}

// ReconcileMissingFiles finds records whose file no longer exists on their disk and,
// unless dryRun is set, soft-deletes them. A disk that cannot be checked is recorded as
// a failure and its remaining records are skipped.
func (e *Engine) ReconcileMissingFiles(ctx context.Context, dryRun bool) (PassResult, error) {
	var res PassResult
	failed := make(map[string]struct{})

	err := e.registry.EachRecord(ctx, func(rec Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, skip := failed[rec.Disk]; skip {
			return nil
		}

		exists, err := e.exists(ctx, rec)
		if err != nil {
			failed[rec.Disk] = struct{}{}
			e.diskFailed(&res, PassMissing, rec.Disk, err)
			return nil
		}
		if exists {
			return nil
		}

		action := Action{
			Pass:     PassMissing,
			Type:     ActionDeleteRecord,
			Disk:     rec.Disk,
			Path:     rec.Path,
			RecordID: rec.ID,
		}
		if !dryRun {
			if err := e.registry.Delete(ctx, rec.ID); err != nil {
				return fmt.Errorf("failed to delete record %d: %w", rec.ID, err)
			}
			action.Applied = true
		}

		res.add(action)
		metrics.ReconcileIssuesTotal.WithLabelValues(PassMissing, rec.Disk).Inc()
		e.logger.Info(action.String(), zap.Uint64("record_id", rec.ID), zap.String("disk", rec.Disk), zap.String("path", rec.Path))
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("missing files pass: %w", err)
	}

	return res, nil
}

func (e *Engine) exists(ctx context.Context, rec Record) (bool, error) {
	disk, err := e.disks.Disk(rec.Disk)
	if err != nil {
		return false, err
	}
	return disk.Exists(ctx, rec.Path)
}

// ReconcileOrphanedFiles finds files under the upload root of each scanned disk that no
// record references and, unless dryRun is set, deletes them. Thumbnails are never orphans.
// Each disk is reconciled independently; a failing disk does not stop the others.
func (e *Engine) ReconcileOrphanedFiles(ctx context.Context, dryRun bool) (PassResult, error) {
	var res PassResult
	e.warnUnscannedDisks(ctx)

	for _, name := range e.cfg.Disks {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("orphaned files pass: %w", err)
		}
		if err := e.scanDisk(ctx, name, dryRun, &res); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, fmt.Errorf("orphaned files pass: %w", ctxErr)
			}
			e.diskFailed(&res, PassOrphaned, name, err)
		}
	}

	return res, nil
}

func (e *Engine) scanDisk(ctx context.Context, name string, dryRun bool, res *PassResult) error {
	disk, err := e.disks.Disk(name)
	if err != nil {
		return err
	}

	ok, err := disk.Exists(ctx, e.cfg.RootPrefix)
	if err != nil {
		return err
	}
	if !ok {
		e.logger.Debug("Upload root not found, skipping disk", zap.String("disk", name), zap.String("root", e.cfg.RootPrefix))
		return nil
	}

	files, err := disk.AllFiles(ctx, e.cfg.RootPrefix)
	if err != nil {
		return err
	}
	sort.Strings(files)

	known, err := e.registry.PathSet(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load registry paths: %w", err)
	}

	for _, path := range files {
		if strings.Contains(path, e.cfg.ThumbnailSegment) {
			continue
		}
		if _, ok := known[path]; ok {
			continue
		}

		action := Action{
			Pass: PassOrphaned,
			Type: ActionDeleteFile,
			Disk: name,
			Path: path,
		}
		if !dryRun {
			deleted, err := disk.Delete(ctx, path)
			if err != nil {
				return err
			}
			if !deleted {
				e.logger.Debug("Orphaned file already gone", zap.String("disk", name), zap.String("path", path))
			}
			action.Applied = true
		}

		res.add(action)
		metrics.ReconcileIssuesTotal.WithLabelValues(PassOrphaned, name).Inc()
		e.logger.Info(action.String(), zap.String("disk", name), zap.String("path", path))
	}

	return nil
}

// warnUnscannedDisks logs registry disks that the orphan scan does not cover.
func (e *Engine) warnUnscannedDisks(ctx context.Context) {
	used, err := e.registry.Disks(ctx)
	if err != nil {
		e.logger.Warn("Could not list registry disks", zap.Error(err))
		return
	}

	scanned := make(map[string]struct{}, len(e.cfg.Disks))
	for _, d := range e.cfg.Disks {
		scanned[d] = struct{}{}
	}
	for _, d := range used {
		if _, ok := scanned[d]; !ok {
			e.logger.Warn("Disk has records but is not scanned for orphaned files", zap.String("disk", d))
		}
	}
}

func (e *Engine) diskFailed(res *PassResult, pass, disk string, err error) {
	res.fail(disk, err)
	metrics.ReconcileDiskFailuresTotal.WithLabelValues(pass, disk).Inc()
	e.logger.Error("Disk reconciliation failed", zap.String("pass", pass), zap.String("disk", disk), zap.Error(err))
}

// Disks returns the disks scanned for orphaned files.
func (e *Engine) Disks() []string {
	return append([]string(nil), e.cfg.Disks...)
}

// RootPrefix returns the upload root scanned on every disk.
func (e *Engine) RootPrefix() string {
	return e.cfg.RootPrefix
}

