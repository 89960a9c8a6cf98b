package files

import (
	"context"
	"fmt"

	"school-admin/core/reconcile"
	"school-admin/feature/files/models"

	"gorm.io/gorm"
)

// Registry is the file_records table seen through reconcile.Registry.
// Soft-deleted records are invisible to every method.
type Registry struct {
	db        *gorm.DB
	batchSize int
}

var _ reconcile.Registry = (*Registry)(nil)

// NewRegistry creates a registry that loads batchSize records per query.
func NewRegistry(db *gorm.DB, batchSize int) *Registry {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Registry{db: db, batchSize: batchSize}
}

// EachRecord iterates records in primary key order, one batch at a time.
func (r *Registry) EachRecord(ctx context.Context, fn func(reconcile.Record) error) error {
	var batch []models.FileRecord
	result := r.db.WithContext(ctx).
		Model(&models.FileRecord{}).
		Select("id", "disk", "path").
		FindInBatches(&batch, r.batchSize, func(tx *gorm.DB, _ int) error {
			for _, rec := range batch {
				if err := fn(reconcile.Record{ID: rec.ID, Disk: rec.Disk, Path: rec.Path}); err != nil {
					return err
				}
			}
			return nil
		})
	if result.Error != nil {
		return fmt.Errorf("failed to iterate file records: %w", result.Error)
	}
	return nil
}

func (r *Registry) PathSet(ctx context.Context, disk string) (map[string]struct{}, error) {
	var paths []string
	err := r.db.WithContext(ctx).
		Model(&models.FileRecord{}).
		Where("disk = ?", disk).
		Pluck("path", &paths).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load paths for disk %s: %w", disk, err)
	}

	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set, nil
}

func (r *Registry) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&models.FileRecord{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete file record %d: %w", id, err)
	}
	return nil
}

func (r *Registry) Disks(ctx context.Context) ([]string, error) {
	var disks []string
	err := r.db.WithContext(ctx).
		Model(&models.FileRecord{}).
		Distinct("disk").
		Order("disk").
		Pluck("disk", &disks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list disks: %w", err)
	}
	return disks, nil
}

// Migrate creates or updates the file_records table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.FileRecord{}); err != nil {
		return fmt.Errorf("failed to migrate file_records: %w", err)
	}
	return nil
}
