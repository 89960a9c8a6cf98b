package checks

import (
	"context"
	"fmt"

	"school-admin/core/storage"

	"go.uber.org/zap"
)

// CheckStructure returns the disks on which the upload root does not exist.
func CheckStructure(ctx context.Context, disks *storage.Manager, names []string, root string) ([]string, error) {
	missing := []string{}

	for _, name := range names {
		disk, err := disks.Disk(name)
		if err != nil {
			return nil, err
		}

		exists, err := disk.Exists(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s on disk %s: %w", root, name, err)
		}
		if !exists {
			missing = append(missing, name)
		}
	}

	return missing, nil
}

// FixStructure creates the upload root on the given disks.
func FixStructure(ctx context.Context, disks *storage.Manager, root string, logger *zap.Logger, missing []string) error {
	for _, name := range missing {
		disk, err := disks.Disk(name)
		if err != nil {
			return err
		}

		if err := disk.MakeDirectory(ctx, root); err != nil {
			logger.Error("Failed to create upload root", zap.String("disk", name), zap.String("root", root), zap.Error(err))
			return err
		}
		logger.Info("Created missing upload root", zap.String("disk", name), zap.String("root", root))
	}
	return nil
}

// CheckBucket verifies that the object storage bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
