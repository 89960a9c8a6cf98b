package integrity

import (
	"context"

	"school-admin/core/storage"
	"school-admin/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	disks  *storage.Manager
	names  []string
	root   string
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service checking the upload root on the named disks.
func NewService(disks *storage.Manager, names []string, root string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		disks:  disks,
		names:  names,
		root:   root,
		db:     db,
		logger: logger,
	}
}

// WithBucket adds the object storage bucket to the checks.
func (s *Service) WithBucket(client storage.Client, bucket string) *Service {
	s.client = client
	s.bucket = bucket
	return s
}

// CheckStructure returns the disks missing their upload root.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.disks, s.names, s.root)
}

// FixStructure creates the upload root on the given disks.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.disks, s.root, s.logger, missing)
}

// CheckBucket verifies the object storage bucket. It is a no-op without an object disk.
func (s *Service) CheckBucket(ctx context.Context) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	return true, checks.CheckBucket(ctx, s.client, s.bucket)
}

// CheckSchema compares the file_records table with the model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
