package files

import (
	"context"

	"school-admin/core/reconcile"

	"go.uber.org/zap"
)

// Reconciler runs file reconciliation.
type Reconciler interface {
	Reconcile(ctx context.Context, dryRun bool) (*reconcile.Report, error)
}

// Service handles file registry operations.
type Service struct {
	reconciler Reconciler
	logger     *zap.Logger
}

// NewService creates a new files service.
func NewService(reconciler Reconciler, logger *zap.Logger) *Service {
	return &Service{
		reconciler: reconciler,
		logger:     logger,
	}
}

// Reconcile reconciles the registry against the disks.
func (s *Service) Reconcile(ctx context.Context, dryRun bool) (*reconcile.Report, error) {
	return s.reconciler.Reconcile(ctx, dryRun)
}
