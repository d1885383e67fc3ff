package usecases

import (
	"context"
	"fmt"
	"time"

	"creovibe/internal/domain/repositories"
	"creovibe/pkg/logger"
	"creovibe/pkg/metrics"
)

const (
	OrphanKindFile = "file"
	OrphanKindRow  = "row"
)

type ReconcileReport struct {
	// Orphans are stored objects without a media row, older than the grace period.
	Orphans []string
	Removed []string
	// Missing are media rows whose object is gone. They are only reported.
	Missing []string
}

type ReconcileService interface {
	Run(ctx context.Context, dryRun bool) (*ReconcileReport, error)
}

type reconcileService struct {
	mediaRepo repositories.MediaRepository
	storage   repositories.StorageStrategy
	grace     time.Duration
	now       func() time.Time
	logg      *logger.Logger
	metrics   *metrics.Site
}

func NewReconcileService(
	mediaRepo repositories.MediaRepository,
	storage repositories.StorageStrategy,
	grace time.Duration,
	logg *logger.Logger,
	site *metrics.Site,
) ReconcileService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &reconcileService{
		mediaRepo: mediaRepo,
		storage:   storage,
		grace:     grace,
		now:       time.Now,
		logg:      logg,
		metrics:   site,
	}
}

// Run compares stored objects with media rows. Objects are listed before rows
// so an upload committing in between is never taken for an orphan.
func (s *reconcileService) Run(ctx context.Context, dryRun bool) (*ReconcileReport, error) {
	objects, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing storage: %w", err)
	}
	names, err := s.mediaRepo.ListFilenames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}

	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}
	stored := make(map[string]struct{}, len(objects))

	report := &ReconcileReport{}
	cutoff := s.now().Add(-s.grace)
	for _, obj := range objects {
		stored[obj.Name] = struct{}{}
		if _, ok := known[obj.Name]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			continue
		}
		report.Orphans = append(report.Orphans, obj.Name)
		if dryRun {
			continue
		}
		if err := s.storage.Delete(ctx, obj.Name); err != nil {
			s.logg.Error(s.logg.WithField(ctx, "filename", obj.Name), "failed to remove orphaned file", err)
			continue
		}
		report.Removed = append(report.Removed, obj.Name)
	}
	for _, name := range names {
		if _, ok := stored[name]; !ok {
			report.Missing = append(report.Missing, name)
			s.logg.Warn(s.logg.WithField(ctx, "filename", name), "media row has no stored file")
		}
	}

	s.metrics.AddOrphans(OrphanKindFile, len(report.Orphans))
	s.metrics.AddOrphans(OrphanKindRow, len(report.Missing))
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"orphans": len(report.Orphans),
		"removed": len(report.Removed),
		"missing": len(report.Missing),
		"dry_run": dryRun,
	}), "reconcile finished")
	return report, nil
}
