package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
	"github.com/JiqiSun/frame-extractor/internal/domain/port"
	"github.com/JiqiSun/frame-extractor/internal/infra/metrics"
	"go.uber.org/zap"
)

type BuildArchiveUseCase struct {
	store  port.JobStore
	zipper port.Zipper
	logger *zap.Logger
}

func NewBuildArchiveUseCase(store port.JobStore, zipper port.Zipper, logger *zap.Logger) *BuildArchiveUseCase {
	return &BuildArchiveUseCase{store: store, zipper: zipper, logger: logger}
}

// Execute builds the job's ZIP and returns its path. The archive is
// rebuilt on every call from the directory contents at request time, so it
// can never go stale; the zipper's rename keeps concurrent downloads safe.
func (uc *BuildArchiveUseCase) Execute(ctx context.Context, jobID string) (string, error) {
	if !uc.store.Exists(jobID) {
		return "", entity.ErrJobNotFound
	}

	names, err := uc.store.ListImages(jobID)
	if err != nil {
		return "", err
	}

	jobDir := uc.store.JobDir(jobID)
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(jobDir, name))
	}

	archivePath := uc.store.ArchivePath(jobID)
	if err := uc.zipper.CreateZip(ctx, paths, archivePath); err != nil {
		return "", fmt.Errorf("build archive: %w", err)
	}
	metrics.ArchivesBuiltTotal.Inc()

	uc.logger.Info("archive built",
		zap.String("job_id", jobID),
		zap.Int("file_count", len(paths)),
	)

	return archivePath, nil
}
