package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
	"github.com/JiqiSun/frame-extractor/internal/domain/port"
	"github.com/JiqiSun/frame-extractor/internal/infra/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrUploadIO marks filesystem failures while persisting the uploaded
// source, as opposed to failures of the extraction itself.
var ErrUploadIO = errors.New("failed to store upload")

type ExtractVideoUseCase struct {
	store     port.JobStore
	extractor port.FrameExtractor
	publisher port.EventPublisher
	logger    *zap.Logger
}

func NewExtractVideoUseCase(
	store port.JobStore,
	extractor port.FrameExtractor,
	publisher port.EventPublisher,
	logger *zap.Logger,
) *ExtractVideoUseCase {
	return &ExtractVideoUseCase{
		store:     store,
		extractor: extractor,
		publisher: publisher,
		logger:    logger,
	}
}

type UploadInput struct {
	Filename  string
	Source    io.Reader
	Mode      string
	Threshold float64
}

// Execute runs the whole upload pipeline synchronously: create the job
// directory, persist the source, invoke ffmpeg, clean up. The call blocks
// until extraction finishes; there is no background queue. On extraction
// failure the job directory is purged so the listing API never exposes a
// half-finished job.
func (uc *ExtractVideoUseCase) Execute(ctx context.Context, in UploadInput) (*entity.Job, error) {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "ExtractVideoUseCase.Execute")
	defer span.End()

	mode, err := entity.ParseMode(in.Mode)
	if err != nil {
		return nil, err
	}

	job := entity.NewJob(sourceName(in.Filename), mode, in.Threshold)
	span.SetAttributes(
		attribute.String("job.id", job.ID),
		attribute.String("job.mode", string(mode)),
	)

	log := uc.logger.With(zap.String("job_id", job.ID), zap.String("mode", string(mode)))

	jobDir, err := uc.store.CreateJobDir(job.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadIO, err)
	}

	saveStart := time.Now()
	_, spanSave := tracer.Start(ctx, "save_source")
	sourcePath := filepath.Join(jobDir, job.SourceName)
	size, err := saveSource(in.Source, sourcePath)
	spanSave.End()
	if err != nil {
		_ = uc.store.RemoveJob(job.ID)
		metrics.UploadsTotal.WithLabelValues("io_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUploadIO, err)
	}
	metrics.StageDuration.WithLabelValues("save").Observe(time.Since(saveStart).Seconds())

	// The source is removed on every path; only frames survive in the
	// job directory.
	defer os.Remove(sourcePath)

	exStart := time.Now()
	ctx3, spanEx := tracer.Start(ctx, "extract_frames")
	metrics.ActiveExtractions.Inc()
	result, err := uc.extractor.ExtractFrames(ctx3, sourcePath, jobDir, mode, in.Threshold)
	metrics.ActiveExtractions.Dec()
	spanEx.End()
	if err != nil {
		log.Error("frame extraction failed", zap.Error(err))
		_ = uc.store.RemoveJob(job.ID)
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		uc.publishEvent(ctx, job, entity.ExtractionFailed, err.Error())
		return nil, err
	}
	metrics.StageDuration.WithLabelValues("extract").Observe(time.Since(exStart).Seconds())
	metrics.FramesExtractedTotal.Add(float64(result.FrameCount))
	metrics.UploadsTotal.WithLabelValues("completed").Inc()

	job.FrameCount = result.FrameCount
	job.Duration = result.VideoDuration

	uc.publishEvent(ctx, job, entity.ExtractionCompleted, "")

	log.Info("extraction completed",
		zap.Int("frame_count", result.FrameCount),
		zap.Float64("duration_secs", result.VideoDuration),
		zap.Int64("source_bytes", size),
	)

	return job, nil
}

func (uc *ExtractVideoUseCase) publishEvent(ctx context.Context, job *entity.Job, status entity.ExtractionStatus, errMsg string) {
	event := entity.ExtractionEvent{
		JobID:        job.ID,
		Status:       status,
		Mode:         job.Mode,
		Threshold:    job.Threshold,
		FrameCount:   job.FrameCount,
		Duration:     job.Duration,
		ErrorMessage: errMsg,
	}
	data, _ := json.Marshal(event)
	if err := uc.publisher.PublishExtraction(ctx, data); err != nil {
		uc.logger.Error("failed to publish extraction event",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
	}
}

func saveSource(src io.Reader, destPath string) (int64, error) {
	f, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := io.Copy(f, src)
	if err != nil {
		return n, err
	}
	return n, f.Close()
}

// sourceName keeps the client's filename for its extension but strips any
// path components.
func sourceName(filename string) string {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload.bin"
	}
	return name
}
