package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
	"github.com/JiqiSun/frame-extractor/internal/domain/port"
	"go.uber.org/zap"
)

// framePattern yields zero-padded sequence numbers so lexicographic
// filename order equals extraction order.
const framePattern = "frame-%06d.jpg"

type Extractor struct {
	sampleFPS int
	timeout   time.Duration
	logger    *zap.Logger
}

func NewExtractor(sampleFPS int, timeout time.Duration, logger *zap.Logger) *Extractor {
	return &Extractor{sampleFPS: sampleFPS, timeout: timeout, logger: logger}
}

// ExtractFrames runs ffmpeg over videoPath and writes JPEG frames into
// outputDir. Scene mode keeps only frames whose scene-change score exceeds
// threshold; all mode samples at a fixed rate regardless of content. On
// failure any partially written frames are left in place; callers decide
// whether to purge.
func (e *Extractor) ExtractFrames(ctx context.Context, videoPath string, outputDir string, mode entity.Mode, threshold float64) (*port.FrameExtractionResult, error) {
	duration, err := e.probeDuration(ctx, videoPath)
	if err != nil {
		e.logger.Warn("could not get video duration", zap.Error(err))
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", videoPath,
		"-vf", filterExpr(mode, threshold, e.sampleFPS),
		"-vsync", "vfr",
		"-qscale:v", "2",
		filepath.Join(outputDir, framePattern),
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, entity.NewExtractionError(err, output)
	}

	frames, err := filepath.Glob(filepath.Join(outputDir, "frame-*.jpg"))
	if err != nil {
		return nil, fmt.Errorf("glob frames: %w", err)
	}
	if len(frames) == 0 {
		return nil, entity.NewExtractionError(fmt.Errorf("no frames extracted"), output)
	}
	sort.Strings(frames)

	e.logger.Info("frames extracted",
		zap.Int("count", len(frames)),
		zap.String("mode", string(mode)),
		zap.Float64("video_duration", duration),
	)

	return &port.FrameExtractionResult{
		FramePaths:    frames,
		FrameCount:    len(frames),
		VideoDuration: duration,
	}, nil
}

// filterExpr builds the -vf expression per mode. Scene detection itself is
// ffmpeg's: select passes frames whose scene score exceeds the threshold.
func filterExpr(mode entity.Mode, threshold float64, sampleFPS int) string {
	if mode == entity.ModeAll {
		return fmt.Sprintf("fps=%d", sampleFPS)
	}
	return fmt.Sprintf("select='gt(scene,%g)',showinfo", threshold)
}

func (e *Extractor) probeDuration(ctx context.Context, videoPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	durationStr := strings.TrimSpace(string(output))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}
	return duration, nil
}
