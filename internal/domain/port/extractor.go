package port

import (
	"context"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
)

type FrameExtractionResult struct {
	FramePaths    []string
	FrameCount    int
	VideoDuration float64
}

type FrameExtractor interface {
	ExtractFrames(ctx context.Context, videoPath string, outputDir string, mode entity.Mode, threshold float64) (*FrameExtractionResult, error)
}
