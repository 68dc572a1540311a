package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frameextractor_uploads_total",
		Help: "Total number of upload requests, by outcome",
	}, []string{"status"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frameextractor_stage_duration_seconds",
		Help:    "Duration of upload pipeline stages",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
	}, []string{"stage"})

	FramesExtractedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frameextractor_frames_extracted_total",
		Help: "Total number of frames extracted across all jobs",
	})

	ActiveExtractions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "frameextractor_active_extractions",
		Help: "Number of ffmpeg invocations currently in flight",
	})

	ArchivesBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frameextractor_archives_built_total",
		Help: "Total number of ZIP archives built for download",
	})
)
