package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JiqiSun/frame-extractor/internal/api"
	"github.com/JiqiSun/frame-extractor/internal/domain/port"
	"github.com/JiqiSun/frame-extractor/internal/infra/config"
	"github.com/JiqiSun/frame-extractor/internal/infra/ffmpeg"
	"github.com/JiqiSun/frame-extractor/internal/infra/fsstore"
	"github.com/JiqiSun/frame-extractor/internal/infra/metrics"
	"github.com/JiqiSun/frame-extractor/internal/infra/rabbitmq"
	"github.com/JiqiSun/frame-extractor/internal/infra/tracing"
	"github.com/JiqiSun/frame-extractor/internal/usecase"
	"github.com/JiqiSun/frame-extractor/pkg/logger"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting frame-extractor")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing (non-fatal if the collector is unavailable)
	tp, err := tracing.InitTracer(ctx, cfg.JaegerEndpoint)
	if err != nil {
		log.Warn("tracing init failed, continuing without tracing", zap.Error(err))
	} else {
		defer tp.Shutdown(ctx)
	}

	// Filesystem job store
	store, err := fsstore.New(cfg.OutputRoot)
	fatalOnErr(err, "create output root")

	// Optional extraction event publisher
	var publisher port.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rmqConn, err := amqp.Dial(cfg.RabbitMQURL)
		fatalOnErr(err, "connect to rabbitmq")
		defer rmqConn.Close()

		pub, err := rabbitmq.NewPublisher(rmqConn, cfg.RabbitMQExchange)
		fatalOnErr(err, "create rabbitmq publisher")
		publisher = rabbitmq.NewExtractionPublisher(pub)
	}

	// Infra adapters
	extractor := ffmpeg.NewExtractor(cfg.SampleFPS, time.Duration(cfg.FFmpegTimeoutSec)*time.Second, log)
	zipper := ffmpeg.NewZipCreator()

	// Use cases
	extractUC := usecase.NewExtractVideoUseCase(store, extractor, publisher, log)
	listUC := usecase.NewListImagesUseCase(store, "/output")
	archiveUC := usecase.NewBuildArchiveUseCase(store, zipper, log)

	handler := api.NewHandler(extractUC, listUC, archiveUC, cfg.DefaultThreshold, log)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.RouterConfig{
		OutputRoot:     cfg.OutputRoot,
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxUploadMB:    cfg.MaxUploadMB,
	}, handler)

	// Metrics server
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Info("http server starting", zap.Int("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", zap.Error(err))
			cancel()
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", zap.Error(err))
	}
	metricsSrv.Shutdown(shutdownCtx)

	log.Info("frame-extractor stopped")
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
