package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JiqiSun/frame-extractor/internal/domain/entity"
	"github.com/JiqiSun/frame-extractor/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	extract          *usecase.ExtractVideoUseCase
	list             *usecase.ListImagesUseCase
	archive          *usecase.BuildArchiveUseCase
	defaultThreshold float64
	logger           *zap.Logger
}

func NewHandler(
	extract *usecase.ExtractVideoUseCase,
	list *usecase.ListImagesUseCase,
	archive *usecase.BuildArchiveUseCase,
	defaultThreshold float64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		extract:          extract,
		list:             list,
		archive:          archive,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

func (h *Handler) uploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}

	threshold := h.defaultThreshold
	if raw := c.PostForm("threshold"); raw != "" {
		threshold, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a number"})
			return
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer src.Close()

	job, err := h.extract.Execute(c.Request.Context(), usecase.UploadInput{
		Filename:  fileHeader.Filename,
		Source:    src,
		Mode:      c.PostForm("mode"),
		Threshold: threshold,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_id": job.ID})
}

func (h *Handler) listImages(c *gin.Context) {
	page, ok := queryInt(c, "page", 1, 1, 0)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer >= 1"})
		return
	}
	limit, ok := queryInt(c, "limit", usecase.DefaultPageSize, 1, usecase.MaxPageSize)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
		return
	}

	pageResult, err := h.list.Execute(c.Param("job_id"), page, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResult)
}

func (h *Handler) downloadArchive(c *gin.Context) {
	jobID := c.Param("job_id")

	archivePath, err := h.archive.Execute(c.Request.Context(), jobID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Type", "application/zip")
	c.FileAttachment(archivePath, jobID+".zip")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var extractErr *entity.ExtractionError

	switch {
	case errors.Is(err, entity.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	case errors.As(err, &extractErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ffmpeg failed: " + extractErr.Diagnostic})
	case errors.Is(err, usecase.ErrUploadIO):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
	default:
		h.logger.Error("unhandled request error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// queryInt parses an integer query parameter with a default. max == 0
// means unbounded above.
func queryInt(c *gin.Context, name string, def, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || (max > 0 && v > max) {
		return 0, false
	}
	return v, true
}
