package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	OutputRoot     string
	StaticDir      string
	AllowedOrigins []string
	MaxUploadMB    int64
}

// NewRouter wires middleware, API routes and static mounts. Extracted
// frames are served under /output with URLs that stay stable for the life
// of a job directory; a frontend bundle is mounted only when present.
func NewRouter(cfg RouterConfig, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	maxBody := cfg.MaxUploadMB << 20
	r.POST("/api/upload", func(c *gin.Context) {
		if c.Request.ContentLength > maxBody {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)
	}, h.uploadVideo)
	r.GET("/api/images/:job_id", h.listImages)
	r.GET("/api/download/:job_id", h.downloadArchive)

	r.Static("/output", cfg.OutputRoot)

	index := filepath.Join(cfg.StaticDir, "index.html")
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.Static("/static", cfg.StaticDir)
		assetsDir := filepath.Join(cfg.StaticDir, "assets")
		if _, err := os.Stat(assetsDir); err == nil {
			r.Static("/assets", assetsDir)
		}
		r.GET("/", func(c *gin.Context) {
			c.File(index)
		})
	} else {
		r.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Backend running (no static bundle found)."})
		})
	}

	return r
}
