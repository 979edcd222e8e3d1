// Package ui hosts the dashboard web server and the ops status listener.
// Both are thin surfaces over the core packages: the gin app feeds the chart
// and download sinks, the chi app reports ingest status.
package ui

import (
	"embed"
	"fmt"

	"github.com/gin-gonic/gin"

	"eisview/internal"
	"eisview/internal/config"
	"eisview/internal/dataset"
	"eisview/internal/plot"
)

//go:embed templates/* help.md
var embeddedFiles embed.FS

// Server is the Nyquist viewer dashboard.
type Server struct {
	router *gin.Engine
	config config.ServerConfig
	logger *internal.Logger

	// index is the immutable startup ingest result, shared without locking.
	index *dataset.Index
	// store holds the last plotted long table for export, last write wins.
	store *plot.Store
}

// NewServer creates the dashboard server over an ingested index.
func NewServer(cfg config.ServerConfig, index *dataset.Index, logger *internal.Logger) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	gin.SetMode(cfg.GinMode)

	s := &Server{
		router: gin.New(),
		config: cfg,
		logger: logger,
		index:  index,
		store:  plot.NewStore(),
	}

	if err := s.loadTemplates(); err != nil {
		return nil, err
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(RequestID())
	s.router.Use(gin.Logger())
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/about", s.handleAbout)

	api := s.router.Group("/api")
	api.GET("/cells", s.handleCells)
	api.GET("/plot", s.handlePlot)
	api.GET("/export", s.handleExport)
}

// Start runs the dashboard listener; it blocks until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.logger.Info("[Server] Nyquist viewer listening on %s", addr)
	return s.router.Run(addr)
}
