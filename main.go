package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"eisview/internal"
	"eisview/internal/config"
	"eisview/internal/dataset"
	"eisview/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	ingestor := dataset.NewIngestor(cfg.Data, logger)
	index, err := ingestor.BuildIndex(context.Background())
	if err != nil {
		logger.Error("Ingest failed: %v", err)
		os.Exit(1)
	}

	if index.FilesLoaded == 0 {
		logger.Error("No valid %s files found in %s. The viewer will not run.",
			cfg.Data.FileExt, cfg.Data.Dir)
		os.Exit(1)
	}
	if len(index.FailedFiles) > 0 {
		logger.Warn("Skipped %d unreadable files: %v", len(index.FailedFiles), index.FailedFiles)
	}

	statusApp := ui.NewStatusApp(cfg.Server.StatusPort, index, logger)
	go func() {
		if err := statusApp.Start(); err != nil {
			logger.Error("Status listener stopped: %v", err)
		}
	}()

	server, err := ui.NewServer(cfg.Server, index, logger)
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}
	if err := server.Start(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
