package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/ingest"
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
	"github.com/workerlens/transcript-archive/internal/media"
	"github.com/workerlens/transcript-archive/internal/speaker"
	"github.com/workerlens/transcript-archive/internal/store"
	"github.com/workerlens/transcript-archive/internal/summarizer"
	"github.com/workerlens/transcript-archive/internal/watcher"
	"github.com/workerlens/transcript-archive/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Archive Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Ingestions: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	provider, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		log.Error(ctx, "Failed to create LLM provider: %v", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.Paths.Database)
	if err != nil {
		log.Error(ctx, "Failed to open store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	exec := executor.New()
	transcoder := media.NewTranscoder(exec, log)
	transcriber := media.NewTranscriber(cfg.Whisper, exec, log)
	labeler := speaker.New(provider, log)

	var sum summarizer.Summarizer
	if cfg.Summary.Format != "none" {
		sum = summarizer.New(provider, log, cfg.Summary)
	}

	ingestor := ingest.New(cfg, transcoder, transcriber, labeler, provider, st, sum, log)

	handler := func(ctx context.Context, filePath string) error {
		result, err := ingestor.Ingest(ctx, filePath, ingest.InterviewMeta{})
		if err != nil {
			return err
		}
		if result.Skipped {
			return nil
		}
		return archiveFile(cfg, filePath)
	}

	// Create watcher with ingest handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Database: %s", cfg.Paths.Database)
	log.Info(ctx, "LLM provider: %s", cfg.LLM.Provider)
	log.Info(ctx, "Speaker labeling: %v", cfg.Chunking.LabelSpeakers)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
		filepath.Dir(cfg.Paths.Database),
	}
	if cfg.Summary.Format != "none" {
		dirs = append(dirs, cfg.Summary.Dir)
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// archiveFile moves an ingested input out of the watch directory.
func archiveFile(cfg *config.Config, filePath string) error {
	if cfg.Paths.Archived == "" {
		return nil
	}
	dest := filepath.Join(cfg.Paths.Archived, filepath.Base(filePath))
	if err := os.Rename(filePath, dest); err != nil {
		return fmt.Errorf("archive %s: %w", filePath, err)
	}
	return nil
}
