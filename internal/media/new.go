package media

import (
	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/logger"
	"github.com/workerlens/transcript-archive/pkg/executor"
)

type implTranscoder struct {
	executor executor.Executor
	logger   logger.Logger
}

// NewTranscoder creates an ffmpeg-backed Transcoder.
func NewTranscoder(exec executor.Executor, log logger.Logger) Transcoder {
	return &implTranscoder{
		executor: exec,
		logger:   log,
	}
}

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewTranscriber creates a whisper.cpp-backed Transcriber.
func NewTranscriber(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
