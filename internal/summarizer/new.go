package summarizer

import (
	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
)

type implSummarizer struct {
	provider llm.Provider
	logger   logger.Logger
	cfg      config.SummaryConfig
}

// New creates a Summarizer backed by the given chat provider.
func New(provider llm.Provider, log logger.Logger, cfg config.SummaryConfig) Summarizer {
	return &implSummarizer{
		provider: provider,
		logger:   log,
		cfg:      cfg,
	}
}
