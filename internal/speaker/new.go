package speaker

import (
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
)

type implLabeler struct {
	provider llm.Provider
	logger   logger.Logger
}

// New creates a Labeler that resolves ambiguous utterances through the
// given chat provider.
func New(provider llm.Provider, log logger.Logger) Labeler {
	return &implLabeler{
		provider: provider,
		logger:   log,
	}
}
