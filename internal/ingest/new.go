package ingest

import (
	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
	"github.com/workerlens/transcript-archive/internal/media"
	"github.com/workerlens/transcript-archive/internal/speaker"
	"github.com/workerlens/transcript-archive/internal/store"
	"github.com/workerlens/transcript-archive/internal/summarizer"
)

type implIngestor struct {
	cfg         *config.Config
	transcoder  media.Transcoder
	transcriber media.Transcriber
	labeler     speaker.Labeler
	provider    llm.Provider
	store       *store.Store
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates an Ingestor. The summarizer may be nil when summary export
// is disabled.
func New(
	cfg *config.Config,
	transcoder media.Transcoder,
	transcriber media.Transcriber,
	labeler speaker.Labeler,
	provider llm.Provider,
	st *store.Store,
	sum summarizer.Summarizer,
	log logger.Logger,
) Ingestor {
	return &implIngestor{
		cfg:         cfg,
		transcoder:  transcoder,
		transcriber: transcriber,
		labeler:     labeler,
		provider:    provider,
		store:       st,
		summarizer:  sum,
		logger:      log,
	}
}
