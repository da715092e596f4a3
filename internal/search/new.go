package search

import (
	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
	"github.com/workerlens/transcript-archive/internal/store"
)

type implSearcher struct {
	store    *store.Store
	provider llm.Provider
	logger   logger.Logger
	cfg      config.SearchConfig
}

// New creates a Searcher. The provider must be the same one used at
// indexing time so query and chunk vectors share an embedding space.
func New(st *store.Store, provider llm.Provider, log logger.Logger, cfg config.SearchConfig) Searcher {
	return &implSearcher{
		store:    st,
		provider: provider,
		logger:   log,
		cfg:      cfg,
	}
}
