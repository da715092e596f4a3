package llm

import (
	"context"
	"fmt"

	"github.com/workerlens/transcript-archive/internal/config"
)

// New creates the Provider selected by config. The same provider serves
// both chat and embedding so index-time and query-time vectors share one
// embedding space.
func New(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.Model, cfg.EmbeddingModel)
	case "gemini":
		return NewGemini(ctx, cfg.APIKey, cfg.Model, cfg.EmbeddingModel)
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
