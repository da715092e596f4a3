package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type openAIProvider struct {
	client         *openai.LLM
	model          string
	embeddingModel string
}

// NewOpenAI creates an OpenAI-backed Provider. Sensible API defaults are
// applied when model names are empty.
func NewOpenAI(apiKey, model, embeddingModel string) (Provider, error) {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if embeddingModel == "" {
		embeddingModel = "text-embedding-3-small"
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
		openai.WithEmbeddingModel(embeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &openAIProvider{
		client:         client,
		model:          model,
		embeddingModel: embeddingModel,
	}, nil
}

func (p *openAIProvider) Chat(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(chatMessageType(m.Role), m.Content))
	}

	callOpts := []llms.CallOption{llms.WithTemperature(0.7)}
	if opts != nil {
		if opts.Temperature != 0 {
			callOpts = []llms.CallOption{llms.WithTemperature(opts.Temperature)}
		}
		if opts.MaxTokens > 0 {
			callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
		}
		if opts.Model != "" {
			callOpts = append(callOpts, llms.WithModel(opts.Model))
		}
	}

	resp, err := p.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: openai chat: %v", ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai chat returned no choices", ErrProvider)
	}

	return &Response{Content: resp.Choices[0].Content}, nil
}

func (p *openAIProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := p.client.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("%w: openai embed: %v", ErrProvider, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("%w: openai embed returned empty vector", ErrProvider)
	}

	embedding := make([]float64, len(vectors[0]))
	for i, v := range vectors[0] {
		embedding[i] = float64(v)
	}
	return embedding, nil
}

func chatMessageType(role Role) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
