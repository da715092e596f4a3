package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

// NewGemini creates a Gemini-backed Provider.
func NewGemini(ctx context.Context, apiKey, model, embeddingModel string) (Provider, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if embeddingModel == "" {
		embeddingModel = "gemini-embedding-001"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiProvider{
		client:         client,
		model:          model,
		embeddingModel: embeddingModel,
	}, nil
}

func (p *geminiProvider) Chat(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	cfg := &genai.GenerateContentConfig{}

	var contents []*genai.Content
	for _, m := range messages {
		// Gemini takes the system prompt out of band.
		if m.Role == RoleSystem {
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: m.Content}},
			}
			continue
		}

		role := genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	model := p.model
	if opts != nil {
		if opts.Temperature != 0 {
			cfg.Temperature = genai.Ptr(float32(opts.Temperature))
		}
		if opts.MaxTokens > 0 {
			cfg.MaxOutputTokens = int32(opts.MaxTokens)
		}
		if opts.Model != "" {
			model = opts.Model
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini chat: %v", ErrProvider, err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: empty response from gemini", ErrProvider)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	resp := &Response{Content: text}
	if result.UsageMetadata != nil {
		resp.Usage = &Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

func (p *geminiProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	result, err := p.client.Models.EmbedContent(ctx, p.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini embed: %v", ErrProvider, err)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("%w: gemini embed returned empty vector", ErrProvider)
	}

	values := result.Embeddings[0].Values
	embedding := make([]float64, len(values))
	for i, v := range values {
		embedding[i] = float64(v)
	}
	return embedding, nil
}
