package llm

import (
	"context"
	"errors"
)

// ErrProvider is wrapped by all chat/embedding failures so callers can
// classify them without inspecting provider-specific error text.
var ErrProvider = errors.New("llm provider failure")

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in an ordered chat conversation.
type Message struct {
	Role    Role
	Content string
}

// Options tune a single chat call. Zero values fall back to provider
// defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

// Usage reports token accounting when the provider supplies it.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response is the result of a chat call.
type Response struct {
	Content string
	Usage   *Usage
}

// Provider is the capability-typed collaborator for chat completion and
// text embedding. Implementations are injected into components rather
// than held in package-level state, so tests can substitute doubles.
type Provider interface {
	Chat(ctx context.Context, messages []Message, opts *Options) (*Response, error)
	Embed(ctx context.Context, text string) ([]float64, error)
}
