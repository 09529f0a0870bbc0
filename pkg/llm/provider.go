package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned when a provider that needs credentials is built without them.
var ErrMissingAPIKey = errors.New("API key is required for this LLM provider")

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	MIMETypeJSON = "application/json"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature      float64
	MaxTokens        int
	Model            string // Override default model
	ResponseMIMEType string // "application/json" asks the backend for JSON only
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithJSONResponse() Option {
	return func(o *Options) {
		o.ResponseMIMEType = MIMETypeJSON
	}
}

// Apply folds opts over defaults.
func Apply(defaults Options, opts ...Option) *Options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
