package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ai-writing-assistant/pkg/llm"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-pro"

type Config struct {
	APIKey string
	Model  string

	// BaseURL and HTTPClient are only set when talking to a proxy or a test server.
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiProvider implements llm.LLMProvider on top of the Google GenAI SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

// NewGeminiProvider builds the SDK client. It performs no network call, a missing key fails here.
func NewGeminiProvider(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini: %w", llm.ErrMissingAPIKey)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Model: p.model}, opts...)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: options.ResponseMIMEType,
	}
	if options.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(options.Temperature))
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}

	contents := make([]*genai.Content, 0, len(history))
	var system []string
	for _, msg := range history {
		switch msg.Role {
		case llm.RoleSystem:
			system = append(system, msg.Content)
		case llm.RoleAssistant, genai.RoleModel:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	if len(system) > 0 {
		config.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, options.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
