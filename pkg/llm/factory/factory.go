package factory

import (
	"context"
	"fmt"

	"ai-writing-assistant/pkg/llm"
	"ai-writing-assistant/pkg/llm/gemini"
	"ai-writing-assistant/pkg/llm/huggingface"
	"ai-writing-assistant/pkg/llm/ollama"
)

const (
	ProviderGemini      = "gemini"
	ProviderOllama      = "ollama"
	ProviderHuggingFace = "huggingface"
)

// NewLLMProvider builds the provider named by providerType. Credentials are
// checked here so a misconfigured provider fails before any request is sent.
func NewLLMProvider(ctx context.Context, providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case ProviderGemini, "":
		return gemini.NewGeminiProvider(ctx, gemini.Config{
			APIKey: apiKey,
			Model:  modelName,
		})
	case ProviderOllama:
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case ProviderHuggingFace:
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
