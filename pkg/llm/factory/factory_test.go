package factory

import (
	"context"
	"errors"
	"testing"

	"ai-writing-assistant/pkg/llm"
	"ai-writing-assistant/pkg/llm/gemini"
	"ai-writing-assistant/pkg/llm/huggingface"
	"ai-writing-assistant/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewLLMProvider(ctx, ProviderGemini, "gemini-1.5-pro", "", "key")
	require.NoError(t, err)
	assert.IsType(t, &gemini.GeminiProvider{}, p)

	p, err = NewLLMProvider(ctx, ProviderOllama, "llama3", "", "")
	require.NoError(t, err)
	o, ok := p.(*ollama.OllamaProvider)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:11434", o.BaseURL)

	p, err = NewLLMProvider(ctx, ProviderHuggingFace, "llama", "", "hf_token")
	require.NoError(t, err)
	assert.IsType(t, &huggingface.HuggingFaceProvider{}, p)

	_, err = NewLLMProvider(ctx, ProviderHuggingFace, "llama", "", "")
	assert.True(t, errors.Is(err, llm.ErrMissingAPIKey))

	_, err = NewLLMProvider(ctx, "openai", "gpt", "", "key")
	assert.Error(t, err)
}

func TestNewLLMProvider_GeminiWithoutKey(t *testing.T) {
	_, err := NewLLMProvider(context.Background(), ProviderGemini, "", "", "")

	assert.True(t, errors.Is(err, llm.ErrMissingAPIKey))
}
