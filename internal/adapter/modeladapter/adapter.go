// Package modeladapter is the seam between the assistant core and a text
// generation backend. A deterministic mock serves development and tests, a
// live model talks to an llm.LLMProvider.
package modeladapter

import (
	"context"

	"ai-writing-assistant/internal/entity"
)

// Model is implemented by every backend the adapter can wrap.
type Model interface {
	GenerateQuestions(ctx context.Context, content string) ([]string, error)
	AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error)
}

type ModelAdapter struct {
	model Model
}

// NewAdapter wraps an arbitrary backend.
func NewAdapter(model Model) *ModelAdapter {
	return &ModelAdapter{model: model}
}

// NewNullableAdapter returns an adapter over the deterministic mock backend.
func NewNullableAdapter() *ModelAdapter {
	return NewAdapter(NewMockModel())
}

func (a *ModelAdapter) GenerateQuestionsFor(ctx context.Context, content string) ([]string, error) {
	return a.model.GenerateQuestions(ctx, content)
}

func (a *ModelAdapter) AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error) {
	return a.model.AnalyseForHighlights(ctx, content)
}
