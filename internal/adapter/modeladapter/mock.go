package modeladapter

import (
	"context"

	"ai-writing-assistant/internal/entity"
)

// DefaultQuestions are shown when the user starts typing and returned by the mock backend.
var DefaultQuestions = []string{
	"What do you currently believe about this?",
	"What do you want to say about it?",
	"Why is this an interesting problem?",
}

type MockModel struct {
	scanner *PatternScanner
}

var _ Model = &MockModel{}

func NewMockModel() *MockModel {
	return &MockModel{scanner: NewPatternScanner(DefaultPatterns...)}
}

// GenerateQuestions ignores content.
func (m *MockModel) GenerateQuestions(ctx context.Context, content string) ([]string, error) {
	questions := make([]string, len(DefaultQuestions))
	copy(questions, DefaultQuestions)
	return questions, nil
}

func (m *MockModel) AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error) {
	return m.scanner.Scan(content), nil
}
