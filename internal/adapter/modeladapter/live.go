package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/pkg/logger"
	"ai-writing-assistant/pkg/llm"
)

const (
	DefaultLanguage = "English"

	// Only the tail of the document goes into the prompt.
	promptContentLimit = 1000
)

var (
	// ErrHighlightsUnsupported is returned by the live model: no backend can classify spans yet.
	ErrHighlightsUnsupported = errors.New("highlight analysis is not supported by the live model")

	// ErrBackend wraps every failure of the underlying provider call.
	ErrBackend = errors.New("model backend failed")
)

// ParseError reports a backend answer that is not a JSON array of strings.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v | raw: %s", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type LiveModel struct {
	provider llm.LLMProvider
	language string
	logger   logger.ILogger
}

var _ Model = &LiveModel{}

type LiveOption func(*LiveModel)

// WithLanguage sets the language the questions are requested in.
func WithLanguage(language string) LiveOption {
	return func(m *LiveModel) {
		if language != "" {
			m.language = language
		}
	}
}

func WithLogger(l logger.ILogger) LiveOption {
	return func(m *LiveModel) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewLiveModel(provider llm.LLMProvider, opts ...LiveOption) *LiveModel {
	m := &LiveModel{
		provider: provider,
		language: DefaultLanguage,
		logger:   logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewLiveAdapter returns an adapter over a live provider. Provider construction
// is where missing credentials are rejected, see factory.NewLLMProvider.
func NewLiveAdapter(provider llm.LLMProvider, opts ...LiveOption) *ModelAdapter {
	return NewAdapter(NewLiveModel(provider, opts...))
}

func (m *LiveModel) GenerateQuestions(ctx context.Context, content string) ([]string, error) {
	prompt := BuildQuestionPrompt(content, m.language)
	m.logger.Debug("MODEL", "Question prompt built", map[string]interface{}{"prompt": prompt})

	raw, err := m.provider.Generate(ctx, prompt, llm.WithJSONResponse())
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w: %w", ErrBackend, err)
	}
	m.logger.Debug("MODEL", "Question response received", map[string]interface{}{"raw": raw})

	return ParseQuestions(raw)
}

func (m *LiveModel) AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error) {
	return nil, ErrHighlightsUnsupported
}

// BuildQuestionPrompt embeds at most the last 1000 characters of content.
func BuildQuestionPrompt(content, language string) string {
	runes := []rune(content)
	if len(runes) > promptContentLimit {
		runes = runes[len(runes)-promptContentLimit:]
	}

	return fmt.Sprintf(`
You are a critical thinking assistant helping a writer develop their ideas on the topic of their writing.

Based on what they've written so far, generate 3 thought-provoking questions that will help them explore their ideas more deeply.

Good questions should:
- Be specific to the content they've written
- Push them to consider different perspectives
- Help them elaborate on their reasoning
- Be concise (no more than 12 words each)
- Focus on critical thinking

Their current text:
%s [...]

Answer in %s.

Return only the questions as a valid JSON array of strings.

The answer should be just the resulting JSON array using this JSON schema:

Return: Array<string>
`, string(runes), language)
}

// ParseQuestions accepts a JSON array of strings, optionally wrapped in a markdown code fence.
func ParseQuestions(raw string) ([]string, error) {
	b := bytes.TrimSpace([]byte(raw))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	b = bytes.TrimSpace(b)

	var questions []string
	if err := json.Unmarshal(b, &questions); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	if questions == nil {
		return nil, &ParseError{Raw: raw, Err: errors.New("expected a JSON array of strings")}
	}
	return questions, nil
}
