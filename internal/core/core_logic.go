// Package core is the only entry point host surfaces use. It owns one
// metadata store and one model adapter for its whole lifetime.
package core

import (
	"context"
	"fmt"
	"time"

	"ai-writing-assistant/internal/adapter/metadatastore"
	"ai-writing-assistant/internal/adapter/modeladapter"
	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/pkg/logger"
	"ai-writing-assistant/internal/repository/contract"
	"ai-writing-assistant/pkg/events"
	"ai-writing-assistant/pkg/llm"
	"ai-writing-assistant/pkg/llm/factory"
)

const ModeDevelopment = "development"

// Publisher receives assistant events. *events.Bus implements it.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type CoreLogic struct {
	db        *metadatastore.MetadataStore
	llm       *modeladapter.ModelAdapter
	publisher Publisher
	logger    logger.ILogger
}

type settings struct {
	repo         contract.MetadataRepository
	provider     llm.LLMProvider
	providerType string
	model        string
	baseURL      string
	language     string
	publisher    Publisher
	logger       logger.ILogger
}

type Option func(*settings)

// WithMetadataRepository selects the persistent backend of the live store.
func WithMetadataRepository(repo contract.MetadataRepository) Option {
	return func(s *settings) {
		s.repo = repo
	}
}

// WithLLM selects the provider the live model is built with.
func WithLLM(providerType, model, baseURL string) Option {
	return func(s *settings) {
		s.providerType = providerType
		s.model = model
		s.baseURL = baseURL
	}
}

// WithProvider uses an already built provider and skips the factory.
func WithProvider(p llm.LLMProvider) Option {
	return func(s *settings) {
		s.provider = p
	}
}

func WithQuestionLanguage(language string) Option {
	return func(s *settings) {
		s.language = language
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *settings) {
		s.publisher = p
	}
}

func WithLogger(l logger.ILogger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

func collect(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	return s
}

// New composes already built adapters. Only WithPublisher and WithLogger apply.
func New(db *metadatastore.MetadataStore, llmAdapter *modeladapter.ModelAdapter, opts ...Option) *CoreLogic {
	s := collect(opts)
	return &CoreLogic{
		db:        db,
		llm:       llmAdapter,
		publisher: s.publisher,
		logger:    s.logger,
	}
}

// CreateFor picks mock-backed adapters in development mode and live ones
// otherwise. The live model fails here when its provider lacks credentials.
func CreateFor(ctx context.Context, mode string, prefs *entity.PluginPreferences, opts ...Option) (*CoreLogic, error) {
	s := collect(opts)

	if mode == ModeDevelopment {
		s.logger.Info("CORE", "Using nullable adapters", map[string]interface{}{"mode": mode})
		return New(metadatastore.NewNullableStore(), modeladapter.NewNullableAdapter(), opts...), nil
	}

	provider := s.provider
	if provider == nil {
		p, err := factory.NewLLMProvider(ctx, s.providerType, s.model, s.baseURL, prefs.APIKeyFor(s.providerType))
		if err != nil {
			return nil, fmt.Errorf("create model adapter: %w", err)
		}
		provider = p
	}

	model := modeladapter.NewLiveAdapter(provider,
		modeladapter.WithLanguage(s.language),
		modeladapter.WithLogger(s.logger),
	)
	s.logger.Info("CORE", "Using live adapters", map[string]interface{}{
		"mode":     mode,
		"provider": s.providerType,
		"model":    s.model,
	})
	return New(metadatastore.NewStore(s.repo), model, opts...), nil
}

func (c *CoreLogic) MetadataFor(ctx context.Context, documentId string) (entity.Metadata, error) {
	return c.db.Fetch(ctx, documentId)
}

// UpdateMetadata is a no-op when no document is active.
func (c *CoreLogic) UpdateMetadata(ctx context.Context, documentId string, record entity.Metadata) error {
	if documentId == "" {
		return nil
	}
	if err := c.db.Save(ctx, documentId, record); err != nil {
		return err
	}

	c.publish(ctx, events.TypeMetadataUpdated, map[string]interface{}{
		"document_id":  documentId,
		"assistant_on": record.AssistantOn,
	})
	return nil
}

// ToggleAssistant flips the assistant flag of a document and stores the result.
func (c *CoreLogic) ToggleAssistant(ctx context.Context, documentId string) (entity.Metadata, error) {
	record, err := c.MetadataFor(ctx, documentId)
	if err != nil {
		return entity.Metadata{}, err
	}
	record.ToggleAssistant()
	if err := c.UpdateMetadata(ctx, documentId, record); err != nil {
		return entity.Metadata{}, err
	}
	return record, nil
}

func (c *CoreLogic) GenerateQuestionsFor(ctx context.Context, content string) ([]string, error) {
	if content == "" {
		return []string{}, nil
	}

	questions, err := c.llm.GenerateQuestionsFor(ctx, content)
	if err != nil {
		return nil, err
	}

	c.publish(ctx, events.TypeQuestionsGenerated, map[string]interface{}{
		"count": len(questions),
	})
	return questions, nil
}

func (c *CoreLogic) AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error) {
	if content == "" {
		return []entity.Highlight{}, nil
	}
	return c.llm.AnalyseForHighlights(ctx, content)
}

// publish never fails the calling operation.
func (c *CoreLogic) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.publisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.publisher.Publish(ctx, evt); err != nil {
		c.logger.Warn("CORE", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
