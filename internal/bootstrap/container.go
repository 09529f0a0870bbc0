package bootstrap

import (
	"context"
	"fmt"

	"ai-writing-assistant/internal/config"
	"ai-writing-assistant/internal/controller"
	"ai-writing-assistant/internal/core"
	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/pkg/logger"
	"ai-writing-assistant/internal/repository/contract"
	"ai-writing-assistant/internal/repository/implementation"
	"ai-writing-assistant/internal/repository/memory"
	"ai-writing-assistant/internal/repository/rediscache"
	"ai-writing-assistant/internal/service"
	"ai-writing-assistant/pkg/database"
	"ai-writing-assistant/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	Logger logger.ILogger
	Bus    *events.Bus
	Core   *core.CoreLogic

	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ActivityConsumer service.IActivityConsumerService

	closers []func() error
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Logging
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. Event Bus
	bus := events.NewBus(events.DefaultTopic, watermill.NewStdLogger(false, false))
	c := &Container{
		Logger:  sysLogger,
		Bus:     bus,
		closers: []func() error{bus.Close},
	}

	// 3. Metadata backend
	repo, closeRepo, err := newMetadataRepository(ctx, cfg, sysLogger)
	if err != nil {
		c.Close()
		return nil, err
	}
	if closeRepo != nil {
		c.closers = append(c.closers, closeRepo)
	}

	// 4. Core
	prefs := &entity.PluginPreferences{
		GeminiApiKey:      cfg.Keys.GoogleGemini,
		HuggingFaceApiKey: cfg.Keys.HuggingFace,
	}
	assistant, err := core.CreateFor(ctx, cfg.App.Environment, prefs,
		core.WithMetadataRepository(repo),
		core.WithLLM(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.ProviderBaseURL()),
		core.WithQuestionLanguage(cfg.Ai.QuestionLanguage),
		core.WithPublisher(bus),
		core.WithLogger(sysLogger),
	)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Core = assistant

	// 5. Surfaces
	c.AssistantController = controller.NewAssistantController(assistant)
	c.ActivityConsumer = service.NewActivityConsumerService(bus, sysLogger)

	return c, nil
}

// Close releases the bus and the metadata backend in reverse order.
func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return firstErr
}

func newMetadataRepository(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) (contract.MetadataRepository, func() error, error) {
	switch cfg.Metadata.Backend {
	case "", config.MetadataBackendMemory:
		sysLogger.Info("BOOTSTRAP", "Using in-memory metadata backend", nil)
		return memory.NewMetadataRepository(), nil, nil

	case config.MetadataBackendPostgres:
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
		if err != nil {
			return nil, nil, fmt.Errorf("connect metadata database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		sysLogger.Info("BOOTSTRAP", "Using postgres metadata backend", nil)
		return implementation.NewMetadataRepository(db), sqlDB.Close, nil

	case config.MetadataBackendRedis:
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as a direct address", map[string]interface{}{
				"error": err.Error(),
			})
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
		sysLogger.Info("BOOTSTRAP", "Using redis metadata backend", nil)
		return rediscache.NewMetadataRepository(rdb), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown metadata backend %q", cfg.Metadata.Backend)
	}
}
