package service

import (
	"context"
	"sync"

	"ai-writing-assistant/internal/pkg/logger"
	"ai-writing-assistant/pkg/events"
)

type IActivityConsumerService interface {
	Consume(ctx context.Context) error
	Counts() map[string]int
}

// EventSource is implemented by *events.Bus.
type EventSource interface {
	Consume(ctx context.Context, handle func(context.Context, events.BaseEvent)) error
}

// activityConsumerService logs every assistant event and keeps per-type totals.
type activityConsumerService struct {
	source EventSource
	logger logger.ILogger

	mu     sync.Mutex
	counts map[string]int
}

func NewActivityConsumerService(source EventSource, logger logger.ILogger) IActivityConsumerService {
	return &activityConsumerService{
		source: source,
		logger: logger,
		counts: make(map[string]int),
	}
}

func (s *activityConsumerService) Consume(ctx context.Context) error {
	return s.source.Consume(ctx, s.handle)
}

func (s *activityConsumerService) handle(ctx context.Context, evt events.BaseEvent) {
	s.mu.Lock()
	s.counts[evt.Type]++
	s.mu.Unlock()

	s.logger.Info("EVENTS", "Assistant activity", map[string]interface{}{
		"type":        evt.Type,
		"data":        evt.Data,
		"occurred_at": evt.OccurredAt,
	})
}

func (s *activityConsumerService) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}
