package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assistant:metadata:"

type MetadataRepository struct {
	rdb *redis.Client
}

var _ contract.MetadataRepository = &MetadataRepository{}

func NewMetadataRepository(rdb *redis.Client) *MetadataRepository {
	return &MetadataRepository{rdb: rdb}
}

func key(documentId string) string {
	return keyPrefix + documentId
}

func (r *MetadataRepository) FindByDocumentId(ctx context.Context, documentId string) (*entity.Metadata, error) {
	raw, err := r.rdb.Get(ctx, key(documentId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", documentId, err)
	}

	var m entity.Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w", documentId, err)
	}
	return &m, nil
}

func (r *MetadataRepository) Save(ctx context.Context, documentId string, metadata *entity.Metadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode metadata for %s: %w", documentId, err)
	}
	if err := r.rdb.Set(ctx, key(documentId), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", documentId, err)
	}
	return nil
}
