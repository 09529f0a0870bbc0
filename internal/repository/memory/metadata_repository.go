package memory

import (
	"context"

	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SeededDocumentId is present in every fresh in-memory repository with a default record.
const SeededDocumentId = "test.md"

type MetadataRepository struct {
	cache *cache.Cache
}

var _ contract.MetadataRepository = &MetadataRepository{}

func NewMetadataRepository() *MetadataRepository {
	// Records live for the whole process, nothing to purge.
	c := cache.New(cache.NoExpiration, 0)
	c.Set(SeededDocumentId, entity.NewMetadata(), cache.NoExpiration)
	return &MetadataRepository{
		cache: c,
	}
}

func (r *MetadataRepository) FindByDocumentId(ctx context.Context, documentId string) (*entity.Metadata, error) {
	if x, found := r.cache.Get(documentId); found {
		m := x.(entity.Metadata).Clone()
		return &m, nil
	}
	return nil, nil
}

func (r *MetadataRepository) Save(ctx context.Context, documentId string, metadata *entity.Metadata) error {
	r.cache.Set(documentId, metadata.Clone(), cache.NoExpiration)
	return nil
}

func (r *MetadataRepository) Count() int {
	return r.cache.ItemCount()
}
