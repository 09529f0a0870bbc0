// Package metadatastore resolves per-document metadata through a repository,
// synthesizing a default record for documents that have none.
package metadatastore

import (
	"context"
	"fmt"

	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/repository/contract"
	"ai-writing-assistant/internal/repository/memory"
)

type MetadataStore struct {
	repo contract.MetadataRepository
}

// NewStore is the live store. A nil repository falls back to process memory,
// which is all the assistant persists unless a backend is configured.
func NewStore(repo contract.MetadataRepository) *MetadataStore {
	if repo == nil {
		repo = memory.NewMetadataRepository()
	}
	return &MetadataStore{repo: repo}
}

func NewNullableStore() *MetadataStore {
	return &MetadataStore{repo: memory.NewMetadataRepository()}
}

// Fetch returns the stored record or a default one. An empty documentId means
// no document is active and never reaches the repository.
func (s *MetadataStore) Fetch(ctx context.Context, documentId string) (entity.Metadata, error) {
	if documentId == "" {
		return entity.NewMetadata(), nil
	}

	m, err := s.repo.FindByDocumentId(ctx, documentId)
	if err != nil {
		return entity.Metadata{}, fmt.Errorf("fetch metadata for %s: %w", documentId, err)
	}
	if m == nil {
		return entity.NewMetadata(), nil
	}
	return *m, nil
}

func (s *MetadataStore) Save(ctx context.Context, documentId string, record entity.Metadata) error {
	if err := s.repo.Save(ctx, documentId, &record); err != nil {
		return fmt.Errorf("save metadata for %s: %w", documentId, err)
	}
	return nil
}
