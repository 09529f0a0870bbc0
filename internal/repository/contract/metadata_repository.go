package contract

import (
	"context"

	"ai-writing-assistant/internal/entity"
)

// MetadataRepository stores one metadata record per document identifier.
// FindByDocumentId returns (nil, nil) when nothing is stored for the document.
type MetadataRepository interface {
	FindByDocumentId(ctx context.Context, documentId string) (*entity.Metadata, error)
	Save(ctx context.Context, documentId string, metadata *entity.Metadata) error
}
