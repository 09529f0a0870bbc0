package implementation

import (
	"context"
	"errors"

	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/mapper"
	"ai-writing-assistant/internal/model"
	"ai-writing-assistant/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetadataRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MetadataMapper
}

func NewMetadataRepository(db *gorm.DB) contract.MetadataRepository {
	return &MetadataRepositoryImpl{
		db:     db,
		mapper: mapper.NewMetadataMapper(),
	}
}

func (r *MetadataRepositoryImpl) FindByDocumentId(ctx context.Context, documentId string) (*entity.Metadata, error) {
	var m model.DocumentMetadata
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// Save upserts on document_id; the latest write wins.
func (r *MetadataRepositoryImpl) Save(ctx context.Context, documentId string, metadata *entity.Metadata) error {
	m := r.mapper.ToModel(documentId, metadata)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "document_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"assistant_on", "title", "updated_at"}),
	}).Create(m).Error
}
