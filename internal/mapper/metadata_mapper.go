package mapper

import (
	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/model"
)

type MetadataMapper struct{}

func NewMetadataMapper() *MetadataMapper {
	return &MetadataMapper{}
}

func (m *MetadataMapper) ToEntity(d *model.DocumentMetadata) *entity.Metadata {
	if d == nil {
		return nil
	}

	var title *string
	if d.Title != nil {
		t := *d.Title
		title = &t
	}

	return &entity.Metadata{
		AssistantOn: d.AssistantOn,
		Title:       title,
	}
}

func (m *MetadataMapper) ToModel(documentId string, e *entity.Metadata) *model.DocumentMetadata {
	if e == nil {
		return nil
	}

	var title *string
	if e.Title != nil {
		t := *e.Title
		title = &t
	}

	return &model.DocumentMetadata{
		DocumentId:  documentId,
		AssistantOn: e.AssistantOn,
		Title:       title,
	}
}
