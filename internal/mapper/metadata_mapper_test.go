package mapper

import (
	"testing"

	"ai-writing-assistant/internal/entity"
	"ai-writing-assistant/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadataMapper_ToModel(t *testing.T) {
	m := NewMetadataMapper()
	title := "Essay"

	row := m.ToModel("essay.md", &entity.Metadata{AssistantOn: true, Title: &title})

	assert.Equal(t, "essay.md", row.DocumentId)
	assert.True(t, row.AssistantOn)
	assert.Equal(t, "Essay", *row.Title)
	assert.NotSame(t, &title, row.Title)
}

func TestMetadataMapper_ToEntity(t *testing.T) {
	m := NewMetadataMapper()

	e := m.ToEntity(&model.DocumentMetadata{DocumentId: "a.md", AssistantOn: true})

	assert.Equal(t, &entity.Metadata{AssistantOn: true}, e)
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel("a.md", nil))
}
