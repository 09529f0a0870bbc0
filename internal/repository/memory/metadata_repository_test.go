package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"ai-writing-assistant/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRepository_SeededRecord(t *testing.T) {
	repo := NewMetadataRepository()

	m, err := repo.FindByDocumentId(context.Background(), SeededDocumentId)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, entity.NewMetadata(), *m)
	assert.Equal(t, 1, repo.Count())
}

func TestMetadataRepository_UnknownDocument(t *testing.T) {
	repo := NewMetadataRepository()

	m, err := repo.FindByDocumentId(context.Background(), "missing.md")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMetadataRepository_SaveReplacesAndCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMetadataRepository()
	title := "Draft"

	record := &entity.Metadata{AssistantOn: true, Title: &title}
	require.NoError(t, repo.Save(ctx, "draft.md", record))

	// Mutating the caller's value after saving must not leak into the store.
	record.AssistantOn = false
	title = "changed after save"

	got, err := repo.FindByDocumentId(ctx, "draft.md")
	require.NoError(t, err)
	assert.True(t, got.AssistantOn)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Draft", *got.Title)

	// Neither may mutating what a read returned.
	*got.Title = "changed by reader"

	again, err := repo.FindByDocumentId(ctx, "draft.md")
	require.NoError(t, err)
	assert.Equal(t, "Draft", *again.Title)

	require.NoError(t, repo.Save(ctx, "draft.md", &entity.Metadata{}))
	got, err = repo.FindByDocumentId(ctx, "draft.md")
	require.NoError(t, err)
	assert.Equal(t, entity.Metadata{}, *got)
}

func TestMetadataRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewMetadataRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Save(ctx, fmt.Sprintf("note-%d.md", i), &entity.Metadata{AssistantOn: i%2 == 0})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 51, repo.Count())
}
