package host

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ai-writing-assistant/internal/core"
	"ai-writing-assistant/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	doc *Document
	err error
}

func (s staticSource) ActiveDocument(ctx context.Context) (*Document, error) {
	return s.doc, s.err
}

type failingAssistant struct {
	err error
}

func (a failingAssistant) MetadataFor(ctx context.Context, documentId string) (entity.Metadata, error) {
	return entity.Metadata{}, a.err
}

func (a failingAssistant) ToggleAssistant(ctx context.Context, documentId string) (entity.Metadata, error) {
	return entity.Metadata{}, a.err
}

func (a failingAssistant) GenerateQuestionsFor(ctx context.Context, content string) ([]string, error) {
	return nil, a.err
}

func (a failingAssistant) AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error) {
	return nil, a.err
}

func newCore(t *testing.T) *core.CoreLogic {
	t.Helper()
	c, err := core.CreateFor(context.Background(), core.ModeDevelopment, nil)
	require.NoError(t, err)
	return c
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.md")
	require.NoError(t, os.WriteFile(path, []byte("I think so."), 0o644))
	ctx := context.Background()

	doc, err := NewFileSource(path).ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Document{Id: "draft.md", Content: "I think so."}, doc)

	doc, err = NewFileSource(filepath.Join(dir, "missing.md")).ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = NewFileSource("").ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestAssistantPanel_ShowQuestions(t *testing.T) {
	var out bytes.Buffer
	panel := NewAssistantPanel(
		staticSource{doc: &Document{Id: "a.md", Content: "Some text"}},
		newCore(t),
		NewTerminalRenderer(&out, false),
	)

	ok := panel.ShowQuestions(context.Background())

	assert.True(t, ok)
	assert.Contains(t, out.String(), "Questions\n")
	assert.Contains(t, out.String(), "  • Why is this an interesting problem?\n")
}

func TestAssistantPanel_NoActiveDocument(t *testing.T) {
	var out bytes.Buffer
	panel := NewAssistantPanel(staticSource{}, newCore(t), NewTerminalRenderer(&out, false))
	ctx := context.Background()

	assert.True(t, panel.ShowQuestions(ctx))
	assert.Contains(t, out.String(), "(nothing to ask yet)")

	out.Reset()
	assert.False(t, panel.ToggleAssistant(ctx))
	assert.Equal(t, "No active document\n", out.String())
}

func TestAssistantPanel_ErrorsBecomeNotices(t *testing.T) {
	var out bytes.Buffer
	panel := NewAssistantPanel(
		staticSource{doc: &Document{Id: "a.md", Content: "text"}},
		failingAssistant{err: errors.New("quota exceeded")},
		NewTerminalRenderer(&out, false),
	)

	assert.False(t, panel.ShowQuestions(context.Background()))
	assert.Equal(t, "Failed to enable assistant\nquota exceeded\n", out.String())

	out.Reset()
	failing := NewAssistantPanel(staticSource{err: errors.New("disk")}, newCore(t), NewTerminalRenderer(&out, false))
	assert.False(t, failing.ShowHighlights(context.Background()))
	assert.Contains(t, out.String(), "Failed to read the active document")
}

func TestAssistantPanel_ShowHighlights(t *testing.T) {
	var out bytes.Buffer
	panel := NewAssistantPanel(
		staticSource{doc: &Document{Id: "a.md", Content: "Я думаю: I think so because."}},
		newCore(t),
		NewTerminalRenderer(&out, false),
	)

	assert.True(t, panel.ShowHighlights(context.Background()))
	assert.Contains(t, out.String(), `[claim] 9-16 "I think"`)
	assert.Contains(t, out.String(), `[evidence] 20-27 "because"`)
	assert.Contains(t, out.String(), "Я думаю: I think so because.\n")
}

func TestAssistantPanel_ToggleAndShowMetadata(t *testing.T) {
	var out bytes.Buffer
	panel := NewAssistantPanel(
		staticSource{doc: &Document{Id: "test.md", Content: "x"}},
		newCore(t),
		NewTerminalRenderer(&out, false),
	)
	ctx := context.Background()

	assert.True(t, panel.ShowMetadata(ctx))
	assert.Equal(t, "test.md\n  assistant: off\n", out.String())

	out.Reset()
	assert.True(t, panel.ToggleAssistant(ctx))
	assert.Equal(t, "test.md\n  assistant: on\n", out.String())
}
