package host

import (
	"context"

	"ai-writing-assistant/internal/entity"
)

// Assistant is the subset of core.CoreLogic the panel drives.
type Assistant interface {
	MetadataFor(ctx context.Context, documentId string) (entity.Metadata, error)
	ToggleAssistant(ctx context.Context, documentId string) (entity.Metadata, error)
	GenerateQuestionsFor(ctx context.Context, content string) ([]string, error)
	AnalyseForHighlights(ctx context.Context, content string) ([]entity.Highlight, error)
}

// Renderer is whatever surface shows results to the writer.
type Renderer interface {
	RenderQuestions(questions []string)
	RenderHighlights(content string, highlights []entity.Highlight)
	RenderMetadata(documentId string, metadata entity.Metadata)
	Notice(message string)
}

// AssistantPanel reads the active document, asks the assistant and renders
// the answer. Failures become notices instead of errors.
type AssistantPanel struct {
	source    DocumentSource
	assistant Assistant
	renderer  Renderer
}

func NewAssistantPanel(source DocumentSource, assistant Assistant, renderer Renderer) *AssistantPanel {
	return &AssistantPanel{
		source:    source,
		assistant: assistant,
		renderer:  renderer,
	}
}

func (p *AssistantPanel) active(ctx context.Context) (*Document, bool) {
	doc, err := p.source.ActiveDocument(ctx)
	if err != nil {
		p.renderer.Notice("Failed to read the active document\n" + err.Error())
		return nil, false
	}
	if doc == nil {
		doc = &Document{}
	}
	return doc, true
}

// ShowQuestions is the "Activate input mode" action.
func (p *AssistantPanel) ShowQuestions(ctx context.Context) bool {
	doc, ok := p.active(ctx)
	if !ok {
		return false
	}

	questions, err := p.assistant.GenerateQuestionsFor(ctx, doc.Content)
	if err != nil {
		p.renderer.Notice("Failed to enable assistant\n" + err.Error())
		return false
	}
	p.renderer.RenderQuestions(questions)
	return true
}

func (p *AssistantPanel) ShowHighlights(ctx context.Context) bool {
	doc, ok := p.active(ctx)
	if !ok {
		return false
	}

	highlights, err := p.assistant.AnalyseForHighlights(ctx, doc.Content)
	if err != nil {
		p.renderer.Notice("Failed to analyse highlights\n" + err.Error())
		return false
	}
	p.renderer.RenderHighlights(doc.Content, highlights)
	return true
}

func (p *AssistantPanel) ShowMetadata(ctx context.Context) bool {
	doc, ok := p.active(ctx)
	if !ok {
		return false
	}

	m, err := p.assistant.MetadataFor(ctx, doc.Id)
	if err != nil {
		p.renderer.Notice("Failed to load document settings\n" + err.Error())
		return false
	}
	p.renderer.RenderMetadata(doc.Id, m)
	return true
}

func (p *AssistantPanel) ToggleAssistant(ctx context.Context) bool {
	doc, ok := p.active(ctx)
	if !ok {
		return false
	}
	if doc.Id == "" {
		p.renderer.Notice("No active document")
		return false
	}

	m, err := p.assistant.ToggleAssistant(ctx, doc.Id)
	if err != nil {
		p.renderer.Notice("Failed to toggle assistant\n" + err.Error())
		return false
	}
	p.renderer.RenderMetadata(doc.Id, m)
	return true
}
