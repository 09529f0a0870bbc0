package dto

import "ai-writing-assistant/internal/entity"

type UpdateMetadataRequest struct {
	DocumentId  string  `json:"document_id" validate:"required,max=1024"`
	AssistantOn *bool   `json:"assistant_on" validate:"required"`
	Title       *string `json:"title" validate:"omitempty,max=512"`
}

type ToggleAssistantRequest struct {
	DocumentId string `json:"document_id" validate:"required,max=1024"`
}

// ContentRequest carries document text. Empty content is valid and yields an empty result.
type ContentRequest struct {
	Content string `json:"content" validate:"max=1000000"`
}

type MetadataResponse struct {
	DocumentId  string  `json:"document_id"`
	AssistantOn bool    `json:"assistant_on"`
	Title       *string `json:"title,omitempty"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

type HighlightsResponse struct {
	Highlights []entity.Highlight `json:"highlights"`
}
