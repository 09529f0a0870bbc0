package entity

// Metadata is the per-document state kept by the assistant.
type Metadata struct {
	AssistantOn bool    `json:"assistant_on"`
	Title       *string `json:"title,omitempty"`
}

// NewMetadata returns the record used for documents that have nothing stored yet.
func NewMetadata() Metadata {
	return Metadata{AssistantOn: false}
}

func (m *Metadata) ToggleAssistant() {
	m.AssistantOn = !m.AssistantOn
}

// Clone returns a copy that shares no memory with m.
func (m Metadata) Clone() Metadata {
	if m.Title != nil {
		title := *m.Title
		m.Title = &title
	}
	return m
}
