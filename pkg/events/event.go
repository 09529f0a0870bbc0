package events

import "time"

const (
	TypeMetadataUpdated    = "DOCUMENT_METADATA_UPDATED"
	TypeQuestionsGenerated = "QUESTIONS_GENERATED"
)

// Event defines the contract for all assistant events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUESTIONS_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
