package events

import (
	"time"
)

// EventType represents different types of form events
type EventType string

const (
	// Form lifecycle events
	EventFormPublished   EventType = "form.published"
	EventFormUnpublished EventType = "form.unpublished"
	EventFormDeleted     EventType = "form.deleted"

	// Response events
	EventResponseSubmitted EventType = "response.submitted"
)

// FormEvent is the base event structure published to the broker.
type FormEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Form lifecycle event payloads

type FormPublishedEvent struct {
	FormID        string    `json:"form_id"`
	FormTitle     string    `json:"form_title"`
	QuestionCount int       `json:"question_count"`
	PublishedAt   time.Time `json:"published_at"`
}

type FormUnpublishedEvent struct {
	FormID        string    `json:"form_id"`
	FormTitle     string    `json:"form_title"`
	UnpublishedAt time.Time `json:"unpublished_at"`
}

type FormDeletedEvent struct {
	FormID        string    `json:"form_id"`
	FormTitle     string    `json:"form_title"`
	ResponseCount int64     `json:"response_count"`
	DeletedAt     time.Time `json:"deleted_at"`
}

// Response event payloads

type ResponseSubmittedEvent struct {
	ResponseID    string    `json:"response_id"`
	FormID        string    `json:"form_id"`
	FormTitle     string    `json:"form_title"`
	AnswerCount   int       `json:"answer_count"`
	MaxTotalScore int       `json:"max_total_score"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
