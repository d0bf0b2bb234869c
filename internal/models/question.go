package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type QuestionType string

const (
	QuestionCategorize    QuestionType = "categorize"
	QuestionCloze         QuestionType = "cloze"
	QuestionComprehension QuestionType = "comprehension"
)

// AllQuestionTypes lists every supported question type in display order.
var AllQuestionTypes = []QuestionType{
	QuestionCategorize,
	QuestionCloze,
	QuestionComprehension,
}

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionCategorize, QuestionCloze, QuestionComprehension:
		return true
	}
	return false
}

// Label returns the display name used when generating question titles.
func (t QuestionType) Label() string {
	switch t {
	case QuestionCategorize:
		return "Categorize"
	case QuestionCloze:
		return "Cloze"
	case QuestionComprehension:
		return "Comprehension"
	}
	return string(t)
}

// Content is the closed set of per-type question payloads. Exactly one
// concrete type exists per QuestionType; decoding always goes through
// DecodeContent so the payload shape can never disagree with the tag.
type Content interface {
	QuestionType() QuestionType
	Clone() Content

	sealedContent()
}

// Question is one entry of a form. ID is assigned at creation and never
// changes; display numbering is derived from position, not stored here.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Title   string       `json:"title"`
	Image   *string      `json:"image"`
	Content Content      `json:"content"`
	Points  int          `json:"points"`
}

// UnmarshalJSON decodes the content payload according to the declared type.
// A missing or null content becomes the empty content for that type, and a
// missing points value takes the default of 1.
func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string          `json:"id"`
		Type    QuestionType    `json:"type"`
		Title   string          `json:"title"`
		Image   *string         `json:"image"`
		Content json.RawMessage `json:"content"`
		Points  *int            `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	content, err := DecodeContent(raw.Type, raw.Content)
	if err != nil {
		return fmt.Errorf("question %s: %w", raw.ID, err)
	}

	points := 1
	if raw.Points != nil && *raw.Points > 0 {
		points = *raw.Points
	}

	q.ID = raw.ID
	q.Type = raw.Type
	q.Title = raw.Title
	q.Image = raw.Image
	q.Content = content
	q.Points = points
	return nil
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	cp := q
	if q.Image != nil {
		img := *q.Image
		cp.Image = &img
	}
	if q.Content != nil {
		cp.Content = q.Content.Clone()
	}
	return cp
}

// DecodeContent unmarshals a raw content payload into the concrete type for
// the given question type. Empty and null payloads decode to the empty
// content of that type.
func DecodeContent(t QuestionType, data []byte) (Content, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return NewEmptyContent(t)
	}

	switch t {
	case QuestionCategorize:
		var c CategorizeContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("invalid categorize content: %w", err)
		}
		return &c, nil
	case QuestionCloze:
		var c ClozeContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("invalid cloze content: %w", err)
		}
		return &c, nil
	case QuestionComprehension:
		var c ComprehensionContent
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("invalid comprehension content: %w", err)
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}

// NewEmptyContent returns the zero content payload for a question type, the
// state a freshly added question starts in.
func NewEmptyContent(t QuestionType) (Content, error) {
	switch t {
	case QuestionCategorize:
		return &CategorizeContent{}, nil
	case QuestionCloze:
		return &ClozeContent{}, nil
	case QuestionComprehension:
		return &ComprehensionContent{}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}
