package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Answer is the closed set of per-type respondent payloads. Like Content it
// is tagged by the question type and decoded through DecodeAnswer only.
type Answer interface {
	QuestionType() QuestionType
	// Answered reports whether the respondent recorded at least one choice.
	Answered() bool

	sealedAnswer()
}

// UnassignedTarget is the placement value for items outside every container.
// It doubles as the drop target id of the unassigned pool.
const UnassignedTarget = "unassigned"

// CategorizeAnswer maps item id to the container id it was dropped into, or
// to UnassignedTarget for items left in the pool.
type CategorizeAnswer struct {
	Placements map[string]string `json:"placements"`
}

func (*CategorizeAnswer) QuestionType() QuestionType { return QuestionCategorize }
func (*CategorizeAnswer) sealedAnswer()              {}

func (a *CategorizeAnswer) Answered() bool {
	for _, target := range a.Placements {
		if target != UnassignedTarget {
			return true
		}
	}
	return false
}

// ClozeAnswer maps blank id to the word currently filling it. Unfilled
// blanks are absent from the map.
type ClozeAnswer struct {
	Filled map[string]string `json:"filled"`
}

func (*ClozeAnswer) QuestionType() QuestionType { return QuestionCloze }
func (*ClozeAnswer) sealedAnswer()              {}

func (a *ClozeAnswer) Answered() bool { return len(a.Filled) > 0 }

// ComprehensionAnswer maps sub-question index to the selected option index.
// Sub-questions without a selection are absent from the map.
type ComprehensionAnswer struct {
	Selections map[int]int `json:"selections"`
}

func (*ComprehensionAnswer) QuestionType() QuestionType { return QuestionComprehension }
func (*ComprehensionAnswer) sealedAnswer()              {}

func (a *ComprehensionAnswer) Answered() bool { return len(a.Selections) > 0 }

// DecodeAnswer unmarshals a raw answer payload into the concrete type for
// the given question type. Empty and null payloads decode to the empty
// answer, which is how lenient submissions represent unanswered questions.
func DecodeAnswer(t QuestionType, data []byte) (Answer, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return NewEmptyAnswer(t)
	}

	switch t {
	case QuestionCategorize:
		var a CategorizeAnswer
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("invalid categorize answer: %w", err)
		}
		return &a, nil
	case QuestionCloze:
		var a ClozeAnswer
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("invalid cloze answer: %w", err)
		}
		return &a, nil
	case QuestionComprehension:
		var a ComprehensionAnswer
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("invalid comprehension answer: %w", err)
		}
		return &a, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}

// NewEmptyAnswer returns the unanswered payload for a question type.
func NewEmptyAnswer(t QuestionType) (Answer, error) {
	switch t {
	case QuestionCategorize:
		return &CategorizeAnswer{Placements: map[string]string{}}, nil
	case QuestionCloze:
		return &ClozeAnswer{Filled: map[string]string{}}, nil
	case QuestionComprehension:
		return &ComprehensionAnswer{Selections: map[int]int{}}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}
