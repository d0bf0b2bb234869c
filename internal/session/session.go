// Package session implements the respondent-side answer state machines and
// the assembler that folds them into one submission payload. A session is
// ephemeral: it exists for one viewing of a form and is never persisted on
// its own.
package session

import (
	"fmt"

	"github.com/arya020/FormBuilder/internal/models"
)

// Session is the common surface of the per-type answer state machines.
type Session interface {
	QuestionType() models.QuestionType
	// Answer snapshots the current selections into the submission payload.
	Answer() models.Answer
	// Complete reports whether every answerable part has a selection; only
	// strict-mode assembly cares.
	Complete() bool
}

// New derives the initial answer state for a question from its content.
// Called once per question when a respondent opens a form.
func New(q models.Question) (Session, error) {
	switch content := q.Content.(type) {
	case *models.CategorizeContent:
		return NewCategorizeSession(content), nil
	case *models.ClozeContent:
		return NewClozeSession(content), nil
	case *models.ComprehensionContent:
		return NewComprehensionSession(content), nil
	default:
		return nil, fmt.Errorf("question %s: unsupported content %T", q.ID, q.Content)
	}
}
