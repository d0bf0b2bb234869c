package editor

import (
	"fmt"
	"strings"

	apperrors "github.com/arya020/FormBuilder/internal/errors"
	"github.com/arya020/FormBuilder/internal/models"
)

// MoveDirection selects the adjacent sibling a question swaps with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// FormEditor is the authoring aggregate: an ordered question sequence plus
// form-level metadata. Question ids stay stable across every mutation;
// display numbering is always derived from position.
type FormEditor struct {
	form models.Form
}

// NewFormEditor starts an empty form with the default title.
func NewFormEditor() *FormEditor {
	return &FormEditor{form: models.Form{Title: models.DefaultFormTitle}}
}

// EditForm resumes authoring over a loaded form on a private deep copy.
func EditForm(form *models.Form) *FormEditor {
	cp := *form
	cp.Questions = make([]models.Question, len(form.Questions))
	for i, q := range form.Questions {
		cp.Questions[i] = q.Clone()
	}
	if form.Description != nil {
		desc := *form.Description
		cp.Description = &desc
	}
	if form.HeaderImage != nil {
		img := *form.HeaderImage
		cp.HeaderImage = &img
	}
	return &FormEditor{form: cp}
}

// SetTitle replaces the form title.
func (e *FormEditor) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.NewValidationError("title", "is required", title)
	}
	e.form.Title = title
	return nil
}

// SetDescription replaces the form description; empty clears it.
func (e *FormEditor) SetDescription(description string) {
	description = strings.TrimSpace(description)
	if description == "" {
		e.form.Description = nil
		return
	}
	e.form.Description = &description
}

// SetHeaderImage records the header image URL returned by the blob store.
func (e *FormEditor) SetHeaderImage(url string) {
	e.form.HeaderImage = &url
}

// RemoveHeaderImage clears the header image.
func (e *FormEditor) RemoveHeaderImage() {
	e.form.HeaderImage = nil
}

// AddQuestion appends a question of the given type with empty content, a
// point weight of 1 and a generated title of the form "<Label> Question <n>"
// where n is the question count at insertion time. Titles are not renumbered
// by later inserts or deletes.
func (e *FormEditor) AddQuestion(t models.QuestionType) (models.Question, error) {
	content, err := models.NewEmptyContent(t)
	if err != nil {
		return models.Question{}, apperrors.NewValidationErrorWithRule("type", "must be a valid question type", "question_type", string(t))
	}

	question := models.Question{
		ID:      newID(),
		Type:    t,
		Title:   fmt.Sprintf("%s Question %d", t.Label(), len(e.form.Questions)+1),
		Content: content,
		Points:  1,
	}
	e.form.Questions = append(e.form.Questions, question)
	return question.Clone(), nil
}

// MoveQuestion swaps a question with its adjacent sibling. Moving the first
// question up or the last one down is a no-op, as is an unknown id.
func (e *FormEditor) MoveQuestion(id string, direction MoveDirection) {
	idx := e.indexOf(id)
	if idx < 0 {
		return
	}

	target := idx
	switch direction {
	case MoveUp:
		target = idx - 1
	case MoveDown:
		target = idx + 1
	default:
		return
	}
	if target < 0 || target >= len(e.form.Questions) {
		return
	}

	e.form.Questions[idx], e.form.Questions[target] = e.form.Questions[target], e.form.Questions[idx]
}

// RemoveQuestion deletes a question by id. The remaining questions keep
// their ids and titles; only derived numbering shifts.
func (e *FormEditor) RemoveQuestion(id string) {
	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	e.form.Questions = append(e.form.Questions[:idx], e.form.Questions[idx+1:]...)
}

// ReplaceContent swaps in the snapshot a per-type editor committed. The
// payload must match the question's declared type; a mismatch means the
// caller wired the wrong editor to the question. Unknown ids are silently
// dropped so a snapshot arriving after its question was deleted does not
// fail the session.
func (e *FormEditor) ReplaceContent(id string, content models.Content) error {
	idx := e.indexOf(id)
	if idx < 0 {
		return nil
	}
	if content == nil || content.QuestionType() != e.form.Questions[idx].Type {
		return apperrors.NewValidationError("content",
			fmt.Sprintf("does not match question type %q", e.form.Questions[idx].Type), nil)
	}
	e.form.Questions[idx].Content = content.Clone()
	return nil
}

// SetQuestionTitle replaces a question's display label.
func (e *FormEditor) SetQuestionTitle(id, title string) error {
	idx := e.indexOf(id)
	if idx < 0 {
		return nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.NewValidationError("title", "is required", title)
	}
	e.form.Questions[idx].Title = title
	return nil
}

// SetQuestionImage records an uploaded image URL on a question. An unknown
// id is a silent no-op: uploads complete asynchronously and may land after
// the question was deleted, in which case the result is discarded.
func (e *FormEditor) SetQuestionImage(id, url string) {
	if idx := e.indexOf(id); idx >= 0 {
		e.form.Questions[idx].Image = &url
	}
}

// RemoveQuestionImage clears a question's image.
func (e *FormEditor) RemoveQuestionImage(id string) {
	if idx := e.indexOf(id); idx >= 0 {
		e.form.Questions[idx].Image = nil
	}
}

// SetQuestionPoints replaces a question's point weight.
func (e *FormEditor) SetQuestionPoints(id string, points int) error {
	idx := e.indexOf(id)
	if idx < 0 {
		return nil
	}
	if points < 1 {
		return apperrors.NewValidationError("points", "must be a positive integer", points)
	}
	e.form.Questions[idx].Points = points
	return nil
}

// Questions returns a deep copy of the ordered question sequence.
func (e *FormEditor) Questions() []models.Question {
	questions := make([]models.Question, len(e.form.Questions))
	for i, q := range e.form.Questions {
		questions[i] = q.Clone()
	}
	return questions
}

// Snapshot returns a deep copy of the whole form in its committed state.
func (e *FormEditor) Snapshot() *models.Form {
	cp := e.form
	cp.Questions = make([]models.Question, len(e.form.Questions))
	for i, q := range e.form.Questions {
		cp.Questions[i] = q.Clone()
	}
	if e.form.Description != nil {
		desc := *e.form.Description
		cp.Description = &desc
	}
	if e.form.HeaderImage != nil {
		img := *e.form.HeaderImage
		cp.HeaderImage = &img
	}
	return &cp
}

func (e *FormEditor) indexOf(id string) int {
	for i := range e.form.Questions {
		if e.form.Questions[i].ID == id {
			return i
		}
	}
	return -1
}
