package editor

import "github.com/arya020/FormBuilder/internal/models"

// subQuestionOptions is the fixed number of choices per sub-question.
const subQuestionOptions = 4

// defaultSubQuestionText seeds a freshly added sub-question.
const defaultSubQuestionText = "New Question"

// subQuestion pairs a persisted sub-question with an editor-local id so the
// author can address entries stably while reordering-free mutation happens.
// The id never leaves the editor; the stored shape addresses sub-questions
// positionally.
type subQuestion struct {
	id      string
	content models.SubQuestion
}

// ComprehensionEditor manages a passage and its multiple-choice
// sub-questions during authoring.
type ComprehensionEditor struct {
	passage   string
	questions []subQuestion
}

// NewComprehensionEditor starts an editor with an empty passage.
func NewComprehensionEditor() *ComprehensionEditor {
	return &ComprehensionEditor{}
}

// EditComprehension resumes authoring over existing content. Each
// sub-question receives a fresh editor-local id.
func EditComprehension(content *models.ComprehensionContent) *ComprehensionEditor {
	cp := content.Clone().(*models.ComprehensionContent)
	e := &ComprehensionEditor{passage: cp.Passage}
	for _, sq := range cp.Questions {
		e.questions = append(e.questions, subQuestion{id: newID(), content: sq})
	}
	return e
}

// SetPassage replaces the comprehension passage.
func (e *ComprehensionEditor) SetPassage(passage string) {
	e.passage = passage
}

// AddSubQuestion appends a sub-question with placeholder text, four empty
// options and no correct answer, and returns its editor-local id.
func (e *ComprehensionEditor) AddSubQuestion() string {
	sq := subQuestion{
		id: newID(),
		content: models.SubQuestion{
			Text:    defaultSubQuestionText,
			Options: make([]string, subQuestionOptions),
		},
	}
	e.questions = append(e.questions, sq)
	return sq.id
}

// UpdateText replaces a sub-question's prompt. Unknown ids are no-ops.
func (e *ComprehensionEditor) UpdateText(id, text string) {
	if sq := e.byID(id); sq != nil {
		sq.content.Text = text
	}
}

// UpdateOption replaces one of a sub-question's four options. Unknown ids
// and out-of-range indexes are no-ops.
func (e *ComprehensionEditor) UpdateOption(id string, idx int, text string) {
	sq := e.byID(id)
	if sq == nil || idx < 0 || idx >= len(sq.content.Options) {
		return
	}
	sq.content.Options[idx] = text
}

// SetAnswer marks an option index as the correct answer. The option text may
// still be empty at this point; publish-time validation flags that, not the
// editor.
func (e *ComprehensionEditor) SetAnswer(id string, idx int) {
	sq := e.byID(id)
	if sq == nil || idx < 0 || idx >= len(sq.content.Options) {
		return
	}
	answer := idx
	sq.content.Answer = &answer
}

// ClearAnswer removes the correct-answer mark from a sub-question.
func (e *ComprehensionEditor) ClearAnswer(id string) {
	if sq := e.byID(id); sq != nil {
		sq.content.Answer = nil
	}
}

// DeleteSubQuestion removes a sub-question. Unknown ids are no-ops.
func (e *ComprehensionEditor) DeleteSubQuestion(id string) {
	for i := range e.questions {
		if e.questions[i].id == id {
			e.questions = append(e.questions[:i], e.questions[i+1:]...)
			return
		}
	}
}

// SubQuestionIDs returns the editor-local ids in display order.
func (e *ComprehensionEditor) SubQuestionIDs() []string {
	ids := make([]string, len(e.questions))
	for i, sq := range e.questions {
		ids[i] = sq.id
	}
	return ids
}

// Snapshot returns the committed content. Editor-local ids are stripped;
// the persisted shape addresses sub-questions by position.
func (e *ComprehensionEditor) Snapshot() *models.ComprehensionContent {
	content := &models.ComprehensionContent{
		Passage:   e.passage,
		Questions: make([]models.SubQuestion, len(e.questions)),
	}
	for i, sq := range e.questions {
		content.Questions[i] = sq.content
	}
	return content.Clone().(*models.ComprehensionContent)
}

func (e *ComprehensionEditor) byID(id string) *subQuestion {
	for i := range e.questions {
		if e.questions[i].id == id {
			return &e.questions[i]
		}
	}
	return nil
}
