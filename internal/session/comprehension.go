package session

import "github.com/arya020/FormBuilder/internal/models"

// ComprehensionSession records one selected option per sub-question.
// Selections are independent of the authored answer key; grading happens
// elsewhere.
type ComprehensionSession struct {
	content    *models.ComprehensionContent
	selections map[int]int
}

func NewComprehensionSession(content *models.ComprehensionContent) *ComprehensionSession {
	return &ComprehensionSession{
		content:    content.Clone().(*models.ComprehensionContent),
		selections: make(map[int]int, len(content.Questions)),
	}
}

func (s *ComprehensionSession) QuestionType() models.QuestionType {
	return models.QuestionComprehension
}

// SelectOption picks an option for a sub-question, replacing any earlier
// pick. Out-of-range indices are silent no-ops.
func (s *ComprehensionSession) SelectOption(subQuestionIdx, optionIdx int) {
	if subQuestionIdx < 0 || subQuestionIdx >= len(s.content.Questions) {
		return
	}
	if optionIdx < 0 || optionIdx >= len(s.content.Questions[subQuestionIdx].Options) {
		return
	}
	s.selections[subQuestionIdx] = optionIdx
}

// Selection returns the chosen option index for a sub-question.
func (s *ComprehensionSession) Selection(subQuestionIdx int) (int, bool) {
	optionIdx, ok := s.selections[subQuestionIdx]
	return optionIdx, ok
}

// Complete reports whether every sub-question has a selection.
func (s *ComprehensionSession) Complete() bool {
	return len(s.selections) == len(s.content.Questions)
}

// Answer snapshots the selections.
func (s *ComprehensionSession) Answer() models.Answer {
	selections := make(map[int]int, len(s.selections))
	for idx, optionIdx := range s.selections {
		selections[idx] = optionIdx
	}
	return &models.ComprehensionAnswer{Selections: selections}
}
