package session

import "github.com/arya020/FormBuilder/internal/models"

// ClozeSession tracks which option word fills which blank. The relation is
// injective: one word fills at most one blank at a time, so dropping a word
// onto a second blank releases it from the first.
type ClozeSession struct {
	content *models.ClozeContent
	filled  map[string]string
}

// NewClozeSession starts with every blank empty.
func NewClozeSession(content *models.ClozeContent) *ClozeSession {
	return &ClozeSession{
		content: content.Clone().(*models.ClozeContent),
		filled:  make(map[string]string, len(content.Blanks)),
	}
}

func (s *ClozeSession) QuestionType() models.QuestionType {
	return models.QuestionCloze
}

// FillBlank drops a word onto a blank. Words outside the option pool and
// unknown blank ids are silent no-ops. If the word currently fills another
// blank it is stolen from there first.
func (s *ClozeSession) FillBlank(blankID, word string) {
	if s.content.BlankByID(blankID) == nil || !s.content.HasOption(word) {
		return
	}

	for id, filled := range s.filled {
		if filled == word {
			delete(s.filled, id)
		}
	}
	s.filled[blankID] = word
}

// ClearBlank releases a blank's word back into the available pool.
func (s *ClozeSession) ClearBlank(blankID string) {
	delete(s.filled, blankID)
}

// Word returns the word currently filling a blank.
func (s *ClozeSession) Word(blankID string) (string, bool) {
	word, ok := s.filled[blankID]
	return word, ok
}

// AvailableOptions lists the option words no blank currently consumes, in
// pool order.
func (s *ClozeSession) AvailableOptions() []string {
	used := make(map[string]bool, len(s.filled))
	for _, word := range s.filled {
		used[word] = true
	}

	var available []string
	for _, option := range s.content.Options {
		if !used[option] {
			available = append(available, option)
		}
	}
	return available
}

// Complete reports whether every blank is filled.
func (s *ClozeSession) Complete() bool {
	return len(s.filled) == len(s.content.Blanks)
}

// Answer snapshots the blank-to-word relation.
func (s *ClozeSession) Answer() models.Answer {
	filled := make(map[string]string, len(s.filled))
	for blankID, word := range s.filled {
		filled[blankID] = word
	}
	return &models.ClozeAnswer{Filled: filled}
}
