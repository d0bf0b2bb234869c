package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/arya020/FormBuilder/internal/errors"
	"github.com/arya020/FormBuilder/internal/models"
)

// ClozeEditor manages a cloze question's sentence, its blank ranges and the
// option pool during authoring. Blanks always reference live, non-overlapping
// ranges of the current sentence, and every blank word is present in the
// option pool.
type ClozeEditor struct {
	content models.ClozeContent
}

// NewClozeEditor starts an editor with an empty sentence.
func NewClozeEditor() *ClozeEditor {
	return &ClozeEditor{}
}

// EditCloze resumes authoring over existing content on a private copy.
func EditCloze(content *models.ClozeContent) *ClozeEditor {
	return &ClozeEditor{content: *content.Clone().(*models.ClozeContent)}
}

// Sentence returns the current sentence text.
func (e *ClozeEditor) Sentence() string {
	return e.content.Sentence
}

// SetSentence replaces the sentence and clears all blanks: any edit can move
// text under a recorded range, so stale ranges are dropped wholesale rather
// than left pointing at the wrong substring. The option pool is kept so
// previously collected words stay offerable.
func (e *ClozeEditor) SetSentence(sentence string) {
	if sentence == e.content.Sentence {
		return
	}
	e.content.Sentence = sentence
	e.content.Blanks = nil
}

// MarkBlank turns the selection [start, end) of the sentence into a blank.
// The selection is shrunk to exclude surrounding whitespace so the stored
// word always equals the exact sentence range. Selections that overlap an
// existing blank are silently ignored, which makes re-marking the same range
// idempotent. Returns the created blank and whether one was created.
func (e *ClozeEditor) MarkBlank(start, end int) (models.Blank, bool) {
	if start < 0 || end > len(e.content.Sentence) || start >= end {
		return models.Blank{}, false
	}

	// Shrink the range to the trimmed word. Whitespace may be multi-byte,
	// so decode runes rather than index bytes.
	for start < end {
		r, size := utf8.DecodeRuneInString(e.content.Sentence[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(e.content.Sentence[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if start == end {
		return models.Blank{}, false
	}

	for _, blank := range e.content.Blanks {
		if start < blank.End && blank.Start < end {
			return models.Blank{}, false
		}
	}

	word := e.content.Sentence[start:end]
	blank := models.Blank{ID: newID(), Word: word, Start: start, End: end}
	e.content.Blanks = append(e.content.Blanks, blank)

	if !e.content.HasOption(word) {
		e.content.Options = append(e.content.Options, word)
	}
	return blank, true
}

// UnmarkBlank removes a blank but keeps its word in the option pool so the
// author can reuse it elsewhere. Unknown ids are no-ops.
func (e *ClozeEditor) UnmarkBlank(blankID string) {
	for i := range e.content.Blanks {
		if e.content.Blanks[i].ID == blankID {
			e.content.Blanks = append(e.content.Blanks[:i], e.content.Blanks[i+1:]...)
			return
		}
	}
}

// AddOption adds a decoy word to the option pool. Adding a word that is
// already present is a no-op.
func (e *ClozeEditor) AddOption(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return apperrors.NewValidationError("option", "is required", text)
	}
	if e.content.HasOption(text) {
		return nil
	}
	e.content.Options = append(e.content.Options, text)
	return nil
}

// RemoveOption deletes a word from the option pool. Blanks backed by that
// word are removed with it: a blank whose word cannot be offered to the
// respondent has no answer.
func (e *ClozeEditor) RemoveOption(text string) {
	found := false
	for i, option := range e.content.Options {
		if option == text {
			e.content.Options = append(e.content.Options[:i], e.content.Options[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}

	blanks := e.content.Blanks[:0]
	for _, blank := range e.content.Blanks {
		if blank.Word != text {
			blanks = append(blanks, blank)
		}
	}
	e.content.Blanks = blanks
}

// Snapshot returns a deep copy of the committed content.
func (e *ClozeEditor) Snapshot() *models.ClozeContent {
	return e.content.Clone().(*models.ClozeContent)
}
