package session

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/arya020/FormBuilder/internal/models"
)

// IncompleteAnswerError reports a question that is missing or only partially
// answered when strict assembly is requested.
type IncompleteAnswerError struct {
	QuestionID string
	Title      string
}

func (e *IncompleteAnswerError) Error() string {
	return fmt.Sprintf("question %q (%s) is not fully answered", e.Title, e.QuestionID)
}

// Sessions maps question ids to their in-flight answer state.
type Sessions map[string]Session

// AssembleOptions controls how missing or partial answers are treated.
type AssembleOptions struct {
	// Strict rejects the submission when any question lacks a complete
	// answer. The default accepts partial submissions, recording empty
	// answers for unanswered questions.
	Strict bool
}

// Assemble builds a submission from the form's questions and the respondent's
// sessions. Answers follow form question order. Scores are zeroed; grading is
// out of scope, but max scores carry the authored point values so a grader
// has the denominator. SubmittedAt is stamped by the caller.
func Assemble(form *models.Form, sessions Sessions, opts AssembleOptions) (*models.Response, error) {
	answers := make([]models.QuestionAnswer, 0, len(form.Questions))
	maxTotal := 0

	for _, q := range form.Questions {
		sess, ok := sessions[q.ID]
		if opts.Strict && (!ok || !sess.Complete()) {
			return nil, &IncompleteAnswerError{QuestionID: q.ID, Title: q.Title}
		}

		var answer models.Answer
		if ok {
			answer = sess.Answer()
		} else {
			empty, err := models.NewEmptyAnswer(q.Type)
			if err != nil {
				return nil, fmt.Errorf("question %s: %w", q.ID, err)
			}
			answer = empty
		}

		answers = append(answers, models.QuestionAnswer{
			QuestionID:   q.ID,
			QuestionType: q.Type,
			Answer:       answer,
			Score:        0,
			MaxScore:     q.Points,
		})
		maxTotal += q.Points
	}

	return &models.Response{
		FormID:        form.ID,
		Responses:     datatypes.JSONSlice[models.QuestionAnswer](answers),
		TotalScore:    0,
		MaxTotalScore: maxTotal,
	}, nil
}
