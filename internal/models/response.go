package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// QuestionAnswer is one entry of a submitted response, mirroring the form's
// question order at submission time. Score stays 0 until a later grading
// stage fills it in; MaxScore carries the question's point weight.
type QuestionAnswer struct {
	QuestionID   string       `json:"questionId"`
	QuestionType QuestionType `json:"questionType"`
	Answer       Answer       `json:"answer"`
	Score        int          `json:"score"`
	MaxScore     int          `json:"maxScore"`
}

// UnmarshalJSON decodes the answer payload according to the declared
// question type, defaulting MaxScore to 1 as the store contract requires.
func (qa *QuestionAnswer) UnmarshalJSON(data []byte) error {
	var raw struct {
		QuestionID   string          `json:"questionId"`
		QuestionType QuestionType    `json:"questionType"`
		Answer       json.RawMessage `json:"answer"`
		Score        int             `json:"score"`
		MaxScore     *int            `json:"maxScore"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	answer, err := DecodeAnswer(raw.QuestionType, raw.Answer)
	if err != nil {
		return fmt.Errorf("answer for question %s: %w", raw.QuestionID, err)
	}

	maxScore := 1
	if raw.MaxScore != nil && *raw.MaxScore > 0 {
		maxScore = *raw.MaxScore
	}

	qa.QuestionID = raw.QuestionID
	qa.QuestionType = raw.QuestionType
	qa.Answer = answer
	qa.Score = raw.Score
	qa.MaxScore = maxScore
	return nil
}

// UserInfo is the optional self-reported identity of a respondent.
type UserInfo struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// Response is one respondent's submission for a form. Responses are
// append-only: created once and never updated.
type Response struct {
	ID            string                              `json:"id" gorm:"primaryKey;size:36"`
	FormID        string                              `json:"formId" gorm:"size:36;not null;index"`
	Responses     datatypes.JSONSlice[QuestionAnswer] `json:"responses" gorm:"type:jsonb"`
	TotalScore    int                                 `json:"totalScore" gorm:"default:0"`
	MaxTotalScore int                                 `json:"maxTotalScore" gorm:"default:0"`
	SubmittedAt   time.Time                           `json:"submittedAt"`
	UserInfo      UserInfo                            `json:"userInfo" gorm:"embedded;embeddedPrefix:user_"`
}

func (Response) TableName() string {
	return "responses"
}
