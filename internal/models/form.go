package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultFormTitle is the title a freshly created form starts with.
const DefaultFormTitle = "Untitled Form"

// Form is the aggregate persisted as a single row: the question list lives
// in one JSONB column so a save is always an atomic document replace.
type Form struct {
	ID          string                        `json:"id" gorm:"primaryKey;size:36"`
	Title       string                        `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description *string                       `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`
	HeaderImage *string                       `json:"headerImage" gorm:"size:500"`
	Questions   datatypes.JSONSlice[Question] `json:"questions" gorm:"type:jsonb"`
	IsPublished bool                          `json:"isPublished" gorm:"default:false"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Form) TableName() string {
	return "forms"
}

// QuestionByID returns the question with the given id, or nil.
func (f *Form) QuestionByID(id string) *Question {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i]
		}
	}
	return nil
}

// MaxTotalScore sums the point weights of every question.
func (f *Form) MaxTotalScore() int {
	total := 0
	for _, q := range f.Questions {
		total += q.Points
	}
	return total
}
