package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/arya020/FormBuilder/internal/editor"
	"github.com/arya020/FormBuilder/internal/models"
)

// Validator combines struct tag validation with question content validation.
type Validator struct {
	structValidator  *validator.Validate
	contentValidator *ContentValidator
}

// New creates the shared validator instance with all custom tags registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:  structValidator,
		contentValidator: NewContentValidator(),
	}
}

// ValidateStruct validates struct tags only.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate performs struct tag validation and, for forms, content validation
// of every question.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		return err
	}

	if form, ok := s.(*models.Form); ok {
		return v.contentValidator.ValidateQuestions(form.Questions)
	}
	return nil
}

// Content returns the question content validator.
func (v *Validator) Content() *ContentValidator {
	return v.contentValidator
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("move_direction", validateMoveDirection)

	// JSON field names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	return models.QuestionType(fl.Field().String()).Valid()
}

func validateMoveDirection(fl validator.FieldLevel) bool {
	switch editor.MoveDirection(fl.Field().String()) {
	case editor.MoveUp, editor.MoveDown:
		return true
	}
	return false
}
