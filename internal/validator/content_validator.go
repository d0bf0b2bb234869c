package validator

import (
	"fmt"
	"strings"

	"github.com/arya020/FormBuilder/internal/models"
)

// ContentValidator checks the structural invariants of question content.
// These are integrity checks on what the editors produce; a payload that
// fails here was tampered with or built outside the editors.
type ContentValidator struct{}

func NewContentValidator() *ContentValidator {
	return &ContentValidator{}
}

// ValidateQuestion validates a complete question object.
func (v *ContentValidator) ValidateQuestion(question *models.Question) error {
	if strings.TrimSpace(question.Title) == "" {
		return fmt.Errorf("question title is required")
	}
	if question.Points < 1 {
		return fmt.Errorf("question points must be at least 1")
	}
	if question.Content == nil {
		return fmt.Errorf("question content cannot be nil")
	}
	if question.Content.QuestionType() != question.Type {
		return fmt.Errorf("content type %s does not match declared type %s",
			question.Content.QuestionType(), question.Type)
	}
	return v.ValidateContent(question.Content)
}

// ValidateQuestions validates every question of a form.
func (v *ContentValidator) ValidateQuestions(questions []models.Question) error {
	for i := range questions {
		if err := v.ValidateQuestion(&questions[i]); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateContent dispatches on the concrete content type.
func (v *ContentValidator) ValidateContent(content models.Content) error {
	switch c := content.(type) {
	case *models.CategorizeContent:
		return v.validateCategorize(c)
	case *models.ClozeContent:
		return v.validateCloze(c)
	case *models.ComprehensionContent:
		return v.validateComprehension(c)
	default:
		return fmt.Errorf("unsupported content type %T", content)
	}
}

// ValidateForPublish applies the stricter checks a live form must pass on
// top of the structural ones: no empty texts and no answer key pointing at
// a blank option.
func (v *ContentValidator) ValidateForPublish(question *models.Question) error {
	if err := v.ValidateQuestion(question); err != nil {
		return err
	}

	switch c := question.Content.(type) {
	case *models.CategorizeContent:
		if len(c.Items) == 0 {
			return fmt.Errorf("must have at least 1 item")
		}
		if len(c.Containers) == 0 {
			return fmt.Errorf("must have at least 1 container")
		}
	case *models.ClozeContent:
		if strings.TrimSpace(c.Sentence) == "" {
			return fmt.Errorf("sentence is required")
		}
		if len(c.Blanks) == 0 {
			return fmt.Errorf("must have at least 1 blank")
		}
	case *models.ComprehensionContent:
		if strings.TrimSpace(c.Passage) == "" {
			return fmt.Errorf("passage is required")
		}
		if len(c.Questions) == 0 {
			return fmt.Errorf("must have at least 1 sub-question")
		}
		for i, sq := range c.Questions {
			if strings.TrimSpace(sq.Text) == "" {
				return fmt.Errorf("sub-question %d text is required", i+1)
			}
			if sq.Answer == nil {
				return fmt.Errorf("sub-question %d has no answer key", i+1)
			}
			if strings.TrimSpace(sq.Options[*sq.Answer]) == "" {
				return fmt.Errorf("sub-question %d answer key points at an empty option", i+1)
			}
		}
	}
	return nil
}

func (v *ContentValidator) validateCategorize(content *models.CategorizeContent) error {
	containerIDs := make(map[string]bool, len(content.Containers))
	for _, container := range content.Containers {
		if container.ID == "" {
			return fmt.Errorf("container id cannot be empty")
		}
		if containerIDs[container.ID] {
			return fmt.Errorf("duplicate container id %q", container.ID)
		}
		containerIDs[container.ID] = true
	}

	itemIDs := make(map[string]bool, len(content.Items))
	for _, item := range content.Items {
		if item.ID == "" {
			return fmt.Errorf("item id cannot be empty")
		}
		if itemIDs[item.ID] {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		itemIDs[item.ID] = true

		if item.ContainerID != nil && !containerIDs[*item.ContainerID] {
			return fmt.Errorf("item %q references non-existent container %q", item.ID, *item.ContainerID)
		}
	}
	return nil
}

func (v *ContentValidator) validateCloze(content *models.ClozeContent) error {
	options := make(map[string]bool, len(content.Options))
	for _, option := range content.Options {
		if option == "" {
			return fmt.Errorf("option cannot be empty")
		}
		if options[option] {
			return fmt.Errorf("duplicate option %q", option)
		}
		options[option] = true
	}

	blankIDs := make(map[string]bool, len(content.Blanks))
	for i, blank := range content.Blanks {
		if blank.ID == "" {
			return fmt.Errorf("blank id cannot be empty")
		}
		if blankIDs[blank.ID] {
			return fmt.Errorf("duplicate blank id %q", blank.ID)
		}
		blankIDs[blank.ID] = true

		if blank.Start < 0 || blank.End > len(content.Sentence) || blank.Start >= blank.End {
			return fmt.Errorf("blank %q has invalid range [%d, %d)", blank.ID, blank.Start, blank.End)
		}
		if content.Sentence[blank.Start:blank.End] != blank.Word {
			return fmt.Errorf("blank %q word %q does not match sentence range", blank.ID, blank.Word)
		}
		if !options[blank.Word] {
			return fmt.Errorf("blank %q word %q is missing from the option pool", blank.ID, blank.Word)
		}

		for _, other := range content.Blanks[:i] {
			if blank.Start < other.End && other.Start < blank.End {
				return fmt.Errorf("blanks %q and %q overlap", other.ID, blank.ID)
			}
		}
	}
	return nil
}

func (v *ContentValidator) validateComprehension(content *models.ComprehensionContent) error {
	for i, sq := range content.Questions {
		if len(sq.Options) != 4 {
			return fmt.Errorf("sub-question %d must have exactly 4 options, got %d", i+1, len(sq.Options))
		}
		if sq.Answer != nil && (*sq.Answer < 0 || *sq.Answer >= len(sq.Options)) {
			return fmt.Errorf("sub-question %d answer index %d is out of range", i+1, *sq.Answer)
		}
	}
	return nil
}
