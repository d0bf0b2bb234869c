package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arya020/FormBuilder/internal/models"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func validQuestion(t *testing.T) models.Question {
	t.Helper()
	return models.Question{
		ID:     "q1",
		Type:   models.QuestionCategorize,
		Title:  "Sort them",
		Points: 1,
		Content: &models.CategorizeContent{
			Items:      []models.Item{{ID: "i1", Text: "Dog", ContainerID: strptr("c1")}},
			Containers: []models.Container{{ID: "c1", Title: "Animals"}},
		},
	}
}

func TestValidateQuestion(t *testing.T) {
	v := NewContentValidator()

	q := validQuestion(t)
	require.NoError(t, v.ValidateQuestion(&q))

	blank := validQuestion(t)
	blank.Title = "  "
	assert.ErrorContains(t, v.ValidateQuestion(&blank), "title")

	zero := validQuestion(t)
	zero.Points = 0
	assert.ErrorContains(t, v.ValidateQuestion(&zero), "points")

	nilContent := validQuestion(t)
	nilContent.Content = nil
	assert.ErrorContains(t, v.ValidateQuestion(&nilContent), "content")

	mismatch := validQuestion(t)
	mismatch.Type = models.QuestionCloze
	assert.ErrorContains(t, v.ValidateQuestion(&mismatch), "does not match")
}

func TestValidateCategorizeContent(t *testing.T) {
	v := NewContentValidator()

	dangling := &models.CategorizeContent{
		Items:      []models.Item{{ID: "i1", Text: "Dog", ContainerID: strptr("ghost")}},
		Containers: []models.Container{{ID: "c1", Title: "Animals"}},
	}
	assert.ErrorContains(t, v.ValidateContent(dangling), "non-existent container")

	dupItems := &models.CategorizeContent{
		Items: []models.Item{{ID: "i1", Text: "Dog"}, {ID: "i1", Text: "Cat"}},
	}
	assert.ErrorContains(t, v.ValidateContent(dupItems), "duplicate item id")

	dupContainers := &models.CategorizeContent{
		Containers: []models.Container{{ID: "c1"}, {ID: "c1"}},
	}
	assert.ErrorContains(t, v.ValidateContent(dupContainers), "duplicate container id")
}

func TestValidateClozeContent(t *testing.T) {
	v := NewContentValidator()

	valid := &models.ClozeContent{
		Sentence: "The dog chased the cat",
		Blanks: []models.Blank{
			{ID: "b1", Word: "dog", Start: 4, End: 7},
			{ID: "b2", Word: "cat", Start: 19, End: 22},
		},
		Options: []string{"dog", "cat", "bird"},
	}
	require.NoError(t, v.ValidateContent(valid))

	badRange := &models.ClozeContent{
		Sentence: "short",
		Blanks:   []models.Blank{{ID: "b1", Word: "x", Start: 3, End: 99}},
		Options:  []string{"x"},
	}
	assert.ErrorContains(t, v.ValidateContent(badRange), "invalid range")

	wrongWord := &models.ClozeContent{
		Sentence: "The dog runs",
		Blanks:   []models.Blank{{ID: "b1", Word: "cat", Start: 4, End: 7}},
		Options:  []string{"cat"},
	}
	assert.ErrorContains(t, v.ValidateContent(wrongWord), "does not match sentence range")

	missingOption := &models.ClozeContent{
		Sentence: "The dog runs",
		Blanks:   []models.Blank{{ID: "b1", Word: "dog", Start: 4, End: 7}},
		Options:  []string{"cat"},
	}
	assert.ErrorContains(t, v.ValidateContent(missingOption), "missing from the option pool")

	overlapping := &models.ClozeContent{
		Sentence: "The dog runs",
		Blanks: []models.Blank{
			{ID: "b1", Word: "dog", Start: 4, End: 7},
			{ID: "b2", Word: "og r", Start: 5, End: 9},
		},
		Options: []string{"dog", "og r"},
	}
	assert.ErrorContains(t, v.ValidateContent(overlapping), "overlap")
}

func TestValidateComprehensionContent(t *testing.T) {
	v := NewContentValidator()

	valid := &models.ComprehensionContent{
		Passage: "Bees pollinate flowers.",
		Questions: []models.SubQuestion{
			{Text: "What do bees do?", Options: []string{"a", "b", "c", "d"}, Answer: intptr(1)},
		},
	}
	require.NoError(t, v.ValidateContent(valid))

	threeOptions := &models.ComprehensionContent{
		Questions: []models.SubQuestion{{Options: []string{"a", "b", "c"}}},
	}
	assert.ErrorContains(t, v.ValidateContent(threeOptions), "exactly 4 options")

	outOfRange := &models.ComprehensionContent{
		Questions: []models.SubQuestion{{Options: []string{"a", "b", "c", "d"}, Answer: intptr(4)}},
	}
	assert.ErrorContains(t, v.ValidateContent(outOfRange), "out of range")
}

func TestValidateForPublish(t *testing.T) {
	v := NewContentValidator()

	emptyCategorize := validQuestion(t)
	emptyCategorize.Content = &models.CategorizeContent{
		Containers: []models.Container{{ID: "c1", Title: "Animals"}},
	}
	assert.ErrorContains(t, v.ValidateForPublish(&emptyCategorize), "at least 1 item")

	noBlanks := models.Question{
		ID: "q2", Type: models.QuestionCloze, Title: "Fill", Points: 1,
		Content: &models.ClozeContent{Sentence: "The dog runs"},
	}
	assert.ErrorContains(t, v.ValidateForPublish(&noBlanks), "at least 1 blank")

	emptyOptionKey := models.Question{
		ID: "q3", Type: models.QuestionComprehension, Title: "Read", Points: 1,
		Content: &models.ComprehensionContent{
			Passage: "Bees.",
			Questions: []models.SubQuestion{
				{Text: "Q?", Options: []string{"a", "", "c", "d"}, Answer: intptr(1)},
			},
		},
	}
	assert.ErrorContains(t, v.ValidateForPublish(&emptyOptionKey), "empty option")

	noKey := emptyOptionKey
	noKey.Content = &models.ComprehensionContent{
		Passage: "Bees.",
		Questions: []models.SubQuestion{
			{Text: "Q?", Options: []string{"a", "b", "c", "d"}},
		},
	}
	assert.ErrorContains(t, v.ValidateForPublish(&noKey), "no answer key")
}
