package editor

import (
	"math/rand"
	"sort"
	"testing"

	apperrors "github.com/arya020/FormBuilder/internal/errors"
	"github.com/arya020/FormBuilder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormEditorDefaults(t *testing.T) {
	e := NewFormEditor()
	snap := e.Snapshot()
	assert.Equal(t, models.DefaultFormTitle, snap.Title)
	assert.Empty(t, snap.Questions)
	assert.Nil(t, snap.HeaderImage)
}

func TestFormAddQuestionGeneratedTitles(t *testing.T) {
	e := NewFormEditor()

	q1, err := e.AddQuestion(models.QuestionCategorize)
	require.NoError(t, err)
	q2, err := e.AddQuestion(models.QuestionCloze)
	require.NoError(t, err)
	q3, err := e.AddQuestion(models.QuestionComprehension)
	require.NoError(t, err)

	assert.Equal(t, "Categorize Question 1", q1.Title)
	assert.Equal(t, "Cloze Question 2", q2.Title)
	assert.Equal(t, "Comprehension Question 3", q3.Title)
	assert.Equal(t, 1, q1.Points)

	// Titles keep their insertion-time number; deleting does not renumber.
	e.RemoveQuestion(q1.ID)
	q4, err := e.AddQuestion(models.QuestionCategorize)
	require.NoError(t, err)
	assert.Equal(t, "Categorize Question 3", q4.Title)
}

func TestFormAddQuestionUnknownType(t *testing.T) {
	e := NewFormEditor()
	_, err := e.AddQuestion("essay")
	require.Error(t, err)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestFormMoveQuestionBoundaries(t *testing.T) {
	e := NewFormEditor()
	q1, _ := e.AddQuestion(models.QuestionCategorize)
	q2, _ := e.AddQuestion(models.QuestionCloze)
	q3, _ := e.AddQuestion(models.QuestionComprehension)

	// Boundary moves are no-ops.
	e.MoveQuestion(q1.ID, MoveUp)
	e.MoveQuestion(q3.ID, MoveDown)
	assert.Equal(t, []string{q1.ID, q2.ID, q3.ID}, questionIDs(e))

	e.MoveQuestion(q3.ID, MoveUp)
	assert.Equal(t, []string{q1.ID, q3.ID, q2.ID}, questionIDs(e))

	e.MoveQuestion(q1.ID, MoveDown)
	assert.Equal(t, []string{q3.ID, q1.ID, q2.ID}, questionIDs(e))

	e.MoveQuestion("missing", MoveDown)
	e.MoveQuestion(q1.ID, "sideways")
	assert.Equal(t, []string{q3.ID, q1.ID, q2.ID}, questionIDs(e))
}

// Any sequence of moves is a permutation: the multiset of question ids never
// changes.
func TestFormMoveQuestionIsPermutation(t *testing.T) {
	e := NewFormEditor()
	var ids []string
	for i := 0; i < 6; i++ {
		q, err := e.AddQuestion(models.AllQuestionTypes[i%len(models.AllQuestionTypes)])
		require.NoError(t, err)
		ids = append(ids, q.ID)
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	rng := rand.New(rand.NewSource(7))
	directions := []MoveDirection{MoveUp, MoveDown}
	for i := 0; i < 300; i++ {
		e.MoveQuestion(ids[rng.Intn(len(ids))], directions[rng.Intn(2)])

		current := questionIDs(e)
		require.Len(t, current, len(ids))
		currentSorted := append([]string(nil), current...)
		sort.Strings(currentSorted)
		require.Equal(t, sorted, currentSorted)
	}
}

func TestFormRemoveQuestionKeepsOtherIDs(t *testing.T) {
	e := NewFormEditor()
	q1, _ := e.AddQuestion(models.QuestionCategorize)
	q2, _ := e.AddQuestion(models.QuestionCloze)
	q3, _ := e.AddQuestion(models.QuestionComprehension)

	e.RemoveQuestion(q2.ID)
	e.RemoveQuestion("missing")

	assert.Equal(t, []string{q1.ID, q3.ID}, questionIDs(e))
}

func TestFormReplaceContent(t *testing.T) {
	e := NewFormEditor()
	q, _ := e.AddQuestion(models.QuestionCloze)

	cloze := NewClozeEditor()
	cloze.SetSentence("The cat sat.")
	cloze.MarkBlank(4, 7)

	require.NoError(t, e.ReplaceContent(q.ID, cloze.Snapshot()))

	snap := e.Snapshot()
	content, ok := snap.Questions[0].Content.(*models.ClozeContent)
	require.True(t, ok)
	assert.Equal(t, "The cat sat.", content.Sentence)
	require.Len(t, content.Blanks, 1)
}

func TestFormReplaceContentTypeMismatch(t *testing.T) {
	e := NewFormEditor()
	q, _ := e.AddQuestion(models.QuestionCloze)

	err := e.ReplaceContent(q.ID, &models.CategorizeContent{})
	require.Error(t, err)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)

	// A snapshot for a deleted question is silently discarded.
	e.RemoveQuestion(q.ID)
	assert.NoError(t, e.ReplaceContent(q.ID, &models.ClozeContent{}))
}

func TestFormQuestionImageLateUploadDiscarded(t *testing.T) {
	e := NewFormEditor()
	q, _ := e.AddQuestion(models.QuestionCategorize)
	e.RemoveQuestion(q.ID)

	// Upload finished after the question was deleted.
	e.SetQuestionImage(q.ID, "https://cdn.example.com/img.png")
	assert.Empty(t, e.Snapshot().Questions)
}

func TestFormQuestionPoints(t *testing.T) {
	e := NewFormEditor()
	q, _ := e.AddQuestion(models.QuestionComprehension)

	require.Error(t, e.SetQuestionPoints(q.ID, 0))
	require.NoError(t, e.SetQuestionPoints(q.ID, 5))
	assert.Equal(t, 5, e.Snapshot().Questions[0].Points)
	assert.Equal(t, 5, e.Snapshot().MaxTotalScore())
}

func TestFormTitleValidation(t *testing.T) {
	e := NewFormEditor()
	require.Error(t, e.SetTitle("   "))
	require.NoError(t, e.SetTitle("Science Quiz"))
	assert.Equal(t, "Science Quiz", e.Snapshot().Title)
}

func TestFormSnapshotIsDetached(t *testing.T) {
	e := NewFormEditor()
	q, _ := e.AddQuestion(models.QuestionCategorize)

	snap := e.Snapshot()
	snap.Title = "tampered"
	snap.Questions[0].Title = "tampered"

	assert.Equal(t, models.DefaultFormTitle, e.Snapshot().Title)
	assert.Equal(t, q.Title, e.Snapshot().Questions[0].Title)
}

func questionIDs(e *FormEditor) []string {
	questions := e.Questions()
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
