package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionUnmarshalDecodesContentByType(t *testing.T) {
	data := []byte(`{
		"id": "q1",
		"type": "cloze",
		"title": "Cloze Question 1",
		"content": {
			"sentence": "The cat sat.",
			"blanks": [{"id": "b1", "word": "cat", "start": 4, "end": 7}],
			"options": ["cat", "dog"]
		}
	}`)

	var q Question
	require.NoError(t, json.Unmarshal(data, &q))

	content, ok := q.Content.(*ClozeContent)
	require.True(t, ok, "expected *ClozeContent, got %T", q.Content)
	assert.Equal(t, "The cat sat.", content.Sentence)
	require.Len(t, content.Blanks, 1)
	assert.Equal(t, "cat", content.Blanks[0].Word)
	assert.Equal(t, 1, q.Points, "points should default to 1")
}

func TestQuestionUnmarshalRejectsUnknownType(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id":"q1","type":"essay","content":{}}`), &q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question type")
}

func TestQuestionUnmarshalEmptyContent(t *testing.T) {
	for _, qt := range AllQuestionTypes {
		var q Question
		payload := []byte(`{"id":"q1","type":"` + string(qt) + `","content":null}`)
		require.NoError(t, json.Unmarshal(payload, &q), "type %s", qt)
		require.NotNil(t, q.Content)
		assert.Equal(t, qt, q.Content.QuestionType())
	}
}

func TestQuestionJSONRoundTrip(t *testing.T) {
	container := "c1"
	q := Question{
		ID:    "q1",
		Type:  QuestionCategorize,
		Title: "Categorize Question 1",
		Content: &CategorizeContent{
			Items: []Item{
				{ID: "i1", Text: "Mercury", ContainerID: &container},
				{ID: "i2", Text: "Mars"},
			},
			Containers: []Container{{ID: "c1", Title: "Planets"}},
		},
		Points: 3,
	}

	data, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded Question
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, q.ID, decoded.ID)
	assert.Equal(t, q.Points, decoded.Points)

	content, ok := decoded.Content.(*CategorizeContent)
	require.True(t, ok)
	require.Len(t, content.Items, 2)
	require.NotNil(t, content.Items[0].ContainerID)
	assert.Equal(t, "c1", *content.Items[0].ContainerID)
	assert.Nil(t, content.Items[1].ContainerID)
}

func TestQuestionCloneIsDeep(t *testing.T) {
	q := Question{
		ID:   "q1",
		Type: QuestionComprehension,
		Content: &ComprehensionContent{
			Passage:   "A short passage.",
			Questions: []SubQuestion{{Text: "Q?", Options: []string{"A", "B", "C", "D"}}},
		},
		Points: 1,
	}

	cp := q.Clone()
	cp.Content.(*ComprehensionContent).Questions[0].Options[0] = "Z"
	assert.Equal(t, "A", q.Content.(*ComprehensionContent).Questions[0].Options[0])
}

func TestQuestionAnswerUnmarshal(t *testing.T) {
	data := []byte(`{
		"questionId": "q1",
		"questionType": "comprehension",
		"answer": {"selections": {"0": 1}},
		"score": 0
	}`)

	var qa QuestionAnswer
	require.NoError(t, json.Unmarshal(data, &qa))
	assert.Equal(t, 1, qa.MaxScore, "maxScore should default to 1")

	answer, ok := qa.Answer.(*ComprehensionAnswer)
	require.True(t, ok)
	assert.Equal(t, map[int]int{0: 1}, answer.Selections)
	assert.True(t, answer.Answered())
}

func TestQuestionAnswerUnmarshalNullAnswer(t *testing.T) {
	var qa QuestionAnswer
	data := []byte(`{"questionId":"q1","questionType":"cloze","answer":null}`)
	require.NoError(t, json.Unmarshal(data, &qa))

	answer, ok := qa.Answer.(*ClozeAnswer)
	require.True(t, ok)
	assert.False(t, answer.Answered())
}
