package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arya020/FormBuilder/internal/events"
	"github.com/arya020/FormBuilder/internal/models"
	"github.com/arya020/FormBuilder/internal/repositories"
	"github.com/arya020/FormBuilder/internal/validator"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func newFormService(formRepo *MockFormRepository, responseRepo *MockResponseRepository) (FormService, *events.MockEventPublisher) {
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewFormService(formRepo, responseRepo, missCache{}, publisher, validator.New(), testLogger())
	return svc, publisher
}

func draftForm() *models.Form {
	return &models.Form{
		ID:    "form-1",
		Title: "Pets",
		Questions: []models.Question{
			{
				ID: "q1", Type: models.QuestionCategorize, Title: "Sort them", Points: 2,
				Content: &models.CategorizeContent{
					Items:      []models.Item{{ID: "i1", Text: "Dog"}},
					Containers: []models.Container{{ID: "c1", Title: "Animals"}},
				},
			},
		},
	}
}

func TestFormServiceCreateDefaults(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	formRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Form")).Return(nil)

	form, err := svc.Create(context.Background(), &CreateFormRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultFormTitle, form.Title)
	assert.NotEmpty(t, form.ID)
	assert.False(t, form.IsPublished)
	assert.Empty(t, form.Questions)
	formRepo.AssertExpectations(t)
}

func TestFormServiceCreateWithTitle(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	formRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Form")).Return(nil)

	form, err := svc.Create(context.Background(), &CreateFormRequest{
		Title:       strptr("Customer Survey"),
		Description: strptr("Quarterly feedback"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Customer Survey", form.Title)
	require.NotNil(t, form.Description)
	assert.Equal(t, "Quarterly feedback", *form.Description)
}

func TestFormServiceGetByIDNotFound(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	formRepo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestFormServiceUpdateRejectsInvalidContent(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	formRepo.On("GetByID", mock.Anything, "form-1").Return(draftForm(), nil)

	req := &UpdateFormRequest{
		Title: "Pets",
		Questions: []models.Question{
			{
				ID: "q1", Type: models.QuestionCategorize, Title: "Sort them", Points: 2,
				Content: &models.CategorizeContent{
					Items: []models.Item{{ID: "i1", Text: "Dog", ContainerID: strptr("ghost")}},
				},
			},
		},
	}
	_, err := svc.Update(context.Background(), "form-1", req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	formRepo.AssertNotCalled(t, "Update")
}

func TestFormServiceUpdateReplacesQuestions(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	formRepo.On("GetByID", mock.Anything, "form-1").Return(draftForm(), nil)
	formRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Form")).Return(nil)

	req := &UpdateFormRequest{
		Title:     "Renamed",
		Questions: nil,
	}
	form, err := svc.Update(context.Background(), "form-1", req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", form.Title)
	assert.Empty(t, form.Questions)
	formRepo.AssertExpectations(t)
}

func TestFormServicePublish(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, publisher := newFormService(formRepo, new(MockResponseRepository))

	formRepo.On("GetByID", mock.Anything, "form-1").Return(draftForm(), nil)
	formRepo.On("SetPublished", mock.Anything, "form-1", true).Return(nil)

	form, err := svc.Publish(context.Background(), "form-1")
	require.NoError(t, err)
	assert.True(t, form.IsPublished)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventFormPublished, published[0].Type)
}

func TestFormServicePublishRejectsEmptyForm(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	empty := draftForm()
	empty.Questions = nil
	formRepo.On("GetByID", mock.Anything, "form-1").Return(empty, nil)

	_, err := svc.Publish(context.Background(), "form-1")
	assert.ErrorIs(t, err, ErrFormHasNoQuestions)
	formRepo.AssertNotCalled(t, "SetPublished")
}

func TestFormServicePublishRejectsAlreadyPublished(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	live := draftForm()
	live.IsPublished = true
	formRepo.On("GetByID", mock.Anything, "form-1").Return(live, nil)

	_, err := svc.Publish(context.Background(), "form-1")
	assert.ErrorIs(t, err, ErrFormAlreadyPublished)
}

func TestFormServicePublishRejectsMissingAnswerKey(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	form := draftForm()
	form.Questions = append(form.Questions, models.Question{
		ID: "q2", Type: models.QuestionComprehension, Title: "Read it", Points: 1,
		Content: &models.ComprehensionContent{
			Passage: "Bees.",
			Questions: []models.SubQuestion{
				{Text: "Q?", Options: []string{"a", "b", "c", "d"}},
			},
		},
	})
	formRepo.On("GetByID", mock.Anything, "form-1").Return(form, nil)

	_, err := svc.Publish(context.Background(), "form-1")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestFormServiceDeleteRemovesResponses(t *testing.T) {
	formRepo := new(MockFormRepository)
	responseRepo := new(MockResponseRepository)
	svc, publisher := newFormService(formRepo, responseRepo)

	formRepo.On("GetByID", mock.Anything, "form-1").Return(draftForm(), nil)
	responseRepo.On("CountByForm", mock.Anything, "form-1").Return(int64(3), nil)
	responseRepo.On("DeleteByForm", mock.Anything, "form-1").Return(nil)
	formRepo.On("Delete", mock.Anything, "form-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "form-1"))
	responseRepo.AssertExpectations(t)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventFormDeleted, published[0].Type)
}

func TestFormServiceListPassesFilters(t *testing.T) {
	formRepo := new(MockFormRepository)
	svc, _ := newFormService(formRepo, new(MockResponseRepository))

	published := true
	filters := repositories.FormFilters{Published: &published, Limit: 10}
	formRepo.On("List", mock.Anything, filters).Return([]*models.Form{draftForm()}, int64(1), nil)

	forms, total, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, forms, 1)
}
