package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/arya020/FormBuilder/internal/cache"
	"github.com/arya020/FormBuilder/internal/editor"
	"github.com/arya020/FormBuilder/internal/events"
	"github.com/arya020/FormBuilder/internal/models"
	"github.com/arya020/FormBuilder/internal/repositories"
	"github.com/arya020/FormBuilder/internal/validator"
)

const formCacheTTL = 5 * time.Minute

// FormService manages the form lifecycle: authoring, publishing and removal.
type FormService interface {
	Create(ctx context.Context, req *CreateFormRequest) (*models.Form, error)
	GetByID(ctx context.Context, id string) (*models.Form, error)
	GetPublished(ctx context.Context, id string) (*models.Form, error)
	List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, int64, error)
	Update(ctx context.Context, id string, req *UpdateFormRequest) (*models.Form, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (*models.Form, error)
	Unpublish(ctx context.Context, id string) (*models.Form, error)
}

type CreateFormRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateFormRequest carries the whole edited document. The stored question
// list is replaced in one write, never patched per question.
type UpdateFormRequest struct {
	Title       string            `json:"title" validate:"required,min=1,max=200"`
	Description *string           `json:"description" validate:"omitempty,max=2000"`
	HeaderImage *string           `json:"headerImage"`
	Questions   []models.Question `json:"questions"`
}

type formService struct {
	formRepo     repositories.FormRepository
	responseRepo repositories.ResponseRepository
	cache        cache.CacheService
	publisher    events.EventPublisher
	validator    *validator.Validator
	logger       *slog.Logger
}

func NewFormService(
	formRepo repositories.FormRepository,
	responseRepo repositories.ResponseRepository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
) FormService {
	return &formService{
		formRepo:     formRepo,
		responseRepo: responseRepo,
		cache:        cacheService,
		publisher:    publisher,
		validator:    v,
		logger:       logger,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *formService) Create(ctx context.Context, req *CreateFormRequest) (*models.Form, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	fe := editor.NewFormEditor()
	if req.Title != nil {
		if err := fe.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		fe.SetDescription(*req.Description)
	}
	form := fe.Snapshot()
	form.ID = uuid.NewString()
	now := time.Now()
	form.CreatedAt = now
	form.UpdatedAt = now

	s.logger.Info("Creating form", "form_id", form.ID, "title", form.Title)

	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	return form, nil
}

func (s *formService) GetByID(ctx context.Context, id string) (*models.Form, error) {
	var cached models.Form
	if err := s.cache.Get(ctx, formCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	if err := s.cache.Set(ctx, formCacheKey(id), form, formCacheTTL); err != nil {
		s.logger.Warn("Failed to cache form", "form_id", id, "error", err)
	}
	return form, nil
}

// GetPublished is the respondent-facing read: only live forms come back.
func (s *formService) GetPublished(ctx context.Context, id string) (*models.Form, error) {
	form, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !form.IsPublished {
		return nil, ErrFormNotPublished
	}
	return form, nil
}

func (s *formService) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, int64, error) {
	forms, total, err := s.formRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, total, nil
}

func (s *formService) Update(ctx context.Context, id string, req *UpdateFormRequest) (*models.Form, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	current, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	form := &models.Form{
		ID:          current.ID,
		Title:       req.Title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		Questions:   datatypes.JSONSlice[models.Question](req.Questions),
		IsPublished: current.IsPublished,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := s.validator.Content().ValidateQuestions(form.Questions); err != nil {
		return nil, NewValidationError("questions", err.Error(), nil)
	}

	if err := s.formRepo.Update(ctx, form); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to update form: %w", err)
	}

	s.invalidate(ctx, id)
	return form, nil
}

func (s *formService) Delete(ctx context.Context, id string) error {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrFormNotFound
		}
		return fmt.Errorf("failed to get form: %w", err)
	}

	responseCount, err := s.responseRepo.CountByForm(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to count responses before delete", "form_id", id, "error", err)
	}

	// Submissions go with the form
	if err := s.responseRepo.DeleteByForm(ctx, id); err != nil {
		return fmt.Errorf("failed to delete form responses: %w", err)
	}
	if err := s.formRepo.Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrFormNotFound
		}
		return fmt.Errorf("failed to delete form: %w", err)
	}

	s.invalidate(ctx, id)
	s.publishEvent(ctx, events.EventFormDeleted, events.FormDeletedEvent{
		FormID:        form.ID,
		FormTitle:     form.Title,
		ResponseCount: responseCount,
		DeletedAt:     time.Now(),
	})

	s.logger.Info("Form deleted", "form_id", id, "response_count", responseCount)
	return nil
}

// ===== PUBLISH LIFECYCLE =====

func (s *formService) Publish(ctx context.Context, id string) (*models.Form, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	if form.IsPublished {
		return nil, ErrFormAlreadyPublished
	}
	if len(form.Questions) == 0 {
		return nil, ErrFormHasNoQuestions
	}
	for i := range form.Questions {
		if err := s.validator.Content().ValidateForPublish(&form.Questions[i]); err != nil {
			return nil, NewValidationError("questions", fmt.Sprintf("question %d: %v", i+1, err), nil)
		}
	}

	if err := s.formRepo.SetPublished(ctx, id, true); err != nil {
		return nil, fmt.Errorf("failed to publish form: %w", err)
	}
	form.IsPublished = true

	s.invalidate(ctx, id)
	s.publishEvent(ctx, events.EventFormPublished, events.FormPublishedEvent{
		FormID:        form.ID,
		FormTitle:     form.Title,
		QuestionCount: len(form.Questions),
		PublishedAt:   time.Now(),
	})

	s.logger.Info("Form published", "form_id", id, "question_count", len(form.Questions))
	return form, nil
}

func (s *formService) Unpublish(ctx context.Context, id string) (*models.Form, error) {
	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}
	if !form.IsPublished {
		return nil, ErrFormNotPublished
	}

	if err := s.formRepo.SetPublished(ctx, id, false); err != nil {
		return nil, fmt.Errorf("failed to unpublish form: %w", err)
	}
	form.IsPublished = false

	s.invalidate(ctx, id)
	s.publishEvent(ctx, events.EventFormUnpublished, events.FormUnpublishedEvent{
		FormID:        form.ID,
		FormTitle:     form.Title,
		UnpublishedAt: time.Now(),
	})
	return form, nil
}

// ===== HELPERS =====

func formCacheKey(id string) string {
	return "form:" + id
}

func (s *formService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, formCacheKey(id)); err != nil {
		s.logger.Warn("Failed to invalidate form cache", "form_id", id, "error", err)
	}
}

func (s *formService) publishEvent(ctx context.Context, eventType events.EventType, data interface{}) {
	event := &events.FormEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "form-service",
		Version:   "1.0",
		Data:      data,
	}
	// Event delivery must not fail the operation
	if err := s.publisher.PublishFormEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish form event", "event_type", eventType, "error", err)
	}
}
