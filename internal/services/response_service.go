package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arya020/FormBuilder/internal/events"
	"github.com/arya020/FormBuilder/internal/models"
	"github.com/arya020/FormBuilder/internal/repositories"
	"github.com/arya020/FormBuilder/internal/session"
	"github.com/arya020/FormBuilder/internal/validator"
)

// ResponseService accepts and serves form submissions.
type ResponseService interface {
	Submit(ctx context.Context, formID string, req *SubmitResponseRequest) (*models.Response, error)
	GetByID(ctx context.Context, id string) (*models.Response, error)
	ListByForm(ctx context.Context, formID string, filters repositories.ResponseFilters) ([]*models.Response, int64, error)
}

// SubmitResponseRequest carries raw answers keyed by question id. Answers
// for unknown questions are dropped; questions without an answer stay empty
// unless Strict is set.
type SubmitResponseRequest struct {
	Answers  map[string]json.RawMessage `json:"answers"`
	Strict   bool                       `json:"strict"`
	UserInfo models.UserInfo            `json:"userInfo"`
}

type responseService struct {
	formService  FormService
	responseRepo repositories.ResponseRepository
	publisher    events.EventPublisher
	validator    *validator.Validator
	logger       *slog.Logger
}

func NewResponseService(
	formService FormService,
	responseRepo repositories.ResponseRepository,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
) ResponseService {
	return &responseService{
		formService:  formService,
		responseRepo: responseRepo,
		publisher:    publisher,
		validator:    v,
		logger:       logger,
	}
}

func (s *responseService) Submit(ctx context.Context, formID string, req *SubmitResponseRequest) (*models.Response, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	form, err := s.formService.GetPublished(ctx, formID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.replayAnswers(form, req.Answers)
	if err != nil {
		return nil, err
	}

	response, err := session.Assemble(form, sessions, session.AssembleOptions{Strict: req.Strict})
	if err != nil {
		return nil, err
	}

	response.ID = uuid.NewString()
	response.SubmittedAt = time.Now()
	response.UserInfo = req.UserInfo

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to store response: %w", err)
	}

	s.publishSubmitted(ctx, form, response)

	s.logger.Info("Response submitted",
		"response_id", response.ID,
		"form_id", formID,
		"answer_count", len(response.Responses))
	return response, nil
}

func (s *responseService) GetByID(ctx context.Context, id string) (*models.Response, error) {
	response, err := s.responseRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResponseNotFound
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}
	return response, nil
}

func (s *responseService) ListByForm(ctx context.Context, formID string, filters repositories.ResponseFilters) ([]*models.Response, int64, error) {
	if _, err := s.formService.GetByID(ctx, formID); err != nil {
		return nil, 0, err
	}

	responses, total, err := s.responseRepo.ListByForm(ctx, formID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, total, nil
}

// replayAnswers feeds each submitted answer through the matching answer
// state machine. Stale references inside an answer (removed items, blanks,
// options) are dropped rather than rejected, so a respondent racing a form
// edit still submits cleanly.
func (s *responseService) replayAnswers(form *models.Form, raw map[string]json.RawMessage) (session.Sessions, error) {
	sessions := make(session.Sessions, len(raw))

	for i := range form.Questions {
		q := form.Questions[i]
		data, ok := raw[q.ID]
		if !ok {
			continue
		}

		answer, err := models.DecodeAnswer(q.Type, data)
		if err != nil {
			return nil, NewValidationError("answers", err.Error(), q.ID)
		}

		sess, err := session.New(q)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}

		switch a := answer.(type) {
		case *models.CategorizeAnswer:
			for itemID, target := range a.Placements {
				sess.(*session.CategorizeSession).Assign(itemID, target)
			}
		case *models.ClozeAnswer:
			for blankID, word := range a.Filled {
				sess.(*session.ClozeSession).FillBlank(blankID, word)
			}
		case *models.ComprehensionAnswer:
			for subIdx, optionIdx := range a.Selections {
				sess.(*session.ComprehensionSession).SelectOption(subIdx, optionIdx)
			}
		}
		sessions[q.ID] = sess
	}
	return sessions, nil
}

func (s *responseService) publishSubmitted(ctx context.Context, form *models.Form, response *models.Response) {
	event := &events.FormEvent{
		ID:        uuid.NewString(),
		Type:      events.EventResponseSubmitted,
		Timestamp: time.Now(),
		Source:    "response-service",
		Version:   "1.0",
		Data: events.ResponseSubmittedEvent{
			ResponseID:    response.ID,
			FormID:        form.ID,
			FormTitle:     form.Title,
			AnswerCount:   len(response.Responses),
			MaxTotalScore: response.MaxTotalScore,
			SubmittedAt:   response.SubmittedAt,
		},
	}
	if err := s.publisher.PublishFormEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish submission event",
			"response_id", response.ID,
			"error", err)
	}
}
