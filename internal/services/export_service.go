package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arya020/FormBuilder/internal/models"
	"github.com/arya020/FormBuilder/internal/repositories"
)

// ExportService renders a form's submissions as a spreadsheet.
type ExportService interface {
	ExportResponsesToExcel(ctx context.Context, formID string) ([]byte, error)
}

type exportService struct {
	formService  FormService
	responseRepo repositories.ResponseRepository
	logger       *slog.Logger
}

func NewExportService(formService FormService, responseRepo repositories.ResponseRepository, logger *slog.Logger) ExportService {
	return &exportService{
		formService:  formService,
		responseRepo: responseRepo,
		logger:       logger,
	}
}

// ExportResponsesToExcel writes one row per submission. Answer cells are
// rendered against the current form content so item and container ids show
// up as their authored texts.
func (s *exportService) ExportResponsesToExcel(ctx context.Context, formID string) ([]byte, error) {
	form, err := s.formService.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	responses, _, err := s.responseRepo.ListByForm(ctx, formID, repositories.ResponseFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Responses"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Response ID", "Submitted At", "Name", "Email", "Max Score"}
	for i := range form.Questions {
		headers = append(headers, form.Questions[i].Title)
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx, response := range responses {
		row := []interface{}{
			response.ID,
			response.SubmittedAt.Format("2006-01-02 15:04:05"),
			stringOrEmpty(response.UserInfo.Name),
			stringOrEmpty(response.UserInfo.Email),
			response.MaxTotalScore,
		}

		byQuestion := make(map[string]models.QuestionAnswer, len(response.Responses))
		for _, qa := range response.Responses {
			byQuestion[qa.QuestionID] = qa
		}
		for i := range form.Questions {
			q := form.Questions[i]
			if qa, ok := byQuestion[q.ID]; ok {
				row = append(row, formatAnswer(&q, qa.Answer))
			} else {
				row = append(row, "")
			}
		}

		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute data cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported responses",
		"form_id", formID,
		"response_count", len(responses))
	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatAnswer renders a typed answer as a readable cell value.
func formatAnswer(q *models.Question, answer models.Answer) string {
	if answer == nil || !answer.Answered() {
		return ""
	}

	switch a := answer.(type) {
	case *models.CategorizeAnswer:
		content, ok := q.Content.(*models.CategorizeContent)
		if !ok {
			return ""
		}
		var parts []string
		for _, item := range content.Items {
			target, placed := a.Placements[item.ID]
			if !placed || target == models.UnassignedTarget {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", item.Text, containerTitle(content, target)))
		}
		return strings.Join(parts, "; ")

	case *models.ClozeAnswer:
		content, ok := q.Content.(*models.ClozeContent)
		if !ok {
			return ""
		}
		var parts []string
		for i, blank := range content.Blanks {
			if word, filled := a.Filled[blank.ID]; filled {
				parts = append(parts, fmt.Sprintf("blank %d: %s", i+1, word))
			}
		}
		return strings.Join(parts, "; ")

	case *models.ComprehensionAnswer:
		content, ok := q.Content.(*models.ComprehensionContent)
		if !ok {
			return ""
		}
		indices := make([]int, 0, len(a.Selections))
		for idx := range a.Selections {
			indices = append(indices, idx)
		}
		sort.Ints(indices)

		var parts []string
		for _, idx := range indices {
			optionIdx := a.Selections[idx]
			if idx >= len(content.Questions) || optionIdx >= len(content.Questions[idx].Options) {
				continue
			}
			parts = append(parts, fmt.Sprintf("Q%d: %s", idx+1, content.Questions[idx].Options[optionIdx]))
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

func containerTitle(content *models.CategorizeContent, id string) string {
	for _, container := range content.Containers {
		if container.ID == id {
			return container.Title
		}
	}
	return id
}
