package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arya020/FormBuilder/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type FormFilters struct {
	Published *bool  `json:"published"`
	Search    string `json:"search"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

type ResponseFilters struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ===== REPOSITORY INTERFACES =====

// FormRepository persists forms as whole documents. Save replaces the
// question list atomically; there is no per-question persistence.
type FormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	GetByID(ctx context.Context, id string) (*models.Form, error)
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filters FormFilters) ([]*models.Form, int64, error)
	SetPublished(ctx context.Context, id string, published bool) error
}

// ResponseRepository persists submissions. Responses are append-only.
type ResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	GetByID(ctx context.Context, id string) (*models.Response, error)
	ListByForm(ctx context.Context, formID string, filters ResponseFilters) ([]*models.Response, int64, error)
	CountByForm(ctx context.Context, formID string) (int64, error)
	DeleteByForm(ctx context.Context, formID string) error
}

// IsNotFoundError reports whether the error is a missing-record error from
// the store.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
