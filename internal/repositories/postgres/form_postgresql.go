package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/arya020/FormBuilder/internal/models"
	"github.com/arya020/FormBuilder/internal/repositories"
)

type FormPostgreSQL struct {
	db *gorm.DB
}

func NewFormPostgreSQL(db *gorm.DB) repositories.FormRepository {
	return &FormPostgreSQL{db: db}
}

func (r *FormPostgreSQL) Create(ctx context.Context, form *models.Form) error {
	if err := r.db.WithContext(ctx).Create(form).Error; err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}
	return nil
}

func (r *FormPostgreSQL) GetByID(ctx context.Context, id string) (*models.Form, error) {
	var form models.Form
	if err := r.db.WithContext(ctx).First(&form, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// Update replaces the whole form row, questions included. The JSONB column
// write is what makes question edits atomic.
func (r *FormPostgreSQL) Update(ctx context.Context, form *models.Form) error {
	result := r.db.WithContext(ctx).
		Model(&models.Form{}).
		Where("id = ?", form.ID).
		Select("title", "description", "header_image", "questions", "updated_at").
		Updates(form)
	if result.Error != nil {
		return fmt.Errorf("failed to update form: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FormPostgreSQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Form{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete form: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FormPostgreSQL) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Form{})

	if filters.Published != nil {
		query = query.Where("is_published = ?", *filters.Published)
	}
	if filters.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filters.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count forms: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var forms []*models.Form
	if err := query.Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, total, nil
}

func (r *FormPostgreSQL) SetPublished(ctx context.Context, id string, published bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Form{}).
		Where("id = ?", id).
		Update("is_published", published)
	if result.Error != nil {
		return fmt.Errorf("failed to update publish state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
