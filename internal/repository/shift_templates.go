package repository

import (
	"context"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateShiftTemplate(template *domain.ShiftTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	template.ID = uuid.NewString()

	query := `
		INSERT INTO shift_templates (id, name, start_time, end_time, color, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	args := []any{template.ID, template.Name, template.StartTime, template.EndTime, template.Color, template.SortOrder}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&template.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetAllShiftTemplates returns templates in insertion order. Display order by
// sort_order is derived in the dayplan package, which needs a stable fetch
// order underneath to break ties deterministically.
func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	query := `
		SELECT id, name, start_time, end_time, color, sort_order, created_at
		FROM shift_templates
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.ShiftTemplate, 0)
	for rows.Next() {
		template := &domain.ShiftTemplate{}
		dst := []any{&template.ID, &template.Name, &template.StartTime, &template.EndTime, &template.Color, &template.SortOrder, &template.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) GetShiftTemplateByID(id string) (*domain.ShiftTemplate, error) {
	query := `
		SELECT name, start_time, end_time, color, sort_order, created_at
		FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	template := &domain.ShiftTemplate{
		ID: id,
	}

	dst := []any{&template.Name, &template.StartTime, &template.EndTime, &template.Color, &template.SortOrder, &template.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return template, nil
}
