package repository

import (
	"context"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateResidentialGroup(group *domain.ResidentialGroup) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	group.ID = uuid.NewString()

	query := `
		INSERT INTO residential_groups (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING is_active, created_at
	`

	args := []any{group.ID, group.Name, group.Description}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&group.IsActive, &group.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllResidentialGroups() ([]*domain.ResidentialGroup, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM residential_groups
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.ResidentialGroup, 0)
	for rows.Next() {
		group := &domain.ResidentialGroup{}
		dst := []any{&group.ID, &group.Name, &group.Description, &group.IsActive, &group.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *Repository) GetResidentialGroupByID(id string) (*domain.ResidentialGroup, error) {
	query := `
		SELECT name, description, is_active, created_at
		FROM residential_groups WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	group := &domain.ResidentialGroup{
		ID: id,
	}

	dst := []any{&group.Name, &group.Description, &group.IsActive, &group.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return group, nil
}
