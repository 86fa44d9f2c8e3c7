package repository

import (
	"context"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateWeekPlan(plan *domain.WeekPlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	plan.ID = uuid.NewString()

	query := `
		INSERT INTO week_plans (id, residential_group_id, week_start, week_end, year, week_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	args := []any{plan.ID, plan.ResidentialGroupID, plan.WeekStart, plan.WeekEnd, plan.Year, plan.WeekNumber, plan.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&plan.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetWeekPlansByGroup(groupID string) ([]*domain.WeekPlan, error) {
	query := `
		SELECT id, residential_group_id, week_start, week_end, year, week_number, status, created_at
		FROM week_plans
		WHERE residential_group_id = $1
		ORDER BY week_start
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*domain.WeekPlan, 0)
	for rows.Next() {
		plan := &domain.WeekPlan{}
		dst := []any{&plan.ID, &plan.ResidentialGroupID, &plan.WeekStart, &plan.WeekEnd, &plan.Year, &plan.WeekNumber, &plan.Status, &plan.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
