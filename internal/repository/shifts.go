package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/google/uuid"
)

const shiftColumns = `id, date, employee_id, residential_group_id, shift_template_id, custom_start_time, custom_end_time, notes, is_confirmed, created_at`

func scanShift(rows *sql.Rows) (*domain.Shift, error) {
	shift := &domain.Shift{}
	dst := []any{
		&shift.ID,
		&shift.Date,
		&shift.EmployeeID,
		&shift.ResidentialGroupID,
		&shift.ShiftTemplateID,
		&shift.CustomStartTime,
		&shift.CustomEndTime,
		&shift.Notes,
		&shift.IsConfirmed,
		&shift.CreatedAt,
	}
	if err := rows.Scan(dst...); err != nil {
		return nil, err
	}
	return shift, nil
}

func (r *Repository) collectShifts(ctx context.Context, query string, args ...any) ([]*domain.Shift, error) {
	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// CreateShift inserts the assignment as-is. There is deliberately no check
// whether the (date, group, template) slot is already taken; callers that
// want replacement semantics use ReplaceShiftForSlot instead.
func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift.ID = uuid.NewString()

	query := `
		INSERT INTO shifts (id, date, employee_id, residential_group_id, shift_template_id, custom_start_time, custom_end_time, notes, is_confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	args := []any{
		shift.ID,
		shift.Date,
		shift.EmployeeID,
		shift.ResidentialGroupID,
		shift.ShiftTemplateID,
		shift.CustomStartTime,
		shift.CustomEndTime,
		shift.Notes,
		shift.IsConfirmed,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.collectShifts(ctx, query)
}

func (r *Repository) GetShiftsByDateAndGroup(date string, groupID string) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE date = $1 AND residential_group_id = $2
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.collectShifts(ctx, query, date, groupID)
}

func (r *Repository) GetShiftsByDate(date string) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE date = $1
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.collectShifts(ctx, query, date)
}

func (r *Repository) GetShiftsByEmployee(employeeID string) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		ORDER BY date, created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.collectShifts(ctx, query, employeeID)
}

func (r *Repository) GetShiftsByGroup(groupID string) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE residential_group_id = $1
		ORDER BY date, created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.collectShifts(ctx, query, groupID)
}

func (r *Repository) GetShiftsByGroupBetween(groupID string, firstDate string, lastDate string) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE residential_group_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.collectShifts(ctx, query, groupID, firstDate, lastDate)
}

// DeleteShift removes the shift unconditionally. Deleting an id that does not
// exist is an error the caller gets to see, not a silent no-op.
func (r *Repository) DeleteShift(id string) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ReplaceShiftForSlot deletes whatever occupies the shift's (date, group,
// template) slot and inserts the new assignment in a single transaction, so
// the slot holds at most one record afterwards.
func (r *Repository) ReplaceShiftForSlot(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		DELETE FROM shifts
		WHERE date = $1 AND residential_group_id = $2 AND shift_template_id = $3
	`
	if _, err := tx.ExecContext(ctx, query, shift.Date, shift.ResidentialGroupID, shift.ShiftTemplateID); err != nil {
		return err
	}

	shift.ID = uuid.NewString()

	query = `
		INSERT INTO shifts (id, date, employee_id, residential_group_id, shift_template_id, custom_start_time, custom_end_time, notes, is_confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	args := []any{
		shift.ID,
		shift.Date,
		shift.EmployeeID,
		shift.ResidentialGroupID,
		shift.ShiftTemplateID,
		shift.CustomStartTime,
		shift.CustomEndTime,
		shift.Notes,
		shift.IsConfirmed,
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
