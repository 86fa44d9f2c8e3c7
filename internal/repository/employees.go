package repository

import (
	"context"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee.ID = uuid.NewString()

	query := `
		INSERT INTO employees (id, first_name, last_name, email, phone, position, max_weekly_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING is_active, created_at
	`

	args := []any{employee.ID, employee.FirstName, employee.LastName, employee.Email, employee.Phone, employee.Position, employee.MaxWeeklyHours}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.IsActive, &employee.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, position, max_weekly_hours, is_active, created_at
		FROM employees
		ORDER BY created_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email, &employee.Phone, &employee.Position, &employee.MaxWeeklyHours, &employee.IsActive, &employee.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetEmployeeByID(id string) (*domain.Employee, error) {
	query := `
		SELECT first_name, last_name, email, phone, position, max_weekly_hours, is_active, created_at
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.FirstName, &employee.LastName, &employee.Email, &employee.Phone, &employee.Position, &employee.MaxWeeklyHours, &employee.IsActive, &employee.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}
