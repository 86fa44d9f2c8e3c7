package handler

import (
	"net/http"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
)

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName      string   `json:"firstName" validate:"required"`
		LastName       string   `json:"lastName" validate:"required"`
		Email          string   `json:"email" validate:"omitempty,email"`
		Phone          string   `json:"phone"`
		Position       string   `json:"position"`
		MaxWeeklyHours *float64 `json:"maxWeeklyHours" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := &domain.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		MaxWeeklyHours: 40,
	}
	if req.MaxWeeklyHours != nil {
		employee.MaxWeeklyHours = *req.MaxWeeklyHours
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees fetched", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	h.successResponse(w, r, "employee fetched", employee)
}
