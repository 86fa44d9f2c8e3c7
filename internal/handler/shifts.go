package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/repository"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
)

type shiftRequest struct {
	Date               string  `json:"date" validate:"required"`
	EmployeeID         string  `json:"employeeId" validate:"required"`
	ResidentialGroupID string  `json:"residentialGroupId" validate:"required"`
	ShiftTemplateID    string  `json:"shiftTemplateId" validate:"required"`
	CustomStartTime    *string `json:"customStartTime"`
	CustomEndTime      *string `json:"customEndTime"`
	Notes              string  `json:"notes"`
}

func (h *Handler) parseShiftRequest(w http.ResponseWriter, r *http.Request) (*domain.Shift, bool) {
	var req shiftRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}

	if err := utils.ValidateDate("date", req.Date); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}
	if req.CustomStartTime != nil {
		if err := utils.ValidateClockTime("customStartTime", *req.CustomStartTime); err != nil {
			h.badRequest(w, r, err)
			return nil, false
		}
	}
	if req.CustomEndTime != nil {
		if err := utils.ValidateClockTime("customEndTime", *req.CustomEndTime); err != nil {
			h.badRequest(w, r, err)
			return nil, false
		}
	}

	return &domain.Shift{
		Date:               req.Date,
		EmployeeID:         req.EmployeeID,
		ResidentialGroupID: req.ResidentialGroupID,
		ShiftTemplateID:    req.ShiftTemplateID,
		CustomStartTime:    req.CustomStartTime,
		CustomEndTime:      req.CustomEndTime,
		Notes:              req.Notes,
		IsConfirmed:        false,
	}, true
}

func (h *Handler) shiftStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		switch pgErr.ConstraintName {
		case "shifts_employee_id_fkey":
			h.errorResponse(w, r, "employee not found")
		case "shifts_residential_group_id_fkey":
			h.errorResponse(w, r, "residential group not found")
		case "shifts_shift_template_id_fkey":
			h.errorResponse(w, r, "shift template not found")
		default:
			h.internalServerError(w, r, err)
		}
	default:
		h.internalServerError(w, r, err)
	}
}

// CreateShift assigns an employee to a slot. Deliberately no check whether
// the slot is already taken: the day view shows the first assignment by
// fetch order, and PUT /day-plan/slot offers explicit replacement.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	shift, ok := h.parseShiftRequest(w, r)
	if !ok {
		return
	}

	if err := h.repository.CreateShift(shift); err != nil {
		h.shiftStoreError(w, r, err)
		return
	}

	h.notifyShiftAssigned(shift)

	h.successResponse(w, r, "shift assigned", shift)
}

// GetShifts lists shifts filtered by query parameters. Supported filters:
// date+groupId, date, groupId, employeeId, or none (all shifts). employeeId
// with any other filter is rejected.
func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	groupID := r.URL.Query().Get("groupId")
	employeeID := r.URL.Query().Get("employeeId")

	if date != "" {
		if err := utils.ValidateDate("date", date); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}
	if employeeID != "" && (date != "" || groupID != "") {
		h.badRequest(w, r, errors.New("employeeId cannot be combined with date or groupId"))
		return
	}

	var shifts []*domain.Shift
	var err error

	switch {
	case date != "" && groupID != "":
		shifts, err = h.repository.GetShiftsByDateAndGroup(date, groupID)
	case date != "":
		shifts, err = h.repository.GetShiftsByDate(date)
	case employeeID != "":
		shifts, err = h.repository.GetShiftsByEmployee(employeeID)
	case groupID != "":
		shifts, err = h.repository.GetShiftsByGroup(groupID)
	default:
		shifts, err = h.repository.GetAllShifts()
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts fetched", shifts)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")

	if err := h.repository.DeleteShift(shiftID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}

// notifyShiftAssigned mails the employee about the new shift. The assignment
// itself has already succeeded, so any failure here is logged and swallowed.
func (h *Handler) notifyShiftAssigned(shift *domain.Shift) {
	employee, err := h.repository.GetEmployeeByID(shift.EmployeeID)
	if err != nil {
		slog.Warn("skipping assignment mail", "shiftId", shift.ID, "error", err)
		return
	}
	if employee.Email == "" {
		return
	}

	group, err := h.repository.GetResidentialGroupByID(shift.ResidentialGroupID)
	if err != nil {
		slog.Warn("skipping assignment mail", "shiftId", shift.ID, "error", err)
		return
	}
	template, err := h.repository.GetShiftTemplateByID(shift.ShiftTemplateID)
	if err != nil {
		slog.Warn("skipping assignment mail", "shiftId", shift.ID, "error", err)
		return
	}

	startTime := template.StartTime
	endTime := template.EndTime
	if shift.CustomStartTime != nil {
		startTime = *shift.CustomStartTime
	}
	if shift.CustomEndTime != nil {
		endTime = *shift.CustomEndTime
	}

	mailMessage := domain.MailMessage{
		Type: "shift_assigned",
		To:   employee.Email,
		Data: domain.ShiftAssignedMailData{
			EmployeeName: employee.FirstName + " " + employee.LastName,
			GroupName:    group.Name,
			ShiftName:    template.Name,
			Date:         shift.Date,
			StartTime:    startTime,
			EndTime:      endTime,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("skipping assignment mail", "shiftId", shift.ID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("skipping assignment mail", "shiftId", shift.ID, "error", err)
	}
}
