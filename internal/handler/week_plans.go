package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/utils"
)

func (h *Handler) CreateWeekPlan(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(ResidentialGroupCtx).(*domain.ResidentialGroup)

	var req struct {
		WeekStart string `json:"weekStart" validate:"required"`
		Status    string `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateDate("weekStart", req.WeekStart); err != nil {
		h.badRequest(w, r, err)
		return
	}

	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)
	if weekStart.Weekday() != time.Monday {
		h.badRequest(w, r, errors.New("weekStart must be a Monday"))
		return
	}

	year, weekNumber := weekStart.ISOWeek()

	plan := &domain.WeekPlan{
		ResidentialGroupID: group.ID,
		WeekStart:          req.WeekStart,
		WeekEnd:            weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		Year:               int32(year),
		WeekNumber:         int32(weekNumber),
		Status:             domain.WeekPlanStatusDraft,
	}
	if req.Status != "" {
		plan.Status = domain.WeekPlanStatus(req.Status)
	}

	if err := h.repository.CreateWeekPlan(plan); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "week plan created", plan)
}

func (h *Handler) GetWeekPlansByGroup(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(ResidentialGroupCtx).(*domain.ResidentialGroup)

	plans, err := h.repository.GetWeekPlansByGroup(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "week plans fetched", plans)
}
