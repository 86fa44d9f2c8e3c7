package handler

import (
	"net/http"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/dayplan"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/utils"
)

// defaultTemplateColor matches the color the roster UI preselects for a new
// template.
const defaultTemplateColor = "#3B82F6"

func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
		Color     string `json:"color"`
		SortOrder *int32 `json:"sortOrder"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateClockTime("startTime", req.StartTime); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateClockTime("endTime", req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	template := &domain.ShiftTemplate{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     req.Color,
		SortOrder: 1,
	}
	if template.Color == "" {
		template.Color = defaultTemplateColor
	}
	if req.SortOrder != nil {
		template.SortOrder = *req.SortOrder
	}

	if err := h.repository.CreateShiftTemplate(template); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift template created", template)
}

// GetAllShiftTemplates returns the templates already in display order.
func (h *Handler) GetAllShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift templates fetched", dayplan.SortTemplates(templates))
}
