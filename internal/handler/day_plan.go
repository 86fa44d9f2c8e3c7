package handler

import (
	"net/http"
	"time"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/dayplan"
	"github.com/emrebaser94/dienstplan-manager/backend/internal/utils"
)

// GetDayPlan returns the derived roster view for one date and group. With no
// query parameters it falls back to today and the first fetched group, which
// is what the roster screen opens with.
func (h *Handler) GetDayPlan(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	groupID := r.URL.Query().Get("groupId")

	if date != "" {
		if err := utils.ValidateDate("date", date); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	collections, err := dayplan.Load(h.repository)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	sel := dayplan.DefaultSelection(collections.Groups, time.Now().Format("2006-01-02"))
	if date != "" {
		sel.Date = date
	}
	if groupID != "" {
		sel.GroupID = groupID
	}

	h.successResponse(w, r, "day plan computed", dayplan.Build(collections, sel))
}

// ReplaceSlotAssignment assigns an employee to a slot and removes whatever
// assignment occupied it before, in one transaction. This is the strict
// alternative to POST /shifts, which appends without looking.
func (h *Handler) ReplaceSlotAssignment(w http.ResponseWriter, r *http.Request) {
	shift, ok := h.parseShiftRequest(w, r)
	if !ok {
		return
	}

	if err := h.repository.ReplaceShiftForSlot(shift); err != nil {
		h.shiftStoreError(w, r, err)
		return
	}

	h.notifyShiftAssigned(shift)

	h.successResponse(w, r, "slot assignment replaced", shift)
}
