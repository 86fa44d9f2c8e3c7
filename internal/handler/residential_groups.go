package handler

import (
	"errors"
	"net/http"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) CreateResidentialGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	group := &domain.ResidentialGroup{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.repository.CreateResidentialGroup(group); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "residential_groups_name_key":
				h.errorResponse(w, r, "a group with this name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "residential group created", group)
}

func (h *Handler) GetAllResidentialGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.repository.GetAllResidentialGroups()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "residential groups fetched", groups)
}

func (h *Handler) GetResidentialGroup(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(ResidentialGroupCtx).(*domain.ResidentialGroup)

	h.successResponse(w, r, "residential group fetched", group)
}
