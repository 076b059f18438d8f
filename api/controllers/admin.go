package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campuskart/campuskart-backend/api/responses"
	"github.com/campuskart/campuskart-backend/api/validators"
	"github.com/campuskart/campuskart-backend/internal/catalog"
	"github.com/campuskart/campuskart-backend/internal/moderation"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

// AdminPendingItems lists every listing awaiting a moderation decision.
func AdminPendingItems(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		views, err := svc.PendingItems(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if views == nil {
			views = []catalog.ItemView{}
		}

		responses.WriteSuccess(w, views)
	}
}

// AdminUpdateItemStatus applies an approve/reject decision to a listing.
func AdminUpdateItemStatus(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		itemID, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applied, err := svc.UpdateStatus(r.Context(), itemID, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, fmt.Sprintf("Item %s successfully", applied))
	}
}

// AdminDeleteItem hard-deletes a listing. Repeating the delete still
// succeeds.
func AdminDeleteItem(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		itemID, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteItem(r.Context(), itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, "Item deleted successfully")
	}
}

func itemIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid item id")
	}
	return id, nil
}
