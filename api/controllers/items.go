package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/campuskart/campuskart-backend/api/middleware"
	"github.com/campuskart/campuskart-backend/api/responses"
	"github.com/campuskart/campuskart-backend/api/validators"
	"github.com/campuskart/campuskart-backend/internal/catalog"
	"github.com/campuskart/campuskart-backend/internal/moderation"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

type itemCreatedResponse struct {
	Message string    `json:"message"`
	ItemID  uuid.UUID `json:"itemId"`
}

// ListItems serves the public storefront: approved listings only, with
// optional search/category/mode filters.
func ListItems(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		views, err := svc.PublicItems(r.Context(), validators.ItemFiltersFromQuery(r))
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

// CreateItem accepts a seller's multipart listing submission.
func CreateItem(svc moderation.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		sellerID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		req, cleanup, err := validators.ParseItemForm(r, maxUploadBytes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer cleanup()

		itemID, err := svc.CreateItem(r.Context(), sellerID, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, itemCreatedResponse{
			Message: "Item added successfully",
			ItemID:  itemID,
		})
	}
}

// callerID pulls the authenticated user's id out of the request context.
func callerID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Access token required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "Invalid token")
	}
	return id, nil
}
