package controllers

import (
	"net/http"

	"github.com/campuskart/campuskart-backend/api/responses"
	"github.com/campuskart/campuskart-backend/internal/catalog"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

// UserItems lists the caller's own listings across all statuses.
func UserItems(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		userID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, err := svc.OwnerItems(r.Context(), userID)
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

// UserOrders lists the orders the caller has placed, with live item data.
func UserOrders(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		userID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, err := svc.OwnerOrders(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if views == nil {
			views = []catalog.OrderView{}
		}

		responses.WriteSuccess(w, views)
	}
}
