package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/campuskart/campuskart-backend/api/responses"
	"github.com/campuskart/campuskart-backend/api/validators"
	"github.com/campuskart/campuskart-backend/internal/orders"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

type orderCreatedResponse struct {
	Message string    `json:"message"`
	OrderID uuid.UUID `json:"orderId"`
}

// PlaceOrder records a direct purchase intent against an approved listing.
func PlaceOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		buyerID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body orders.PlaceOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := svc.PlaceOrder(r.Context(), buyerID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderCreatedResponse{
			Message: "Order created successfully",
			OrderID: orderID,
		})
	}
}

// ContactSeller relays the buyer's details to the seller and records the
// intent as an order.
func ContactSeller(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		buyerID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body orders.ContactSellerRequest
		if err := validators.DecodeValidated(r, &body, "All fields required"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ContactSeller(r.Context(), buyerID, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, "Message sent to seller successfully")
	}
}
