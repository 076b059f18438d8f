package controllers

import (
	"net/http"

	"github.com/campuskart/campuskart-backend/api/responses"
	"github.com/campuskart/campuskart-backend/api/validators"
	"github.com/campuskart/campuskart-backend/internal/auth"
	"github.com/campuskart/campuskart-backend/internal/users"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

type sessionResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *users.UserDTO `json:"user"`
}

// AuthRegister wires the signup endpoint into the HTTP layer.
func AuthRegister(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeValidated(r, &body, "All fields required"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sessionResponse{
			Message: "Registered successfully",
			Token:   session.Token,
			User:    session.User,
		})
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeValidated(r, &body, "Email and password required"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sessionResponse{
			Message: "Login successful",
			Token:   session.Token,
			User:    session.User,
		})
	}
}
