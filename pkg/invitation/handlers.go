// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/storage"
	"github.com/canonical/renovation-service/internal/tracing"
	"github.com/canonical/renovation-service/internal/types"
)

type CreateInviteRequest struct {
	Email string `json:"email"`
}

type ValidateInvitesRequest struct {
	Emails []string `json:"emails"`
}

// RegistrationCompletedRequest is the payload of the after-registration
// callback from the identity provider.
type RegistrationCompletedRequest struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/renovations/{id}/invitations", a.handleCreate)
	mux.Post("/api/v0/renovations/{id}/invitations/validate", a.handleValidateBatch)
	mux.Get("/api/v0/renovations/{id}/invitations/suggestions", a.handleSuggestions)
	mux.Get("/api/v0/invitations/{token}", a.handleValidateToken)
	mux.Post("/api/v0/invitations/{token}/accept", a.handleAccept)
	mux.Post("/api/v0/invitations/{token}/decline", a.handleDecline)
	mux.Post("/api/v0/invitations/{token}/pending-registration", a.handlePendingRegistration)
	mux.Post("/api/v0/registrations/completed", a.handleRegistrationCompleted)
	mux.Delete("/api/v0/registrations/pending", a.handleRegistrationAbandoned)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	renovationID := chi.URLParam(r, "id")

	request := new(CreateInviteRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		a.writeResponse(w, nil, "invalid request body", http.StatusBadRequest)
		return
	}

	invitation, err := a.service.CreateInvite(r.Context(), renovationID, request.Email)
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.SendInvitationMail(r.Context(), invitation); err != nil {
		// the invitation exists either way, delivery can be retried
		a.logger.Errorf("failed to send invitation mail for %s: %v", invitation.Token, err)
	}

	a.writeResponse(w, invitation, "invitation created", http.StatusCreated)
}

func (a *API) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	renovationID := chi.URLParam(r, "id")

	request := new(ValidateInvitesRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		a.writeResponse(w, nil, "invalid request body", http.StatusBadRequest)
		return
	}

	err := a.service.ValidateInviteEmails(r.Context(), renovationID, request.Emails)

	var batch *BatchValidationError
	if errors.As(err, &batch) {
		a.writeResponse(w, batch, "invite validation failed", http.StatusBadRequest)
		return
	}
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, nil, "ok", http.StatusOK)
}

func (a *API) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	renovationID := chi.URLParam(r, "id")
	accountID := r.URL.Query().Get("account_id")
	query := r.URL.Query().Get("query")

	suggestions, err := a.service.FindInviteSuggestions(r.Context(), accountID, renovationID, query)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, suggestions, "ok", http.StatusOK)
}

func (a *API) handleValidateToken(w http.ResponseWriter, r *http.Request) {
	invitation, err := a.service.ValidateInvitationToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, invitation, "ok", http.StatusOK)
}

func (a *API) handleAccept(w http.ResponseWriter, r *http.Request) {
	invitation, err := a.service.AcceptInvitation(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, invitation, "invitation accepted", http.StatusOK)
}

func (a *API) handleDecline(w http.ResponseWriter, r *http.Request) {
	invitation, err := a.service.DeclineInvitation(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, invitation, "invitation declined", http.StatusOK)
}

func (a *API) handlePendingRegistration(w http.ResponseWriter, r *http.Request) {
	invitation, err := a.service.MarkAsAcceptedPendingRegistration(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, invitation, "invitation flagged for registration", http.StatusOK)
}

func (a *API) handleRegistrationCompleted(w http.ResponseWriter, r *http.Request) {
	request := new(RegistrationCompletedRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		a.writeResponse(w, nil, "invalid request body", http.StatusBadRequest)
		return
	}

	if request.AccountID == "" || request.Email == "" {
		a.writeResponse(w, nil, "account_id and email are required", http.StatusBadRequest)
		return
	}

	account := &types.Account{ID: request.AccountID, Email: request.Email, Name: request.Name}
	if err := a.service.AcceptInvitationsPendingRegistration(r.Context(), account); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, nil, "pending invitations accepted", http.StatusOK)
}

func (a *API) handleRegistrationAbandoned(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.writeResponse(w, nil, "email is required", http.StatusBadRequest)
		return
	}

	if err := a.service.ClearInvitationsPendingRegistration(r.Context(), email); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, nil, "pending invitations cleared", http.StatusOK)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTokenInvalid):
		a.writeResponse(w, nil, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrTokenExpired):
		a.writeResponse(w, nil, err.Error(), http.StatusGone)
	case errors.Is(err, types.ErrAlreadyResolved):
		a.writeResponse(w, nil, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrUnregisteredInvitee):
		a.writeResponse(w, nil, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidEmail):
		a.writeResponse(w, nil, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotFound):
		a.writeResponse(w, nil, err.Error(), http.StatusNotFound)
	default:
		a.logger.Errorf("internal server error: %v", err)
		a.writeResponse(w, nil, "internal server error", http.StatusInternalServerError)
	}
}

func (a *API) writeResponse(w http.ResponseWriter, data interface{}, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(types.Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.logger = logger

	return a
}
