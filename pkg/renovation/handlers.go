// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package renovation

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

type CreateRenovationRequest struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

type API struct {
	service  ServiceInterface
	accounts AccountsInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/renovations", a.handleCreate)
	mux.Get("/api/v0/renovations/{id}", a.handleGet)
	mux.Get("/api/v0/renovations/{id}/members", a.handleListMembers)
	mux.Delete("/api/v0/renovations/{id}/members/{accountID}", a.handleRemoveMember)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	request := new(CreateRenovationRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		a.writeResponse(w, nil, "invalid request body", http.StatusBadRequest)
		return
	}

	if request.Name == "" || request.OwnerID == "" {
		a.writeResponse(w, nil, "name and owner_id are required", http.StatusBadRequest)
		return
	}

	owner, err := a.accounts.GetAccount(r.Context(), request.OwnerID)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if owner == nil {
		a.writeResponse(w, nil, "owner account not found", http.StatusNotFound)
		return
	}

	renovation, err := a.service.CreateRenovation(r.Context(), request.Name, owner)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, renovation, "renovation created", http.StatusCreated)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	renovation, err := a.service.GetRenovation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, renovation, "ok", http.StatusOK)
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, members, "ok", http.StatusOK)
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	renovationID := chi.URLParam(r, "id")
	accountID := chi.URLParam(r, "accountID")

	member, err := a.accounts.GetAccount(r.Context(), accountID)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if member == nil {
		a.writeResponse(w, nil, "member account not found", http.StatusNotFound)
		return
	}

	if err := a.service.RemoveMember(r.Context(), renovationID, member); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, nil, "member removed", http.StatusOK)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeResponse(w, nil, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeResponse(w, nil, err.Error(), http.StatusConflict)
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

func NewAPI(service ServiceInterface, accounts AccountsInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.accounts = accounts

	a.tracer = tracer
	a.logger = logger

	return a
}
