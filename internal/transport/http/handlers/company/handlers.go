package companyhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/auth"
	"github.com/bangasho83/hummane/internal/domain/company"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
	"github.com/bangasho83/hummane/internal/transport/http/shared"
)

type Handler struct {
	Service *company.Service
	Auth    *auth.Service
}

func NewHandler(service *company.Service, authService *auth.Service) *Handler {
	return &Handler{Service: service, Auth: authService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/company", h.handleOnboard)
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireCompany)
		r.Get("/company", h.handleGet)
		r.Put("/company", h.handleUpdate)
	})
}

// handleOnboard creates the company and reissues the caller's token with the
// new company id baked in.
func (h *Handler) handleOnboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	if user.CompanyID != "" {
		api.Fail(w, http.StatusConflict, "already_onboarded", "account already belongs to a company", reqID)
		return
	}

	var input company.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := company.Validate(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	created, err := h.Service.Onboard(r.Context(), user.UserID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "onboard_failed", "failed to create company", reqID)
		return
	}

	account, err := h.Auth.UserByID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "onboard_failed", "failed to reload account", reqID)
		return
	}
	token, err := h.Auth.IssueToken(account)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", reqID)
		return
	}

	api.Created(w, map[string]any{"company": created, "token": token}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	out, err := h.Service.Get(r.Context(), user.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_failed", "failed to load company", reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input company.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := company.Validate(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	out, err := h.Service.Update(r.Context(), user.CompanyID, normalized)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_failed", "failed to update company", reqID)
		return
	}
	api.Success(w, out, reqID)
}
