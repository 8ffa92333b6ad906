package authhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/auth"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
	"github.com/bangasho83/hummane/internal/transport/http/shared"
)

type Handler struct {
	Service         *auth.Service
	AllowSelfSignup bool
}

func NewHandler(service *auth.Service, allowSelfSignup bool) *Handler {
	return &Handler{Service: service, AllowSelfSignup: allowSelfSignup}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/signup", h.handleSignup)
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/logout", h.handleLogout)
	r.Post("/auth/request-reset", h.handleRequestReset)
	r.Post("/auth/reset", h.handleReset)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/auth/me", h.handleMe)
		r.Post("/auth/mfa/setup", h.handleMFASetup)
		r.Post("/auth/mfa/enable", h.handleMFAEnable)
		r.Post("/auth/mfa/disable", h.handleMFADisable)
	})
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if !h.AllowSelfSignup {
		api.Fail(w, http.StatusForbidden, "signup_disabled", "self signup is disabled", reqID)
		return
	}

	var input auth.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := auth.ValidateSignup(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	user, err := h.Service.Signup(r.Context(), normalized)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			api.Fail(w, http.StatusConflict, "email_taken", "email is already registered", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "signup_failed", "failed to create account", reqID)
		return
	}

	token, err := h.Service.IssueToken(user)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", reqID)
		return
	}

	api.Created(w, map[string]any{"user": user, "token": token}, reqID)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input auth.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := auth.ValidateLogin(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	user, token, err := h.Service.Login(r.Context(), normalized)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMFARequired):
			api.Fail(w, http.StatusUnauthorized, "mfa_required", "mfa code required", reqID)
		case errors.Is(err, auth.ErrMFAInvalid):
			api.Fail(w, http.StatusUnauthorized, "mfa_invalid", "invalid mfa code", reqID)
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotFound):
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", reqID)
		}
		return
	}

	api.Success(w, map[string]any{"user": user, "token": token}, reqID)
}

// Tokens are stateless and short-lived; logout just gives clients a single
// endpoint to acknowledge discarding their copy.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged_out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	account, err := h.Service.UserByID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "account not found", reqID)
		return
	}
	api.Success(w, account, reqID)
}

func (h *Handler) handleMFASetup(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	account, err := h.Service.UserByID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "account not found", reqID)
		return
	}

	secret, url, err := h.Service.EnrollMFA(r.Context(), account)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "mfa_setup_failed", "failed to start mfa enrollment", reqID)
		return
	}
	api.Success(w, map[string]string{"secret": secret, "otpauthUrl": url}, reqID)
}

type mfaCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) handleMFAEnable(w http.ResponseWriter, r *http.Request) {
	h.handleMFAToggle(w, r, h.Service.ConfirmMFA)
}

func (h *Handler) handleMFADisable(w http.ResponseWriter, r *http.Request) {
	h.handleMFAToggle(w, r, h.Service.DisableMFA)
}

func (h *Handler) handleMFAToggle(w http.ResponseWriter, r *http.Request, toggle func(ctx context.Context, userID, code string) error) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var req mfaCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "code is required", reqID)
		return
	}

	if err := toggle(r.Context(), user.UserID, req.Code); err != nil {
		if errors.Is(err, auth.ErrMFAInvalid) {
			api.Fail(w, http.StatusUnauthorized, "mfa_invalid", "invalid mfa code", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "mfa_failed", "mfa update failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "ok"}, reqID)
}

type resetRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *Handler) handleRequestReset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "email is required", reqID)
		return
	}

	// Always answer ok so the endpoint cannot be used to probe accounts.
	_, _ = h.Service.RequestPasswordReset(r.Context(), req.Email)
	api.Success(w, map[string]string{"status": "ok"}, reqID)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" || req.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "token and password are required", reqID)
		return
	}

	if err := h.Service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		api.Fail(w, http.StatusBadRequest, "reset_failed", "invalid or expired reset token", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "ok"}, reqID)
}
