package feedbackhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/audit"
	"github.com/bangasho83/hummane/internal/domain/feedback"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
	"github.com/bangasho83/hummane/internal/transport/http/shared"
)

type Handler struct {
	Service *feedback.Service
	Audit   *audit.Service
}

func NewHandler(service *feedback.Service, auditor *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/feedback", func(r chi.Router) {
		r.Get("/cards", h.handleListCards)
		r.Post("/cards", h.handleCreateCard)
		r.Get("/cards/{cardID}", h.handleGetCard)
		r.Put("/cards/{cardID}", h.handleUpdateCard)
		r.Delete("/cards/{cardID}", h.handleDeleteCard)

		r.Get("/entries", h.handleListEntries)
		r.Post("/entries", h.handleSubmitEntry)
		r.Delete("/entries/{entryID}", h.handleDeleteEntry)
		r.Get("/entries/{entryID}/score", h.handleEntryScore)
		r.Get("/employees/{employeeID}/scores", h.handleEmployeeScores)
	})
}

func (h *Handler) record(r *http.Request, action, entityType, entityID string, payload any) {
	if h.Audit == nil {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	_ = h.Audit.Record(r.Context(), user.CompanyID, user.UserID, action, entityType, entityID, middleware.ClientIP(r), payload)
}

func (h *Handler) handleListCards(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	cards, err := h.Service.ListCards(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "card_list_failed", "failed to list feedback cards", reqID)
		return
	}
	api.Success(w, cards, reqID)
}

func (h *Handler) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input feedback.CardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := feedback.ValidateCard(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	card, err := h.Service.CreateCard(r.Context(), user.CompanyID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "card_create_failed", "failed to create feedback card", reqID)
		return
	}

	h.record(r, "feedback_card.create", "feedback_card", card.ID, card)
	api.Created(w, card, reqID)
}

func (h *Handler) handleGetCard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	card, err := h.Service.GetCard(r.Context(), user.CompanyID, chi.URLParam(r, "cardID"))
	if err != nil {
		if errors.Is(err, feedback.ErrCardNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "feedback card not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "card_failed", "failed to load feedback card", reqID)
		return
	}
	api.Success(w, card, reqID)
}

func (h *Handler) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	cardID := chi.URLParam(r, "cardID")

	var input feedback.CardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := feedback.ValidateCard(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	card, err := h.Service.UpdateCard(r.Context(), user.CompanyID, cardID, normalized)
	if err != nil {
		if errors.Is(err, feedback.ErrCardNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "feedback card not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "card_update_failed", "failed to update feedback card", reqID)
		return
	}

	h.record(r, "feedback_card.update", "feedback_card", card.ID, card)
	api.Success(w, card, reqID)
}

func (h *Handler) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	cardID := chi.URLParam(r, "cardID")

	if err := h.Service.DeleteCard(r.Context(), user.CompanyID, cardID); err != nil {
		if errors.Is(err, feedback.ErrCardNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "feedback card not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "card_delete_failed", "failed to delete feedback card", reqID)
		return
	}

	h.record(r, "feedback_card.delete", "feedback_card", cardID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	entries, err := h.Service.ListEntries(r.Context(), user.CompanyID, r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "entry_list_failed", "failed to list feedback entries", reqID)
		return
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleSubmitEntry(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input feedback.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}
	if input.ReviewerID == "" {
		input.ReviewerID = user.UserID
	}

	entry, errs, err := h.Service.SubmitEntry(r.Context(), user.CompanyID, input)
	if err != nil {
		if errors.Is(err, feedback.ErrCardNotFound) {
			api.Fail(w, http.StatusBadRequest, "unknown_card", "feedback card does not exist", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "entry_create_failed", "failed to submit feedback", reqID)
		return
	}
	if shared.Reject(w, reqID, errs) {
		return
	}

	h.record(r, "feedback_entry.create", "feedback_entry", entry.ID, entry)
	api.Created(w, entry, reqID)
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	entryID := chi.URLParam(r, "entryID")

	if err := h.Service.DeleteEntry(r.Context(), user.CompanyID, entryID); err != nil {
		if errors.Is(err, feedback.ErrEntryNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "feedback entry not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "entry_delete_failed", "failed to delete feedback entry", reqID)
		return
	}

	h.record(r, "feedback_entry.delete", "feedback_entry", entryID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleEntryScore(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	score, err := h.Service.EntryScore(r.Context(), user.CompanyID, chi.URLParam(r, "entryID"))
	if err != nil {
		if errors.Is(err, feedback.ErrEntryNotFound) || errors.Is(err, feedback.ErrCardNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "feedback entry not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "score_failed", "failed to compute score", reqID)
		return
	}
	api.Success(w, score, reqID)
}

func (h *Handler) handleEmployeeScores(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	scores, err := h.Service.EmployeeScores(r.Context(), user.CompanyID, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "score_failed", "failed to compute scores", reqID)
		return
	}
	api.Success(w, scores, reqID)
}
