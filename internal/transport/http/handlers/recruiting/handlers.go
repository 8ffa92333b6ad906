package recruitinghandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/audit"
	"github.com/bangasho83/hummane/internal/domain/notifications"
	"github.com/bangasho83/hummane/internal/domain/recruiting"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
	"github.com/bangasho83/hummane/internal/transport/http/shared"
)

const maxResumeBytes = 10 << 20

type Handler struct {
	Service  *recruiting.Service
	Audit    *audit.Service
	Notifier *notifications.Service
}

func NewHandler(service *recruiting.Service, auditor *audit.Service, notifier *notifications.Service) *Handler {
	return &Handler{Service: service, Audit: auditor, Notifier: notifier}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.handleListJobs)
		r.Post("/", h.handleCreateJob)
		r.Get("/{jobID}", h.handleGetJob)
		r.Put("/{jobID}", h.handleUpdateJob)
		r.Delete("/{jobID}", h.handleDeleteJob)
	})

	r.Route("/applicants", func(r chi.Router) {
		r.Get("/", h.handleListApplicants)
		r.Post("/", h.handleCreateApplicant)
		r.Get("/board", h.handleBoard)
		r.Get("/funnel", h.handleFunnel)
		r.Get("/{applicantID}", h.handleGetApplicant)
		r.Put("/{applicantID}", h.handleUpdateApplicant)
		r.Delete("/{applicantID}", h.handleDeleteApplicant)
		r.Post("/{applicantID}/move", h.handleMoveApplicant)
		r.Post("/{applicantID}/resume", h.handleUploadResume)
		r.Get("/{applicantID}/resume", h.handleDownloadResume)
		r.Get("/{applicantID}/summary.pdf", h.handleSummaryPDF)
	})
}

func (h *Handler) record(r *http.Request, action, entityType, entityID string, payload any) {
	if h.Audit == nil {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	_ = h.Audit.Record(r.Context(), user.CompanyID, user.UserID, action, entityType, entityID, middleware.ClientIP(r), payload)
}

func (h *Handler) notify(r *http.Request, text, kind string) {
	if h.Notifier == nil {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	_, _ = h.Notifier.Notify(r.Context(), user.CompanyID, user.UserID, text, kind, "")
}

func (h *Handler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	views, err := h.Service.ListJobViews(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "job_list_failed", "failed to list jobs", reqID)
		return
	}
	api.Success(w, views, reqID)
}

func (h *Handler) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input recruiting.JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := recruiting.ValidateJob(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	job, err := h.Service.CreateJob(r.Context(), user.CompanyID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "job_create_failed", "failed to create job", reqID)
		return
	}

	h.record(r, "job.create", "job", job.ID, job)
	api.Created(w, job, reqID)
}

func (h *Handler) handleGetJob(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	job, err := h.Service.GetJob(r.Context(), user.CompanyID, chi.URLParam(r, "jobID"))
	if err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "job not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "job_failed", "failed to load job", reqID)
		return
	}
	api.Success(w, job, reqID)
}

func (h *Handler) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	jobID := chi.URLParam(r, "jobID")

	var input recruiting.JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := recruiting.ValidateJob(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	job, err := h.Service.UpdateJob(r.Context(), user.CompanyID, jobID, normalized)
	if err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "job not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "job_update_failed", "failed to update job", reqID)
		return
	}

	h.record(r, "job.update", "job", job.ID, job)
	api.Success(w, job, reqID)
}

func (h *Handler) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	jobID := chi.URLParam(r, "jobID")

	if err := h.Service.DeleteJob(r.Context(), user.CompanyID, jobID); err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "job not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "job_delete_failed", "failed to delete job", reqID)
		return
	}

	h.record(r, "job.delete", "job", jobID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	applicants, err := h.Service.ListApplicants(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "applicant_list_failed", "failed to list applicants", reqID)
		return
	}
	api.Success(w, applicants, reqID)
}

func (h *Handler) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input recruiting.ApplicantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := recruiting.ValidateApplicant(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	applicant, err := h.Service.CreateApplicant(r.Context(), user.CompanyID, normalized)
	if err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			api.Fail(w, http.StatusBadRequest, "unknown_job", "job does not exist", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "applicant_create_failed", "failed to create applicant", reqID)
		return
	}

	h.record(r, "applicant.create", "applicant", applicant.ID, applicant)
	h.notify(r, fmt.Sprintf("%s applied for %s", applicant.FullName, applicant.PositionApplied), notifications.KindInfo)
	api.Created(w, applicant, reqID)
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	board, err := h.Service.Board(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "board_failed", "failed to build pipeline board", reqID)
		return
	}
	api.Success(w, board, reqID)
}

func (h *Handler) handleFunnel(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	counts, err := h.Service.Funnel(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "funnel_failed", "failed to count pipeline stages", reqID)
		return
	}
	api.Success(w, counts, reqID)
}

func (h *Handler) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	applicant, err := h.Service.GetApplicant(r.Context(), user.CompanyID, chi.URLParam(r, "applicantID"))
	if err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "applicant_failed", "failed to load applicant", reqID)
		return
	}
	api.Success(w, applicant, reqID)
}

func (h *Handler) handleUpdateApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	applicantID := chi.URLParam(r, "applicantID")

	var input recruiting.ApplicantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := recruiting.ValidateApplicant(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	applicant, err := h.Service.UpdateApplicant(r.Context(), user.CompanyID, applicantID, normalized)
	if err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "applicant_update_failed", "failed to update applicant", reqID)
		return
	}

	h.record(r, "applicant.update", "applicant", applicant.ID, applicant)
	api.Success(w, applicant, reqID)
}

func (h *Handler) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	applicantID := chi.URLParam(r, "applicantID")

	if err := h.Service.DeleteApplicant(r.Context(), user.CompanyID, applicantID); err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "applicant_delete_failed", "failed to delete applicant", reqID)
		return
	}

	h.record(r, "applicant.delete", "applicant", applicantID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

type moveRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleMoveApplicant(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	applicantID := chi.URLParam(r, "applicantID")

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	if _, errs := recruiting.ValidateStage(req.Status); shared.Reject(w, reqID, errs) {
		return
	}

	applicant, err := h.Service.MoveApplicant(r.Context(), user.CompanyID, applicantID, req.Status)
	if err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "applicant_move_failed", "failed to move applicant", reqID)
		return
	}

	h.record(r, "applicant.move", "applicant", applicant.ID, map[string]string{"status": applicant.Status})
	h.notify(r, fmt.Sprintf("%s moved to %s", applicant.FullName, applicant.Status), notifications.KindSuccess)
	api.Success(w, applicant, reqID)
}

func (h *Handler) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	applicantID := chi.URLParam(r, "applicantID")

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "invalid multipart payload", reqID)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "file field is required", reqID)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "failed to read file", reqID)
		return
	}

	if err := h.Service.AttachResume(r.Context(), user.CompanyID, applicantID, header.Filename, data); err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "resume_upload_failed", "failed to store resume", reqID)
		return
	}

	h.record(r, "applicant.resume_upload", "applicant", applicantID, map[string]string{"fileName": header.Filename})
	api.Success(w, map[string]string{"status": "uploaded"}, reqID)
}

func (h *Handler) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	fileName, data, err := h.Service.Resume(r.Context(), user.CompanyID, chi.URLParam(r, "applicantID"))
	if err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "resume_failed", "failed to load resume", reqID)
		return
	}
	if len(data) == 0 {
		api.Fail(w, http.StatusNotFound, "not_found", "no resume on file", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	_, _ = w.Write(data)
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	pdf, err := h.Service.ApplicantSummaryPDF(r.Context(), user.CompanyID, chi.URLParam(r, "applicantID"))
	if err != nil {
		if errors.Is(err, recruiting.ErrApplicantNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "applicant not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render summary", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="applicant-summary.pdf"`)
	_, _ = w.Write(pdf)
}
