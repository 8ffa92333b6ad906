package leavehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/audit"
	"github.com/bangasho83/hummane/internal/domain/leave"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
	"github.com/bangasho83/hummane/internal/transport/http/shared"
)

const maxDocumentBytes = 10 << 20

type Handler struct {
	Service *leave.Service
	Audit   *audit.Service
}

func NewHandler(service *leave.Service, auditor *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/types", h.handleListTypes)
		r.Post("/types", h.handleCreateType)
		r.Put("/types/{typeID}", h.handleUpdateType)
		r.Delete("/types/{typeID}", h.handleDeleteType)

		r.Get("/records", h.handleListRecords)
		r.Post("/records", h.handleCreateRecord)
		r.Delete("/records/{recordID}", h.handleDeleteRecord)
		r.Post("/records/{recordID}/documents", h.handleUploadDocument)
		r.Get("/records/{recordID}/documents", h.handleListDocuments)
		r.Get("/documents/{documentID}", h.handleDownloadDocument)
		r.Get("/usage/{employeeID}", h.handleUsage)

		r.Get("/holidays", h.handleListHolidays)
		r.Post("/holidays", h.handleCreateHoliday)
		r.Delete("/holidays/{holidayID}", h.handleDeleteHoliday)

		r.Get("/calendar.ics", h.handleCalendarICS)
		r.Get("/calendar.csv", h.handleCalendarCSV)
	})
}

func (h *Handler) record(r *http.Request, action, entityType, entityID string, payload any) {
	if h.Audit == nil {
		return
	}
	user, _ := middleware.GetUser(r.Context())
	_ = h.Audit.Record(r.Context(), user.CompanyID, user.UserID, action, entityType, entityID, middleware.ClientIP(r), payload)
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	types, err := h.Service.ListTypes(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_type_list_failed", "failed to list leave types", reqID)
		return
	}
	api.Success(w, types, reqID)
}

func (h *Handler) handleCreateType(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input leave.TypeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := leave.ValidateType(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	id, err := h.Service.CreateType(r.Context(), user.CompanyID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_type_create_failed", "failed to create leave type", reqID)
		return
	}

	h.record(r, "leave_type.create", "leave_type", id, normalized)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateType(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	typeID := chi.URLParam(r, "typeID")

	var input leave.TypeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := leave.ValidateType(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	if err := h.Service.UpdateType(r.Context(), user.CompanyID, typeID, normalized); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave type not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_type_update_failed", "failed to update leave type", reqID)
		return
	}

	h.record(r, "leave_type.update", "leave_type", typeID, normalized)
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteType(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	typeID := chi.URLParam(r, "typeID")

	if err := h.Service.DeleteType(r.Context(), user.CompanyID, typeID); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave type not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_type_delete_failed", "failed to delete leave type", reqID)
		return
	}

	h.record(r, "leave_type.delete", "leave_type", typeID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	records, err := h.Service.ListRecords(r.Context(), user.CompanyID, r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_record_list_failed", "failed to list leave records", reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input leave.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := leave.ValidateRecord(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	created, err := h.Service.CreateRecord(r.Context(), user.CompanyID, normalized)
	if err != nil {
		if errors.Is(err, leave.ErrUnknownType) {
			api.Fail(w, http.StatusBadRequest, "unknown_leave_type", "leave type does not exist", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_record_create_failed", "failed to create leave record", reqID)
		return
	}

	h.record(r, "leave_record.create", "leave_record", created.ID, created)
	api.Created(w, created, reqID)
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	recordID := chi.URLParam(r, "recordID")

	if err := h.Service.DeleteRecord(r.Context(), user.CompanyID, recordID); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave record not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_record_delete_failed", "failed to delete leave record", reqID)
		return
	}

	h.record(r, "leave_record.delete", "leave_record", recordID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	recordID := chi.URLParam(r, "recordID")

	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "invalid multipart payload", reqID)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "file field is required", reqID)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "failed to read file", reqID)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id, err := h.Service.AttachRecordDocument(r.Context(), user.CompanyID, recordID, header.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave record not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_upload_failed", "failed to store document", reqID)
		return
	}

	h.record(r, "leave_record.document_upload", "leave_record", recordID, map[string]string{"fileName": header.Filename})
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	docs, err := h.Service.RecordDocuments(r.Context(), user.CompanyID, chi.URLParam(r, "recordID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_list_failed", "failed to list documents", reqID)
		return
	}
	api.Success(w, docs, reqID)
}

func (h *Handler) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	doc, data, err := h.Service.RecordDocumentData(r.Context(), user.CompanyID, chi.URLParam(r, "documentID"))
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_failed", "failed to load document", reqID)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	_, _ = w.Write(data)
}

func (h *Handler) handleUsage(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 || parsed > 9999 {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a four digit number", reqID)
			return
		}
		year = parsed
	}

	usage, err := h.Service.Usage(r.Context(), user.CompanyID, chi.URLParam(r, "employeeID"), year)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_usage_failed", "failed to summarize leave usage", reqID)
		return
	}
	api.Success(w, usage, reqID)
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	holidays, err := h.Service.ListHolidays(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_list_failed", "failed to list holidays", reqID)
		return
	}
	api.Success(w, holidays, reqID)
}

func (h *Handler) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input leave.HolidayInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := leave.ValidateHoliday(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	id, err := h.Service.CreateHoliday(r.Context(), user.CompanyID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_create_failed", "failed to create holiday", reqID)
		return
	}

	h.record(r, "holiday.create", "holiday", id, normalized)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	holidayID := chi.URLParam(r, "holidayID")

	if err := h.Service.DeleteHoliday(r.Context(), user.CompanyID, holidayID); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "holiday not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "holiday_delete_failed", "failed to delete holiday", reqID)
		return
	}

	h.record(r, "holiday.delete", "holiday", holidayID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleCalendarICS(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	ics, err := h.Service.CalendarICS(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to build calendar", reqID)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="leave.ics"`)
	_, _ = w.Write([]byte(ics))
}

func (h *Handler) handleCalendarCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	csv, err := h.Service.CalendarCSV(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to build calendar", reqID)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="leave.csv"`)
	_, _ = w.Write([]byte(csv))
}
