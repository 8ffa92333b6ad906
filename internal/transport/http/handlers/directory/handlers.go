package directoryhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/audit"
	"github.com/bangasho83/hummane/internal/domain/directory"
	"github.com/bangasho83/hummane/internal/domain/notifications"
	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
	"github.com/bangasho83/hummane/internal/transport/http/shared"
)

const maxDocumentBytes = 10 << 20

type Handler struct {
	Service  *directory.Service
	Audit    *audit.Service
	Notifier *notifications.Service
}

func NewHandler(service *directory.Service, auditor *audit.Service, notifier *notifications.Service) *Handler {
	return &Handler{Service: service, Audit: auditor, Notifier: notifier}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/stats", h.handleStats)
		r.Get("/{employeeID}", h.handleGetEmployee)
		r.Put("/{employeeID}", h.handleUpdateEmployee)
		r.Delete("/{employeeID}", h.handleDeleteEmployee)
		r.Post("/{employeeID}/documents", h.handleUploadDocument)
		r.Get("/{employeeID}/documents", h.handleListDocuments)
	})
	r.Get("/documents/{documentID}", h.handleDownloadDocument)

	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Put("/{departmentID}", h.handleUpdateDepartment)
		r.Delete("/{departmentID}", h.handleDeleteDepartment)
	})

	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.handleListRoles)
		r.Post("/", h.handleCreateRole)
		r.Put("/{roleID}", h.handleUpdateRole)
		r.Delete("/{roleID}", h.handleDeleteRole)
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

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	employees, err := h.Service.ListEmployees(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input directory.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := directory.ValidateEmployee(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	employee, err := h.Service.CreateEmployee(r.Context(), user.CompanyID, normalized)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrEmployeeIDTaken):
			api.Fail(w, http.StatusConflict, "employee_id_taken", "employee id is already in use", reqID)
		case errors.Is(err, directory.ErrUnknownRole):
			api.Fail(w, http.StatusBadRequest, "unknown_role", "role does not exist", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", reqID)
		}
		return
	}

	h.record(r, "employee.create", "employee", employee.ID, employee)
	h.notify(r, fmt.Sprintf("%s joined the directory", employee.Name), notifications.KindSuccess)
	api.Created(w, employee, reqID)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	employee, err := h.Service.GetEmployee(r.Context(), user.CompanyID, chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_failed", "failed to load employee", reqID)
		return
	}
	api.Success(w, employee, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var input directory.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := directory.ValidateEmployee(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	employee, err := h.Service.UpdateEmployee(r.Context(), user.CompanyID, employeeID, normalized)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
		case errors.Is(err, directory.ErrEmployeeIDTaken):
			api.Fail(w, http.StatusConflict, "employee_id_taken", "employee id is already in use", reqID)
		case errors.Is(err, directory.ErrUnknownRole):
			api.Fail(w, http.StatusBadRequest, "unknown_role", "role does not exist", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", reqID)
		}
		return
	}

	h.record(r, "employee.update", "employee", employee.ID, employee)
	api.Success(w, employee, reqID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.Service.DeleteEmployee(r.Context(), user.CompanyID, employeeID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", reqID)
		return
	}

	h.record(r, "employee.delete", "employee", employeeID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	stats, err := h.Service.Stats(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to compute team stats", reqID)
		return
	}
	api.Success(w, stats, reqID)
}

func (h *Handler) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

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

	kind := r.FormValue("kind")
	if _, errs := directory.ValidateDocumentKind(kind); shared.Reject(w, reqID, errs) {
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "failed to read file", reqID)
		return
	}

	id, err := h.Service.AddDocument(r.Context(), user.CompanyID, employeeID, kind, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_upload_failed", "failed to store document", reqID)
		return
	}

	h.record(r, "document.upload", "employee_document", id, map[string]string{"employeeId": employeeID, "fileName": header.Filename})
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	docs, err := h.Service.ListDocuments(r.Context(), user.CompanyID, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_list_failed", "failed to list documents", reqID)
		return
	}
	api.Success(w, docs, reqID)
}

func (h *Handler) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	doc, data, err := h.Service.DocumentData(r.Context(), user.CompanyID, chi.URLParam(r, "documentID"))
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_failed", "failed to load document", reqID)
		return
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	_, _ = w.Write(data)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	departments, err := h.Service.ListDepartments(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_list_failed", "failed to list departments", reqID)
		return
	}
	api.Success(w, departments, reqID)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input directory.DepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := directory.ValidateDepartment(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	id, err := h.Service.CreateDepartment(r.Context(), user.CompanyID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "department_create_failed", "failed to create department", reqID)
		return
	}

	h.record(r, "department.create", "department", id, normalized)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	departmentID := chi.URLParam(r, "departmentID")

	var input directory.DepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := directory.ValidateDepartment(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	if err := h.Service.UpdateDepartment(r.Context(), user.CompanyID, departmentID, normalized); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "department not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "department_update_failed", "failed to update department", reqID)
		return
	}

	h.record(r, "department.update", "department", departmentID, normalized)
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	departmentID := chi.URLParam(r, "departmentID")

	if err := h.Service.DeleteDepartment(r.Context(), user.CompanyID, departmentID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "department not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "department_delete_failed", "failed to delete department", reqID)
		return
	}

	h.record(r, "department.delete", "department", departmentID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	roles, err := h.Service.ListRoles(r.Context(), user.CompanyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_list_failed", "failed to list roles", reqID)
		return
	}
	api.Success(w, roles, reqID)
}

func (h *Handler) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var input directory.RoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := directory.ValidateRole(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	id, err := h.Service.CreateRole(r.Context(), user.CompanyID, normalized)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_create_failed", "failed to create role", reqID)
		return
	}

	h.record(r, "role.create", "role", id, normalized)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	roleID := chi.URLParam(r, "roleID")

	var input directory.RoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", reqID)
		return
	}

	normalized, errs := directory.ValidateRole(input)
	if shared.Reject(w, reqID, errs) {
		return
	}

	if err := h.Service.UpdateRole(r.Context(), user.CompanyID, roleID, normalized); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "role not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "role_update_failed", "failed to update role", reqID)
		return
	}

	h.record(r, "role.update", "role", roleID, normalized)
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	roleID := chi.URLParam(r, "roleID")

	if err := h.Service.DeleteRole(r.Context(), user.CompanyID, roleID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "role not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "role_delete_failed", "failed to delete role", reqID)
		return
	}

	h.record(r, "role.delete", "role", roleID, nil)
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}
