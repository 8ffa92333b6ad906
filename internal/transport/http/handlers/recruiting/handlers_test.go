package recruitinghandler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bangasho83/hummane/internal/domain/auth"
	"github.com/bangasho83/hummane/internal/domain/directory"
	"github.com/bangasho83/hummane/internal/domain/recruiting"
	"github.com/bangasho83/hummane/internal/transport/http/middleware"
)

type fakeStore struct {
	nextID     int
	jobs       map[string]recruiting.Job
	applicants map[string]recruiting.Applicant
	resumes    map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:       map[string]recruiting.Job{},
		applicants: map[string]recruiting.Applicant{},
		resumes:    map[string][]byte{},
	}
}

func (s *fakeStore) id() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *fakeStore) CreateJob(_ context.Context, companyID string, input recruiting.JobInput) (string, error) {
	id := s.id()
	s.jobs[id] = recruiting.Job{
		ID:        id,
		CompanyID: companyID,
		Title:     input.Title,
		RoleID:    input.RoleID,
		Location:  input.Location,
		Salary:    input.Salary,
		Status:    input.Status,
	}
	return id, nil
}

func (s *fakeStore) UpdateJob(_ context.Context, companyID, id string, input recruiting.JobInput) error {
	job, ok := s.jobs[id]
	if !ok || job.CompanyID != companyID {
		return recruiting.ErrJobNotFound
	}
	job.Title = input.Title
	job.Status = input.Status
	s.jobs[id] = job
	return nil
}

func (s *fakeStore) DeleteJob(_ context.Context, companyID, id string) error {
	job, ok := s.jobs[id]
	if !ok || job.CompanyID != companyID {
		return recruiting.ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *fakeStore) GetJob(_ context.Context, companyID, id string) (recruiting.Job, error) {
	job, ok := s.jobs[id]
	if !ok || job.CompanyID != companyID {
		return recruiting.Job{}, recruiting.ErrJobNotFound
	}
	return job, nil
}

func (s *fakeStore) ListJobs(_ context.Context, companyID string) ([]recruiting.Job, error) {
	out := make([]recruiting.Job, 0)
	for _, job := range s.jobs {
		if job.CompanyID == companyID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateApplicant(_ context.Context, companyID string, input recruiting.ApplicantInput) (string, error) {
	id := s.id()
	s.applicants[id] = recruiting.Applicant{
		ID:              id,
		CompanyID:       companyID,
		JobID:           input.JobID,
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		PositionApplied: input.PositionApplied,
		Status:          input.Status,
		AppliedDate:     input.AppliedDate,
	}
	return id, nil
}

func (s *fakeStore) UpdateApplicant(_ context.Context, companyID, id string, input recruiting.ApplicantInput) error {
	applicant, ok := s.applicants[id]
	if !ok || applicant.CompanyID != companyID {
		return recruiting.ErrApplicantNotFound
	}
	applicant.FullName = input.FullName
	applicant.Status = input.Status
	s.applicants[id] = applicant
	return nil
}

func (s *fakeStore) MoveApplicant(_ context.Context, companyID, id, stage string) error {
	applicant, ok := s.applicants[id]
	if !ok || applicant.CompanyID != companyID {
		return recruiting.ErrApplicantNotFound
	}
	applicant.Status = stage
	s.applicants[id] = applicant
	return nil
}

func (s *fakeStore) DeleteApplicant(_ context.Context, companyID, id string) error {
	applicant, ok := s.applicants[id]
	if !ok || applicant.CompanyID != companyID {
		return recruiting.ErrApplicantNotFound
	}
	delete(s.applicants, id)
	return nil
}

func (s *fakeStore) GetApplicant(_ context.Context, companyID, id string) (recruiting.Applicant, error) {
	applicant, ok := s.applicants[id]
	if !ok || applicant.CompanyID != companyID {
		return recruiting.Applicant{}, recruiting.ErrApplicantNotFound
	}
	return applicant, nil
}

func (s *fakeStore) ListApplicants(_ context.Context, companyID string) ([]recruiting.Applicant, error) {
	out := make([]recruiting.Applicant, 0)
	for _, applicant := range s.applicants {
		if applicant.CompanyID == companyID {
			out = append(out, applicant)
		}
	}
	return out, nil
}

func (s *fakeStore) SetApplicantResume(_ context.Context, companyID, id, fileName string, data []byte) error {
	applicant, ok := s.applicants[id]
	if !ok || applicant.CompanyID != companyID {
		return recruiting.ErrApplicantNotFound
	}
	applicant.ResumeFileName = fileName
	s.applicants[id] = applicant
	s.resumes[id] = data
	return nil
}

func (s *fakeStore) GetApplicantResume(_ context.Context, companyID, id string) (string, []byte, error) {
	applicant, ok := s.applicants[id]
	if !ok || applicant.CompanyID != companyID {
		return "", nil, recruiting.ErrApplicantNotFound
	}
	return applicant.ResumeFileName, s.resumes[id], nil
}

type fakeRoleLister struct {
	roles []directory.Role
}

func (f *fakeRoleLister) ListRoles(context.Context, string) ([]directory.Role, error) {
	return f.roles, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestRouter(store recruiting.StoreAPI) http.Handler {
	handler := NewHandler(recruiting.NewService(store, &fakeRoleLister{}), nil, nil)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithUser(req.Context(), auth.UserContext{
				UserID:    "user-1",
				CompanyID: "company-1",
				Email:     "owner@example.com",
			})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	handler.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestCreateJobValidation(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, env := doJSON(t, router, http.MethodPost, "/jobs", `{"title":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", env.Error)
	}
	fields, ok := env.Error.Details["fields"].(map[string]any)
	if !ok {
		t.Fatalf("expected field map in details, got %+v", env.Error.Details)
	}
	if _, ok := fields["title"]; !ok {
		t.Fatalf("expected title error, got %v", fields)
	}
}

func TestCreateJobDefaultsStatusOpen(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, env := doJSON(t, router, http.MethodPost, "/jobs", `{"title":"Backend Engineer"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}

	var job recruiting.Job
	if err := json.Unmarshal(env.Data, &job); err != nil {
		t.Fatalf("decode job: %v", err)
	}
	if job.Status != recruiting.JobStatusOpen {
		t.Fatalf("expected default status open, got %q", job.Status)
	}
	if job.CompanyID != "company-1" {
		t.Fatalf("expected company scoping, got %q", job.CompanyID)
	}
}

func TestCreateApplicantRejectsUnknownJob(t *testing.T) {
	router := newTestRouter(newFakeStore())

	body := `{"jobId":"missing","fullName":"Ada Lovelace","email":"ada@example.com","phone":"12345","positionApplied":"Engineer","appliedDate":"2026-01-15"}`
	rec, env := doJSON(t, router, http.MethodPost, "/applicants", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "unknown_job" {
		t.Fatalf("expected unknown_job, got %+v", env.Error)
	}
}

func TestMoveApplicant(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	body := `{"fullName":"Ada Lovelace","email":"ada@example.com","phone":"12345","positionApplied":"Engineer","appliedDate":"2026-01-15"}`
	rec, env := doJSON(t, router, http.MethodPost, "/applicants", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}
	var created recruiting.Applicant
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode applicant: %v", err)
	}
	if created.Status != recruiting.StageNew {
		t.Fatalf("expected new applicant in stage %q, got %q", recruiting.StageNew, created.Status)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/applicants/"+created.ID+"/move", `{"status":"hired"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}
	var moved recruiting.Applicant
	if err := json.Unmarshal(env.Data, &moved); err != nil {
		t.Fatalf("decode applicant: %v", err)
	}
	if moved.Status != recruiting.StageHired {
		t.Fatalf("expected hired, got %q", moved.Status)
	}
}

func TestMoveApplicantRejectsUnknownStage(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	body := `{"fullName":"Ada Lovelace","email":"ada@example.com","phone":"12345","positionApplied":"Engineer","appliedDate":"2026-01-15"}`
	_, env := doJSON(t, router, http.MethodPost, "/applicants", body)
	var created recruiting.Applicant
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode applicant: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodPost, "/applicants/"+created.ID+"/move", `{"status":"offer extended"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown stage, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", env.Error)
	}
}

func TestBoardAlwaysListsEveryStage(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, env := doJSON(t, router, http.MethodGet, "/applicants/board", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var board map[string][]recruiting.Applicant
	if err := json.Unmarshal(env.Data, &board); err != nil {
		t.Fatalf("decode board: %v", err)
	}
	if len(board) != len(recruiting.Stages) {
		t.Fatalf("expected %d stages, got %d", len(recruiting.Stages), len(board))
	}
	for _, stage := range recruiting.Stages {
		bucket, ok := board[stage]
		if !ok {
			t.Fatalf("expected stage %q in board", stage)
		}
		if bucket == nil {
			t.Fatalf("expected empty slice for stage %q, got null", stage)
		}
	}
}

func TestFunnelCountsEveryStage(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	for _, body := range []string{
		`{"fullName":"Ada Lovelace","email":"ada@example.com","phone":"12345","positionApplied":"Engineer","appliedDate":"2026-01-15"}`,
		`{"fullName":"Grace Hopper","email":"grace@example.com","phone":"12345","positionApplied":"Engineer","appliedDate":"2026-01-16","status":"hired"}`,
	} {
		if rec, _ := doJSON(t, router, http.MethodPost, "/applicants", body); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
	}

	rec, env := doJSON(t, router, http.MethodGet, "/applicants/funnel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts map[string]int
	if err := json.Unmarshal(env.Data, &counts); err != nil {
		t.Fatalf("decode funnel: %v", err)
	}
	if len(counts) != len(recruiting.Stages) {
		t.Fatalf("expected %d stages, got %v", len(recruiting.Stages), counts)
	}
	if counts[recruiting.StageNew] != 1 || counts[recruiting.StageHired] != 1 {
		t.Fatalf("unexpected stage counts %v", counts)
	}
	if counts[recruiting.StageRejected] != 0 {
		t.Fatalf("expected empty stage to report zero, got %v", counts)
	}
}

func TestGetJobNotFound(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, env := doJSON(t, router, http.MethodGet, "/jobs/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected not_found, got %+v", env.Error)
	}
}
