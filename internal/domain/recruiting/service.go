package recruiting

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/bangasho83/hummane/internal/domain/directory"
)

// RoleLister resolves role references on job postings.
type RoleLister interface {
	ListRoles(ctx context.Context, companyID string) ([]directory.Role, error)
}

type Service struct {
	store StoreAPI
	roles RoleLister
}

func NewService(store StoreAPI, roles RoleLister) *Service {
	return &Service{store: store, roles: roles}
}

func (s *Service) CreateJob(ctx context.Context, companyID string, input JobInput) (Job, error) {
	id, err := s.store.CreateJob(ctx, companyID, input)
	if err != nil {
		return Job{}, err
	}
	return s.store.GetJob(ctx, companyID, id)
}

func (s *Service) UpdateJob(ctx context.Context, companyID, id string, input JobInput) (Job, error) {
	if err := s.store.UpdateJob(ctx, companyID, id, input); err != nil {
		return Job{}, err
	}
	return s.store.GetJob(ctx, companyID, id)
}

func (s *Service) DeleteJob(ctx context.Context, companyID, id string) error {
	return s.store.DeleteJob(ctx, companyID, id)
}

func (s *Service) GetJob(ctx context.Context, companyID, id string) (Job, error) {
	return s.store.GetJob(ctx, companyID, id)
}

func (s *Service) ListJobs(ctx context.Context, companyID string) ([]Job, error) {
	return s.store.ListJobs(ctx, companyID)
}

// JobView is a job joined with its resolved role title for listing screens.
type JobView struct {
	Job
	RoleTitle string `json:"roleTitle"`
}

// ListJobViews returns jobs with role titles resolved against the company's
// role catalog.
func (s *Service) ListJobViews(ctx context.Context, companyID string) ([]JobView, error) {
	jobs, err := s.store.ListJobs(ctx, companyID)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.ListRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, JobView{Job: job, RoleTitle: ResolveRoleTitle(job, roles)})
	}
	return out, nil
}

func (s *Service) CreateApplicant(ctx context.Context, companyID string, input ApplicantInput) (Applicant, error) {
	if input.JobID != "" {
		if _, err := s.store.GetJob(ctx, companyID, input.JobID); err != nil {
			return Applicant{}, err
		}
	}
	id, err := s.store.CreateApplicant(ctx, companyID, input)
	if err != nil {
		return Applicant{}, err
	}
	return s.store.GetApplicant(ctx, companyID, id)
}

func (s *Service) UpdateApplicant(ctx context.Context, companyID, id string, input ApplicantInput) (Applicant, error) {
	if err := s.store.UpdateApplicant(ctx, companyID, id, input); err != nil {
		return Applicant{}, err
	}
	return s.store.GetApplicant(ctx, companyID, id)
}

// MoveApplicant transitions an applicant to another pipeline stage. Any
// stage may move to any other stage; only stage names outside the closed
// set are rejected.
func (s *Service) MoveApplicant(ctx context.Context, companyID, id, stage string) (Applicant, error) {
	if _, errs := ValidateStage(stage); errs.Has() {
		return Applicant{}, ErrUnknownStage
	}
	if err := s.store.MoveApplicant(ctx, companyID, id, stage); err != nil {
		return Applicant{}, err
	}
	return s.store.GetApplicant(ctx, companyID, id)
}

func (s *Service) DeleteApplicant(ctx context.Context, companyID, id string) error {
	return s.store.DeleteApplicant(ctx, companyID, id)
}

func (s *Service) GetApplicant(ctx context.Context, companyID, id string) (Applicant, error) {
	return s.store.GetApplicant(ctx, companyID, id)
}

func (s *Service) ListApplicants(ctx context.Context, companyID string) ([]Applicant, error) {
	return s.store.ListApplicants(ctx, companyID)
}

// Board groups the company's applicants into the seven-stage pipeline view.
func (s *Service) Board(ctx context.Context, companyID string) (map[string][]Applicant, error) {
	applicants, err := s.store.ListApplicants(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return GroupByStage(applicants), nil
}

// Funnel reports the per-stage applicant counts for dashboard widgets.
func (s *Service) Funnel(ctx context.Context, companyID string) (map[string]int, error) {
	applicants, err := s.store.ListApplicants(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return StageCounts(applicants), nil
}

func (s *Service) AttachResume(ctx context.Context, companyID, id, fileName string, data []byte) error {
	return s.store.SetApplicantResume(ctx, companyID, id, fileName, data)
}

func (s *Service) Resume(ctx context.Context, companyID, id string) (string, []byte, error) {
	return s.store.GetApplicantResume(ctx, companyID, id)
}

// ApplicantSummaryPDF renders a one-page applicant summary, including which
// job the applicant resolved to.
func (s *Service) ApplicantSummaryPDF(ctx context.Context, companyID, id string) ([]byte, error) {
	applicant, err := s.store.GetApplicant(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	jobs, err := s.store.ListJobs(ctx, companyID)
	if err != nil {
		return nil, err
	}

	jobTitle := applicant.PositionApplied
	if job, ok := JobForApplicant(applicant, jobs); ok {
		jobTitle = job.Title
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Applicant Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", applicant.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", applicant.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Phone: %s", applicant.Phone))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", jobTitle))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Stage: %s", applicant.Status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Applied: %s", applicant.AppliedDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Experience: %.1f years", applicant.YearsOfExperience))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Expected salary: %.2f", applicant.ExpectedSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
