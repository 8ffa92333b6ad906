package reports

import (
	"context"
	"time"

	"github.com/bangasho83/hummane/internal/domain/directory"
	"github.com/bangasho83/hummane/internal/platform/db"
)

// Summary is the dashboard view for one company.
type Summary struct {
	Headcount        int                 `json:"headcount"`
	OpenJobs         int                 `json:"openJobs"`
	ActiveApplicants int                 `json:"activeApplicants"`
	LeaveRecords     int                 `json:"leaveRecords"`
	FeedbackEntries  int                 `json:"feedbackEntries"`
	Team             directory.TeamStats `json:"team"`
}

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) CountEmployees(ctx context.Context, companyID string) (int, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM employees WHERE company_id = $1", companyID)
}

func (s *Store) CountOpenJobs(ctx context.Context, companyID string) (int, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM jobs WHERE company_id = $1 AND status = 'open'", companyID)
}

// CountActiveApplicants excludes the two terminal stages.
func (s *Store) CountActiveApplicants(ctx context.Context, companyID string) (int, error) {
	return s.count(ctx, `
    SELECT COUNT(*) FROM applicants
    WHERE company_id = $1 AND status NOT IN ('hired', 'rejected')
  `, companyID)
}

func (s *Store) CountLeaveRecords(ctx context.Context, companyID string, year int) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(*) FROM leave_records
    WHERE company_id = $1 AND date_part('year', date) = $2
  `, companyID, year).Scan(&count)
	return count, err
}

func (s *Store) CountFeedbackEntries(ctx context.Context, companyID string) (int, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM feedback_entries WHERE company_id = $1", companyID)
}

func (s *Store) count(ctx context.Context, query, companyID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, query, companyID).Scan(&count)
	return count, err
}

type StoreAPI interface {
	CountEmployees(ctx context.Context, companyID string) (int, error)
	CountOpenJobs(ctx context.Context, companyID string) (int, error)
	CountActiveApplicants(ctx context.Context, companyID string) (int, error)
	CountLeaveRecords(ctx context.Context, companyID string, year int) (int, error)
	CountFeedbackEntries(ctx context.Context, companyID string) (int, error)
}

// EmployeeLister feeds the dashboard team stats and the directory export.
type EmployeeLister interface {
	ListEmployees(ctx context.Context, companyID string) ([]directory.Employee, error)
}

type Service struct {
	store     StoreAPI
	employees EmployeeLister
	now       func() time.Time
}

func NewService(store StoreAPI, employees EmployeeLister) *Service {
	return &Service{store: store, employees: employees, now: time.Now}
}

func (s *Service) Dashboard(ctx context.Context, companyID string) (Summary, error) {
	var summary Summary
	var err error

	if summary.Headcount, err = s.store.CountEmployees(ctx, companyID); err != nil {
		return Summary{}, err
	}
	if summary.OpenJobs, err = s.store.CountOpenJobs(ctx, companyID); err != nil {
		return Summary{}, err
	}
	if summary.ActiveApplicants, err = s.store.CountActiveApplicants(ctx, companyID); err != nil {
		return Summary{}, err
	}
	if summary.LeaveRecords, err = s.store.CountLeaveRecords(ctx, companyID, s.now().Year()); err != nil {
		return Summary{}, err
	}
	if summary.FeedbackEntries, err = s.store.CountFeedbackEntries(ctx, companyID); err != nil {
		return Summary{}, err
	}

	employees, err := s.employees.ListEmployees(ctx, companyID)
	if err != nil {
		return Summary{}, err
	}
	summary.Team = directory.ComputeTeamStats(employees)

	return summary, nil
}
