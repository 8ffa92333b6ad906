package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bangasho83/hummane/internal/domain/directory"
)

type fakeCounts struct {
	employees, jobs, applicants, leaves, entries int
	leaveYear                                    int
}

func (f *fakeCounts) CountEmployees(ctx context.Context, companyID string) (int, error) {
	return f.employees, nil
}

func (f *fakeCounts) CountOpenJobs(ctx context.Context, companyID string) (int, error) {
	return f.jobs, nil
}

func (f *fakeCounts) CountActiveApplicants(ctx context.Context, companyID string) (int, error) {
	return f.applicants, nil
}

func (f *fakeCounts) CountLeaveRecords(ctx context.Context, companyID string, year int) (int, error) {
	f.leaveYear = year
	return f.leaves, nil
}

func (f *fakeCounts) CountFeedbackEntries(ctx context.Context, companyID string) (int, error) {
	return f.entries, nil
}

type fakeEmployees struct {
	list []directory.Employee
}

func (f *fakeEmployees) ListEmployees(ctx context.Context, companyID string) ([]directory.Employee, error) {
	return f.list, nil
}

func TestDashboard(t *testing.T) {
	counts := &fakeCounts{employees: 12, jobs: 3, applicants: 7, leaves: 40, entries: 5}
	employees := &fakeEmployees{list: []directory.Employee{
		{Name: "Ada", StartDate: "2023-01-01", Salary: 90000, Department: "Engineering"},
		{Name: "Grace", StartDate: "2024-06-15", Salary: 110000, Department: "Engineering"},
	}}

	svc := NewService(counts, employees)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	summary, err := svc.Dashboard(context.Background(), "company-1")
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}

	if summary.Headcount != 12 || summary.OpenJobs != 3 || summary.ActiveApplicants != 7 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if counts.leaveYear != 2025 {
		t.Fatalf("expected leave count for 2025, got %d", counts.leaveYear)
	}
	if summary.Team.NewestHire != "Grace" {
		t.Fatalf("expected newest hire Grace, got %q", summary.Team.NewestHire)
	}
	if summary.Team.AverageSalary != 100000 {
		t.Fatalf("expected average salary 100000, got %v", summary.Team.AverageSalary)
	}
}

func TestDirectoryXLSX(t *testing.T) {
	employees := &fakeEmployees{list: []directory.Employee{
		{EmployeeID: "EMP001", Name: "Ada Lovelace", Email: "ada@example.com", StartDate: "2023-01-01", Salary: 90000},
	}}

	svc := NewService(&fakeCounts{}, employees)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	buf, fileName, err := svc.DirectoryXLSX(context.Background(), "company-1")
	if err != nil {
		t.Fatalf("DirectoryXLSX returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty workbook")
	}
	if !strings.HasSuffix(fileName, "2025-03-01.xlsx") {
		t.Fatalf("unexpected file name %q", fileName)
	}
}
