package directory

import "testing"

func TestComputeTeamStats(t *testing.T) {
	employees := []Employee{
		{Name: "Ada", Department: "Engineering", Salary: 90000, StartDate: "2022-01-10"},
		{Name: "Grace", Department: "Engineering", Salary: 110000, StartDate: "2023-06-01"},
		{Name: "Alan", Department: "Research", Salary: 100000, StartDate: "2021-03-15"},
	}

	stats := ComputeTeamStats(employees)
	if stats.EmployeeCount != 3 {
		t.Fatalf("expected 3 employees, got %d", stats.EmployeeCount)
	}
	if stats.DepartmentCount != 2 {
		t.Fatalf("expected 2 departments, got %d", stats.DepartmentCount)
	}
	if stats.AverageSalary != 100000 {
		t.Fatalf("expected average salary 100000, got %f", stats.AverageSalary)
	}
	if stats.NewestHire != "Grace" {
		t.Fatalf("expected newest hire Grace, got %q", stats.NewestHire)
	}
}

func TestComputeTeamStatsEmpty(t *testing.T) {
	stats := ComputeTeamStats(nil)
	if stats.EmployeeCount != 0 || stats.DepartmentCount != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.AverageSalary != 0 {
		t.Fatalf("expected zero average salary, got %f", stats.AverageSalary)
	}
	if stats.NewestHire != NoNewestHire {
		t.Fatalf("expected %q sentinel, got %q", NoNewestHire, stats.NewestHire)
	}
}

func TestComputeTeamStatsTieBreaksOnInputOrder(t *testing.T) {
	employees := []Employee{
		{Name: "First", StartDate: "2023-06-01", Salary: 1},
		{Name: "Second", StartDate: "2023-06-01", Salary: 1},
	}

	stats := ComputeTeamStats(employees)
	if stats.NewestHire != "First" {
		t.Fatalf("expected first occurrence to win the tie, got %q", stats.NewestHire)
	}
}

func TestComputeTeamStatsDoesNotMutateInput(t *testing.T) {
	employees := []Employee{
		{Name: "Ada", Department: "Engineering", Salary: 90000, StartDate: "2022-01-10"},
	}
	before := employees[0]

	_ = ComputeTeamStats(employees)
	if employees[0] != before {
		t.Fatal("input slice was mutated")
	}
}
