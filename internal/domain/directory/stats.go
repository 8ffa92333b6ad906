package directory

// NoNewestHire is reported when stats are computed over an empty roster.
const NoNewestHire = "N/A"

type TeamStats struct {
	EmployeeCount   int     `json:"employeeCount"`
	DepartmentCount int     `json:"departmentCount"`
	AverageSalary   float64 `json:"averageSalary"`
	NewestHire      string  `json:"newestHire"`
}

// ComputeTeamStats derives roster aggregates from an in-memory employee
// slice without mutating it. The newest hire is the employee with the
// latest start date; on equal dates the earlier element wins, so the
// result is stable for a stable input order.
func ComputeTeamStats(employees []Employee) TeamStats {
	stats := TeamStats{NewestHire: NoNewestHire}
	if len(employees) == 0 {
		return stats
	}

	stats.EmployeeCount = len(employees)

	departments := make(map[string]struct{})
	totalSalary := 0.0
	newest := employees[0]
	for i, emp := range employees {
		if emp.Department != "" {
			departments[emp.Department] = struct{}{}
		}
		totalSalary += emp.Salary
		if i > 0 && emp.StartDate > newest.StartDate {
			newest = emp
		}
	}

	stats.DepartmentCount = len(departments)
	stats.AverageSalary = totalSalary / float64(len(employees))
	stats.NewestHire = newest.Name
	return stats
}
