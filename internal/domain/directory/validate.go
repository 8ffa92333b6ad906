package directory

import "github.com/bangasho83/hummane/internal/validate"

// ValidateEmployee normalizes an untrusted employee payload: strings are
// trimmed, the email lower-cased, enums checked against their closed sets
// and the salary bounded. Every failing field is reported.
func ValidateEmployee(input EmployeeInput) (EmployeeInput, validate.Errors) {
	c := validate.NewChecker()

	out := EmployeeInput{
		EmployeeID:         c.Token("employeeId", input.EmployeeID, 20),
		UserID:             c.String("userId", input.UserID, 0, 64),
		Name:               c.String("name", input.Name, 2, 100),
		Email:              c.Email("email", input.Email, true),
		Position:           c.String("position", input.Position, 0, 100),
		Department:         c.String("department", input.Department, 0, 100),
		DepartmentID:       c.String("departmentId", input.DepartmentID, 0, 64),
		RoleID:             c.String("roleId", input.RoleID, 0, 64),
		EmploymentType:     c.Enum("employmentType", input.EmploymentType, EmploymentTypes, true),
		ReportingManager:   c.String("reportingManager", input.ReportingManager, 0, 100),
		ReportingManagerID: c.String("reportingManagerId", input.ReportingManagerID, 0, 64),
		Gender:             c.Enum("gender", input.Gender, Genders, true),
		Salary:             c.Positive("salary", input.Salary, maxSalary),
	}

	if date, ok := c.Date("startDate", input.StartDate, true); ok {
		out.StartDate = date.Format("2006-01-02")
	}

	return out, c.Errors()
}

func ValidateDepartment(input DepartmentInput) (DepartmentInput, validate.Errors) {
	c := validate.NewChecker()

	out := DepartmentInput{
		Name:        c.String("name", input.Name, 2, 100),
		Description: c.String("description", input.Description, 0, 500),
		ManagerID:   c.String("managerId", input.ManagerID, 0, 64),
	}

	return out, c.Errors()
}

func ValidateDocumentKind(kind string) (string, validate.Errors) {
	c := validate.NewChecker()
	out := c.Enum("kind", kind, DocumentKinds, true)
	return out, c.Errors()
}

func ValidateRole(input RoleInput) (RoleInput, validate.Errors) {
	c := validate.NewChecker()

	out := RoleInput{
		Title:       c.String("title", input.Title, 2, 100),
		Description: c.String("description", input.Description, 0, 5000),
	}

	return out, c.Errors()
}
