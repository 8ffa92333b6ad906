package directory

import "time"

type Employee struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"companyId"`
	EmployeeID         string    `json:"employeeId"`
	UserID             string    `json:"userId,omitempty"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Position           string    `json:"position,omitempty"`
	Department         string    `json:"department,omitempty"`
	DepartmentID       string    `json:"departmentId,omitempty"`
	RoleID             string    `json:"roleId,omitempty"`
	StartDate          string    `json:"startDate"`
	EmploymentType     string    `json:"employmentType"`
	ReportingManager   string    `json:"reportingManager,omitempty"`
	ReportingManagerID string    `json:"reportingManagerId,omitempty"`
	Gender             string    `json:"gender"`
	Salary             float64   `json:"salary"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type Department struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ManagerID   string    `json:"managerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Role struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EmployeeDocument struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	FileSize    int64     `json:"fileSize"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EmployeeInput struct {
	EmployeeID         string  `json:"employeeId"`
	UserID             string  `json:"userId"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Position           string  `json:"position"`
	Department         string  `json:"department"`
	DepartmentID       string  `json:"departmentId"`
	RoleID             string  `json:"roleId"`
	StartDate          string  `json:"startDate"`
	EmploymentType     string  `json:"employmentType"`
	ReportingManager   string  `json:"reportingManager"`
	ReportingManagerID string  `json:"reportingManagerId"`
	Gender             string  `json:"gender"`
	Salary             float64 `json:"salary"`
}

type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   string `json:"managerId"`
}

type RoleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
