package recruiting

import "time"

type Job struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"companyId"`
	Title          string     `json:"title"`
	RoleID         string     `json:"roleId,omitempty"`
	DepartmentID   string     `json:"departmentId,omitempty"`
	Department     string     `json:"department,omitempty"`
	EmploymentType string     `json:"employmentType,omitempty"`
	Location       Location   `json:"location"`
	Salary         SalaryBand `json:"salary"`
	Experience     string     `json:"experience,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type SalaryBand struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

type Applicant struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"companyId"`
	JobID             string    `json:"jobId,omitempty"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PositionApplied   string    `json:"positionApplied"`
	YearsOfExperience float64   `json:"yearsOfExperience"`
	CurrentSalary     float64   `json:"currentSalary"`
	ExpectedSalary    float64   `json:"expectedSalary"`
	NoticePeriod      string    `json:"noticePeriod,omitempty"`
	LinkedinURL       string    `json:"linkedinUrl,omitempty"`
	ResumeFileName    string    `json:"resumeFileName,omitempty"`
	Status            string    `json:"status"`
	AppliedDate       string    `json:"appliedDate"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type JobInput struct {
	Title          string     `json:"title"`
	RoleID         string     `json:"roleId"`
	DepartmentID   string     `json:"departmentId"`
	Department     string     `json:"department"`
	EmploymentType string     `json:"employmentType"`
	Location       Location   `json:"location"`
	Salary         SalaryBand `json:"salary"`
	Experience     string     `json:"experience"`
	Status         string     `json:"status"`
}

type ApplicantInput struct {
	JobID             string  `json:"jobId"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	PositionApplied   string  `json:"positionApplied"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	CurrentSalary     float64 `json:"currentSalary"`
	ExpectedSalary    float64 `json:"expectedSalary"`
	NoticePeriod      string  `json:"noticePeriod"`
	LinkedinURL       string  `json:"linkedinUrl"`
	Status            string  `json:"status"`
	AppliedDate       string  `json:"appliedDate"`
}
