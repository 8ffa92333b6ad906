package leave

import "time"

type LeaveType struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"companyId"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Unit           string    `json:"unit"`
	Quota          float64   `json:"quota"`
	EmploymentType string    `json:"employmentType"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type LeaveRecord struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	EmployeeID  string    `json:"employeeId"`
	Date        string    `json:"date"`
	Type        string    `json:"type,omitempty"`
	LeaveTypeID string    `json:"leaveTypeId,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecordDocument is a supporting file attached to a leave record, such as a
// medical certificate. File bytes live in the row and are only loaded on
// download.
type RecordDocument struct {
	ID          string    `json:"id"`
	RecordID    string    `json:"recordId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	FileSize    int64     `json:"fileSize"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Holiday struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type TypeInput struct {
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Unit           string  `json:"unit"`
	Quota          float64 `json:"quota"`
	EmploymentType string  `json:"employmentType"`
}

type RecordInput struct {
	EmployeeID  string  `json:"employeeId"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	LeaveTypeID string  `json:"leaveTypeId"`
	Unit        string  `json:"unit"`
	Amount      float64 `json:"amount"`
	Note        string  `json:"note"`
}

type HolidayInput struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// UsageSummary aggregates recorded leave per type label for one employee.
type UsageSummary struct {
	EmployeeID string             `json:"employeeId"`
	Year       int                `json:"year"`
	Totals     map[string]float64 `json:"totals"`
}
