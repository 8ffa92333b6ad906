package leave

import (
	"github.com/bangasho83/hummane/internal/domain/directory"
	"github.com/bangasho83/hummane/internal/validate"
)

// Units is the closed set of leave measurement units.
var Units = []string{"Day", "Hour"}

const (
	maxQuota      = 365
	maxLeaveDays  = 365
	maxCodeLength = 10
)

func ValidateType(input TypeInput) (TypeInput, validate.Errors) {
	c := validate.NewChecker()

	out := TypeInput{
		Name:           c.String("name", input.Name, 2, 100),
		Code:           c.Token("code", input.Code, maxCodeLength),
		Unit:           c.Enum("unit", input.Unit, Units, true),
		Quota:          c.Number("quota", input.Quota, 0, maxQuota),
		EmploymentType: c.Enum("employmentType", input.EmploymentType, directory.EmploymentTypes, true),
	}

	return out, c.Errors()
}

func ValidateRecord(input RecordInput) (RecordInput, validate.Errors) {
	c := validate.NewChecker()

	out := RecordInput{
		EmployeeID:  c.String("employeeId", input.EmployeeID, 1, 64),
		Type:        c.String("type", input.Type, 0, 100),
		LeaveTypeID: c.String("leaveTypeId", input.LeaveTypeID, 0, 64),
		Unit:        c.Enum("unit", input.Unit, Units, false),
		Note:        c.String("note", input.Note, 0, 1000),
	}

	if date, ok := c.Date("date", input.Date, true); ok {
		out.Date = date.Format("2006-01-02")
	}

	if out.Type == "" && out.LeaveTypeID == "" {
		c.Add("type", "either type or leaveTypeId is required")
	}

	if input.Amount != 0 || input.Unit != "" {
		out.Amount = c.Positive("amount", input.Amount, maxLeaveDays)
	}

	return out, c.Errors()
}

func ValidateHoliday(input HolidayInput) (HolidayInput, validate.Errors) {
	c := validate.NewChecker()

	out := HolidayInput{
		Name: c.String("name", input.Name, 2, 100),
	}
	if date, ok := c.Date("date", input.Date, true); ok {
		out.Date = date.Format("2006-01-02")
	}

	return out, c.Errors()
}
