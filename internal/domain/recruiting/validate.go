package recruiting

import (
	"net/url"
	"strings"

	"github.com/bangasho83/hummane/internal/domain/directory"
	"github.com/bangasho83/hummane/internal/validate"
)

const maxSalary = 10_000_000

func ValidateJob(input JobInput) (JobInput, validate.Errors) {
	c := validate.NewChecker()

	out := JobInput{
		Title:          c.String("title", input.Title, 2, 120),
		RoleID:         c.String("roleId", input.RoleID, 0, 64),
		DepartmentID:   c.String("departmentId", input.DepartmentID, 0, 64),
		Department:     c.String("department", input.Department, 0, 100),
		EmploymentType: c.Enum("employmentType", input.EmploymentType, directory.EmploymentTypes, false),
		Experience:     c.String("experience", input.Experience, 0, 200),
		Status:         input.Status,
		Location: Location{
			City:    c.String(validate.Join("location", "city"), input.Location.City, 0, 100),
			Country: c.String(validate.Join("location", "country"), input.Location.Country, 0, 100),
		},
		Salary: SalaryBand{
			Min:      c.Number(validate.Join("salary", "min"), input.Salary.Min, 0, maxSalary),
			Max:      c.Number(validate.Join("salary", "max"), input.Salary.Max, 0, maxSalary),
			Currency: c.String(validate.Join("salary", "currency"), input.Salary.Currency, 0, 10),
		},
	}

	if strings.TrimSpace(input.Status) == "" {
		out.Status = JobStatusOpen
	} else {
		out.Status = c.Enum("status", input.Status, JobStatuses, true)
	}

	if out.Salary.Min > 0 && out.Salary.Max > 0 && out.Salary.Min > out.Salary.Max {
		c.Add(validate.Join("salary", "min"), "must not exceed salary.max")
	}

	return out, c.Errors()
}

func ValidateApplicant(input ApplicantInput) (ApplicantInput, validate.Errors) {
	c := validate.NewChecker()

	out := ApplicantInput{
		JobID:             c.String("jobId", input.JobID, 0, 64),
		FullName:          c.String("fullName", input.FullName, 2, 100),
		Email:             c.Email("email", input.Email, true),
		Phone:             c.String("phone", input.Phone, 5, 30),
		PositionApplied:   c.String("positionApplied", input.PositionApplied, 2, 120),
		YearsOfExperience: c.Number("yearsOfExperience", input.YearsOfExperience, 0, 60),
		CurrentSalary:     c.Number("currentSalary", input.CurrentSalary, 0, maxSalary),
		ExpectedSalary:    c.Number("expectedSalary", input.ExpectedSalary, 0, maxSalary),
		NoticePeriod:      c.String("noticePeriod", input.NoticePeriod, 0, 100),
		Status:            input.Status,
	}

	if strings.TrimSpace(input.Status) == "" {
		out.Status = StageNew
	} else {
		out.Status = c.Enum("status", input.Status, Stages, true)
	}

	if date, ok := c.Date("appliedDate", input.AppliedDate, true); ok {
		out.AppliedDate = date.Format("2006-01-02")
	}

	if trimmed := strings.TrimSpace(input.LinkedinURL); trimmed != "" {
		parsed, err := url.Parse(trimmed)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			c.Add("linkedinUrl", "must be a valid http(s) URL")
		}
		out.LinkedinURL = trimmed
	}

	return out, c.Errors()
}

// ValidateStage checks a pipeline stage name against the closed set.
func ValidateStage(stage string) (string, validate.Errors) {
	c := validate.NewChecker()
	out := c.Enum("status", stage, Stages, true)
	return out, c.Errors()
}
