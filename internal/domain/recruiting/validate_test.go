package recruiting

import "testing"

func validApplicantInput() ApplicantInput {
	return ApplicantInput{
		FullName:          "Dana Smith",
		Email:             "Dana@Example.com",
		Phone:             "+1 555 0100",
		PositionApplied:   "Backend Engineer",
		YearsOfExperience: 4,
		CurrentSalary:     70000,
		ExpectedSalary:    85000,
		AppliedDate:       "2025-03-14",
	}
}

func TestValidateApplicantNormalizes(t *testing.T) {
	out, errs := ValidateApplicant(validApplicantInput())
	if errs.Has() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if out.Email != "dana@example.com" {
		t.Fatalf("expected lowercased email, got %q", out.Email)
	}
	if out.Status != StageNew {
		t.Fatalf("expected default stage %q, got %q", StageNew, out.Status)
	}
}

func TestValidateApplicantCollectsAllFailures(t *testing.T) {
	input := validApplicantInput()
	input.FullName = ""
	input.Email = "not-an-email"
	input.Status = "shortlisted"
	input.AppliedDate = "2025-02-30"
	input.YearsOfExperience = 75

	_, errs := ValidateApplicant(input)

	want := []string{"appliedDate", "email", "fullName", "status", "yearsOfExperience"}
	got := errs.Paths()
	if len(got) != len(want) {
		t.Fatalf("expected %d failing fields, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected failing paths %v, got %v", want, got)
		}
	}
}

func TestValidateApplicantLinkedinURL(t *testing.T) {
	input := validApplicantInput()
	input.LinkedinURL = "ftp://linkedin.com/in/dana"

	_, errs := ValidateApplicant(input)
	if errs["linkedinUrl"] == "" {
		t.Fatalf("expected linkedinUrl error, got %v", errs)
	}

	input.LinkedinURL = "https://linkedin.com/in/dana"
	_, errs = ValidateApplicant(input)
	if errs.Has() {
		t.Fatalf("expected https URL to pass, got %v", errs)
	}
}

func TestValidateJobNestedPaths(t *testing.T) {
	input := JobInput{
		Title:  "Backend Engineer",
		Salary: SalaryBand{Min: 90000, Max: 60000},
	}

	_, errs := ValidateJob(input)
	if errs["salary.min"] != "must not exceed salary.max" {
		t.Fatalf("expected salary band ordering error, got %v", errs)
	}
}

func TestValidateJobDefaultsStatusOpen(t *testing.T) {
	out, errs := ValidateJob(JobInput{Title: "Backend Engineer"})
	if errs.Has() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if out.Status != JobStatusOpen {
		t.Fatalf("expected default status %q, got %q", JobStatusOpen, out.Status)
	}
}

func TestValidateJobBounds(t *testing.T) {
	input := JobInput{
		Title:          "x",
		EmploymentType: "Freelance",
		Status:         "paused",
		Salary:         SalaryBand{Min: 50_000_000},
	}

	_, errs := ValidateJob(input)

	for _, path := range []string{"title", "employmentType", "status", "salary.min"} {
		if errs[path] == "" {
			t.Fatalf("expected error at %q, got %v", path, errs)
		}
	}
}

func TestValidateStage(t *testing.T) {
	for _, stage := range Stages {
		if _, errs := ValidateStage(stage); errs.Has() {
			t.Fatalf("stage %q should be valid: %v", stage, errs)
		}
	}
	if _, errs := ValidateStage("phone screen"); !errs.Has() {
		t.Fatal("expected unknown stage to fail")
	}
}
