package company

import "testing"

func TestValidateCompany(t *testing.T) {
	input := Input{
		Name:     "  Acme Corp  ",
		Industry: "Software",
		Size:     "11-50",
		Currency: "USD",
		WorkingHours: map[string]DayHours{
			"monday": {Open: true, Start: "09:00", End: "17:30"},
			"sunday": {Open: false},
		},
	}

	out, errs := Validate(input)
	if errs.Has() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.Name != "Acme Corp" {
		t.Fatalf("expected trimmed name, got %q", out.Name)
	}
	if !out.WorkingHours["monday"].Open || out.WorkingHours["monday"].Start != "09:00" {
		t.Fatalf("working hours not carried: %+v", out.WorkingHours)
	}
}

func TestValidateCompanyNestedPaths(t *testing.T) {
	input := Input{
		Name:     "Acme",
		Industry: "Software",
		Size:     "massive",
		WorkingHours: map[string]DayHours{
			"monday":  {Open: true, Start: "9am", End: ""},
			"someday": {Open: true, Start: "09:00", End: "17:00"},
		},
	}

	_, errs := Validate(input)
	for _, path := range []string{"size", "workingHours.monday.start", "workingHours.monday.end", "workingHours.someday"} {
		if errs[path] == "" {
			t.Fatalf("expected error at %q, got %v", path, errs)
		}
	}
}

func TestValidateCompanyEndBeforeStart(t *testing.T) {
	input := Input{
		Name:     "Acme",
		Industry: "Software",
		Size:     "1-10",
		WorkingHours: map[string]DayHours{
			"friday": {Open: true, Start: "17:00", End: "09:00"},
		},
	}

	_, errs := Validate(input)
	if errs["workingHours.friday.end"] == "" {
		t.Fatalf("expected ordering error, got %v", errs)
	}
}
