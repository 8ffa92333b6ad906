package leave

import "testing"

func TestValidateType(t *testing.T) {
	input := TypeInput{Name: "Sick Leave", Code: "SICK", Unit: "Day", Quota: 12, EmploymentType: "Full-time"}
	out, errs := ValidateType(input)
	if errs.Has() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.Code != "SICK" || out.Quota != 12 {
		t.Fatalf("unexpected normalized type: %+v", out)
	}
}

func TestValidateTypeQuotaRange(t *testing.T) {
	input := TypeInput{Name: "Sick Leave", Code: "SICK", Unit: "Day", Quota: 400, EmploymentType: "Full-time"}
	_, errs := ValidateType(input)
	if errs["quota"] == "" {
		t.Fatalf("expected quota range error, got %v", errs)
	}
}

func TestValidateTypeCodeFormat(t *testing.T) {
	input := TypeInput{Name: "Sick Leave", Code: "sick leave!", Unit: "Day", Quota: 12, EmploymentType: "Full-time"}
	_, errs := ValidateType(input)
	if errs["code"] == "" {
		t.Fatalf("expected code format error, got %v", errs)
	}
}

func TestValidateTypeCollectsAllFailures(t *testing.T) {
	input := TypeInput{Name: "", Code: "way too long code!", Unit: "Week", Quota: -1, EmploymentType: "Gig"}
	_, errs := ValidateType(input)
	for _, path := range []string{"name", "code", "unit", "quota", "employmentType"} {
		if errs[path] == "" {
			t.Fatalf("expected error at %q, got %v", path, errs)
		}
	}
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name      string
		input     RecordInput
		wantPaths []string
	}{
		{
			name:  "valid with type text",
			input: RecordInput{EmployeeID: "emp-1", Date: "2023-02-28", Type: "Sick"},
		},
		{
			name:  "valid with type reference and amount",
			input: RecordInput{EmployeeID: "emp-1", Date: "2023-02-28", LeaveTypeID: "lt-1", Unit: "Hour", Amount: 4},
		},
		{
			name:      "impossible date",
			input:     RecordInput{EmployeeID: "emp-1", Date: "2023-02-30", Type: "Sick"},
			wantPaths: []string{"date"},
		},
		{
			name:      "missing type and reference",
			input:     RecordInput{EmployeeID: "emp-1", Date: "2023-02-28"},
			wantPaths: []string{"type"},
		},
		{
			name:      "negative amount",
			input:     RecordInput{EmployeeID: "emp-1", Date: "2023-02-28", Type: "Sick", Unit: "Day", Amount: -1},
			wantPaths: []string{"amount"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateRecord(tc.input)
			if len(tc.wantPaths) == 0 {
				if errs.Has() {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			for _, path := range tc.wantPaths {
				if errs[path] == "" {
					t.Fatalf("expected error at %q, got %v", path, errs)
				}
			}
		})
	}
}

func TestValidateHoliday(t *testing.T) {
	if _, errs := ValidateHoliday(HolidayInput{Name: "New Year", Date: "2024-01-01"}); errs.Has() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	_, errs := ValidateHoliday(HolidayInput{Name: "", Date: "not-a-date"})
	if errs["name"] == "" || errs["date"] == "" {
		t.Fatalf("expected name and date errors, got %v", errs)
	}
}
