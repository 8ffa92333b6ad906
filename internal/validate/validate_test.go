package validate

import "testing"

func TestCheckerCollectsEveryFailure(t *testing.T) {
	c := NewChecker()
	c.String("name", "", 1, 100)
	c.Email("email", "not-an-email", true)
	c.Positive("salary", -10, 10_000_000)
	c.Date("startDate", "2023-13-01", true)

	errs := c.Errors()
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}
	for _, path := range []string{"name", "email", "salary", "startDate"} {
		if errs[path] == "" {
			t.Fatalf("expected error for %q, got %v", path, errs)
		}
	}
}

func TestCheckerOneMessagePerField(t *testing.T) {
	c := NewChecker()
	c.Add("code", "first message")
	c.Add("code", "second message")

	if got := c.Errors()["code"]; got != "first message" {
		t.Fatalf("expected first message to win, got %q", got)
	}
}

func TestDateValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "valid date", value: "2023-02-28", ok: true},
		{name: "impossible day passes pattern", value: "2023-02-30", ok: false},
		{name: "impossible month", value: "2023-13-01", ok: false},
		{name: "wrong shape", value: "28/02/2023", ok: false},
		{name: "rfc3339 rejected", value: "2023-02-28T00:00:00Z", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := NewChecker()
			_, ok := c.Date("date", tc.value, true)
			if ok != tc.ok {
				t.Fatalf("Date(%q) ok = %v, want %v (errors %v)", tc.value, ok, tc.ok, c.Errors())
			}
		})
	}
}

func TestEmailNormalization(t *testing.T) {
	c := NewChecker()
	got := c.Email("email", "  Jane.Doe@Example.COM ", true)
	if c.Failed() {
		t.Fatalf("unexpected errors: %v", c.Errors())
	}
	if got != "jane.doe@example.com" {
		t.Fatalf("expected lower-cased email, got %q", got)
	}
}

func TestEnumMembership(t *testing.T) {
	c := NewChecker()
	c.Enum("unit", "Week", []string{"Day", "Hour"}, true)
	if got := c.Errors()["unit"]; got != "must be one of Day, Hour" {
		t.Fatalf("unexpected enum message: %q", got)
	}
}

func TestTokenRejectsNonAlphanumeric(t *testing.T) {
	c := NewChecker()
	c.Token("code", "sick leave!", 10)
	if got := c.Errors()["code"]; got != "must contain only letters and digits" {
		t.Fatalf("unexpected token message: %q", got)
	}
}

func TestJoinBuildsDotPaths(t *testing.T) {
	if got := Join("salary", "min"); got != "salary.min" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := Join("workingHours", "monday", "start"); got != "workingHours.monday.start" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestStringTrimsAndBounds(t *testing.T) {
	c := NewChecker()
	got := c.String("name", "  Ada Lovelace  ", 1, 100)
	if got != "Ada Lovelace" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	c.String("note", string(make([]byte, 2001)), 0, 2000)
	if !c.Failed() {
		t.Fatal("expected length bound failure")
	}
}
