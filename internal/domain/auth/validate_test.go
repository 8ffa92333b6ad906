package auth

import "testing"

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name      string
		input     SignupInput
		wantPaths []string
	}{
		{
			name:  "valid",
			input: SignupInput{Name: "Jane Doe", Email: "Jane@Example.com", Password: "Stronger123"},
		},
		{
			name:      "everything wrong at once",
			input:     SignupInput{Name: "", Email: "nope", Password: "short"},
			wantPaths: []string{"email", "name", "password"},
		},
		{
			name:      "weak password",
			input:     SignupInput{Name: "Jane", Email: "jane@example.com", Password: "lowercase1"},
			wantPaths: []string{"password"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out, errs := ValidateSignup(tc.input)
			if len(tc.wantPaths) == 0 {
				if errs.Has() {
					t.Fatalf("unexpected errors: %v", errs)
				}
				if out.Email != "jane@example.com" {
					t.Fatalf("expected normalized email, got %q", out.Email)
				}
				return
			}
			got := errs.Paths()
			if len(got) != len(tc.wantPaths) {
				t.Fatalf("expected errors on %v, got %v", tc.wantPaths, errs)
			}
			for i, path := range tc.wantPaths {
				if got[i] != path {
					t.Fatalf("expected errors on %v, got %v", tc.wantPaths, got)
				}
			}
		})
	}
}

func TestPasswordWeakness(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{name: "valid password", password: "Stronger123"},
		{name: "too short", password: "S1hort", wantWeak: true},
		{name: "missing uppercase", password: "longpassword1", wantWeak: true},
		{name: "missing lowercase", password: "LONGPASSWORD1", wantWeak: true},
		{name: "missing number", password: "LongPassword", wantWeak: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reason := passwordWeakness(tc.password)
			if tc.wantWeak && reason == "" {
				t.Fatal("expected weakness reason")
			}
			if !tc.wantWeak && reason != "" {
				t.Fatalf("unexpected weakness: %q", reason)
			}
		})
	}
}
