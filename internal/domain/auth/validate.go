package auth

import (
	"strings"
	"unicode"

	"github.com/bangasho83/hummane/internal/validate"
)

// ValidateSignup checks an untrusted signup payload and returns the
// normalized input alongside a dot-path keyed error map. All failing fields
// are reported in one pass.
func ValidateSignup(input SignupInput) (SignupInput, validate.Errors) {
	c := validate.NewChecker()

	out := SignupInput{
		Name:     c.String("name", input.Name, 2, 100),
		Email:    c.Email("email", input.Email, true),
		Password: input.Password,
	}

	if reason := passwordWeakness(input.Password); reason != "" {
		c.Add("password", reason)
	}

	return out, c.Errors()
}

func ValidateLogin(input LoginInput) (LoginInput, validate.Errors) {
	c := validate.NewChecker()

	out := LoginInput{
		Email:    c.Email("email", input.Email, true),
		Password: input.Password,
		MFACode:  strings.TrimSpace(input.MFACode),
	}
	if input.Password == "" {
		c.Add("password", "is required")
	}

	return out, c.Errors()
}

func passwordWeakness(password string) string {
	if len(password) < 8 {
		return "must be at least 8 characters"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return "must contain an uppercase letter"
	}
	if !hasLower {
		return "must contain a lowercase letter"
	}
	if !hasDigit {
		return "must contain a digit"
	}
	return ""
}
