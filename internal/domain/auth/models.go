package auth

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CompanyID    string    `json:"companyId,omitempty"`
	MFAEnabled   bool      `json:"mfaEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserContext is the authenticated identity carried through a request.
type UserContext struct {
	UserID    string
	CompanyID string
	Email     string
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MFACode  string `json:"mfaCode,omitempty"`
}
