package auth

import (
	"context"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type Service struct {
	store     StoreAPI
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(store StoreAPI, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Signup creates a user from already-validated input and returns the stored
// record. Email uniqueness is enforced by the store; a duplicate surfaces as
// ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, input SignupInput) (User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return User{}, err
	}
	id, err := s.store.CreateUser(ctx, input.Name, input.Email, hash)
	if err != nil {
		return User{}, err
	}
	return s.store.UserByID(ctx, id)
}

// Login verifies credentials and, when MFA is enrolled, the one-time code.
// It returns the user and a signed bearer token.
func (s *Service) Login(ctx context.Context, input LoginInput) (User, string, error) {
	user, err := s.store.UserByEmail(ctx, input.Email)
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}
	if err := CheckPassword(user.PasswordHash, input.Password); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	if user.MFAEnabled {
		if input.MFACode == "" {
			return User{}, "", ErrMFARequired
		}
		secret, err := s.store.MFASecret(ctx, user.ID)
		if err != nil || secret == "" || !totp.Validate(input.MFACode, secret) {
			return User{}, "", ErrMFAInvalid
		}
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// IssueToken signs a fresh bearer token for the user. Callers re-issue after
// company onboarding so the cid claim tracks the assignment.
func (s *Service) IssueToken(user User) (string, error) {
	return GenerateToken(s.jwtSecret, Claims{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Email:     user.Email,
	}, s.tokenTTL)
}

func (s *Service) UserByID(ctx context.Context, userID string) (User, error) {
	return s.store.UserByID(ctx, userID)
}

func (s *Service) AssignCompany(ctx context.Context, userID, companyID string) error {
	return s.store.AssignCompany(ctx, userID, companyID)
}

// EnrollMFA generates and stores a TOTP secret; the account stays in the
// unconfirmed state until ConfirmMFA sees a valid code.
func (s *Service) EnrollMFA(ctx context.Context, user User) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "hummane",
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		return "", "", err
	}
	if err := s.store.UpdateMFASecret(ctx, user.ID, key.Secret()); err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

func (s *Service) ConfirmMFA(ctx context.Context, userID, code string) error {
	secret, err := s.store.MFASecret(ctx, userID)
	if err != nil {
		return err
	}
	if secret == "" || !totp.Validate(code, secret) {
		return ErrMFAInvalid
	}
	return s.store.SetMFAEnabled(ctx, userID, true)
}

func (s *Service) DisableMFA(ctx context.Context, userID, code string) error {
	secret, err := s.store.MFASecret(ctx, userID)
	if err != nil {
		return err
	}
	if secret == "" || !totp.Validate(code, secret) {
		return ErrMFAInvalid
	}
	return s.store.SetMFAEnabled(ctx, userID, false)
}

// RequestPasswordReset issues an opaque token valid for one hour. Only the
// digest is stored. The token is returned so the caller can deliver it; a
// missing account yields ErrNotFound which callers hide from the client.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	token, err := NewOpaqueToken()
	if err != nil {
		return "", err
	}
	if err := s.store.CreatePasswordReset(ctx, user.ID, HashToken(token), time.Now().Add(time.Hour)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	tokenHash := HashToken(token)
	userID, err := s.store.PasswordResetUserID(ctx, tokenHash)
	if err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	return s.store.MarkPasswordResetUsed(ctx, tokenHash)
}
