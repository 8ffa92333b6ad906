package auth

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (string, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, userID string) (User, error)
	AssignCompany(ctx context.Context, userID, companyID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateMFASecret(ctx context.Context, userID, secret string) error
	MFASecret(ctx context.Context, userID string) (string, error)
	SetMFAEnabled(ctx context.Context, userID string, enabled bool) error
	CreatePasswordReset(ctx context.Context, userID, tokenHash string, expires time.Time) error
	PasswordResetUserID(ctx context.Context, tokenHash string) (string, error)
	MarkPasswordResetUsed(ctx context.Context, tokenHash string) error
}
