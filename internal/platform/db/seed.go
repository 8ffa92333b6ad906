package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"golang.org/x/crypto/bcrypt"

	"github.com/bangasho83/hummane/internal/platform/config"
)

// Seed provisions an owner account and its company so a fresh deployment is
// usable without going through signup. Idempotent on email and company name.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.RunSeed {
		return nil
	}

	userID, err := ensureOwnerUser(ctx, pool, cfg.SeedOwnerEmail, cfg.SeedOwnerPassword)
	if err != nil {
		return err
	}

	if cfg.SeedCompanyName == "" {
		return nil
	}

	companyID, err := ensureCompany(ctx, pool, cfg.SeedCompanyName, userID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, "UPDATE users SET company_id = $1 WHERE id = $2 AND company_id IS NULL", companyID, userID)
	return err
}

func ensureOwnerUser(ctx context.Context, pool *pgxpool.Pool, email, password string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = lower($1)", email).Scan(&id)
	if err == nil {
		return id, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	err = pool.QueryRow(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES ('Owner', lower($1), $2) RETURNING id",
		email, string(hash),
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func ensureCompany(ctx context.Context, pool *pgxpool.Pool, name, ownerID string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx,
		"INSERT INTO companies (name, industry, size, owner_id) VALUES ($1, 'Other', '1-10', $2) RETURNING id",
		name, ownerID,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
