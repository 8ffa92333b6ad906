package company

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bangasho83/hummane/internal/platform/db"
)

var ErrNotFound = errors.New("company not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) Create(ctx context.Context, input Input, ownerID string) (string, error) {
	hoursJSON, err := marshalHours(input.WorkingHours)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO companies (name, industry, size, currency, timezone, working_hours, owner_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, input.Name, input.Industry, input.Size, input.Currency, input.Timezone, hoursJSON, ownerID).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, companyID string) (Company, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, industry, size, COALESCE(currency, ''), COALESCE(timezone, ''),
           working_hours, owner_id::text, created_at
    FROM companies
    WHERE id = $1
  `, companyID)

	var out Company
	var hoursJSON []byte
	err := row.Scan(&out.ID, &out.Name, &out.Industry, &out.Size, &out.Currency, &out.Timezone, &hoursJSON, &out.OwnerID, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, err
	}
	if len(hoursJSON) > 0 {
		if err := json.Unmarshal(hoursJSON, &out.WorkingHours); err != nil {
			return Company{}, err
		}
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, companyID string, input Input) error {
	hoursJSON, err := marshalHours(input.WorkingHours)
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE companies
    SET name = $1, industry = $2, size = $3, currency = $4, timezone = $5, working_hours = $6
    WHERE id = $7
  `, input.Name, input.Industry, input.Size, input.Currency, input.Timezone, hoursJSON, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalHours(hours map[string]DayHours) ([]byte, error) {
	if len(hours) == 0 {
		return nil, nil
	}
	return json.Marshal(hours)
}
