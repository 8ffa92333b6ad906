package notifications

import (
	"context"
	"errors"

	"github.com/bangasho83/hummane/internal/platform/db"
)

var ErrNotFound = errors.New("notification not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) Create(ctx context.Context, companyID, userID, text, kind string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO notifications (company_id, user_id, text, kind)
    VALUES ($1, NULLIF($2, '')::uuid, $3, $4)
    RETURNING id
  `, companyID, userID, text, kind).Scan(&id)
	return id, err
}

func (s *Store) List(ctx context.Context, companyID, userID string, limit, offset int) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, COALESCE(user_id::text, ''), text, kind, read, created_at
    FROM notifications
    WHERE company_id = $1 AND ($2 = '' OR user_id = $2::uuid)
    ORDER BY created_at DESC, id
    LIMIT $3 OFFSET $4
  `, companyID, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.CompanyID, &n.UserID, &n.Text, &n.Kind, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) CountUnread(ctx context.Context, companyID, userID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(*) FROM notifications
    WHERE company_id = $1 AND ($2 = '' OR user_id = $2::uuid) AND NOT read
  `, companyID, userID).Scan(&count)
	return count, err
}

func (s *Store) MarkRead(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE notifications SET read = true
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) MarkAllRead(ctx context.Context, companyID, userID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET read = true
    WHERE company_id = $1 AND ($2 = '' OR user_id = $2::uuid)
  `, companyID, userID)
	return err
}
