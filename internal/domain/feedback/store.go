package feedback

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bangasho83/hummane/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) CreateCard(ctx context.Context, companyID string, input CardInput) (string, error) {
	questionsJSON, err := json.Marshal(input.Questions)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO feedback_cards (company_id, title, subject, description, questions)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, companyID, input.Title, input.Subject, input.Description, questionsJSON).Scan(&id)
	return id, err
}

func (s *Store) UpdateCard(ctx context.Context, companyID, id string, input CardInput) error {
	questionsJSON, err := json.Marshal(input.Questions)
	if err != nil {
		return err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE feedback_cards
    SET title = $1, subject = $2, description = $3, questions = $4, updated_at = now()
    WHERE company_id = $5 AND id = $6
  `, input.Title, input.Subject, input.Description, questionsJSON, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (s *Store) DeleteCard(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM feedback_cards WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (s *Store) GetCard(ctx context.Context, companyID, id string) (Card, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, company_id::text, title, subject, COALESCE(description, ''), questions, created_at, updated_at
    FROM feedback_cards
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	return scanCard(row)
}

func (s *Store) ListCards(ctx context.Context, companyID string) ([]Card, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, title, subject, COALESCE(description, ''), questions, created_at, updated_at
    FROM feedback_cards
    WHERE company_id = $1
    ORDER BY created_at, id
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, rows.Err()
}

func (s *Store) CreateEntry(ctx context.Context, companyID string, input EntryInput) (string, error) {
	answersJSON, err := json.Marshal(input.Answers)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO feedback_entries (company_id, card_id, employee_id, reviewer_id, answers, note)
    VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6)
    RETURNING id
  `, companyID, input.CardID, input.EmployeeID, input.ReviewerID, answersJSON, input.Note).Scan(&id)
	return id, err
}

func (s *Store) DeleteEntry(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM feedback_entries WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (s *Store) GetEntry(ctx context.Context, companyID, id string) (Entry, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+entryColumns+`
    FROM feedback_entries
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	return scanEntry(row)
}

func (s *Store) ListEntries(ctx context.Context, companyID, employeeID string) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+entryColumns+`
    FROM feedback_entries
    WHERE company_id = $1 AND ($2 = '' OR employee_id = $2::uuid)
    ORDER BY created_at, id
  `, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

const entryColumns = `
	id, company_id::text, card_id::text, employee_id::text,
	COALESCE(reviewer_id::text, ''), answers, COALESCE(note, ''), created_at`

func scanCard(row pgx.Row) (Card, error) {
	var card Card
	var questionsJSON []byte
	err := row.Scan(&card.ID, &card.CompanyID, &card.Title, &card.Subject, &card.Description, &questionsJSON, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Card{}, ErrCardNotFound
		}
		return Card{}, err
	}
	if len(questionsJSON) > 0 {
		if err := json.Unmarshal(questionsJSON, &card.Questions); err != nil {
			return Card{}, err
		}
	}
	return card, nil
}

func scanEntry(row pgx.Row) (Entry, error) {
	var entry Entry
	var answersJSON []byte
	err := row.Scan(&entry.ID, &entry.CompanyID, &entry.CardID, &entry.EmployeeID, &entry.ReviewerID, &answersJSON, &entry.Note, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, err
	}
	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &entry.Answers); err != nil {
			return Entry{}, err
		}
	}
	return entry, nil
}
