package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/bangasho83/hummane/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownType = errors.New("leave type does not exist")
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) CreateType(ctx context.Context, companyID string, input TypeInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_types (company_id, name, code, unit, quota, employment_type)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, companyID, input.Name, input.Code, input.Unit, input.Quota, input.EmploymentType).Scan(&id)
	return id, err
}

func (s *Store) UpdateType(ctx context.Context, companyID, id string, input TypeInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_types
    SET name = $1, code = $2, unit = $3, quota = $4, employment_type = $5, updated_at = now()
    WHERE company_id = $6 AND id = $7
  `, input.Name, input.Code, input.Unit, input.Quota, input.EmploymentType, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteType(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_types WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListTypes(ctx context.Context, companyID string) ([]LeaveType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, name, code, unit, quota, employment_type, created_at, updated_at
    FROM leave_types
    WHERE company_id = $1
    ORDER BY name
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaveType, 0)
	for rows.Next() {
		var lt LeaveType
		if err := rows.Scan(&lt.ID, &lt.CompanyID, &lt.Name, &lt.Code, &lt.Unit, &lt.Quota, &lt.EmploymentType, &lt.CreatedAt, &lt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, rows.Err()
}

func (s *Store) TypeExists(ctx context.Context, companyID, typeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_types WHERE company_id = $1 AND id = $2", companyID, typeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateRecord(ctx context.Context, companyID string, input RecordInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_records (company_id, employee_id, date, type, leave_type_id, unit, amount, note)
    VALUES ($1, $2, $3::date, $4, NULLIF($5, '')::uuid, $6, $7, $8)
    RETURNING id
  `, companyID, input.EmployeeID, input.Date, input.Type, input.LeaveTypeID, input.Unit, input.Amount, input.Note).Scan(&id)
	return id, err
}

func (s *Store) DeleteRecord(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_records WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetRecord(ctx context.Context, companyID, id string) (LeaveRecord, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, company_id::text, employee_id::text, to_char(date, 'YYYY-MM-DD'),
           COALESCE(type, ''), COALESCE(leave_type_id::text, ''), COALESCE(unit, ''),
           COALESCE(amount, 0), COALESCE(note, ''), created_at
    FROM leave_records
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	return scanRecord(row)
}

func (s *Store) ListRecords(ctx context.Context, companyID, employeeID string) ([]LeaveRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, employee_id::text, to_char(date, 'YYYY-MM-DD'),
           COALESCE(type, ''), COALESCE(leave_type_id::text, ''), COALESCE(unit, ''),
           COALESCE(amount, 0), COALESCE(note, ''), created_at
    FROM leave_records
    WHERE company_id = $1 AND ($2 = '' OR employee_id = $2::uuid)
    ORDER BY date DESC, created_at DESC
  `, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaveRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(row pgx.Row) (LeaveRecord, error) {
	var rec LeaveRecord
	err := row.Scan(&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.Date, &rec.Type,
		&rec.LeaveTypeID, &rec.Unit, &rec.Amount, &rec.Note, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) CreateHoliday(ctx context.Context, companyID string, input HolidayInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO holidays (company_id, name, date)
    VALUES ($1, $2, $3::date)
    RETURNING id
  `, companyID, input.Name, input.Date).Scan(&id)
	return id, err
}

func (s *Store) DeleteHoliday(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListHolidays(ctx context.Context, companyID string) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, name, to_char(date, 'YYYY-MM-DD'), created_at
    FROM holidays
    WHERE company_id = $1
    ORDER BY date
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Holiday, 0)
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) AddRecordDocument(ctx context.Context, companyID, recordID, fileName, contentType string, data []byte) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_record_documents (record_id, file_name, content_type, file_size, data)
    SELECT r.id, $3, $4, $5, $6
    FROM leave_records r
    WHERE r.company_id = $1 AND r.id = $2
    RETURNING id
  `, companyID, recordID, fileName, contentType, int64(len(data)), data).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

func (s *Store) ListRecordDocuments(ctx context.Context, companyID, recordID string) ([]RecordDocument, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id, d.record_id::text, d.file_name, d.content_type, d.file_size, d.created_at
    FROM leave_record_documents d
    JOIN leave_records r ON r.id = d.record_id
    WHERE r.company_id = $1 AND d.record_id = $2
    ORDER BY d.created_at
  `, companyID, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecordDocument, 0)
	for rows.Next() {
		var doc RecordDocument
		if err := rows.Scan(&doc.ID, &doc.RecordID, &doc.FileName, &doc.ContentType, &doc.FileSize, &doc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *Store) RecordDocumentData(ctx context.Context, companyID, documentID string) (RecordDocument, []byte, error) {
	var doc RecordDocument
	var data []byte
	err := s.DB.QueryRow(ctx, `
    SELECT d.id, d.record_id::text, d.file_name, d.content_type, d.file_size, d.created_at, d.data
    FROM leave_record_documents d
    JOIN leave_records r ON r.id = d.record_id
    WHERE r.company_id = $1 AND d.id = $2
  `, companyID, documentID).Scan(&doc.ID, &doc.RecordID, &doc.FileName, &doc.ContentType, &doc.FileSize, &doc.CreatedAt, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return RecordDocument{}, nil, ErrNotFound
	}
	return doc, data, err
}
