package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bangasho83/hummane/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

const employeeColumns = `
	id, company_id::text, employee_id,
	COALESCE(user_id::text, ''),
	name, email,
	COALESCE(position, ''), COALESCE(department, ''), COALESCE(department_id::text, ''),
	COALESCE(role_id::text, ''),
	to_char(start_date, 'YYYY-MM-DD'),
	employment_type,
	COALESCE(reporting_manager, ''), COALESCE(reporting_manager_id::text, ''),
	gender, salary, created_at, updated_at`

func (s *Store) CreateEmployee(ctx context.Context, companyID string, input EmployeeInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      company_id, employee_id, user_id, name, email, position, department,
      department_id, role_id, start_date, employment_type, reporting_manager,
      reporting_manager_id, gender, salary
    )
    VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7,
            NULLIF($8, '')::uuid, NULLIF($9, '')::uuid, $10::date, $11, $12,
            NULLIF($13, '')::uuid, $14, $15)
    RETURNING id
  `, companyID, input.EmployeeID, input.UserID, input.Name, input.Email,
		input.Position, input.Department, input.DepartmentID, input.RoleID,
		input.StartDate, input.EmploymentType, input.ReportingManager,
		input.ReportingManagerID, input.Gender, input.Salary).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrEmployeeIDTaken
		}
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, companyID, id string, input EmployeeInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET employee_id = $1, user_id = NULLIF($2, '')::uuid, name = $3, email = $4,
        position = $5, department = $6, department_id = NULLIF($7, '')::uuid,
        role_id = NULLIF($8, '')::uuid, start_date = $9::date, employment_type = $10,
        reporting_manager = $11, reporting_manager_id = NULLIF($12, '')::uuid,
        gender = $13, salary = $14, updated_at = now()
    WHERE company_id = $15 AND id = $16
  `, input.EmployeeID, input.UserID, input.Name, input.Email, input.Position,
		input.Department, input.DepartmentID, input.RoleID, input.StartDate,
		input.EmploymentType, input.ReportingManager, input.ReportingManagerID,
		input.Gender, input.Salary, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, companyID, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	return scanEmployee(row)
}

func (s *Store) ListEmployees(ctx context.Context, companyID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE company_id = $1
    ORDER BY created_at, id
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) RoleExists(ctx context.Context, companyID, roleID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM roles WHERE company_id = $1 AND id = $2", companyID, roleID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeID, &emp.UserID, &emp.Name, &emp.Email,
		&emp.Position, &emp.Department, &emp.DepartmentID, &emp.RoleID,
		&emp.StartDate, &emp.EmploymentType, &emp.ReportingManager,
		&emp.ReportingManagerID, &emp.Gender, &emp.Salary, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) CreateDepartment(ctx context.Context, companyID string, input DepartmentInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (company_id, name, description, manager_id)
    VALUES ($1, $2, $3, NULLIF($4, '')::uuid)
    RETURNING id
  `, companyID, input.Name, input.Description, input.ManagerID).Scan(&id)
	return id, err
}

func (s *Store) UpdateDepartment(ctx context.Context, companyID, id string, input DepartmentInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE departments
    SET name = $1, description = $2, manager_id = NULLIF($3, '')::uuid
    WHERE company_id = $4 AND id = $5
  `, input.Name, input.Description, input.ManagerID, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteDepartment(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM departments WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListDepartments(ctx context.Context, companyID string) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, name, COALESCE(description, ''), COALESCE(manager_id::text, ''), created_at
    FROM departments
    WHERE company_id = $1
    ORDER BY name
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Department, 0)
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.ID, &dep.CompanyID, &dep.Name, &dep.Description, &dep.ManagerID, &dep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, rows.Err()
}

func (s *Store) CreateRole(ctx context.Context, companyID string, input RoleInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO roles (company_id, title, description)
    VALUES ($1, $2, $3)
    RETURNING id
  `, companyID, input.Title, input.Description).Scan(&id)
	return id, err
}

func (s *Store) UpdateRole(ctx context.Context, companyID, id string, input RoleInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE roles SET title = $1, description = $2 WHERE company_id = $3 AND id = $4
  `, input.Title, input.Description, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteRole(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM roles WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id::text, title, COALESCE(description, ''), created_at
    FROM roles
    WHERE company_id = $1
    ORDER BY title
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Role, 0)
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.CompanyID, &role.Title, &role.Description, &role.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (s *Store) AddDocument(ctx context.Context, companyID, employeeID, kind, fileName, contentType string, data []byte) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_documents (employee_id, kind, file_name, content_type, file_size, data)
    SELECT e.id, $3, $4, $5, $6, $7
    FROM employees e
    WHERE e.company_id = $1 AND e.id = $2
    RETURNING id
  `, companyID, employeeID, kind, fileName, contentType, int64(len(data)), data).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

func (s *Store) ListDocuments(ctx context.Context, companyID, employeeID string) ([]EmployeeDocument, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id, d.employee_id::text, d.kind, d.file_name, d.content_type, d.file_size, d.created_at
    FROM employee_documents d
    JOIN employees e ON e.id = d.employee_id
    WHERE e.company_id = $1 AND d.employee_id = $2
    ORDER BY d.created_at
  `, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeDocument, 0)
	for rows.Next() {
		var doc EmployeeDocument
		if err := rows.Scan(&doc.ID, &doc.EmployeeID, &doc.Kind, &doc.FileName, &doc.ContentType, &doc.FileSize, &doc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *Store) DocumentData(ctx context.Context, companyID, documentID string) (EmployeeDocument, []byte, error) {
	var doc EmployeeDocument
	var data []byte
	err := s.DB.QueryRow(ctx, `
    SELECT d.id, d.employee_id::text, d.kind, d.file_name, d.content_type, d.file_size, d.created_at, d.data
    FROM employee_documents d
    JOIN employees e ON e.id = d.employee_id
    WHERE e.company_id = $1 AND d.id = $2
  `, companyID, documentID).Scan(&doc.ID, &doc.EmployeeID, &doc.Kind, &doc.FileName, &doc.ContentType, &doc.FileSize, &doc.CreatedAt, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeDocument{}, nil, ErrNotFound
	}
	return doc, data, err
}
