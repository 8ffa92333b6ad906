package recruiting

import (
	"context"
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

const jobColumns = `
	id, company_id::text, title,
	COALESCE(role_id::text, ''), COALESCE(department_id::text, ''),
	COALESCE(department, ''), COALESCE(employment_type, ''),
	COALESCE(location_city, ''), COALESCE(location_country, ''),
	salary_min, salary_max, COALESCE(salary_currency, ''),
	COALESCE(experience, ''), status, created_at, updated_at`

const applicantColumns = `
	id, company_id::text, COALESCE(job_id::text, ''),
	full_name, email, phone, position_applied,
	years_of_experience, current_salary, expected_salary,
	COALESCE(notice_period, ''), COALESCE(linkedin_url, ''),
	COALESCE(resume_file_name, ''),
	status, to_char(applied_date, 'YYYY-MM-DD'),
	created_at, updated_at`

func (s *Store) CreateJob(ctx context.Context, companyID string, input JobInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO jobs (
      company_id, title, role_id, department_id, department, employment_type,
      location_city, location_country, salary_min, salary_max, salary_currency,
      experience, status
    )
    VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid, $5, $6,
            $7, $8, $9, $10, $11, $12, $13)
    RETURNING id
  `, companyID, input.Title, input.RoleID, input.DepartmentID, input.Department,
		input.EmploymentType, input.Location.City, input.Location.Country,
		input.Salary.Min, input.Salary.Max, input.Salary.Currency,
		input.Experience, input.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateJob(ctx context.Context, companyID, id string, input JobInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE jobs
    SET title = $1, role_id = NULLIF($2, '')::uuid, department_id = NULLIF($3, '')::uuid,
        department = $4, employment_type = $5, location_city = $6, location_country = $7,
        salary_min = $8, salary_max = $9, salary_currency = $10, experience = $11,
        status = $12, updated_at = now()
    WHERE company_id = $13 AND id = $14
  `, input.Title, input.RoleID, input.DepartmentID, input.Department,
		input.EmploymentType, input.Location.City, input.Location.Country,
		input.Salary.Min, input.Salary.Max, input.Salary.Currency,
		input.Experience, input.Status, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (s *Store) DeleteJob(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM jobs WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (s *Store) GetJob(ctx context.Context, companyID, id string) (Job, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+jobColumns+`
    FROM jobs
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	return scanJob(row)
}

func (s *Store) ListJobs(ctx context.Context, companyID string) ([]Job, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+jobColumns+`
    FROM jobs
    WHERE company_id = $1
    ORDER BY created_at, id
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (s *Store) CreateApplicant(ctx context.Context, companyID string, input ApplicantInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO applicants (
      company_id, job_id, full_name, email, phone, position_applied,
      years_of_experience, current_salary, expected_salary, notice_period,
      linkedin_url, status, applied_date
    )
    VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::date)
    RETURNING id
  `, companyID, input.JobID, input.FullName, input.Email, input.Phone,
		input.PositionApplied, input.YearsOfExperience, input.CurrentSalary,
		input.ExpectedSalary, input.NoticePeriod, input.LinkedinURL,
		input.Status, input.AppliedDate).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateApplicant(ctx context.Context, companyID, id string, input ApplicantInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE applicants
    SET job_id = NULLIF($1, '')::uuid, full_name = $2, email = $3, phone = $4,
        position_applied = $5, years_of_experience = $6, current_salary = $7,
        expected_salary = $8, notice_period = $9, linkedin_url = $10,
        status = $11, applied_date = $12::date, updated_at = now()
    WHERE company_id = $13 AND id = $14
  `, input.JobID, input.FullName, input.Email, input.Phone,
		input.PositionApplied, input.YearsOfExperience, input.CurrentSalary,
		input.ExpectedSalary, input.NoticePeriod, input.LinkedinURL,
		input.Status, input.AppliedDate, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}
	return nil
}

func (s *Store) MoveApplicant(ctx context.Context, companyID, id, stage string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE applicants SET status = $1, updated_at = now()
    WHERE company_id = $2 AND id = $3
  `, stage, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}
	return nil
}

func (s *Store) DeleteApplicant(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM applicants WHERE company_id = $1 AND id = $2", companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}
	return nil
}

func (s *Store) GetApplicant(ctx context.Context, companyID, id string) (Applicant, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+applicantColumns+`
    FROM applicants
    WHERE company_id = $1 AND id = $2
  `, companyID, id)
	return scanApplicant(row)
}

func (s *Store) ListApplicants(ctx context.Context, companyID string) ([]Applicant, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+applicantColumns+`
    FROM applicants
    WHERE company_id = $1
    ORDER BY created_at, id
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Applicant, 0)
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, applicant)
	}
	return out, rows.Err()
}

func (s *Store) SetApplicantResume(ctx context.Context, companyID, id, fileName string, data []byte) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE applicants SET resume_file_name = $1, resume_data = $2, updated_at = now()
    WHERE company_id = $3 AND id = $4
  `, fileName, data, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}
	return nil
}

func (s *Store) GetApplicantResume(ctx context.Context, companyID, id string) (string, []byte, error) {
	var fileName string
	var data []byte
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(resume_file_name, ''), resume_data
    FROM applicants
    WHERE company_id = $1 AND id = $2
  `, companyID, id).Scan(&fileName, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrApplicantNotFound
		}
		return "", nil, err
	}
	return fileName, data, nil
}

func scanJob(row pgx.Row) (Job, error) {
	var job Job
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.Title,
		&job.RoleID, &job.DepartmentID,
		&job.Department, &job.EmploymentType,
		&job.Location.City, &job.Location.Country,
		&job.Salary.Min, &job.Salary.Max, &job.Salary.Currency,
		&job.Experience, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func scanApplicant(row pgx.Row) (Applicant, error) {
	var a Applicant
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.JobID,
		&a.FullName, &a.Email, &a.Phone, &a.PositionApplied,
		&a.YearsOfExperience, &a.CurrentSalary, &a.ExpectedSalary,
		&a.NoticePeriod, &a.LinkedinURL,
		&a.ResumeFileName,
		&a.Status, &a.AppliedDate,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Applicant{}, ErrApplicantNotFound
		}
		return Applicant{}, err
	}
	return a, nil
}
