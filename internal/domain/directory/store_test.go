package directory

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestScanEmployee(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 18 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "emp-1"
		*(dest[1].(*string)) = "company-1"
		*(dest[2].(*string)) = "EMP001"
		*(dest[3].(*string)) = ""
		*(dest[4].(*string)) = "Ada Lovelace"
		*(dest[5].(*string)) = "ada@example.com"
		*(dest[6].(*string)) = "Engineer"
		*(dest[7].(*string)) = "Engineering"
		*(dest[8].(*string)) = ""
		*(dest[9].(*string)) = "role-1"
		*(dest[10].(*string)) = "2023-02-28"
		*(dest[11].(*string)) = "Full-time"
		*(dest[12].(*string)) = ""
		*(dest[13].(*string)) = ""
		*(dest[14].(*string)) = "Female"
		*(dest[15].(*float64)) = 95000
		*(dest[16].(*time.Time)) = createdAt
		*(dest[17].(*time.Time)) = createdAt
		return nil
	}}

	emp, err := scanEmployee(row)
	if err != nil {
		t.Fatalf("scanEmployee returned error: %v", err)
	}
	if emp.Name != "Ada Lovelace" || emp.StartDate != "2023-02-28" || emp.Salary != 95000 {
		t.Fatalf("unexpected employee: %+v", emp)
	}
}

func TestScanEmployeeNoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	if _, err := scanEmployee(row); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestCreateEmployeeDuplicateID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	store := NewStore(mock)
	_, err = store.CreateEmployee(context.Background(), "company-1", validEmployeeInput())
	if !errors.Is(err, ErrEmployeeIDTaken) {
		t.Fatalf("expected ErrEmployeeIDTaken, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRoleExists(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	query := regexp.QuoteMeta("SELECT COUNT(1) FROM roles WHERE company_id = $1 AND id = $2")
	mock.ExpectQuery(query).
		WithArgs("company-1", "role-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	store := NewStore(mock)
	ok, err := store.RoleExists(context.Background(), "company-1", "role-1")
	if err != nil {
		t.Fatalf("RoleExists returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected role to exist")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	query := regexp.QuoteMeta("DELETE FROM employees WHERE company_id = $1 AND id = $2")
	mock.ExpectExec(query).
		WithArgs("company-1", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	store := NewStore(mock)
	if err := store.DeleteEmployee(context.Background(), "company-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
