package directory

import "context"

type StoreAPI interface {
	CreateEmployee(ctx context.Context, companyID string, input EmployeeInput) (string, error)
	UpdateEmployee(ctx context.Context, companyID, id string, input EmployeeInput) error
	DeleteEmployee(ctx context.Context, companyID, id string) error
	GetEmployee(ctx context.Context, companyID, id string) (Employee, error)
	ListEmployees(ctx context.Context, companyID string) ([]Employee, error)
	RoleExists(ctx context.Context, companyID, roleID string) (bool, error)

	CreateDepartment(ctx context.Context, companyID string, input DepartmentInput) (string, error)
	UpdateDepartment(ctx context.Context, companyID, id string, input DepartmentInput) error
	DeleteDepartment(ctx context.Context, companyID, id string) error
	ListDepartments(ctx context.Context, companyID string) ([]Department, error)

	CreateRole(ctx context.Context, companyID string, input RoleInput) (string, error)
	UpdateRole(ctx context.Context, companyID, id string, input RoleInput) error
	DeleteRole(ctx context.Context, companyID, id string) error
	ListRoles(ctx context.Context, companyID string) ([]Role, error)

	AddDocument(ctx context.Context, companyID, employeeID, kind, fileName, contentType string, data []byte) (string, error)
	ListDocuments(ctx context.Context, companyID, employeeID string) ([]EmployeeDocument, error)
	DocumentData(ctx context.Context, companyID, documentID string) (EmployeeDocument, []byte, error)
}
