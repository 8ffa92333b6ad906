package directory

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// CreateEmployee persists a validated employee after confirming the role
// reference resolves inside the same company.
func (s *Service) CreateEmployee(ctx context.Context, companyID string, input EmployeeInput) (Employee, error) {
	if input.RoleID != "" {
		ok, err := s.store.RoleExists(ctx, companyID, input.RoleID)
		if err != nil {
			return Employee{}, err
		}
		if !ok {
			return Employee{}, ErrUnknownRole
		}
	}

	id, err := s.store.CreateEmployee(ctx, companyID, input)
	if err != nil {
		return Employee{}, err
	}
	return s.store.GetEmployee(ctx, companyID, id)
}

func (s *Service) UpdateEmployee(ctx context.Context, companyID, id string, input EmployeeInput) (Employee, error) {
	if input.RoleID != "" {
		ok, err := s.store.RoleExists(ctx, companyID, input.RoleID)
		if err != nil {
			return Employee{}, err
		}
		if !ok {
			return Employee{}, ErrUnknownRole
		}
	}

	if err := s.store.UpdateEmployee(ctx, companyID, id, input); err != nil {
		return Employee{}, err
	}
	return s.store.GetEmployee(ctx, companyID, id)
}

func (s *Service) DeleteEmployee(ctx context.Context, companyID, id string) error {
	return s.store.DeleteEmployee(ctx, companyID, id)
}

func (s *Service) GetEmployee(ctx context.Context, companyID, id string) (Employee, error) {
	return s.store.GetEmployee(ctx, companyID, id)
}

func (s *Service) ListEmployees(ctx context.Context, companyID string) ([]Employee, error) {
	return s.store.ListEmployees(ctx, companyID)
}

// Stats loads the roster and derives the aggregate view over it.
func (s *Service) Stats(ctx context.Context, companyID string) (TeamStats, error) {
	employees, err := s.store.ListEmployees(ctx, companyID)
	if err != nil {
		return TeamStats{}, err
	}
	return ComputeTeamStats(employees), nil
}

func (s *Service) CreateDepartment(ctx context.Context, companyID string, input DepartmentInput) (string, error) {
	return s.store.CreateDepartment(ctx, companyID, input)
}

func (s *Service) UpdateDepartment(ctx context.Context, companyID, id string, input DepartmentInput) error {
	return s.store.UpdateDepartment(ctx, companyID, id, input)
}

func (s *Service) DeleteDepartment(ctx context.Context, companyID, id string) error {
	return s.store.DeleteDepartment(ctx, companyID, id)
}

func (s *Service) ListDepartments(ctx context.Context, companyID string) ([]Department, error) {
	return s.store.ListDepartments(ctx, companyID)
}

func (s *Service) CreateRole(ctx context.Context, companyID string, input RoleInput) (string, error) {
	return s.store.CreateRole(ctx, companyID, input)
}

func (s *Service) UpdateRole(ctx context.Context, companyID, id string, input RoleInput) error {
	return s.store.UpdateRole(ctx, companyID, id, input)
}

func (s *Service) DeleteRole(ctx context.Context, companyID, id string) error {
	return s.store.DeleteRole(ctx, companyID, id)
}

func (s *Service) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	return s.store.ListRoles(ctx, companyID)
}

func (s *Service) AddDocument(ctx context.Context, companyID, employeeID, kind, fileName, contentType string, data []byte) (string, error) {
	return s.store.AddDocument(ctx, companyID, employeeID, kind, fileName, contentType, data)
}

func (s *Service) ListDocuments(ctx context.Context, companyID, employeeID string) ([]EmployeeDocument, error) {
	return s.store.ListDocuments(ctx, companyID, employeeID)
}

func (s *Service) DocumentData(ctx context.Context, companyID, documentID string) (EmployeeDocument, []byte, error) {
	return s.store.DocumentData(ctx, companyID, documentID)
}
