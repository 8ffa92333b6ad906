package company

import "context"

type StoreAPI interface {
	Create(ctx context.Context, input Input, ownerID string) (string, error)
	Get(ctx context.Context, companyID string) (Company, error)
	Update(ctx context.Context, companyID string, input Input) error
}

type UserBinder interface {
	AssignCompany(ctx context.Context, userID, companyID string) error
}

type Service struct {
	store StoreAPI
	users UserBinder
}

func NewService(store StoreAPI, users UserBinder) *Service {
	return &Service{store: store, users: users}
}

// Onboard creates the company and binds the creating user as its owner so
// subsequent tokens carry the company claim.
func (s *Service) Onboard(ctx context.Context, ownerID string, input Input) (Company, error) {
	id, err := s.store.Create(ctx, input, ownerID)
	if err != nil {
		return Company{}, err
	}
	if err := s.users.AssignCompany(ctx, ownerID, id); err != nil {
		return Company{}, err
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, companyID string) (Company, error) {
	return s.store.Get(ctx, companyID)
}

func (s *Service) Update(ctx context.Context, companyID string, input Input) (Company, error) {
	if err := s.store.Update(ctx, companyID, input); err != nil {
		return Company{}, err
	}
	return s.store.Get(ctx, companyID)
}
