package feedback

import "context"

type StoreAPI interface {
	CreateCard(ctx context.Context, companyID string, input CardInput) (string, error)
	UpdateCard(ctx context.Context, companyID, id string, input CardInput) error
	DeleteCard(ctx context.Context, companyID, id string) error
	GetCard(ctx context.Context, companyID, id string) (Card, error)
	ListCards(ctx context.Context, companyID string) ([]Card, error)

	CreateEntry(ctx context.Context, companyID string, input EntryInput) (string, error)
	DeleteEntry(ctx context.Context, companyID, id string) error
	GetEntry(ctx context.Context, companyID, id string) (Entry, error)
	ListEntries(ctx context.Context, companyID, employeeID string) ([]Entry, error)
}
