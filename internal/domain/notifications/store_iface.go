package notifications

import "context"

type StoreAPI interface {
	Create(ctx context.Context, companyID, userID, text, kind string) (string, error)
	List(ctx context.Context, companyID, userID string, limit, offset int) ([]Notification, error)
	CountUnread(ctx context.Context, companyID, userID string) (int, error)
	MarkRead(ctx context.Context, companyID, id string) error
	MarkAllRead(ctx context.Context, companyID, userID string) error
}
